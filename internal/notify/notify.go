// Package notify is the feedback surface of the interface: success, error,
// confirmation and in-progress dialogs. Screens depend on the interface only;
// the terminal implementation stands in for the modal library of the web UI.
package notify

// Notifier presents transient feedback to the operator.
type Notifier interface {
	Success(title, text string)
	Error(title, text string)
	Warning(title, text string)
	// Confirm asks a yes/no question and reports whether the operator confirmed.
	Confirm(title, text, confirmLabel, cancelLabel string) bool
	// Loading shows a blocking in-progress indicator; the returned func closes it.
	Loading(title, text string) func()
}

// NetworkError shows the fixed offline wording.
func NetworkError(n Notifier) {
	n.Error(
		"Erreur de connexion",
		"Impossible de contacter le serveur. Vérifiez votre connexion internet et réessayez.",
	)
}
