package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maintodesk/gmao-console/internal/screen"
)

// runResource drives one resource screen: render, prompt, dispatch, repeat.
// render receives the freshly loaded items; it owns the table layout.
func runResource[T any](
	ctx context.Context,
	out io.Writer,
	in *bufio.Reader,
	ctrl *screen.Controller[T],
	render func(w io.Writer, items []T),
) error {
	_ = ctrl.Load(ctx) // failures already notified; banner shows below

	for {
		fmt.Fprintln(out)
		if b := ctrl.Banner(); b != "" {
			fmt.Fprintf(out, "!! %s\n", b)
		}
		render(out, ctrl.Items())
		line, ok := readLine(out, in, "\n[n] nouveau  [m <id>] modifier  [s <id>] supprimer  [r] rafraîchir  [q] quitter : ")
		if !ok {
			return nil
		}
		verb, arg, _ := strings.Cut(line, " ")
		switch strings.ToLower(verb) {
		case "q", "quitter":
			return nil
		case "r", "":
			_ = ctrl.Load(ctx)
		case "n", "nouveau":
			ctrl.OpenCreate()
			promptForm(out, in, ctrl)
			_ = ctrl.Submit(ctx)
			ctrl.CloseModal()
		case "m", "modifier":
			id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
			if err != nil {
				fmt.Fprintln(out, "Identifiant invalide.")
				continue
			}
			rec, found := ctrl.Record(id)
			if !found {
				fmt.Fprintf(out, "Aucun enregistrement #%d.\n", id)
				continue
			}
			ctrl.OpenEdit(rec)
			promptForm(out, in, ctrl)
			_ = ctrl.Submit(ctx)
			ctrl.CloseModal()
		case "s", "supprimer":
			id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
			if err != nil {
				fmt.Fprintln(out, "Identifiant invalide.")
				continue
			}
			_ = ctrl.Delete(ctx, id)
		default:
			fmt.Fprintln(out, "Action inconnue.")
		}
	}
}

// promptForm asks for every field of the open modal. An empty answer keeps the
// current value, so editing only what changed stays cheap.
func promptForm[T any](out io.Writer, in *bufio.Reader, ctrl *screen.Controller[T]) {
	for _, field := range ctrl.Fields() {
		if field.Options != nil {
			fmt.Fprintf(out, "\n%s :\n", field.Label)
			for _, opt := range field.Options() {
				fmt.Fprintf(out, "  %s - %s\n", opt.Value, opt.Label)
			}
		}
		current := ctrl.FormValue(field.Name)
		label := field.Label
		if field.Required {
			label += " *"
		}
		prompt := fmt.Sprintf("%s [%s] : ", label, current)
		answer, ok := readLine(out, in, prompt)
		if !ok {
			return
		}
		if answer != "" {
			ctrl.SetField(field.Name, answer)
		}
	}
}
