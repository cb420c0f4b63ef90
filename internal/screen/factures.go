package screen

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/maintodesk/gmao-console/internal/api"
	"github.com/maintodesk/gmao-console/internal/models"
	"github.com/maintodesk/gmao-console/internal/notify"
	"github.com/maintodesk/gmao-console/internal/validation"
)

// Factures is the invoicing screen. The total recomputes from labor + material
// while either cost edits, but stays an editable field the operator may
// override before submitting.
type Factures struct {
	*Controller[models.Facture]
	interventions []models.Intervention
}

func NewFactures(a *api.Client, nt notify.Notifier, log zerolog.Logger) *Factures {
	s := &Factures{}
	cfg := Config[models.Facture]{
		Entity: "factures",
		Texts: Texts{
			LoadBanner:     "Erreur lors du chargement des factures",
			LoadError:      Msg{"Erreur de chargement", "Impossible de charger la liste des factures."},
			CreateProgress: Msg{"Création en cours...", "Création de la nouvelle facture"},
			UpdateProgress: Msg{"Modification en cours...", "Modification de la facture"},
			DeleteProgress: Msg{"Suppression en cours...", "Suppression de la facture"},
			Duplicate:      Msg{"Erreur de validation", "Ce numéro de facture existe déjà. Veuillez utiliser un numéro différent."},
			Constraint: Msg{
				"Impossible de supprimer cette facture",
				"Une erreur s'est produite. Cette facture a des ressources attachées. Veuillez supprimer ces ressources avant de supprimer la facture.",
			},
			CreateError: Msg{"Erreur de création", "Une erreur est survenue lors de la sauvegarde. Veuillez réessayer."},
			UpdateError: Msg{"Erreur de modification", "Une erreur est survenue lors de la sauvegarde. Veuillez réessayer."},
			DeleteError: Msg{"Erreur de suppression", "Une erreur est survenue lors de la suppression de la facture. Veuillez réessayer."},
		},
		Fields: []Field{
			{Name: "invoiceNumber", Label: "Numéro de facture", Required: true},
			{Name: "description", Label: "Description", Required: true},
			{Name: "laborCost", Label: "Main d'œuvre"},
			{Name: "materialCost", Label: "Matériel"},
			{Name: "totalAmount", Label: "Montant total", Required: true},
			{Name: "status", Label: "Statut", Options: invoiceStatusOptions},
			{Name: "dueDate", Label: "Date d'échéance"},
			{Name: "paidDate", Label: "Date de paiement"},
			{Name: "paymentMethod", Label: "Mode de paiement", Options: paymentMethodOptions},
			{Name: "notes", Label: "Notes"},
			{Name: "interventionId", Label: "Intervention", Options: s.interventionOptions},
		},
		Load: func(ctx context.Context) ([]models.Facture, error) {
			var factures []models.Facture
			var interventions []models.Intervention
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				factures, err = a.Factures(gctx)
				return err
			})
			g.Go(func() (err error) {
				interventions, err = a.Interventions(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}
			s.interventions = interventions
			return factures, nil
		},
		ID: func(f models.Facture) int64 { return f.ID },
		Defaults: func() Form {
			return Form{
				"invoiceNumber":  "",
				"description":    "",
				"laborCost":      "",
				"materialCost":   "",
				"totalAmount":    "",
				"status":         string(models.InvoiceStatusDraft),
				"dueDate":        "",
				"paidDate":       "",
				"paymentMethod":  "",
				"notes":          "",
				"interventionId": "",
			}
		},
		FormOf: func(rec models.Facture) Form {
			status := string(rec.Status)
			if status == "" {
				status = string(models.InvoiceStatusDraft)
			}
			total := rec.TotalAmount
			if total == nil {
				total = rec.Price
			}
			return Form{
				"invoiceNumber":  rec.InvoiceNumber,
				"description":    rec.Description,
				"laborCost":      formatAmount(rec.LaborCost),
				"materialCost":   formatAmount(rec.MaterialCost),
				"totalAmount":    formatAmount(total),
				"status":         status,
				"dueDate":        dateOnly(rec.DueDate),
				"paidDate":       dateOnly(rec.PaidDate),
				"paymentMethod":  string(rec.PaymentMethod),
				"notes":          rec.Notes,
				"interventionId": formatIDPtr(rec.InterventionID),
			}
		},
		Validate: func(f Form) *Msg {
			if blank(f["invoiceNumber"]) {
				return &Msg{"Erreur de validation", "Le numéro de facture est requis."}
			}
			if blank(f["description"]) {
				return &Msg{"Erreur de validation", "La description est requise."}
			}
			v := validation.Violations{}
			validation.PositiveAmount("totalAmount", f["totalAmount"], v)
			if !v.Empty() {
				return &Msg{"Erreur de validation", "Le montant total doit être supérieur à 0."}
			}
			return nil
		},
		Derive: deriveTotal,
		Create: func(ctx context.Context, f Form) error {
			_, err := a.CreateFacture(ctx, factureInput(f))
			return err
		},
		Update: func(ctx context.Context, id int64, f Form) error {
			_, err := a.UpdateFacture(ctx, id, factureInput(f))
			return err
		},
		Remove: a.DeleteFacture,
		ConfirmDelete: func(rec *models.Facture, id int64) Confirmation {
			name := fmt.Sprintf("Facture #%d", id)
			if rec != nil {
				name = rec.DisplayName()
			}
			return Confirmation{
				Title:        "Supprimer la facture",
				Text:         fmt.Sprintf("Êtes-vous sûr de vouloir supprimer %s ?", name),
				ConfirmLabel: "Oui, supprimer",
				CancelLabel:  "Annuler",
			}
		},
		DeleteSuccess: func(rec *models.Facture, id int64) Msg {
			name := fmt.Sprintf("Facture #%d", id)
			if rec != nil {
				name = rec.DisplayName()
			}
			return Msg{"Facture supprimée !", fmt.Sprintf("%s a été supprimée avec succès.", name)}
		},
		SaveSuccess: func(mode Mode, f Form) Msg {
			if mode == ModeEdit {
				return Msg{"Facture modifiée !", "La facture a été modifiée avec succès."}
			}
			return Msg{"Facture créée !", "La nouvelle facture a été créée avec succès."}
		},
	}
	s.Controller = NewController(cfg, nt, log)
	return s
}

// Interventions returns the auxiliary intervention list loaded with the factures.
func (s *Factures) Interventions() []models.Intervention { return s.interventions }

// deriveTotal recomputes totalAmount as labor + material (two decimals) whenever
// either cost edits. Unparseable or blank costs count as zero.
func deriveTotal(f Form, changed string) {
	if changed != "laborCost" && changed != "materialCost" {
		return
	}
	labor, _ := strconv.ParseFloat(strings.TrimSpace(f["laborCost"]), 64)
	material, _ := strconv.ParseFloat(strings.TrimSpace(f["materialCost"]), 64)
	f["totalAmount"] = strconv.FormatFloat(labor+material, 'f', 2, 64)
}

func factureInput(f Form) models.FactureInput {
	total := parseAmountPtr(f["totalAmount"])
	return models.FactureInput{
		InvoiceNumber:  f["invoiceNumber"],
		Description:    f["description"],
		LaborCost:      parseAmountPtr(f["laborCost"]),
		MaterialCost:   parseAmountPtr(f["materialCost"]),
		TotalAmount:    total,
		Price:          total,
		Status:         f["status"],
		DueDate:        f["dueDate"],
		PaidDate:       f["paidDate"],
		PaymentMethod:  f["paymentMethod"],
		Notes:          f["notes"],
		InterventionID: parseIDPtr(f["interventionId"]),
	}
}

// dateOnly keeps the date part of an ISO timestamp for date inputs.
func dateOnly(v string) string {
	if i := strings.IndexByte(v, 'T'); i >= 0 {
		return v[:i]
	}
	return v
}

func invoiceStatusOptions() []Option {
	statuses := []models.InvoiceStatus{
		models.InvoiceStatusDraft,
		models.InvoiceStatusSent,
		models.InvoiceStatusPaid,
		models.InvoiceStatusOverdue,
		models.InvoiceStatusCancelled,
	}
	opts := make([]Option, 0, len(statuses))
	for _, st := range statuses {
		opts = append(opts, Option{Value: string(st), Label: st.Label()})
	}
	return opts
}

func paymentMethodOptions() []Option {
	methods := []models.PaymentMethod{
		models.PaymentMethodCash,
		models.PaymentMethodCreditCard,
		models.PaymentMethodBankTransfer,
		models.PaymentMethodCheck,
	}
	opts := make([]Option, 0, len(methods))
	for _, m := range methods {
		opts = append(opts, Option{Value: string(m), Label: m.Label()})
	}
	return opts
}

func (s *Factures) interventionOptions() []Option {
	opts := make([]Option, 0, len(s.interventions))
	for _, i := range s.interventions {
		opts = append(opts, Option{Value: strconv.FormatInt(i.ID, 10), Label: i.Title})
	}
	return opts
}
