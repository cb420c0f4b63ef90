package screen

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/maintodesk/gmao-console/internal/api"
	"github.com/maintodesk/gmao-console/internal/models"
	"github.com/maintodesk/gmao-console/internal/notify"
	"github.com/maintodesk/gmao-console/internal/validation"
)

// Interventions is the intervention-planning screen. Deleting is worded as a
// cancellation everywhere, but performs a hard delete: retention is the
// backend's decision, not ours.
type Interventions struct {
	*Controller[models.Intervention]
	contracts []models.Contract

	// now is injected for the future-date rule; tests pin it.
	now func() time.Time
}

func NewInterventions(a *api.Client, nt notify.Notifier, log zerolog.Logger) *Interventions {
	s := &Interventions{now: time.Now}
	conflict := Msg{"Conflit de planification", "Une autre intervention est déjà planifiée à cette date et heure."}
	cfg := Config[models.Intervention]{
		Entity: "interventions",
		Texts: Texts{
			LoadBanner:     "Erreur lors du chargement des interventions",
			LoadError:      Msg{"Erreur de chargement", "Impossible de charger la liste des interventions."},
			CreateProgress: Msg{"Planification en cours...", "Sauvegarde de l'intervention"},
			UpdateProgress: Msg{"Modification en cours...", "Sauvegarde de l'intervention"},
			DeleteProgress: Msg{"Annulation en cours...", "Suppression de l'intervention"},
			Constraint: Msg{
				"Impossible d'annuler cette intervention",
				"Une erreur s'est produite. Cette intervention a des ressources attachées. Veuillez supprimer ces ressources avant d'annuler l'intervention.",
			},
			Conflict:    &conflict,
			CreateError: Msg{"Erreur de planification", "Une erreur est survenue lors de la sauvegarde. Veuillez réessayer."},
			UpdateError: Msg{"Erreur de modification", "Une erreur est survenue lors de la sauvegarde. Veuillez réessayer."},
			DeleteError: Msg{"Erreur d'annulation", "Une erreur est survenue lors de l'annulation de l'intervention. Veuillez réessayer."},
		},
		Fields: []Field{
			{Name: "title", Label: "Titre", Required: true},
			{Name: "description", Label: "Description", Required: true},
			{Name: "contractId", Label: "Contrat", Required: true, Options: s.contractOptions},
			{Name: "scheduledTime", Label: "Date et heure", Required: true},
		},
		Load: func(ctx context.Context) ([]models.Intervention, error) {
			var interventions []models.Intervention
			var contracts []models.Contract
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				interventions, err = a.Interventions(gctx)
				return err
			})
			g.Go(func() (err error) {
				contracts, err = a.Contracts(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}
			s.contracts = contracts
			return interventions, nil
		},
		ID: func(i models.Intervention) int64 { return i.ID },
		Defaults: func() Form {
			return Form{"title": "", "description": "", "scheduledTime": "", "contractId": ""}
		},
		FormOf: func(i models.Intervention) Form {
			contractID := ""
			if i.Contract != nil {
				contractID = strconv.FormatInt(i.Contract.ID, 10)
			}
			scheduled := i.ScheduledTime
			if len(scheduled) > 16 {
				scheduled = scheduled[:16] // datetime-local precision
			}
			return Form{
				"title":         i.Title,
				"description":   i.Description,
				"scheduledTime": scheduled,
				"contractId":    contractID,
			}
		},
		Validate: func(f Form) *Msg {
			if blank(f["title"]) || blank(f["description"]) || blank(f["contractId"]) {
				return &Msg{"Erreur de validation", "Veuillez remplir tous les champs obligatoires."}
			}
			if blank(f["scheduledTime"]) {
				return &Msg{"Date requise", "Veuillez définir une date et heure pour l'intervention."}
			}
			// The past is only rejected for new interventions; editing an old one
			// keeps its original date valid.
			if s.Mode() == ModeCreate {
				v := validation.Violations{}
				validation.FutureTime("scheduledTime", f["scheduledTime"], s.now(), v)
				if !v.Empty() {
					return &Msg{"Date invalide", "La date et l'heure doivent être dans le futur."}
				}
			}
			return nil
		},
		Create: func(ctx context.Context, f Form) error {
			_, err := a.CreateIntervention(ctx, interventionInput(f))
			return err
		},
		Update: func(ctx context.Context, id int64, f Form) error {
			_, err := a.UpdateIntervention(ctx, id, interventionInput(f))
			return err
		},
		Remove: a.DeleteIntervention,
		ConfirmDelete: func(rec *models.Intervention, id int64) Confirmation {
			name := fmt.Sprintf("Intervention #%d", id)
			if rec != nil {
				name = rec.Title
			}
			return Confirmation{
				Title:        "Annuler l'intervention",
				Text:         fmt.Sprintf("Êtes-vous sûr de vouloir annuler \"%s\" ?", name),
				ConfirmLabel: "Oui, annuler",
				CancelLabel:  "Non, garder",
			}
		},
		DeleteSuccess: func(rec *models.Intervention, id int64) Msg {
			name := fmt.Sprintf("Intervention #%d", id)
			if rec != nil {
				name = rec.Title
			}
			return Msg{"Intervention annulée !", fmt.Sprintf("%s a été annulée avec succès.", name)}
		},
		SaveSuccess: func(mode Mode, f Form) Msg {
			if mode == ModeEdit {
				return Msg{"Intervention modifiée !", fmt.Sprintf("L'intervention \"%s\" a été mise à jour.", f["title"])}
			}
			return Msg{
				"Intervention planifiée !",
				fmt.Sprintf("L'intervention \"%s\" a été planifiée pour %s.", f["title"], s.contractClientName(f["contractId"])),
			}
		},
	}
	s.Controller = NewController(cfg, nt, log)
	return s
}

// Contracts returns the auxiliary contract list loaded with the interventions.
func (s *Interventions) Contracts() []models.Contract { return s.contracts }

func (s *Interventions) contractOptions() []Option {
	opts := make([]Option, 0, len(s.contracts))
	for _, c := range s.contracts {
		label := fmt.Sprintf("Contrat #%d - %s", c.ID, c.ClientName())
		opts = append(opts, Option{Value: strconv.FormatInt(c.ID, 10), Label: label})
	}
	return opts
}

func (s *Interventions) contractClientName(contractID string) string {
	if id, ok := parseID(contractID); ok {
		for _, c := range s.contracts {
			if c.ID == id {
				return c.ClientName()
			}
		}
	}
	return "Client inconnu"
}

func interventionInput(f Form) models.InterventionInput {
	return models.InterventionInput{
		Title:         f["title"],
		Description:   f["description"],
		ScheduledTime: f["scheduledTime"],
		ContractID:    parseIDPtr(f["contractId"]),
	}
}
