package screen

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/maintodesk/gmao-console/internal/api"
	"github.com/maintodesk/gmao-console/internal/models"
	"github.com/maintodesk/gmao-console/internal/notify"
)

// Contracts is the contract-management screen. It also carries the client list
// used for the owner select and for display joins.
type Contracts struct {
	*Controller[models.Contract]
	clients []models.Client
}

func NewContracts(a *api.Client, nt notify.Notifier, log zerolog.Logger) *Contracts {
	s := &Contracts{}
	cfg := Config[models.Contract]{
		Entity: "contrats",
		Texts: Texts{
			LoadBanner:     "Erreur lors du chargement des contrats",
			LoadError:      Msg{"Erreur de chargement", "Impossible de charger la liste des contrats."},
			CreateProgress: Msg{"Création en cours...", "Sauvegarde du contrat"},
			UpdateProgress: Msg{"Modification en cours...", "Sauvegarde du contrat"},
			DeleteProgress: Msg{"Suppression en cours...", "Suppression du contrat"},
			Duplicate:      Msg{"Contrat déjà existant", "Un contrat existe déjà pour ce client."},
			Constraint: Msg{
				"Impossible de supprimer ce contrat",
				"Une erreur s'est produite. Ce contrat a des ressources attachées (interventions, factures). Veuillez supprimer ces ressources avant de supprimer le contrat.",
			},
			CreateError: Msg{"Erreur de création", "Une erreur est survenue lors de la sauvegarde. Veuillez réessayer."},
			UpdateError: Msg{"Erreur de modification", "Une erreur est survenue lors de la sauvegarde. Veuillez réessayer."},
			DeleteError: Msg{"Erreur de suppression", "Une erreur est survenue lors de la suppression du contrat. Veuillez réessayer."},
		},
		Fields: []Field{
			{Name: "clientId", Label: "Client", Required: true, Options: s.clientOptions},
		},
		Load: func(ctx context.Context) ([]models.Contract, error) {
			var contracts []models.Contract
			var clients []models.Client
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				contracts, err = a.Contracts(gctx)
				return err
			})
			g.Go(func() (err error) {
				clients, err = a.Clients(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}
			s.clients = clients
			return contracts, nil
		},
		ID:       func(c models.Contract) int64 { return c.ID },
		Defaults: func() Form { return Form{"clientId": ""} },
		FormOf: func(c models.Contract) Form {
			clientID := ""
			if c.Client != nil {
				clientID = strconv.FormatInt(c.Client.ClientID, 10)
			}
			return Form{"clientId": clientID}
		},
		Validate: func(f Form) *Msg {
			if blank(f["clientId"]) {
				return &Msg{"Erreur de validation", "Veuillez sélectionner un client."}
			}
			return nil
		},
		Create: func(ctx context.Context, f Form) error {
			in, err := contractInput(f)
			if err != nil {
				return err
			}
			_, err = a.CreateContract(ctx, in)
			return err
		},
		Update: func(ctx context.Context, id int64, f Form) error {
			in, err := contractInput(f)
			if err != nil {
				return err
			}
			_, err = a.UpdateContract(ctx, id, in)
			return err
		},
		Remove: a.DeleteContract,
		ConfirmDelete: func(rec *models.Contract, id int64) Confirmation {
			clientName := "Client inconnu"
			if rec != nil {
				clientName = rec.ClientName()
			}
			return Confirmation{
				Title:        "Supprimer le contrat",
				Text:         fmt.Sprintf("Êtes-vous sûr de vouloir supprimer Contrat #%d - %s ?", id, clientName),
				ConfirmLabel: "Oui, supprimer",
				CancelLabel:  "Annuler",
			}
		},
		DeleteSuccess: func(rec *models.Contract, id int64) Msg {
			return Msg{"Contrat supprimé !", fmt.Sprintf("Contrat #%d a été supprimé avec succès.", id)}
		},
		SaveSuccess: func(mode Mode, f Form) Msg {
			name := s.clientDisplayName(f["clientId"])
			if mode == ModeEdit {
				return Msg{"Contrat modifié !", fmt.Sprintf("Le contrat a été mis à jour pour %s.", name)}
			}
			return Msg{"Contrat créé !", fmt.Sprintf("Un nouveau contrat a été créé pour %s.", name)}
		},
	}
	s.Controller = NewController(cfg, nt, log)
	return s
}

// Clients returns the auxiliary client list loaded with the contracts.
func (s *Contracts) Clients() []models.Client { return s.clients }

func (s *Contracts) clientOptions() []Option {
	opts := make([]Option, 0, len(s.clients))
	for _, c := range s.clients {
		opts = append(opts, Option{Value: strconv.FormatInt(c.ClientID, 10), Label: c.FullName()})
	}
	return opts
}

func (s *Contracts) clientDisplayName(clientID string) string {
	if id, ok := parseID(clientID); ok {
		for _, c := range s.clients {
			if c.ClientID == id {
				return c.FullName()
			}
		}
	}
	return "le client sélectionné"
}

func contractInput(f Form) (models.ContractInput, error) {
	id, ok := parseID(f["clientId"])
	if !ok {
		return models.ContractInput{}, fmt.Errorf("identifiant client invalide: %q", f["clientId"])
	}
	return models.ContractInput{ClientID: id}, nil
}
