package screen

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maintodesk/gmao-console/internal/api"
	"github.com/maintodesk/gmao-console/internal/models"
	"github.com/maintodesk/gmao-console/internal/notify"
	"github.com/maintodesk/gmao-console/internal/validation"
)

// Clients is the client-management screen.
type Clients struct {
	*Controller[models.Client]
}

func NewClients(a *api.Client, nt notify.Notifier, log zerolog.Logger) *Clients {
	s := &Clients{}
	cfg := Config[models.Client]{
		Entity: "clients",
		Texts: Texts{
			LoadBanner:     "Erreur lors du chargement des clients",
			LoadError:      Msg{"Erreur de chargement", "Impossible de charger la liste des clients."},
			CreateProgress: Msg{"Création en cours...", "Sauvegarde des informations client"},
			UpdateProgress: Msg{"Modification en cours...", "Sauvegarde des informations client"},
			DeleteProgress: Msg{"Suppression en cours...", "Suppression du client"},
			Duplicate:      Msg{"Client déjà existant", "Un client avec cette adresse email existe déjà."},
			Constraint: Msg{
				"Impossible de supprimer ce client",
				"Une erreur s'est produite. Ce client a des ressources attachées (contrats, équipements, interventions). Veuillez supprimer ces ressources avant de supprimer le client.",
			},
			CreateError: Msg{"Erreur de création", "Une erreur est survenue lors de la sauvegarde. Veuillez réessayer."},
			UpdateError: Msg{"Erreur de modification", "Une erreur est survenue lors de la sauvegarde. Veuillez réessayer."},
			DeleteError: Msg{"Erreur de suppression", "Une erreur est survenue lors de la suppression du client. Veuillez réessayer."},
		},
		Fields: []Field{
			{Name: "firstName", Label: "Prénom", Required: true},
			{Name: "lastName", Label: "Nom", Required: true},
			{Name: "email", Label: "Email", Required: true},
			{Name: "phoneNumber", Label: "Téléphone", Required: true},
			{Name: "address", Label: "Adresse", Required: true},
		},
		Load: a.Clients,
		ID:   func(c models.Client) int64 { return c.ClientID },
		Defaults: func() Form {
			return Form{"firstName": "", "lastName": "", "email": "", "phoneNumber": "", "address": ""}
		},
		FormOf: func(c models.Client) Form {
			return Form{
				"firstName":   c.FirstName,
				"lastName":    c.LastName,
				"email":       c.Email,
				"phoneNumber": c.PhoneNumber,
				"address":     c.Address,
			}
		},
		Validate: func(f Form) *Msg {
			if blank(f["firstName"]) || blank(f["lastName"]) {
				return &Msg{"Erreur de validation", "Le prénom et le nom sont requis."}
			}
			if blank(f["email"]) {
				return &Msg{"Erreur de validation", "L'email est requis."}
			}
			v := validation.Violations{}
			validation.Email("email", f["email"], v)
			if !v.Empty() {
				return &Msg{"Erreur de validation", "L'email n'est pas valide."}
			}
			if blank(f["phoneNumber"]) || blank(f["address"]) {
				return &Msg{"Erreur de validation", "Veuillez remplir tous les champs obligatoires."}
			}
			return nil
		},
		Create: func(ctx context.Context, f Form) error {
			_, err := a.CreateClient(ctx, clientInput(f))
			return err
		},
		Update: func(ctx context.Context, id int64, f Form) error {
			_, err := a.UpdateClient(ctx, id, clientInput(f))
			return err
		},
		Remove: a.DeleteClient,
		ConfirmDelete: func(rec *models.Client, id int64) Confirmation {
			name := fmt.Sprintf("Client #%d", id)
			if rec != nil {
				name = rec.FullName()
			}
			return Confirmation{
				Title:        "Supprimer le client",
				Text:         fmt.Sprintf("Êtes-vous sûr de vouloir supprimer %s ?", name),
				ConfirmLabel: "Oui, supprimer",
				CancelLabel:  "Annuler",
			}
		},
		DeleteSuccess: func(rec *models.Client, id int64) Msg {
			name := fmt.Sprintf("Client #%d", id)
			if rec != nil {
				name = rec.FullName()
			}
			return Msg{"Client supprimé !", fmt.Sprintf("%s a été supprimé avec succès.", name)}
		},
		SaveSuccess: func(mode Mode, f Form) Msg {
			name := f["firstName"] + " " + f["lastName"]
			if mode == ModeEdit {
				return Msg{"Client modifié !", fmt.Sprintf("Les informations de %s ont été mises à jour.", name)}
			}
			return Msg{"Client créé !", fmt.Sprintf("%s a été ajouté avec succès.", name)}
		},
	}
	s.Controller = NewController(cfg, nt, log)
	return s
}

func clientInput(f Form) models.ClientInput {
	return models.ClientInput{
		FirstName:   f["firstName"],
		LastName:    f["lastName"],
		Email:       f["email"],
		PhoneNumber: f["phoneNumber"],
		Address:     f["address"],
	}
}
