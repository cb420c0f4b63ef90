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

// Technicians is the technician-management screen.
type Technicians struct {
	*Controller[models.Technician]
}

func NewTechnicians(a *api.Client, nt notify.Notifier, log zerolog.Logger) *Technicians {
	s := &Technicians{}
	cfg := Config[models.Technician]{
		Entity: "techniciens",
		Texts: Texts{
			LoadBanner:     "Erreur lors du chargement des techniciens",
			LoadError:      Msg{"Erreur de chargement", "Impossible de charger la liste des techniciens."},
			CreateProgress: Msg{"Création en cours...", "Sauvegarde des informations technicien"},
			UpdateProgress: Msg{"Modification en cours...", "Sauvegarde des informations technicien"},
			DeleteProgress: Msg{"Suppression en cours...", "Suppression du technicien"},
			Duplicate:      Msg{"Technicien déjà existant", "Un technicien avec cette adresse email ou cet ID employé existe déjà."},
			Constraint: Msg{
				"Impossible de supprimer ce technicien",
				"Une erreur s'est produite. Ce technicien a des ressources attachées (contrats, interventions). Veuillez supprimer ces ressources avant de supprimer le technicien.",
			},
			CreateError: Msg{"Erreur de création", "Une erreur est survenue lors de la sauvegarde. Veuillez réessayer."},
			UpdateError: Msg{"Erreur de modification", "Une erreur est survenue lors de la sauvegarde. Veuillez réessayer."},
			DeleteError: Msg{"Erreur de suppression", "Une erreur est survenue lors de la suppression du technicien. Veuillez réessayer."},
		},
		Fields: []Field{
			{Name: "firstName", Label: "Prénom", Required: true},
			{Name: "lastName", Label: "Nom", Required: true},
			{Name: "email", Label: "Email", Required: true},
			{Name: "phoneNumber", Label: "Téléphone"},
			{Name: "employeeId", Label: "ID employé", Required: true},
			{Name: "specialization", Label: "Spécialisation", Options: specializationOptions},
		},
		Load: a.Technicians,
		ID:   func(t models.Technician) int64 { return t.ID },
		Defaults: func() Form {
			return Form{
				"firstName":      "",
				"lastName":       "",
				"email":          "",
				"phoneNumber":    "",
				"employeeId":     "",
				"specialization": string(models.SpecializationGeneral),
			}
		},
		FormOf: func(t models.Technician) Form {
			spec := string(t.Specialization)
			if spec == "" {
				spec = string(models.SpecializationGeneral)
			}
			return Form{
				"firstName":      t.FirstName,
				"lastName":       t.LastName,
				"email":          t.Email,
				"phoneNumber":    t.PhoneNumber,
				"employeeId":     t.EmployeeID,
				"specialization": spec,
			}
		},
		Validate: func(f Form) *Msg {
			if blank(f["firstName"]) || blank(f["lastName"]) || blank(f["email"]) || blank(f["employeeId"]) {
				return &Msg{"Erreur de validation", "Tous les champs obligatoires doivent être remplis."}
			}
			v := validation.Violations{}
			validation.Email("email", f["email"], v)
			if !v.Empty() {
				return &Msg{"Erreur de validation", "L'email n'est pas valide."}
			}
			return nil
		},
		Create: func(ctx context.Context, f Form) error {
			_, err := a.CreateTechnician(ctx, technicianInput(f))
			return err
		},
		Update: func(ctx context.Context, id int64, f Form) error {
			_, err := a.UpdateTechnician(ctx, id, technicianInput(f))
			return err
		},
		Remove: a.DeleteTechnician,
		ConfirmDelete: func(rec *models.Technician, id int64) Confirmation {
			name := fmt.Sprintf("Technicien #%d", id)
			if rec != nil {
				name = rec.FullName()
			}
			return Confirmation{
				Title:        "Supprimer le technicien",
				Text:         fmt.Sprintf("Êtes-vous sûr de vouloir supprimer %s ?", name),
				ConfirmLabel: "Oui, supprimer",
				CancelLabel:  "Annuler",
			}
		},
		DeleteSuccess: func(rec *models.Technician, id int64) Msg {
			name := fmt.Sprintf("Technicien #%d", id)
			if rec != nil {
				name = rec.FullName()
			}
			return Msg{"Technicien supprimé !", fmt.Sprintf("%s a été supprimé avec succès.", name)}
		},
		SaveSuccess: func(mode Mode, f Form) Msg {
			name := f["firstName"] + " " + f["lastName"]
			if mode == ModeEdit {
				return Msg{"Technicien modifié !", fmt.Sprintf("Les informations de %s ont été mises à jour.", name)}
			}
			return Msg{"Technicien créé !", fmt.Sprintf("%s a été ajouté avec succès.", name)}
		},
	}
	s.Controller = NewController(cfg, nt, log)
	return s
}

func technicianInput(f Form) models.TechnicianInput {
	return models.TechnicianInput{
		FirstName:      f["firstName"],
		LastName:       f["lastName"],
		Email:          f["email"],
		PhoneNumber:    f["phoneNumber"],
		EmployeeID:     f["employeeId"],
		Specialization: f["specialization"],
	}
}

func specializationOptions() []Option {
	specs := []models.TechnicianSpecialization{
		models.SpecializationGeneral,
		models.SpecializationElectrical,
		models.SpecializationPlumbing,
		models.SpecializationHVAC,
		models.SpecializationMechanical,
		models.SpecializationITSupport,
	}
	opts := make([]Option, 0, len(specs))
	for _, sp := range specs {
		opts = append(opts, Option{Value: string(sp), Label: sp.Label()})
	}
	return opts
}
