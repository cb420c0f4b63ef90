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

// EquipmentScreen manages the equipment inventory.
type EquipmentScreen struct {
	*Controller[models.Equipment]
	clients []models.Client
}

func NewEquipment(a *api.Client, nt notify.Notifier, log zerolog.Logger) *EquipmentScreen {
	s := &EquipmentScreen{}
	cfg := Config[models.Equipment]{
		Entity: "equipements",
		Texts: Texts{
			LoadBanner:     "Erreur lors du chargement des équipements",
			LoadError:      Msg{"Erreur de chargement", "Impossible de charger la liste des équipements."},
			CreateProgress: Msg{"Création en cours...", "Sauvegarde de l'équipement"},
			UpdateProgress: Msg{"Modification en cours...", "Sauvegarde de l'équipement"},
			DeleteProgress: Msg{"Suppression en cours...", "Suppression de l'équipement"},
			Duplicate:      Msg{"Équipement déjà existant", "Un équipement avec ce code ou numéro de série existe déjà."},
			Constraint: Msg{
				"Impossible de supprimer cet équipement",
				"Une erreur s'est produite. Cet équipement a des ressources attachées (interventions). Veuillez supprimer ces ressources avant de supprimer l'équipement.",
			},
			CreateError: Msg{"Erreur de création", "Une erreur est survenue lors de la sauvegarde. Veuillez réessayer."},
			UpdateError: Msg{"Erreur de modification", "Une erreur est survenue lors de la sauvegarde. Veuillez réessayer."},
			DeleteError: Msg{"Erreur de suppression", "Une erreur est survenue lors de la suppression de l'équipement. Veuillez réessayer."},
		},
		Fields: []Field{
			{Name: "equipmentCode", Label: "Code équipement"},
			{Name: "name", Label: "Nom", Required: true},
			{Name: "model", Label: "Modèle"},
			{Name: "manufacturer", Label: "Fabricant"},
			{Name: "serialNumber", Label: "Numéro de série"},
			{Name: "installationDate", Label: "Date d'installation"},
			{Name: "warrantyExpiryDate", Label: "Fin de garantie"},
			{Name: "status", Label: "Statut", Options: equipmentStatusOptions},
			{Name: "type", Label: "Type", Options: equipmentTypeOptions},
			{Name: "location", Label: "Emplacement"},
			{Name: "description", Label: "Description"},
			{Name: "specifications", Label: "Spécifications"},
			{Name: "clientId", Label: "Client", Required: true, Options: s.clientOptions},
		},
		Load: func(ctx context.Context) ([]models.Equipment, error) {
			var equipment []models.Equipment
			var clients []models.Client
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				equipment, err = a.Equipment(gctx)
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
			return equipment, nil
		},
		ID: func(e models.Equipment) int64 { return e.ID },
		Defaults: func() Form {
			return Form{
				"equipmentCode":      "",
				"name":               "",
				"model":              "",
				"manufacturer":       "",
				"serialNumber":       "",
				"installationDate":   "",
				"warrantyExpiryDate": "",
				"status":             string(models.EquipmentStatusOperational),
				"type":               "",
				"location":           "",
				"description":        "",
				"specifications":     "",
				"clientId":           "",
			}
		},
		FormOf: func(rec models.Equipment) Form {
			status := string(rec.Status)
			if status == "" {
				status = string(models.EquipmentStatusOperational)
			}
			clientID := ""
			if id, ok := rec.OwnerID(); ok {
				clientID = strconv.FormatInt(id, 10)
			}
			return Form{
				"equipmentCode":      rec.EquipmentCode,
				"name":               rec.Name,
				"model":              rec.Model,
				"manufacturer":       rec.Manufacturer,
				"serialNumber":       rec.SerialNumber,
				"installationDate":   dateOnly(rec.InstallationDate),
				"warrantyExpiryDate": dateOnly(rec.WarrantyExpiryDate),
				"status":             status,
				"type":               string(rec.Type),
				"location":           rec.Location,
				"description":        rec.Description,
				"specifications":     rec.Specifications,
				"clientId":           clientID,
			}
		},
		Validate: func(f Form) *Msg {
			if blank(f["name"]) || blank(f["clientId"]) {
				return &Msg{"Erreur de validation", "Le nom et le client sont requis."}
			}
			return nil
		},
		Create: func(ctx context.Context, f Form) error {
			_, err := a.CreateEquipment(ctx, equipmentInput(f))
			return err
		},
		Update: func(ctx context.Context, id int64, f Form) error {
			_, err := a.UpdateEquipment(ctx, id, equipmentInput(f))
			return err
		},
		Remove: a.DeleteEquipment,
		ConfirmDelete: func(rec *models.Equipment, id int64) Confirmation {
			name := fmt.Sprintf("Équipement #%d", id)
			if rec != nil {
				name = rec.Name
			}
			return Confirmation{
				Title:        "Supprimer l'équipement",
				Text:         fmt.Sprintf("Êtes-vous sûr de vouloir supprimer \"%s\" ?", name),
				ConfirmLabel: "Oui, supprimer",
				CancelLabel:  "Annuler",
			}
		},
		DeleteSuccess: func(rec *models.Equipment, id int64) Msg {
			name := fmt.Sprintf("Équipement #%d", id)
			if rec != nil {
				name = rec.Name
			}
			return Msg{"Équipement supprimé !", fmt.Sprintf("%s a été supprimé avec succès.", name)}
		},
		SaveSuccess: func(mode Mode, f Form) Msg {
			if mode == ModeEdit {
				return Msg{"Équipement modifié !", fmt.Sprintf("L'équipement \"%s\" a été mis à jour.", f["name"])}
			}
			return Msg{
				"Équipement créé !",
				fmt.Sprintf("L'équipement \"%s\" a été ajouté pour %s.", f["name"], s.clientDisplayName(f["clientId"])),
			}
		},
	}
	s.Controller = NewController(cfg, nt, log)
	return s
}

// Clients returns the auxiliary client list loaded with the equipment.
func (s *EquipmentScreen) Clients() []models.Client { return s.clients }

func (s *EquipmentScreen) clientOptions() []Option {
	opts := make([]Option, 0, len(s.clients))
	for _, c := range s.clients {
		opts = append(opts, Option{Value: strconv.FormatInt(c.ClientID, 10), Label: c.FullName()})
	}
	return opts
}

func (s *EquipmentScreen) clientDisplayName(clientID string) string {
	if id, ok := parseID(clientID); ok {
		for _, c := range s.clients {
			if c.ClientID == id {
				return c.FullName()
			}
		}
	}
	return "le client sélectionné"
}

func equipmentInput(f Form) models.EquipmentInput {
	return models.EquipmentInput{
		EquipmentCode:      f["equipmentCode"],
		Name:               f["name"],
		Model:              f["model"],
		Manufacturer:       f["manufacturer"],
		SerialNumber:       f["serialNumber"],
		InstallationDate:   f["installationDate"],
		WarrantyExpiryDate: f["warrantyExpiryDate"],
		Status:             f["status"],
		Type:               f["type"],
		Location:           f["location"],
		Description:        f["description"],
		Specifications:     f["specifications"],
		ClientID:           parseIDPtr(f["clientId"]),
	}
}

func equipmentStatusOptions() []Option {
	statuses := []models.EquipmentStatus{
		models.EquipmentStatusOperational,
		models.EquipmentStatusMaintenanceRequired,
		models.EquipmentStatusOutOfService,
		models.EquipmentStatusDecommissioned,
	}
	opts := make([]Option, 0, len(statuses))
	for _, st := range statuses {
		opts = append(opts, Option{Value: string(st), Label: st.Label()})
	}
	return opts
}

func equipmentTypeOptions() []Option {
	types := []models.EquipmentType{
		models.EquipmentTypeHVAC,
		models.EquipmentTypeElectrical,
		models.EquipmentTypePlumbing,
		models.EquipmentTypeMechanical,
		models.EquipmentTypeSafety,
		models.EquipmentTypeIT,
	}
	opts := make([]Option, 0, len(types))
	for _, ty := range types {
		opts = append(opts, Option{Value: string(ty), Label: ty.Label()})
	}
	return opts
}
