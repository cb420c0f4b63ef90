package api

import (
	"context"
	"net/http"

	"github.com/maintodesk/gmao-console/internal/models"
)

// Resource paths as exposed by the backend. Factures and techniciens keep their
// French route names.
const (
	pathClients       = "/clients"
	pathContracts     = "/contracts"
	pathFactures      = "/factures"
	pathInterventions = "/interventions"
	pathEquipment     = "/equipment"
	pathTechnicians   = "/techniciens"
)

func (c *Client) Clients(ctx context.Context) ([]models.Client, error) {
	return list[models.Client](ctx, c, pathClients)
}

func (c *Client) GetClient(ctx context.Context, id int64) (models.Client, error) {
	return get[models.Client](ctx, c, pathClients, id)
}

func (c *Client) CreateClient(ctx context.Context, in models.ClientInput) (models.Client, error) {
	return create[models.Client](ctx, c, pathClients, in)
}

func (c *Client) UpdateClient(ctx context.Context, id int64, in models.ClientInput) (models.Client, error) {
	return update[models.Client](ctx, c, pathClients, id, in)
}

func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	return remove(ctx, c, pathClients, id)
}

func (c *Client) Contracts(ctx context.Context) ([]models.Contract, error) {
	return list[models.Contract](ctx, c, pathContracts)
}

func (c *Client) GetContract(ctx context.Context, id int64) (models.Contract, error) {
	return get[models.Contract](ctx, c, pathContracts, id)
}

func (c *Client) CreateContract(ctx context.Context, in models.ContractInput) (models.Contract, error) {
	return create[models.Contract](ctx, c, pathContracts, in)
}

func (c *Client) UpdateContract(ctx context.Context, id int64, in models.ContractInput) (models.Contract, error) {
	return update[models.Contract](ctx, c, pathContracts, id, in)
}

func (c *Client) DeleteContract(ctx context.Context, id int64) error {
	return remove(ctx, c, pathContracts, id)
}

func (c *Client) Factures(ctx context.Context) ([]models.Facture, error) {
	return list[models.Facture](ctx, c, pathFactures)
}

func (c *Client) GetFacture(ctx context.Context, id int64) (models.Facture, error) {
	return get[models.Facture](ctx, c, pathFactures, id)
}

func (c *Client) CreateFacture(ctx context.Context, in models.FactureInput) (models.Facture, error) {
	return create[models.Facture](ctx, c, pathFactures, in)
}

func (c *Client) UpdateFacture(ctx context.Context, id int64, in models.FactureInput) (models.Facture, error) {
	return update[models.Facture](ctx, c, pathFactures, id, in)
}

func (c *Client) DeleteFacture(ctx context.Context, id int64) error {
	return remove(ctx, c, pathFactures, id)
}

// ChiffreAffaires returns the backend-computed total revenue.
func (c *Client) ChiffreAffaires(ctx context.Context) (float64, error) {
	var total float64
	err := c.do(ctx, http.MethodGet, pathFactures+"/chiffre-affaires", nil, &total)
	return total, err
}

func (c *Client) Interventions(ctx context.Context) ([]models.Intervention, error) {
	return list[models.Intervention](ctx, c, pathInterventions)
}

func (c *Client) GetIntervention(ctx context.Context, id int64) (models.Intervention, error) {
	return get[models.Intervention](ctx, c, pathInterventions, id)
}

func (c *Client) CreateIntervention(ctx context.Context, in models.InterventionInput) (models.Intervention, error) {
	return create[models.Intervention](ctx, c, pathInterventions, in)
}

func (c *Client) UpdateIntervention(ctx context.Context, id int64, in models.InterventionInput) (models.Intervention, error) {
	return update[models.Intervention](ctx, c, pathInterventions, id, in)
}

func (c *Client) DeleteIntervention(ctx context.Context, id int64) error {
	return remove(ctx, c, pathInterventions, id)
}

// UpcomingInterventions returns the backend's upcoming-interventions preview.
func (c *Client) UpcomingInterventions(ctx context.Context) ([]models.Intervention, error) {
	return list[models.Intervention](ctx, c, pathInterventions+"/upcoming")
}

func (c *Client) Equipment(ctx context.Context) ([]models.Equipment, error) {
	return list[models.Equipment](ctx, c, pathEquipment)
}

func (c *Client) GetEquipmentItem(ctx context.Context, id int64) (models.Equipment, error) {
	return get[models.Equipment](ctx, c, pathEquipment, id)
}

func (c *Client) CreateEquipment(ctx context.Context, in models.EquipmentInput) (models.Equipment, error) {
	return create[models.Equipment](ctx, c, pathEquipment, in)
}

func (c *Client) UpdateEquipment(ctx context.Context, id int64, in models.EquipmentInput) (models.Equipment, error) {
	return update[models.Equipment](ctx, c, pathEquipment, id, in)
}

func (c *Client) DeleteEquipment(ctx context.Context, id int64) error {
	return remove(ctx, c, pathEquipment, id)
}

func (c *Client) Technicians(ctx context.Context) ([]models.Technician, error) {
	return list[models.Technician](ctx, c, pathTechnicians)
}

func (c *Client) GetTechnician(ctx context.Context, id int64) (models.Technician, error) {
	return get[models.Technician](ctx, c, pathTechnicians, id)
}

func (c *Client) CreateTechnician(ctx context.Context, in models.TechnicianInput) (models.Technician, error) {
	return create[models.Technician](ctx, c, pathTechnicians, in)
}

func (c *Client) UpdateTechnician(ctx context.Context, id int64, in models.TechnicianInput) (models.Technician, error) {
	return update[models.Technician](ctx, c, pathTechnicians, id, in)
}

func (c *Client) DeleteTechnician(ctx context.Context, id int64) error {
	return remove(ctx, c, pathTechnicians, id)
}
