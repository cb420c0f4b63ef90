package models

// Intervention entity. Belongs to a contract; may carry the facture it produced.
type Intervention struct {
	ID            int64                `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	ScheduledTime string               `json:"scheduledTime,omitempty"`
	Status        InterventionStatus   `json:"status,omitempty"`
	Priority      InterventionPriority `json:"priority,omitempty"`
	Type          InterventionType     `json:"type,omitempty"`
	Contract      *Contract            `json:"contract,omitempty"`
	Facture       *Facture             `json:"facture,omitempty"`
}

// ClientName resolves the client through the contract join for display.
func (i Intervention) ClientName() string {
	if i.Contract != nil && i.Contract.Client != nil {
		return i.Contract.Client.FullName()
	}
	return "Client inconnu"
}

// InterventionInput is the create/update payload. ContractID is nil when no
// contract is selected.
type InterventionInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	ScheduledTime string `json:"scheduledTime"`
	ContractID    *int64 `json:"contractId"`
}
