package models

// Equipment entity.
type Equipment struct {
	ID                 int64           `json:"id"`
	EquipmentCode      string          `json:"equipmentCode"`
	Name               string          `json:"name"`
	Model              string          `json:"model,omitempty"`
	Manufacturer       string          `json:"manufacturer,omitempty"`
	SerialNumber       string          `json:"serialNumber,omitempty"`
	InstallationDate   string          `json:"installationDate,omitempty"`
	WarrantyExpiryDate string          `json:"warrantyExpiryDate,omitempty"`
	Status             EquipmentStatus `json:"status,omitempty"`
	Type               EquipmentType   `json:"type,omitempty"`
	Location           string          `json:"location,omitempty"`
	Description        string          `json:"description,omitempty"`
	Specifications     string          `json:"specifications,omitempty"`
	ClientID           *int64          `json:"clientId,omitempty"`
	Client             *Client         `json:"client,omitempty"`
}

// OwnerID returns the owning client id whether it came flat or nested.
func (e Equipment) OwnerID() (int64, bool) {
	if e.ClientID != nil {
		return *e.ClientID, true
	}
	if e.Client != nil {
		return e.Client.ClientID, true
	}
	return 0, false
}

// EquipmentInput is the create/update payload.
type EquipmentInput struct {
	EquipmentCode      string `json:"equipmentCode"`
	Name               string `json:"name"`
	Model              string `json:"model"`
	Manufacturer       string `json:"manufacturer"`
	SerialNumber       string `json:"serialNumber"`
	InstallationDate   string `json:"installationDate"`
	WarrantyExpiryDate string `json:"warrantyExpiryDate"`
	Status             string `json:"status"`
	Type               string `json:"type"`
	Location           string `json:"location"`
	Description        string `json:"description"`
	Specifications     string `json:"specifications"`
	ClientID           *int64 `json:"clientId"`
}
