package models

// Contract entity. The backend embeds the owning client read-only.
type Contract struct {
	ID        int64          `json:"id"`
	Client    *Client        `json:"client,omitempty"`
	Type      ContractType   `json:"type,omitempty"`
	Status    ContractStatus `json:"status,omitempty"`
	CreatedAt string         `json:"createdAt,omitempty"`
	UpdatedAt string         `json:"updatedAt,omitempty"`
}

// ClientName resolves the owning client for display, with a placeholder when the
// join is absent.
func (c Contract) ClientName() string {
	if c.Client != nil {
		return c.Client.FullName()
	}
	return "Client inconnu"
}

// ContractInput is the create/update payload. The client reference is the
// backend's numeric identifier, parsed from the select-option string.
type ContractInput struct {
	ClientID int64 `json:"clientId"`
}
