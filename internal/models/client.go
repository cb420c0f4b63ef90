package models

// Client entity. Dates travel as the backend's ISO strings; the interface never
// reinterprets them beyond display formatting.
type Client struct {
	ClientID    int64        `json:"clientId"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Email       string       `json:"email"`
	PhoneNumber string       `json:"phoneNumber"`
	Address     string       `json:"address"`
	Type        ClientType   `json:"type,omitempty"`
	Status      ClientStatus `json:"status,omitempty"`
	CreatedAt   string       `json:"createdAt,omitempty"`
}

// FullName is the display name used in tables, confirmations and success messages.
func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ClientInput is the create/update payload.
type ClientInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}
