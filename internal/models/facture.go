package models

// Facture entity. TotalAmount is derived from labor + material cost while the
// operator edits the form but remains overridable; Price mirrors TotalAmount for
// older backend revisions that still read it.
type Facture struct {
	ID             int64         `json:"id"`
	InvoiceNumber  string        `json:"invoiceNumber"`
	Description    string        `json:"description"`
	LaborCost      *float64      `json:"laborCost,omitempty"`
	MaterialCost   *float64      `json:"materialCost,omitempty"`
	TotalAmount    *float64      `json:"totalAmount,omitempty"`
	Price          *float64      `json:"price,omitempty"`
	Status         InvoiceStatus `json:"status,omitempty"`
	DueDate        string        `json:"dueDate,omitempty"`
	PaidDate       string        `json:"paidDate,omitempty"`
	PaymentMethod  PaymentMethod `json:"paymentMethod,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	InterventionID *int64        `json:"interventionId,omitempty"`
}

// DisplayName identifies the facture in confirmations and success messages.
func (f Facture) DisplayName() string {
	if f.InvoiceNumber != "" {
		return "Facture " + f.InvoiceNumber
	}
	return "Facture"
}

// FactureInput is the create/update payload. Numeric fields are nil when the
// corresponding form field is blank.
type FactureInput struct {
	InvoiceNumber  string   `json:"invoiceNumber"`
	Description    string   `json:"description"`
	LaborCost      *float64 `json:"laborCost"`
	MaterialCost   *float64 `json:"materialCost"`
	TotalAmount    *float64 `json:"totalAmount"`
	Price          *float64 `json:"price"`
	Status         string   `json:"status"`
	DueDate        string   `json:"dueDate"`
	PaidDate       string   `json:"paidDate"`
	PaymentMethod  string   `json:"paymentMethod"`
	Notes          string   `json:"notes"`
	InterventionID *int64   `json:"interventionId"`
}
