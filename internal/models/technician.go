package models

// Technician entity. IsActive is a pointer because older backend revisions omit
// the flag; an absent value displays as active.
type Technician struct {
	ID             int64                    `json:"id"`
	FirstName      string                   `json:"firstName"`
	LastName       string                   `json:"lastName"`
	Email          string                   `json:"email"`
	PhoneNumber    string                   `json:"phoneNumber"`
	EmployeeID     string                   `json:"employeeId"`
	Specialization TechnicianSpecialization `json:"specialization,omitempty"`
	IsActive       *bool                    `json:"isActive,omitempty"`
	CreatedAt      string                   `json:"createdAt,omitempty"`
}

func (t Technician) FullName() string {
	return t.FirstName + " " + t.LastName
}

// Active treats a missing flag as active.
func (t Technician) Active() bool {
	return t.IsActive == nil || *t.IsActive
}

// TechnicianInput is the create/update payload.
type TechnicianInput struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	EmployeeID     string `json:"employeeId"`
	Specialization string `json:"specialization"`
}
