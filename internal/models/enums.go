package models

// Code sets exchanged with the backend. Values are stored server-side as-is;
// Label returns the French wording used everywhere in the interface.

type ClientType string

const (
	ClientTypeIndividual ClientType = "INDIVIDUAL"
	ClientTypeCompany    ClientType = "COMPANY"
	ClientTypeGovernment ClientType = "GOVERNMENT"
	ClientTypeNonProfit  ClientType = "NON_PROFIT"
)

func (t ClientType) Label() string {
	switch t {
	case ClientTypeIndividual:
		return "Particulier"
	case ClientTypeCompany:
		return "Entreprise"
	case ClientTypeGovernment:
		return "Administration"
	case ClientTypeNonProfit:
		return "Association"
	}
	return string(t)
}

type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "ACTIVE"
	ClientStatusInactive  ClientStatus = "INACTIVE"
	ClientStatusSuspended ClientStatus = "SUSPENDED"
)

func (s ClientStatus) Label() string {
	switch s {
	case ClientStatusActive:
		return "Actif"
	case ClientStatusInactive:
		return "Inactif"
	case ClientStatusSuspended:
		return "Suspendu"
	}
	return string(s)
}

type ContractType string

const (
	ContractTypeMaintenance  ContractType = "MAINTENANCE"
	ContractTypeRepair       ContractType = "REPAIR"
	ContractTypeInstallation ContractType = "INSTALLATION"
	ContractTypeConsulting   ContractType = "CONSULTING"
	ContractTypeEmergency    ContractType = "EMERGENCY"
	ContractTypeSeasonal     ContractType = "SEASONAL"
)

func (t ContractType) Label() string {
	switch t {
	case ContractTypeMaintenance:
		return "Maintenance"
	case ContractTypeRepair:
		return "Réparation"
	case ContractTypeInstallation:
		return "Installation"
	case ContractTypeConsulting:
		return "Conseil"
	case ContractTypeEmergency:
		return "Urgence"
	case ContractTypeSeasonal:
		return "Saisonnier"
	}
	return string(t)
}

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "DRAFT"
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusSuspended ContractStatus = "SUSPENDED"
	ContractStatusExpired   ContractStatus = "EXPIRED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

func (s ContractStatus) Label() string {
	switch s {
	case ContractStatusDraft:
		return "Brouillon"
	case ContractStatusActive:
		return "Actif"
	case ContractStatusSuspended:
		return "Suspendu"
	case ContractStatusExpired:
		return "Expiré"
	case ContractStatusCancelled:
		return "Annulé"
	}
	return string(s)
}

type InterventionStatus string

const (
	InterventionStatusScheduled  InterventionStatus = "SCHEDULED"
	InterventionStatusInProgress InterventionStatus = "IN_PROGRESS"
	InterventionStatusCompleted  InterventionStatus = "COMPLETED"
	InterventionStatusCancelled  InterventionStatus = "CANCELLED"
	InterventionStatusPostponed  InterventionStatus = "POSTPONED"
)

func (s InterventionStatus) Label() string {
	switch s {
	case InterventionStatusScheduled:
		return "Planifiée"
	case InterventionStatusInProgress:
		return "En cours"
	case InterventionStatusCompleted:
		return "Terminée"
	case InterventionStatusCancelled:
		return "Annulée"
	case InterventionStatusPostponed:
		return "Reportée"
	}
	return string(s)
}

type InterventionPriority string

const (
	InterventionPriorityLow    InterventionPriority = "LOW"
	InterventionPriorityMedium InterventionPriority = "MEDIUM"
	InterventionPriorityHigh   InterventionPriority = "HIGH"
	InterventionPriorityUrgent InterventionPriority = "URGENT"
)

func (p InterventionPriority) Label() string {
	switch p {
	case InterventionPriorityLow:
		return "Basse"
	case InterventionPriorityMedium:
		return "Moyenne"
	case InterventionPriorityHigh:
		return "Haute"
	case InterventionPriorityUrgent:
		return "Urgente"
	}
	return string(p)
}

type InterventionType string

const (
	InterventionTypePreventive   InterventionType = "PREVENTIVE"
	InterventionTypeCorrective   InterventionType = "CORRECTIVE"
	InterventionTypeEmergency    InterventionType = "EMERGENCY"
	InterventionTypeInspection   InterventionType = "INSPECTION"
	InterventionTypeInstallation InterventionType = "INSTALLATION"
)

func (t InterventionType) Label() string {
	switch t {
	case InterventionTypePreventive:
		return "Préventive"
	case InterventionTypeCorrective:
		return "Corrective"
	case InterventionTypeEmergency:
		return "Urgence"
	case InterventionTypeInspection:
		return "Inspection"
	case InterventionTypeInstallation:
		return "Installation"
	}
	return string(t)
}

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) Label() string {
	switch s {
	case InvoiceStatusDraft:
		return "Brouillon"
	case InvoiceStatusSent:
		return "Envoyée"
	case InvoiceStatusPaid:
		return "Payée"
	case InvoiceStatusOverdue:
		return "En retard"
	case InvoiceStatusCancelled:
		return "Annulée"
	}
	return string(s)
}

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCheck        PaymentMethod = "CHECK"
)

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodCash:
		return "Espèces"
	case PaymentMethodCreditCard:
		return "Carte bancaire"
	case PaymentMethodBankTransfer:
		return "Virement"
	case PaymentMethodCheck:
		return "Chèque"
	}
	return string(m)
}

type EquipmentStatus string

const (
	EquipmentStatusOperational         EquipmentStatus = "OPERATIONAL"
	EquipmentStatusMaintenanceRequired EquipmentStatus = "MAINTENANCE_REQUIRED"
	EquipmentStatusOutOfService        EquipmentStatus = "OUT_OF_SERVICE"
	EquipmentStatusDecommissioned      EquipmentStatus = "DECOMMISSIONED"
)

func (s EquipmentStatus) Label() string {
	switch s {
	case EquipmentStatusOperational:
		return "Opérationnel"
	case EquipmentStatusMaintenanceRequired:
		return "Maintenance requise"
	case EquipmentStatusOutOfService:
		return "Hors service"
	case EquipmentStatusDecommissioned:
		return "Déclassé"
	}
	return string(s)
}

type EquipmentType string

const (
	EquipmentTypeHVAC       EquipmentType = "HVAC"
	EquipmentTypeElectrical EquipmentType = "ELECTRICAL"
	EquipmentTypePlumbing   EquipmentType = "PLUMBING"
	EquipmentTypeMechanical EquipmentType = "MECHANICAL"
	EquipmentTypeSafety     EquipmentType = "SAFETY"
	EquipmentTypeIT         EquipmentType = "IT"
)

func (t EquipmentType) Label() string {
	switch t {
	case EquipmentTypeHVAC:
		return "CVC"
	case EquipmentTypeElectrical:
		return "Électrique"
	case EquipmentTypePlumbing:
		return "Plomberie"
	case EquipmentTypeMechanical:
		return "Mécanique"
	case EquipmentTypeSafety:
		return "Sécurité"
	case EquipmentTypeIT:
		return "Informatique"
	}
	return string(t)
}

type TechnicianSpecialization string

const (
	SpecializationGeneral    TechnicianSpecialization = "GENERAL"
	SpecializationElectrical TechnicianSpecialization = "ELECTRICAL"
	SpecializationPlumbing   TechnicianSpecialization = "PLUMBING"
	SpecializationHVAC       TechnicianSpecialization = "HVAC"
	SpecializationMechanical TechnicianSpecialization = "MECHANICAL"
	SpecializationITSupport  TechnicianSpecialization = "IT_SUPPORT"
)

func (s TechnicianSpecialization) Label() string {
	switch s {
	case SpecializationGeneral:
		return "Maintenance générale"
	case SpecializationElectrical:
		return "Systèmes électriques"
	case SpecializationPlumbing:
		return "Plomberie"
	case SpecializationHVAC:
		return "CVC (Chauffage, Ventilation, Climatisation)"
	case SpecializationMechanical:
		return "Systèmes mécaniques"
	case SpecializationITSupport:
		return "Support informatique"
	}
	return string(s)
}
