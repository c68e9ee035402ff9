package entity

import "time"

// Estados del ciclo de vida de un evento.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// ProposedDatesCount cantidad exacta de fechas candidatas por evento.
const ProposedDatesCount = 3

// Tipos de evento (deben coincidir con el CHECK de la tabla events).
const (
	EventTypeYoga         = "Yoga"
	EventTypeMeditation   = "Meditation"
	EventTypeFitness      = "Fitness Training"
	EventTypeMentalHealth = "Mental Health Workshop"
	EventTypeNutrition    = "Nutrition Seminar"
	EventTypeTeamBuilding = "Team Building"
	EventTypeStress       = "Stress Management"
	EventTypeHealthScreen = "Health Screening"
)

var eventTypes = []string{
	EventTypeYoga,
	EventTypeMeditation,
	EventTypeFitness,
	EventTypeMentalHealth,
	EventTypeNutrition,
	EventTypeTeamBuilding,
	EventTypeStress,
	EventTypeHealthScreen,
}

// EventTypes devuelve una copia de la enumeración de tipos de evento, en orden de presentación.
func EventTypes() []string {
	out := make([]string, len(eventTypes))
	copy(out, eventTypes)
	return out
}

// IsEventType informa si t pertenece a la enumeración.
func IsEventType(t string) bool {
	for _, et := range eventTypes {
		if et == t {
			return true
		}
	}
	return false
}

// Event representa una propuesta de evento de bienestar creada por RRHH.
// CompanyName es copia de la empresa del creador al momento de crear el evento.
type Event struct {
	ID             string
	CompanyName    string
	EventName      string
	EventType      string
	Location       string
	ProposedDates  []time.Time // siempre 3, días calendario en UTC
	Status         string      // Pending, Approved, Rejected
	ConfirmedDate  *time.Time  // nil salvo en Approved
	Remarks        string      // vacío salvo en Rejected
	CreatedBy      string
	AssignedVendor *string // nil = sin proveedor; nunca se reasigna
	VendorName     string  // solo lectura (join con users)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsTerminal informa si el evento ya fue aprobado o rechazado.
func (e *Event) IsTerminal() bool {
	return e.Status == StatusApproved || e.Status == StatusRejected
}

// IsAssignedTo informa si vendorID es el proveedor asignado.
func (e *Event) IsAssignedTo(vendorID string) bool {
	return e.AssignedVendor != nil && *e.AssignedVendor == vendorID
}
