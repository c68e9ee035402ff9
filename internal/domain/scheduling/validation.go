package scheduling

import (
	"strings"
	"time"

	"github.com/jhoicas/Bienestar-api/internal/domain"
	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
)

// Proposal datos ya tipados de una propuesta de evento.
type Proposal struct {
	EventName     string
	EventType     string
	Location      string
	ProposedDates []time.Time
}

// CalendarDay trunca t a su día calendario en UTC.
func CalendarDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay compara dos instantes por día calendario (UTC), ignorando la hora.
func SameDay(a, b time.Time) bool {
	return CalendarDay(a).Equal(CalendarDay(b))
}

// ValidateProposal revisa todos los campos de una propuesta y acumula los errores.
// Además de lo obligatorio (nombre, tipo, lugar, 3 fechas) exige que las fechas sean
// días distintos y no anteriores a today.
func ValidateProposal(p Proposal, today time.Time) error {
	verr := &domain.ValidationError{}
	if strings.TrimSpace(p.EventName) == "" {
		verr.Add("eventName", "el nombre del evento es requerido")
	}
	if strings.TrimSpace(p.EventType) == "" {
		verr.Add("eventType", "el tipo de evento es requerido")
	} else if !entity.IsEventType(p.EventType) {
		verr.Add("eventType", "tipo de evento no soportado: "+p.EventType)
	}
	if strings.TrimSpace(p.Location) == "" {
		verr.Add("location", "el lugar es requerido")
	}
	if len(p.ProposedDates) != entity.ProposedDatesCount {
		verr.Add("proposedDates", "se requieren exactamente 3 fechas propuestas")
		return verr.OrNil()
	}

	floor := CalendarDay(today)
	seen := make(map[time.Time]bool, entity.ProposedDatesCount)
	for _, d := range p.ProposedDates {
		if d.IsZero() {
			verr.Add("proposedDates", "todas las fechas propuestas son requeridas")
			return verr.OrNil()
		}
		day := CalendarDay(d)
		if day.Before(floor) {
			verr.Add("proposedDates", "las fechas propuestas deben ser futuras")
			return verr.OrNil()
		}
		if seen[day] {
			verr.Add("proposedDates", "las fechas propuestas deben ser distintas")
			return verr.OrNil()
		}
		seen[day] = true
	}
	return verr.OrNil()
}

// CheckInvariants verifica las reglas que todo evento persistido debe cumplir según su estado.
func CheckInvariants(e *entity.Event) error {
	if len(e.ProposedDates) != entity.ProposedDatesCount {
		return domain.NewValidationError("proposedDates", "se requieren exactamente 3 fechas propuestas")
	}
	switch e.Status {
	case entity.StatusPending:
		if e.ConfirmedDate != nil {
			return domain.NewValidationError("confirmedDate", "un evento pendiente no tiene fecha confirmada")
		}
		if e.Remarks != "" {
			return domain.NewValidationError("remarks", "un evento pendiente no tiene observaciones")
		}
	case entity.StatusApproved:
		if e.ConfirmedDate == nil {
			return domain.NewValidationError("confirmedDate", "la fecha confirmada es requerida")
		}
		if _, ok := MatchProposedDate(e, *e.ConfirmedDate); !ok {
			return domain.NewValidationError("confirmedDate", "la fecha confirmada debe ser una de las fechas propuestas")
		}
	case entity.StatusRejected:
		if strings.TrimSpace(e.Remarks) == "" {
			return domain.NewValidationError("remarks", "el motivo del rechazo es requerido")
		}
		if e.ConfirmedDate != nil {
			return domain.NewValidationError("confirmedDate", "un evento rechazado no tiene fecha confirmada")
		}
	default:
		return domain.NewValidationError("status", "estado desconocido: "+e.Status)
	}
	return nil
}

// MatchProposedDate devuelve la fecha propuesta del mismo día que date.
func MatchProposedDate(e *entity.Event, date time.Time) (time.Time, bool) {
	for _, d := range e.ProposedDates {
		if SameDay(d, date) {
			return CalendarDay(d), true
		}
	}
	return time.Time{}, false
}
