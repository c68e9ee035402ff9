package scheduling

import (
	"strings"
	"time"

	"github.com/jhoicas/Bienestar-api/internal/domain"
	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
)

// NewEvent arma un evento Pending a partir de una propuesta ya validada.
// vendor puede ser nil: el evento queda sin proveedor y no se vuelve a asignar.
func NewEvent(id string, creator *entity.User, p Proposal, vendor *entity.User, now time.Time) *entity.Event {
	dates := make([]time.Time, 0, len(p.ProposedDates))
	for _, d := range p.ProposedDates {
		dates = append(dates, CalendarDay(d))
	}
	e := &entity.Event{
		ID:            id,
		CompanyName:   creator.CompanyName,
		EventName:     strings.TrimSpace(p.EventName),
		EventType:     p.EventType,
		Location:      strings.TrimSpace(p.Location),
		ProposedDates: dates,
		Status:        entity.StatusPending,
		CreatedBy:     creator.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if vendor != nil {
		vendorID := vendor.ID
		e.AssignedVendor = &vendorID
		e.VendorName = vendor.VendorName
	}
	return e
}

// Approve aplica la transición Pending → Approved sobre una copia del evento.
// Errores: ErrForbidden si vendorID no es el asignado, ErrAlreadyProcessed si ya es terminal,
// ValidationError si la fecha no es una de las propuestas.
func Approve(e *entity.Event, vendorID string, confirmed time.Time, now time.Time) (*entity.Event, error) {
	if err := checkDecision(e, vendorID); err != nil {
		return nil, err
	}
	if confirmed.IsZero() {
		return nil, domain.NewValidationError("confirmedDate", "la fecha confirmada es requerida")
	}
	day, ok := MatchProposedDate(e, confirmed)
	if !ok {
		return nil, domain.NewValidationError("confirmedDate", "la fecha confirmada debe ser una de las fechas propuestas")
	}
	next := *e
	next.Status = entity.StatusApproved
	next.ConfirmedDate = &day
	next.Remarks = ""
	next.UpdatedAt = now
	if err := CheckInvariants(&next); err != nil {
		return nil, err
	}
	return &next, nil
}

// Reject aplica la transición Pending → Rejected sobre una copia del evento.
func Reject(e *entity.Event, vendorID, remarks string, now time.Time) (*entity.Event, error) {
	if err := checkDecision(e, vendorID); err != nil {
		return nil, err
	}
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return nil, domain.NewValidationError("remarks", "el motivo del rechazo es requerido")
	}
	next := *e
	next.Status = entity.StatusRejected
	next.ConfirmedDate = nil
	next.Remarks = remarks
	next.UpdatedAt = now
	if err := CheckInvariants(&next); err != nil {
		return nil, err
	}
	return &next, nil
}

func checkDecision(e *entity.Event, vendorID string) error {
	if !e.IsAssignedTo(vendorID) {
		return domain.ErrForbidden
	}
	if e.Status != entity.StatusPending {
		return domain.ErrAlreadyProcessed
	}
	return nil
}
