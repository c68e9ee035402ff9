// Package events contiene los casos de uso del ciclo de vida de eventos de bienestar:
// propuesta por RRHH, asignación de proveedor, aprobación o rechazo por el proveedor
// y lectura filtrada por rol.
package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Bienestar-api/internal/application/dto"
	"github.com/jhoicas/Bienestar-api/internal/domain"
	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
	"github.com/jhoicas/Bienestar-api/internal/domain/repository"
	"github.com/jhoicas/Bienestar-api/internal/domain/scheduling"
	"github.com/jhoicas/Bienestar-api/internal/metrics"
)

// EventUseCase orquesta el ciclo de vida Pending → Approved | Rejected.
// El actor es siempre el usuario ya autenticado y recargado desde la base de datos.
type EventUseCase struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	calendar  CalendarEncoder
	pdf       ConfirmationPDFGenerator
	log       zerolog.Logger
	now       func() time.Time
}

// Option configura dependencias opcionales del caso de uso.
type Option func(*EventUseCase)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *EventUseCase) { uc.now = now }
}

// WithCalendarEncoder habilita la exportación iCalendar.
func WithCalendarEncoder(enc CalendarEncoder) Option {
	return func(uc *EventUseCase) { uc.calendar = enc }
}

// WithPDFGenerator habilita la constancia PDF.
func WithPDFGenerator(gen ConfirmationPDFGenerator) Option {
	return func(uc *EventUseCase) { uc.pdf = gen }
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	log zerolog.Logger,
	opts ...Option,
) *EventUseCase {
	uc := &EventUseCase{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Propose crea un evento Pending para la empresa del actor (solo HR) y le asigna el
// primer proveedor con la capacidad pedida. Sin coincidencia el evento queda sin proveedor.
func (uc *EventUseCase) Propose(ctx context.Context, actor *entity.User, in dto.CreateEventRequest) (*dto.EventResponse, error) {
	if !scheduling.CanPropose(actor) {
		return nil, domain.ErrForbidden
	}
	proposal := scheduling.Proposal{
		EventName:     in.EventName,
		EventType:     in.EventType,
		Location:      in.Location,
		ProposedDates: make([]time.Time, 0, len(in.ProposedDates)),
	}
	for _, d := range in.ProposedDates {
		proposal.ProposedDates = append(proposal.ProposedDates, d.Time)
	}
	now := uc.now()
	if err := scheduling.ValidateProposal(proposal, now); err != nil {
		return nil, err
	}

	vendors, err := uc.userRepo.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	vendor := scheduling.MatchVendor(proposal.EventType, vendors)

	event := scheduling.NewEvent(uuid.New().String(), actor, proposal, vendor, now)
	if err := scheduling.CheckInvariants(event); err != nil {
		return nil, err
	}
	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	metrics.EventsProposed.WithLabelValues(event.EventType).Inc()
	logEvt := uc.log.Info().
		Str("event_id", event.ID).
		Str("company", event.CompanyName).
		Str("event_type", event.EventType)
	if vendor != nil {
		metrics.VendorMatches.WithLabelValues("matched").Inc()
		logEvt.Str("vendor_id", vendor.ID).Msg("evento propuesto")
	} else {
		metrics.VendorMatches.WithLabelValues("unmatched").Inc()
		logEvt.Msg("evento propuesto sin proveedor disponible")
	}
	return toEventResponse(event), nil
}

// List devuelve los eventos visibles para el actor, más recientes primero.
func (uc *EventUseCase) List(ctx context.Context, actor *entity.User) ([]dto.EventResponse, error) {
	list, err := uc.visible(ctx, actor)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EventResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEventResponse(e))
	}
	return items, nil
}

// Get devuelve un evento. ErrNotFound si no existe; ErrForbidden si existe pero no es visible.
func (uc *EventUseCase) Get(ctx context.Context, actor *entity.User, id string) (*dto.EventResponse, error) {
	event, err := uc.getVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

// Approve confirma una de las fechas propuestas (solo el proveedor asignado, solo si Pending).
func (uc *EventUseCase) Approve(ctx context.Context, actor *entity.User, id string, in dto.ApproveEventRequest) (*dto.EventResponse, error) {
	if in.ConfirmedDate.IsZero() {
		return nil, domain.NewValidationError("confirmedDate", "la fecha confirmada es requerida")
	}
	return uc.decide(ctx, actor, id, func(e *entity.Event, now time.Time) (*entity.Event, error) {
		return scheduling.Approve(e, actor.ID, in.ConfirmedDate.Time, now)
	})
}

// Reject rechaza el evento con un motivo (solo el proveedor asignado, solo si Pending).
func (uc *EventUseCase) Reject(ctx context.Context, actor *entity.User, id string, in dto.RejectEventRequest) (*dto.EventResponse, error) {
	return uc.decide(ctx, actor, id, func(e *entity.Event, now time.Time) (*entity.Event, error) {
		return scheduling.Reject(e, actor.ID, in.Remarks, now)
	})
}

// ExportCalendar serializa a iCalendar los eventos aprobados visibles para el actor.
func (uc *EventUseCase) ExportCalendar(ctx context.Context, actor *entity.User) ([]byte, error) {
	if uc.calendar == nil {
		return nil, fmt.Errorf("exportación iCalendar no configurada")
	}
	list, err := uc.visible(ctx, actor)
	if err != nil {
		return nil, err
	}
	confirmed := make([]*entity.Event, 0, len(list))
	for _, e := range list {
		if e.Status == entity.StatusApproved && e.ConfirmedDate != nil {
			confirmed = append(confirmed, e)
		}
	}
	return uc.calendar.EncodeEvents(ctx, confirmed)
}

// ConfirmationPDF genera la constancia de un evento aprobado. ErrNotConfirmed si no lo está.
func (uc *EventUseCase) ConfirmationPDF(ctx context.Context, actor *entity.User, id string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("generación PDF no configurada")
	}
	event, err := uc.getVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if event.Status != entity.StatusApproved {
		return nil, domain.ErrNotConfirmed
	}
	return uc.pdf.GenerateConfirmationPDF(ctx, event)
}

type transition func(e *entity.Event, now time.Time) (*entity.Event, error)

// decide valida la transición en memoria y la persiste con un check-and-set condicionado a
// status = Pending. Si otra decisión ganó entre la lectura y la escritura, se relee el evento
// para clasificar el error.
func (uc *EventUseCase) decide(ctx context.Context, actor *entity.User, id string, apply transition) (*dto.EventResponse, error) {
	if !actor.IsVendor() {
		return nil, domain.ErrForbidden
	}
	event, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	next, err := apply(event, uc.now())
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyProcessed) {
			metrics.TransitionConflicts.Inc()
		}
		return nil, err
	}

	ok, err := uc.eventRepo.Decide(ctx, next, actor.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		metrics.TransitionConflicts.Inc()
		return nil, uc.classifyLostDecision(ctx, actor, id)
	}

	metrics.EventTransitions.WithLabelValues(next.Status).Inc()
	uc.log.Info().
		Str("event_id", next.ID).
		Str("vendor_id", actor.ID).
		Str("status", next.Status).
		Msg("evento procesado")
	return toEventResponse(next), nil
}

func (uc *EventUseCase) classifyLostDecision(ctx context.Context, actor *entity.User, id string) error {
	current, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	switch {
	case current == nil:
		return domain.ErrNotFound
	case !current.IsAssignedTo(actor.ID):
		return domain.ErrForbidden
	default:
		return domain.ErrAlreadyProcessed
	}
}

func (uc *EventUseCase) visible(ctx context.Context, actor *entity.User) ([]*entity.Event, error) {
	switch {
	case actor.IsHR():
		return uc.eventRepo.ListByCompany(ctx, actor.CompanyName)
	case actor.IsVendor():
		return uc.eventRepo.ListByVendor(ctx, actor.ID)
	}
	return nil, domain.ErrForbidden
}

func (uc *EventUseCase) getVisible(ctx context.Context, actor *entity.User, id string) (*entity.Event, error) {
	event, err := uc.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	if !scheduling.CanView(actor, event) {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	if e == nil {
		return nil
	}
	out := &dto.EventResponse{
		ID:            e.ID,
		CompanyName:   e.CompanyName,
		EventName:     e.EventName,
		EventType:     e.EventType,
		Location:      e.Location,
		ProposedDates: e.ProposedDates,
		Status:        e.Status,
		ConfirmedDate: e.ConfirmedDate,
		Remarks:       e.Remarks,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if e.AssignedVendor != nil {
		out.AssignedVendor = &dto.VendorRef{ID: *e.AssignedVendor, VendorName: e.VendorName}
	}
	return out
}
