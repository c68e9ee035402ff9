package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bienestar-api/internal/application/dto"
	"github.com/jhoicas/Bienestar-api/internal/application/events"
)

// EventHandler maneja propuesta, consulta y decisión de eventos de bienestar.
type EventHandler struct {
	uc *events.EventUseCase
}

// NewEventHandler construye el handler.
func NewEventHandler(uc *events.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// Create godoc
// @Summary      Proponer evento
// @Description  Crea un evento Pending para la empresa del usuario HR con tres fechas
// @Description  distintas y asigna el primer proveedor que ofrezca el tipo de evento.
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "eventName, eventType, location, proposedDates (3)"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Propose(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar eventos visibles
// @Description  HR ve los eventos de su empresa; el proveedor, los que tiene asignados.
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.EventResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener evento
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.EventResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [get]
func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar evento
// @Description  Solo el proveedor asignado y solo si el evento sigue Pending.
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del evento"
// @Param        body  body  dto.ApproveEventRequest  true  "confirmedDate: una de las fechas propuestas"
// @Success      200   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/events/{id}/approve [put]
func (h *EventHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveEventRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Approve(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar evento
// @Description  Solo el proveedor asignado y solo si el evento sigue Pending. El motivo es obligatorio.
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del evento"
// @Param        body  body  dto.RejectEventRequest  true  "remarks"
// @Success      200   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/events/{id}/reject [put]
func (h *EventHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectEventRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Reject(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Calendar godoc
// @Summary      Exportar eventos aprobados (iCalendar)
// @Tags         events
// @Security     Bearer
// @Produce      text/calendar
// @Success      200  {string}  string  "VCALENDAR"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/events/calendar.ics [get]
func (h *EventHandler) Calendar(c *fiber.Ctx) error {
	body, err := h.uc.ExportCalendar(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="eventos.ics"`)
	return c.Send(body)
}

// ConfirmationPDF godoc
// @Summary      Constancia PDF de un evento aprobado
// @Tags         events
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/events/{id}/pdf [get]
func (h *EventHandler) ConfirmationPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	body, err := h.uc.ConfirmationPDF(c.UserContext(), GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="evento-`+id+`.pdf"`)
	return c.Send(body)
}
