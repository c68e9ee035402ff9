package events

import (
	"context"

	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
)

// CalendarEncoder serializa eventos confirmados a iCalendar (.ics).
type CalendarEncoder interface {
	EncodeEvents(ctx context.Context, events []*entity.Event) ([]byte, error)
}

// ConfirmationPDFGenerator genera la constancia PDF de un evento aprobado.
type ConfirmationPDFGenerator interface {
	GenerateConfirmationPDF(ctx context.Context, event *entity.Event) ([]byte, error)
}
