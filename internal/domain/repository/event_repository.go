package repository

import (
	"context"

	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
)

// EventRepository define el puerto de persistencia para Event (DIP).
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	// GetByID devuelve (nil, nil) si el evento no existe.
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	ListByCompany(ctx context.Context, companyName string) ([]*entity.Event, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*entity.Event, error)
	// Decide persiste la transición de next solo si el evento sigue Pending y asignado a
	// vendorID (check-and-set atómico). Devuelve (false, nil) si la condición no se cumplió.
	Decide(ctx context.Context, next *entity.Event, vendorID string) (bool, error)
}
