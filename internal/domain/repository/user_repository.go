package repository

import (
	"context"

	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID y GetByUsername devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// ListVendors devuelve los proveedores ordenados por username.
	ListVendors(ctx context.Context) ([]*entity.User, error)
}
