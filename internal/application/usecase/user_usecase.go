package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/Bienestar-api/internal/application/dto"
	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
	"github.com/jhoicas/Bienestar-api/internal/domain/repository"
)

// UserUseCase expone el catálogo: proveedores y tipos de evento.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// ListVendors devuelve los proveedores ordenados por nombre comercial.
func (uc *UserUseCase) ListVendors(ctx context.Context) ([]dto.UserResponse, error) {
	vendors, err := uc.repo.ListVendors(ctx)
	if err != nil {
		return nil, err
	}
	sorted := make([]*entity.User, 0, len(vendors))
	for _, v := range vendors {
		if v.IsVendor() {
			sorted = append(sorted, v)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].VendorName != sorted[j].VendorName {
			return sorted[i].VendorName < sorted[j].VendorName
		}
		return sorted[i].Username < sorted[j].Username
	})
	out := make([]dto.UserResponse, 0, len(sorted))
	for _, v := range sorted {
		out = append(out, *dto.NewUserResponse(v))
	}
	return out, nil
}

// EventTypes devuelve el catálogo fijo de tipos de evento, en el orden de presentación.
func (uc *UserUseCase) EventTypes() []string {
	return entity.EventTypes()
}
