package dto

import (
	"time"

	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
)

// LoginRequest entrada para login con usuario y contraseña.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password). Los campos de perfil dependen del rol.
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	CompanyName string    `json:"companyName,omitempty"`
	VendorName  string    `json:"vendorName,omitempty"`
	EventTypes  []string  `json:"eventTypes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse mapea la entidad a su salida pública.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Role:        u.Role,
		CompanyName: u.CompanyName,
		VendorName:  u.VendorName,
		EventTypes:  u.EventTypes,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
