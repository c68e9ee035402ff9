package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bienestar-api/internal/application/dto"
	"github.com/jhoicas/Bienestar-api/internal/application/usecase"
)

// UserHandler expone el perfil propio y el catálogo (tipos de evento, proveedores).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	actor := GetActor(c)
	if actor == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	return c.JSON(dto.NewUserResponse(actor))
}

// EventTypes godoc
// @Summary      Tipos de evento soportados
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   string
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/users/event-types [get]
func (h *UserHandler) EventTypes(c *fiber.Ctx) error {
	return c.JSON(h.uc.EventTypes())
}

// Vendors godoc
// @Summary      Listar proveedores
// @Description  Proveedores con sus tipos de evento, ordenados por nombre comercial.
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/users/vendors [get]
func (h *UserHandler) Vendors(c *fiber.Ctx) error {
	list, err := h.uc.ListVendors(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
