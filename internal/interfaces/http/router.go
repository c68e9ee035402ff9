package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bienestar-api/internal/application/auth"
	"github.com/jhoicas/Bienestar-api/internal/application/events"
	"github.com/jhoicas/Bienestar-api/internal/application/usecase"
	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	EventUC   *events.EventUseCase
	JWTSecret string
	// Resolver recarga el usuario del token; si es nil se usa AuthUC.
	Resolver ActorResolver
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	resolver := deps.Resolver
	if resolver == nil {
		resolver = deps.AuthUC
	}
	requireAuth := AuthMiddleware(deps.JWTSecret, resolver)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, userHandler.Me)

	// Catálogo (protegido)
	users := api.Group("/users", requireAuth)
	users.Get("/event-types", userHandler.EventTypes)
	users.Get("/vendors", userHandler.Vendors)

	// Eventos (protegido). calendar.ics va antes de /:id.
	eventHandler := NewEventHandler(deps.EventUC)
	evs := api.Group("/events", requireAuth)
	evs.Post("/", RequireRole(entity.RoleHR), eventHandler.Create)
	evs.Get("/", eventHandler.List)
	evs.Get("/calendar.ics", eventHandler.Calendar)
	evs.Get("/:id", eventHandler.GetByID)
	evs.Get("/:id/pdf", eventHandler.ConfirmationPDF)
	evs.Put("/:id/approve", RequireRole(entity.RoleVendor), eventHandler.Approve)
	evs.Put("/:id/reject", RequireRole(entity.RoleVendor), eventHandler.Reject)
}
