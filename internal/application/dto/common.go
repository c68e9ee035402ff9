package dto

import "github.com/jhoicas/Bienestar-api/internal/domain"

// ErrorResponse cuerpo de error HTTP. Errors solo se llena en errores de validación.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}
