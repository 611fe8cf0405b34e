package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrValidation      = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrNetwork         = errors.New("backend no disponible")
	ErrServer          = errors.New("el backend rechazó la solicitud")
	ErrRequestInFlight = errors.New("ya hay una solicitud en curso")
	ErrSessionClosed   = errors.New("la sesión fue cerrada")
)

// ValidationError error de validación local: nunca se llega a llamar al backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap permite errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError construye un ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ServerError respuesta no-2xx del backend con el mensaje que éste devolvió.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Message)
}

// Unwrap clasifica el error: 404 → ErrNotFound, 409 → ErrConflict, resto → ErrServer.
func (e *ServerError) Unwrap() error {
	switch e.Status {
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	}
	return ErrServer
}
