package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/domain"
)

// handleError traduce errores de dominio a la respuesta HTTP. Único punto de mapeo.
func handleError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: verr.Message,
			Field:   verr.Field,
		})
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return respond(c, fiber.StatusBadRequest, "VALIDATION", err)
	case errors.Is(err, domain.ErrUnauthorized):
		return unauthorized(c, "UNAUTHORIZED", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return respond(c, fiber.StatusForbidden, "FORBIDDEN", err)
	case errors.Is(err, domain.ErrRequestInFlight):
		return respond(c, fiber.StatusConflict, "IN_FLIGHT", err)
	case errors.Is(err, domain.ErrSessionClosed):
		return respond(c, fiber.StatusGone, "SESSION_CLOSED", err)
	}

	// El backend respondió: se propaga su mensaje tal cual.
	var serr *domain.ServerError
	if errors.As(err, &serr) {
		switch serr.Status {
		case fiber.StatusBadRequest:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "REJECTED", Message: serr.Message})
		case fiber.StatusNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: serr.Message})
		case fiber.StatusConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: serr.Message})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BAD_GATEWAY", Message: serr.Message})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "NOT_FOUND", err)
	case errors.Is(err, domain.ErrConflict):
		return respond(c, fiber.StatusConflict, "CONFLICT", err)
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrServer):
		return respond(c, fiber.StatusBadGateway, "BAD_GATEWAY", err)
	}
	return respond(c, fiber.StatusInternalServerError, "INTERNAL", err)
}

func respond(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func invalidQuery(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
}
