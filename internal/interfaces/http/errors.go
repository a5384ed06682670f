package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/domain"
)

// fail responde con el cuerpo de error estándar.
func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// invalidBody respuesta para un cuerpo JSON que no se pudo leer.
func invalidBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

// notFound respuesta 404 con el recurso indicado.
func notFound(c *fiber.Ctx, what string) error {
	return fail(c, fiber.StatusNotFound, "NOT_FOUND", what+" no encontrado")
}

// handleError traduce un error de dominio a su respuesta HTTP.
func handleError(c *fiber.Ctx, err error) error {
	var required *domain.RequiredFieldsError
	switch {
	case errors.As(err, &required):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(), Fields: required.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrUnknownField):
		return fail(c, fiber.StatusBadRequest, "UNKNOWN_FIELD", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, domain.ErrDraftClosed):
		return fail(c, fiber.StatusConflict, "DRAFT_CLOSED", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", err.Error())
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return fail(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
}

// ErrorHandler manejador de errores de Fiber (rutas inexistentes, pánicos recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		}
		return fail(c, fe.Code, code, fe.Message)
	}
	return handleError(c, err)
}
