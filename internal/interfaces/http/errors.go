package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/pkg/logger"
)

// unreachableMessage único mensaje que ve el usuario ante fallos de servicios externos.
const unreachableMessage = "Unable to reach server"

type errorMapping struct {
	target error
	status int
	code   string
}

// errorTable de lo más específico a lo más general.
var errorTable = []errorMapping{
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrRoleMismatch, fiber.StatusUnauthorized, "ROLE_MISMATCH"},
	{domain.ErrAuth, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrPasswordMismatch, fiber.StatusBadRequest, "PASSWORD_MISMATCH"},
	{domain.ErrWeakPassword, fiber.StatusBadRequest, "WEAK_PASSWORD"},
	{domain.ErrMissingField, fiber.StatusBadRequest, "MISSING_FIELD"},
	{domain.ErrInvalidDates, fiber.StatusBadRequest, "INVALID_DATES"},
	{domain.ErrInvalidDateFormat, fiber.StatusBadRequest, "INVALID_DATE_FORMAT"},
	{domain.ErrInvalidStatus, fiber.StatusBadRequest, "INVALID_STATUS"},
	{domain.ErrValidation, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrRoomUnavailable, fiber.StatusConflict, "ROOM_UNAVAILABLE"},
	{domain.ErrCapacityExceeded, fiber.StatusConflict, "CAPACITY_EXCEEDED"},
	{domain.ErrResidentDeparted, fiber.StatusConflict, "RESIDENT_DEPARTED"},
	{domain.ErrAllocation, fiber.StatusConflict, "ALLOCATION"},
	{domain.ErrAuthorization, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
}

// ErrorHandler convierte los errores devueltos por los handlers en dto.ErrorResponse.
// Los errores de dominio se muestran tal cual; los de transporte con un mensaje
// genérico; cualquier otro se registra y responde 500 sin detalle interno.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		for _, m := range errorTable {
			if errors.Is(err, m.target) {
				return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
			}
		}
		if errors.Is(err, domain.ErrTransport) {
			log.Warn().Err(err).Str("path", c.Path()).Msg("servicio externo no disponible")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: unreachableMessage})
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
}

// statusFor código HTTP que ErrorHandler asignará a err.
func statusFor(err error) int {
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	if errors.Is(err, domain.ErrTransport) {
		return fiber.StatusServiceUnavailable
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
