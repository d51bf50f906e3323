package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

const internalErrorMessage = "error interno del servidor"

// ErrorHandler convierte cualquier error devuelto por un handler (o una ruta inexistente)
// en el sobre estándar. Los errores no esperados se registran y responden 500 sin detalle.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := statusFor(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error no controlado")
		}
		return respondError(c, status, message)
	}
}

// statusFor traduce errores de dominio a status HTTP.
func statusFor(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrProductNotInCategory):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, err.Error()
	case errors.As(err, &fe):
		if fe.Code >= fiber.StatusInternalServerError {
			return fe.Code, internalErrorMessage
		}
		return fe.Code, fe.Message
	default:
		return fiber.StatusInternalServerError, internalErrorMessage
	}
}
