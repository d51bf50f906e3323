package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalog-api/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("categoría 1: %w", domain.ErrNotFound), fiber.StatusNotFound},
		{domain.ErrUserNotFound, fiber.StatusNotFound},
		{fmt.Errorf("%w: el precio debe ser mayor que 0", domain.ErrInvalidInput), fiber.StatusBadRequest},
		{domain.ErrProductNotInCategory, fiber.StatusBadRequest},
		{domain.ErrEmailAlreadyExists, fiber.StatusConflict},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized},
		{domain.ErrForbidden, fiber.StatusForbidden},
		{fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{errors.New("conexión rechazada"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		got, msg := statusFor(tt.err)
		assert.Equal(t, tt.want, got, tt.err.Error())
		assert.NotEmpty(t, msg)
	}
}

func TestStatusFor_NoExponeErroresInternos(t *testing.T) {
	_, msg := statusFor(errors.New("pq: password authentication failed"))
	assert.Equal(t, internalErrorMessage, msg)
}
