package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalog-api/internal/application/dto"
)

// requestMeta método y URL completa (sin query string) de la petición actual.
func requestMeta(c *fiber.Ctx) dto.Meta {
	return dto.Meta{Method: c.Method(), URL: c.BaseURL() + c.Path()}
}

// respond escribe el sobre estándar con el status indicado.
func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.Envelope{
		Message: message,
		Data:    data,
		Meta:    requestMeta(c),
	})
}

// respondPage escribe un listado paginado; la paginación viaja en meta.
func respondPage[T any](c *fiber.Ctx, message string, page *dto.PageResult[T]) error {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return c.Status(fiber.StatusOK).JSON(dto.Envelope{
		Message: message,
		Data:    items,
		Meta:    requestMeta(c).WithPage(page.TotalPages, page.TotalElements, page.PageNumber, page.PageSize),
	})
}

// respondError sobre de error: data siempre null.
func respondError(c *fiber.Ctx, status int, message string) error {
	return respond(c, status, message, nil)
}
