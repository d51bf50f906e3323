package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías y de sus productos anidados.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página (1-based)"  default(1)
// @Param        size  query  int  false  "Tamaño de página"  default(10)
// @Success      200   {object}  dto.Envelope{data=[]dto.CategoryResponse}
// @Failure      401   {object}  dto.Envelope
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageQuery(c))
	if err != nil {
		return err
	}
	return respondPage(c, "Categorías obtenidas correctamente", out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.Envelope{data=dto.CategoryResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Categoría obtenida correctamente", out)
}

// ListProducts godoc
// @Summary      Listar productos de una categoría
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id    path   int  true   "ID de la categoría"
// @Param        page  query  int  false  "Página (1-based)"  default(1)
// @Param        size  query  int  false  "Tamaño de página"  default(10)
// @Success      200   {object}  dto.Envelope{data=[]dto.ProductResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/categories/{id}/products [get]
func (h *CategoryHandler) ListProducts(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListProducts(c.UserContext(), id, pageQuery(c))
	if err != nil {
		return err
	}
	return respondPage(c, "Productos de la categoría obtenidos correctamente", out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.Envelope{data=dto.CategoryResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      403   {object}  dto.Envelope
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "Categoría creada correctamente", out)
}

// Replace godoc
// @Summary      Reemplazar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "Datos completos"
// @Success      200   {object}  dto.Envelope{data=dto.CategoryResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Replace(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.CategoryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Replace(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Categoría actualizada correctamente", out)
}

// Patch godoc
// @Summary      Actualizar parcialmente una categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID de la categoría"
// @Param        body  body  dto.PatchCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.CategoryResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/categories/{id} [patch]
func (h *CategoryHandler) Patch(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.PatchCategoryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Patch(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Categoría actualizada correctamente", out)
}

// Delete godoc
// @Summary      Eliminar categoría y sus productos
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.Envelope{data=dto.CategoryResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Categoría eliminada correctamente", out)
}

// AttachProduct godoc
// @Summary      Crear un producto dentro de la categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID de la categoría"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto (category se ignora)"
// @Success      201   {object}  dto.Envelope{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/categories/{id}/products [post]
func (h *CategoryHandler) AttachProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.AttachProduct(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "Producto agregado a la categoría correctamente", out)
}

// DetachProduct godoc
// @Summary      Quitar (eliminar) un producto de la categoría
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        categoryId  path  int  true  "ID de la categoría"
// @Param        productId   path  int  true  "ID del producto"
// @Success      200  {object}  dto.Envelope{data=dto.ProductResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/categories/{categoryId}/products/{productId} [delete]
func (h *CategoryHandler) DetachProduct(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		return err
	}
	productID, err := paramID(c, "productId")
	if err != nil {
		return err
	}
	out, err := h.uc.DetachProduct(c.UserContext(), categoryID, productID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Producto quitado de la categoría correctamente", out)
}
