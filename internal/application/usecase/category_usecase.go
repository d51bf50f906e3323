package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías y de sus productos anidados.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products}
}

// List lista categorías por orden de ID.
func (uc *CategoryUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.PageResult[dto.CategoryResponse], error) {
	page, err := uc.categories.List(ctx, toPageRequest(q))
	if err != nil {
		return nil, err
	}
	return toPageResult(page, toCategoryResponse), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// ListProducts lista los productos de una categoría; la categoría debe existir.
func (uc *CategoryUseCase) ListProducts(ctx context.Context, categoryID uint, q dto.PageQuery) (*dto.PageResult[dto.ProductResponse], error) {
	if err := uc.mustExist(ctx, categoryID); err != nil {
		return nil, err
	}
	page, err := uc.products.ListByCategory(ctx, categoryID, toPageRequest(q))
	if err != nil {
		return nil, err
	}
	return toPageResult(page, toProductResponse), nil
}

// Create crea una categoría; el nombre es obligatorio.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	c := &entity.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// Replace sobrescribe nombre y descripción de una categoría existente (PUT).
func (uc *CategoryUseCase) Replace(ctx context.Context, id uint, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = strings.TrimSpace(in.Name)
	c.Description = in.Description
	return uc.save(ctx, c)
}

// Patch aplica solo los campos presentes y no vacíos (PATCH).
func (uc *CategoryUseCase) Patch(ctx context.Context, id uint, in dto.PatchCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) != "" {
		c.Description = *in.Description
	}
	return uc.save(ctx, c)
}

// Delete borra la categoría junto con todos sus productos y devuelve la categoría borrada.
func (uc *CategoryUseCase) Delete(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, categoryNotFound(id)
		}
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// AttachProduct crea un producto nuevo dentro de la categoría de la ruta.
// La categoría del cuerpo, si viene, se ignora.
func (uc *CategoryUseCase) AttachProduct(ctx context.Context, categoryID uint, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := uc.mustExist(ctx, categoryID); err != nil {
		return nil, err
	}
	if err := validateProduct(in.Name, in.Price, in.Stock); err != nil {
		return nil, err
	}
	product := newProduct(in, categoryID)
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// DetachProduct quita un producto de su categoría. Un producto no existe sin categoría,
// así que quitarlo es borrarlo.
func (uc *CategoryUseCase) DetachProduct(ctx context.Context, categoryID, productID uint) (*dto.ProductResponse, error) {
	c, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if c == nil || p == nil {
		return nil, fmt.Errorf("categoría %d o producto %d: %w", categoryID, productID, domain.ErrNotFound)
	}
	if p.CategoryID != categoryID {
		return nil, fmt.Errorf("producto %d, categoría %d: %w", productID, categoryID, domain.ErrProductNotInCategory)
	}
	if err := uc.products.Delete(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, productNotFound(productID)
		}
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

func (uc *CategoryUseCase) load(ctx context.Context, id uint) (*entity.Category, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, categoryNotFound(id)
	}
	return c, nil
}

func (uc *CategoryUseCase) mustExist(ctx context.Context, id uint) error {
	ok, err := uc.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return categoryNotFound(id)
	}
	return nil
}

func (uc *CategoryUseCase) save(ctx context.Context, c *entity.Category) (*dto.CategoryResponse, error) {
	if err := uc.categories.Update(ctx, c); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, categoryNotFound(c.ID)
		}
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

func categoryNotFound(id uint) error {
	return fmt.Errorf("categoría %d: %w", id, domain.ErrNotFound)
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
