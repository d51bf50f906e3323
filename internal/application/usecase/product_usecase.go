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
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso CRUD para productos.
// La categoría de un producto siempre se resuelve contra la base antes de guardar.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories}
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.PageResult[dto.ProductResponse], error) {
	page, err := uc.products.List(ctx, toPageRequest(q))
	if err != nil {
		return nil, err
	}
	return toPageResult(page, toProductResponse), nil
}

// ListByCategory filtra por categoría. No comprueba que la categoría exista: sin coincidencias la página va vacía.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, categoryID uint, q dto.PageQuery) (*dto.PageResult[dto.ProductResponse], error) {
	page, err := uc.products.ListByCategory(ctx, categoryID, toPageRequest(q))
	if err != nil {
		return nil, err
	}
	return toPageResult(page, toProductResponse), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Create valida el producto, resuelve su categoría y lo persiste.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in.Name, in.Price, in.Stock); err != nil {
		return nil, err
	}
	categoryID, err := uc.resolveCategory(ctx, in.Category)
	if err != nil {
		return nil, err
	}
	product := newProduct(in, categoryID)
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// Replace sobrescribe todos los campos de un producto existente (PUT).
func (uc *ProductUseCase) Replace(ctx context.Context, id uint, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(in.Name, in.Price, in.Stock); err != nil {
		return nil, err
	}
	categoryID, err := uc.resolveCategory(ctx, in.Category)
	if err != nil {
		return nil, err
	}
	product.Name = strings.TrimSpace(in.Name)
	product.Description = in.Description
	product.Price = *in.Price
	product.Stock = in.Stock
	product.CategoryID = categoryID
	return uc.save(ctx, product)
}

// Patch aplica solo los campos presentes. Un precio inválido o stock negativo se rechazan
// y el producto guardado no cambia.
func (uc *ProductUseCase) Patch(ctx context.Context, id uint, in dto.PatchProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return nil, err
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
		}
		product.Stock = *in.Stock
	}
	if in.Category != nil && in.Category.ID != 0 {
		categoryID, err := uc.resolveCategory(ctx, in.Category)
		if err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
	}
	return uc.save(ctx, product)
}

// Delete elimina un producto y devuelve su última representación.
func (uc *ProductUseCase) Delete(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	product, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.products.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, productNotFound(id)
		}
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

func (uc *ProductUseCase) load(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, productNotFound(id)
	}
	return product, nil
}

func (uc *ProductUseCase) save(ctx context.Context, product *entity.Product) (*dto.ProductResponse, error) {
	if err := uc.products.Update(ctx, product); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, productNotFound(product.ID)
		}
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// resolveCategory exige una referencia con ID y que la categoría exista. Ambos fallos son ErrInvalidInput.
func (uc *ProductUseCase) resolveCategory(ctx context.Context, ref *dto.CategoryRef) (uint, error) {
	if ref == nil || ref.ID == 0 {
		return 0, fmt.Errorf("%w: la categoría es obligatoria", domain.ErrInvalidInput)
	}
	ok, err := uc.categories.Exists(ctx, ref.ID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: la categoría %d no existe", domain.ErrInvalidInput, ref.ID)
	}
	return ref.ID, nil
}

// validateProduct reglas comunes a alta y reemplazo: nombre, precio válido y stock >= 0.
func validateProduct(name string, price *decimal.Decimal, stock int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if price == nil {
		return fmt.Errorf("%w: el precio es obligatorio", domain.ErrInvalidInput)
	}
	if err := validatePrice(*price); err != nil {
		return err
	}
	if stock < 0 {
		return fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// maxPrice mayor valor que admite la columna decimal(10,2).
var maxPrice = decimal.New(9999999999, -2)

// validatePrice exige precio > 0, como máximo 2 decimales y dentro del rango de la columna,
// para que el valor guardado sea exactamente el recibido.
func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("%w: el precio debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if !price.Equal(price.Round(2)) {
		return fmt.Errorf("%w: el precio admite como máximo 2 decimales", domain.ErrInvalidInput)
	}
	if price.GreaterThan(maxPrice) {
		return fmt.Errorf("%w: el precio no puede superar %s", domain.ErrInvalidInput, maxPrice.StringFixed(2))
	}
	return nil
}

func newProduct(in dto.ProductRequest, categoryID uint) *entity.Product {
	return &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       *in.Price,
		Stock:       in.Stock,
		CategoryID:  categoryID,
	}
}

func productNotFound(id uint) error {
	return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
