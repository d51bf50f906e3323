package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"gorm.io/gorm"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre GORM.
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo producto. La categoría ya viene validada por el caso de uso.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("%w: la categoría %d no existe", domain.ErrInvalidInput, product.CategoryID)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update guarda todos los campos editables de un producto existente.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	res := r.db.WithContext(ctx).Model(product).
		Select("name", "description", "price", "stock", "category_id", "updated_at").
		Updates(product)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("%w: la categoría %d no existe", domain.ErrInvalidInput, product.CategoryID)
		}
		return fmt.Errorf("update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los productos por orden de ID.
func (r *ProductRepo) List(ctx context.Context, page domain.PageRequest) (domain.Page[*entity.Product], error) {
	return r.list(ctx, page, func(q *gorm.DB) *gorm.DB { return q })
}

// ListByCategory lista los productos de una categoría. Una categoría inexistente da una página vacía.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID uint, page domain.PageRequest) (domain.Page[*entity.Product], error) {
	return r.list(ctx, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("category_id = ?", categoryID)
	})
}

func (r *ProductRepo) list(ctx context.Context, page domain.PageRequest, filter func(*gorm.DB) *gorm.DB) (domain.Page[*entity.Product], error) {
	out := domain.Page[*entity.Product]{Number: page.Number, Size: page.Size}
	if err := filter(r.db.WithContext(ctx).Model(&entity.Product{})).Count(&out.TotalElements).Error; err != nil {
		return out, fmt.Errorf("count products: %w", err)
	}
	var list []*entity.Product
	q := filter(r.db.WithContext(ctx).Order("id"))
	if err := paginate(q, page.Offset(), page.Size).Find(&list).Error; err != nil {
		return out, fmt.Errorf("list products: %w", err)
	}
	out.Items = list
	return out, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
