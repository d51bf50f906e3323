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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre GORM.
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create persiste una nueva categoría; el ID lo asigna la base de datos.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if err := r.db.WithContext(ctx).Omit("Products").Create(category).Error; err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	var c entity.Category
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Exists indica si hay una categoría con ese ID.
func (r *CategoryRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Category{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("exists category: %w", err)
	}
	return n > 0, nil
}

// Update guarda todos los campos de una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	res := r.db.WithContext(ctx).Model(category).
		Select("name", "description", "updated_at").
		Updates(category)
	if res.Error != nil {
		return fmt.Errorf("update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista categorías por orden de ID.
func (r *CategoryRepo) List(ctx context.Context, page domain.PageRequest) (domain.Page[*entity.Category], error) {
	out := domain.Page[*entity.Category]{Number: page.Number, Size: page.Size}
	if err := r.db.WithContext(ctx).Model(&entity.Category{}).Count(&out.TotalElements).Error; err != nil {
		return out, fmt.Errorf("count categories: %w", err)
	}
	var list []*entity.Category
	if err := paginate(r.db.WithContext(ctx).Order("id"), page.Offset(), page.Size).Find(&list).Error; err != nil {
		return out, fmt.Errorf("list categories: %w", err)
	}
	out.Items = list
	return out, nil
}

// Delete borra primero los productos de la categoría y luego la categoría, en la misma transacción.
// No depende del ON DELETE CASCADE del FK (SQLite no lo aplica por defecto).
func (r *CategoryRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.Product{}).Error; err != nil {
			return fmt.Errorf("delete category products: %w", err)
		}
		res := tx.Delete(&entity.Category{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete category: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
