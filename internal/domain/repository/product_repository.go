package repository

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, page domain.PageRequest) (domain.Page[*entity.Product], error)
	ListByCategory(ctx context.Context, categoryID uint, page domain.PageRequest) (domain.Page[*entity.Product], error)
	Delete(ctx context.Context, id uint) error
}
