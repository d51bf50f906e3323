package repository

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID devuelve (nil, nil) cuando la categoría no existe.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, page domain.PageRequest) (domain.Page[*entity.Category], error)
	// Delete borra la categoría y todos sus productos en una sola transacción.
	Delete(ctx context.Context, id uint) error
}
