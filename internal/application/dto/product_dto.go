package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRef referencia a una categoría dentro del cuerpo de un producto: {"id": 1}.
// Solo se usa el ID; el resto de campos que envíe el cliente se ignora.
type CategoryRef struct {
	ID uint `json:"id"`
}

// ProductRequest entrada para crear o reemplazar un producto.
// En POST /categories/:id/products la categoría sale de la ruta y Category se ignora.
type ProductRequest struct {
	Name        string           `json:"name" validate:"required,max=255"`
	Description string           `json:"description" validate:"max=2000"`
	Price       *decimal.Decimal `json:"price"`
	Stock       int              `json:"stock"`
	Category    *CategoryRef     `json:"category"`
}

// PatchProductRequest actualización parcial de un producto.
type PatchProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    *CategoryRef     `json:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  uint            `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
