package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Category    *string          `json:"category"`
	Stock       int              `json:"stock" validate:"min=0"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
}

// UpdateProductRequest entrada para actualizar un producto. El formulario de
// edición precarga el registro completo, así que todos los campos son
// opcionales y solo se aplican los presentes (update in place).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"category"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    *string          `json:"category,omitempty"`
	Stock       int              `json:"stock"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description *string          `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProductListResponse lista de productos (snapshot completo, posiblemente filtrado).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
