package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento del historial.
type RegisterMovementRequest struct {
	Type      string     `json:"type" validate:"required,oneof=Ingreso Salida"`
	ProductID string     `json:"product_id" validate:"required"`
	Quantity  int        `json:"quantity" validate:"required,gt=0"`
	Date      *time.Time `json:"date"` // opcional; por defecto ahora
	Notes     *string    `json:"notes"`
}

// MovementResponse salida de un movimiento del historial.
// ProductName viene del LEFT JOIN con productos; null si la referencia quedó
// colgando (producto borrado después del movimiento).
type MovementResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	ProductID   string    `json:"product_id"`
	ProductName *string   `json:"product_name,omitempty"`
	Quantity    int       `json:"quantity"`
	Date        time.Time `json:"date"`
	Notes       *string   `json:"notes,omitempty"`
}

// MovementListResponse historial completo ordenado por fecha descendente.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
