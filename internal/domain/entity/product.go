package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (tabla productos).
// Stock es el valor autoritativo mantenido por el catálogo; no se recalcula
// desde el historial de movimientos.
type Product struct {
	ID          string
	Name        string
	Category    *string          // opcional; en reportes se muestra "N/A" si falta
	Stock       int              // nunca negativo
	Price       *decimal.Decimal // opcional; NUMERIC en la DB
	Description *string          // opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
