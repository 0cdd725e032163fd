package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIngreso = "Ingreso" // entrada de stock
	MovementTypeSalida  = "Salida"  // salida de stock
)

// Movement representa un movimiento del historial (tabla historial).
// Los movimientos son inmutables: se insertan y nunca se modifican ni borran.
// La fecha es la única clave de ordenamiento; el loader entrega el historial
// ordenado por fecha descendente.
type Movement struct {
	ID        string
	Type      string // Ingreso | Salida
	ProductID string // puede quedar colgando si el producto fue borrado
	Quantity  int    // siempre positivo
	Date      time.Time
	Notes     *string // observaciones, opcional

	// ProductName es el nombre desnormalizado del producto (LEFT JOIN productos).
	// Solo para presentación: nil cuando la referencia quedó colgando.
	ProductName *string
}
