// Package inventory contiene la lógica pura de agregación del tablero:
// función (productos, movimientos) → métricas, sin estado ni dependencias.
package inventory

import (
	"strings"

	"github.com/follacamiones24/gestora-uni/internal/domain/entity"
)

// Nombres fijos de los dos buckets del gráfico de torta. El orden es fijo
// para que la asignación de colores sea estable entre renders.
const (
	FlowBucketReceived = "Recibidos"
	FlowBucketShipped  = "Enviados"
)

// StockPoint es un punto de la serie de stock por producto (gráfico de barras).
type StockPoint struct {
	Name  string
	Stock int
}

// FlowBucket es un bucket del gráfico de torta Recibidos/Enviados.
type FlowBucket struct {
	Name  string
	Value int
}

// Summary reúne las métricas derivadas de los dos snapshots.
type Summary struct {
	TotalProducts  int
	TotalStock     int
	TotalReceived  int
	TotalShipped   int
	LatestMovement *entity.Movement // nil cuando el historial está vacío
	StockSeries    []StockPoint     // orden del snapshot de productos
	FlowSplit      [2]FlowBucket    // siempre [Recibidos, Enviados]
}

// Summarize calcula las métricas del tablero a partir de los dos snapshots.
//
// El snapshot de movimientos debe venir ordenado por fecha descendente (el
// loader es responsable de ese orden); aquí no se reordena, de modo que los
// empates de fecha conservan el orden de llegada. Snapshots vacíos producen
// métricas en cero y serie vacía, nunca error. La función es pura: invocarla
// dos veces con los mismos snapshots produce el mismo resultado.
func Summarize(products []entity.Product, movements []entity.Movement) Summary {
	s := Summary{
		TotalProducts: len(products),
		StockSeries:   make([]StockPoint, 0, len(products)),
	}

	for _, p := range products {
		s.TotalStock += p.Stock
		s.StockSeries = append(s.StockSeries, StockPoint{Name: p.Name, Stock: p.Stock})
	}

	// Cada cantidad cuenta exactamente una vez en recibidos o enviados,
	// según el tipo del movimiento.
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypeIngreso:
			s.TotalReceived += m.Quantity
		case entity.MovementTypeSalida:
			s.TotalShipped += m.Quantity
		}
	}

	if len(movements) > 0 {
		latest := movements[0]
		s.LatestMovement = &latest
	}

	s.FlowSplit = [2]FlowBucket{
		{Name: FlowBucketReceived, Value: s.TotalReceived},
		{Name: FlowBucketShipped, Value: s.TotalShipped},
	}
	return s
}

// FilterByName filtra un snapshot de productos por coincidencia de substring
// en el nombre, sin distinguir mayúsculas. Query vacío devuelve el snapshot
// completo sin filtrar. Un producto sin nombre nunca coincide.
func FilterByName(products []entity.Product, query string) []entity.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}
