package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/follacamiones24/gestora-uni/internal/domain/entity"
	"github.com/follacamiones24/gestora-uni/internal/domain/inventory"
)

func strPtr(s string) *string { return &s }

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// Escenario de referencia: dos productos, un ingreso y una salida con T2 > T1.
func TestSummarize_EscenarioBase(t *testing.T) {
	t1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)

	products := []entity.Product{
		{ID: "1", Name: "Widget", Stock: 10},
		{ID: "2", Name: "Gadget", Stock: 0},
	}
	movements := []entity.Movement{
		{ID: "m2", Type: entity.MovementTypeIngreso, Quantity: 15, Date: t2},
		{ID: "m1", Type: entity.MovementTypeSalida, Quantity: 5, Date: t1},
	}

	s := inventory.Summarize(products, movements)

	assert.Equal(t, 2, s.TotalProducts)
	assert.Equal(t, 10, s.TotalStock)
	assert.Equal(t, 15, s.TotalReceived)
	assert.Equal(t, 5, s.TotalShipped)

	require.NotNil(t, s.LatestMovement, "con historial no vacío debe haber último movimiento")
	assert.Equal(t, entity.MovementTypeIngreso, s.LatestMovement.Type)

	assert.Equal(t, []inventory.StockPoint{
		{Name: "Widget", Stock: 10},
		{Name: "Gadget", Stock: 0},
	}, s.StockSeries, "la serie debe preservar el orden del snapshot")
}

// Snapshots vacíos producen métricas en cero, nunca error ni nil series.
func TestSummarize_SnapshotsVacios(t *testing.T) {
	s := inventory.Summarize(nil, nil)

	assert.Equal(t, 0, s.TotalProducts)
	assert.Equal(t, 0, s.TotalStock)
	assert.Equal(t, 0, s.TotalReceived)
	assert.Equal(t, 0, s.TotalShipped)
	assert.Nil(t, s.LatestMovement, "sin movimientos no hay último movimiento")
	assert.Empty(t, s.StockSeries)

	assert.Equal(t, inventory.FlowBucketReceived, s.FlowSplit[0].Name)
	assert.Equal(t, inventory.FlowBucketShipped, s.FlowSplit[1].Name)
	assert.Equal(t, 0, s.FlowSplit[0].Value)
	assert.Equal(t, 0, s.FlowSplit[1].Value)
}

// Conservación: recibidos + enviados == suma de cantidades de tipos válidos,
// sin importar el orden de los tipos en el snapshot.
func TestSummarize_NingunaCantidadSeDuplicaNiSePierde(t *testing.T) {
	now := time.Now()
	movements := []entity.Movement{
		{Type: entity.MovementTypeSalida, Quantity: 3, Date: now},
		{Type: entity.MovementTypeIngreso, Quantity: 7, Date: now},
		{Type: entity.MovementTypeIngreso, Quantity: 2, Date: now},
		{Type: entity.MovementTypeSalida, Quantity: 8, Date: now},
	}

	s := inventory.Summarize(nil, movements)

	total := 0
	for _, m := range movements {
		total += m.Quantity
	}
	assert.Equal(t, total, s.TotalReceived+s.TotalShipped)
	assert.Equal(t, 9, s.TotalReceived)
	assert.Equal(t, 11, s.TotalShipped)
}

// El último movimiento es el primer elemento del snapshot ya ordenado
// descendente; los empates de fecha conservan el orden de llegada.
func TestSummarize_UltimoMovimientoEsPrimeroDelSnapshot(t *testing.T) {
	ts := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	movements := []entity.Movement{
		{ID: "a", Type: entity.MovementTypeIngreso, Quantity: 1, Date: ts},
		{ID: "b", Type: entity.MovementTypeSalida, Quantity: 1, Date: ts},
	}

	s := inventory.Summarize(nil, movements)

	require.NotNil(t, s.LatestMovement)
	assert.Equal(t, "a", s.LatestMovement.ID, "empate de fechas: gana el orden de llegada")
}

// Idempotencia: dos invocaciones con los mismos snapshots devuelven lo mismo.
func TestSummarize_Idempotente(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Name: "Widget", Category: strPtr("Herramientas"), Stock: 4, Price: decPtr(19.90)},
	}
	movements := []entity.Movement{
		{ID: "m1", Type: entity.MovementTypeIngreso, Quantity: 4, Date: time.Now()},
	}

	first := inventory.Summarize(products, movements)
	second := inventory.Summarize(products, movements)

	assert.Equal(t, first, second)
}

func TestFilterByName_SubstringSinMayusculas(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Name: "Widget"},
		{ID: "2", Name: "Gadget"},
	}

	filtered := inventory.FilterByName(products, "wid")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Widget", filtered[0].Name)

	// Query vacío: snapshot completo, sin filtrar.
	assert.Equal(t, products, inventory.FilterByName(products, ""))
}

func TestFilterByName_NombreAusenteNoCoincide(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Name: ""},
		{ID: "2", Name: "Widget"},
	}

	filtered := inventory.FilterByName(products, "w")
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)
}
