package reporting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/follacamiones24/gestora-uni/internal/application/inventory"
	"github.com/follacamiones24/gestora-uni/internal/application/reporting"
	"github.com/follacamiones24/gestora-uni/internal/domain"
	"github.com/follacamiones24/gestora-uni/internal/domain/entity"
	"github.com/follacamiones24/gestora-uni/internal/domain/inventory"
	"github.com/follacamiones24/gestora-uni/pkg/logger"
)

func strPtr(s string) *string { return &s }

func TestBuild_EstructuraFija(t *testing.T) {
	price := decimal.NewFromFloat(9.99)
	products := []entity.Product{
		{ID: "p1", Name: "Widget", Category: strPtr("Herramientas"), Stock: 10, Price: &price, Description: strPtr("llave ajustable")},
		{ID: "p2", Name: "Gadget", Stock: 3},
	}
	date := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)
	movements := []entity.Movement{
		{ID: "m1", Type: entity.MovementTypeIngreso, ProductID: "p1", Quantity: 15, Date: date},
	}
	summary := inventory.Summarize(products, movements)

	r := reporting.Build(products, movements, summary)

	assert.Equal(t, "Reporte Completo de Inventario", r.Title)
	assert.Equal(t, "Resumen General", r.SummaryTitle)
	assert.Equal(t, []string{
		"Total Productos: 2",
		"Stock Total: 13",
		"Recibidos: 15",
		"Enviados: 0",
	}, r.SummaryLines, "cuatro líneas de resumen en orden fijo")

	assert.Equal(t, "Lista de Productos", r.ProductsTitle)
	assert.Equal(t, []string{"#", "Nombre", "Categoría", "Stock", "Precio", "Descripción"}, r.ProductHeader)
	require.Len(t, r.ProductRows, 2)
	assert.Equal(t, []string{"1", "Widget", "Herramientas", "10", "$9.99", "llave ajustable"}, r.ProductRows[0])

	assert.Equal(t, "Historial de Movimientos", r.MovementsTitle)
	require.Len(t, r.MovementRows, 1)
	assert.Equal(t, []string{"1", "Ingreso", "p1", "30/08/2026 14:05:00", "15", ""}, r.MovementRows[0])
}

// Categoría y precio ausentes degradan a "N/A"; descripción y observaciones a
// cadena vacía.
func TestBuild_RespaldosPorCampoAusente(t *testing.T) {
	products := []entity.Product{{ID: "p1", Name: "Gadget", Stock: 3}}

	r := reporting.Build(products, nil, inventory.Summarize(products, nil))

	require.Len(t, r.ProductRows, 1)
	row := r.ProductRows[0]
	assert.Equal(t, "N/A", row[2], "categoría ausente")
	assert.Equal(t, "N/A", row[4], "precio ausente")
	assert.Equal(t, "", row[5], "descripción ausente")
}

// La numeración es la posición 1-based en el snapshot, no el id almacenado.
func TestBuild_NumeracionPorPosicion(t *testing.T) {
	products := []entity.Product{
		{ID: "zzz", Name: "A", Stock: 1},
		{ID: "aaa", Name: "B", Stock: 1},
		{ID: "mmm", Name: "C", Stock: 1},
	}

	r := reporting.Build(products, nil, inventory.Summarize(products, nil))

	require.Len(t, r.ProductRows, 3)
	for i, row := range r.ProductRows {
		assert.Equal(t, []string{"1", "2", "3"}[i], row[0])
	}
}

// Una referencia colgada (producto borrado) imprime el id crudo, no falla.
func TestBuild_ReferenciaColgadaImprimeIDCrudo(t *testing.T) {
	movements := []entity.Movement{
		{ID: "m1", Type: entity.MovementTypeSalida, ProductID: "huérfano-42", Quantity: 2, Date: time.Now()},
	}

	r := reporting.Build(nil, movements, inventory.Summarize(nil, movements))

	require.Len(t, r.MovementRows, 1)
	assert.Equal(t, "huérfano-42", r.MovementRows[0][2])
}

// ──────────────────────────────────────────────────────────────────────────────
// ReportUseCase
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	items []entity.Product
	err   error
}

func (s stubProductRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	return s.items, s.err
}
func (s stubProductRepo) Create(ctx context.Context, p *entity.Product) error { return nil }
func (s stubProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return nil, nil
}
func (s stubProductRepo) Update(ctx context.Context, p *entity.Product) error { return nil }
func (s stubProductRepo) Delete(ctx context.Context, id string) error         { return nil }

type stubMovementRepo struct {
	items []entity.Movement
	err   error
}

func (s stubMovementRepo) ListAll(ctx context.Context) ([]entity.Movement, error) {
	return s.items, s.err
}
func (s stubMovementRepo) Create(ctx context.Context, m *entity.Movement) error { return nil }

type spyRenderer struct {
	calls int
	last  *reporting.InventoryReport
	out   []byte
	err   error
}

func (s *spyRenderer) RenderInventoryReport(ctx context.Context, r *reporting.InventoryReport) ([]byte, error) {
	s.calls++
	s.last = r
	return s.out, s.err
}

func TestReportUseCase_GenerateSerializaDocumento(t *testing.T) {
	loader := appinventory.NewSnapshotLoader(
		stubProductRepo{items: []entity.Product{{ID: "1", Name: "Widget", Stock: 10}}},
		stubMovementRepo{},
		logger.Nop(),
	)
	renderer := &spyRenderer{out: []byte("%PDF-")}
	uc := reporting.NewReportUseCase(loader, renderer)

	out, err := uc.Generate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-"), out)
	require.Equal(t, 1, renderer.calls)
	assert.Equal(t, "Total Productos: 1", renderer.last.SummaryLines[0])
}

// Con una carga fallida el render ni se invoca: el reporte exige snapshots
// frescos, a diferencia del tablero.
func TestReportUseCase_CargaFallida_NoRenderiza(t *testing.T) {
	loader := appinventory.NewSnapshotLoader(
		stubProductRepo{err: errors.New("storage caído")},
		stubMovementRepo{},
		logger.Nop(),
	)
	renderer := &spyRenderer{}
	uc := reporting.NewReportUseCase(loader, renderer)

	_, err := uc.Generate(context.Background())

	assert.ErrorIs(t, err, domain.ErrSnapshotUnavailable)
	assert.Zero(t, renderer.calls)
}

func TestReportUseCase_RenderFallido(t *testing.T) {
	loader := appinventory.NewSnapshotLoader(stubProductRepo{}, stubMovementRepo{}, logger.Nop())
	renderer := &spyRenderer{err: errors.New("serialización fallida")}
	uc := reporting.NewReportUseCase(loader, renderer)

	_, err := uc.Generate(context.Background())
	assert.Error(t, err)
}
