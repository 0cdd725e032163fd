package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/follacamiones24/gestora-uni/internal/application/analytics"
	appinventory "github.com/follacamiones24/gestora-uni/internal/application/inventory"
	"github.com/follacamiones24/gestora-uni/internal/domain/entity"
	"github.com/follacamiones24/gestora-uni/pkg/logger"
)

type stubProductRepo struct {
	items []entity.Product
	err   error
}

func (s *stubProductRepo) ListAll(ctx context.Context) ([]entity.Product, error) {
	return s.items, s.err
}
func (s *stubProductRepo) Create(ctx context.Context, p *entity.Product) error { return nil }
func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) Update(ctx context.Context, p *entity.Product) error { return nil }
func (s *stubProductRepo) Delete(ctx context.Context, id string) error         { return nil }

type stubMovementRepo struct {
	items []entity.Movement
	err   error
}

func (s *stubMovementRepo) ListAll(ctx context.Context) ([]entity.Movement, error) {
	return s.items, s.err
}
func (s *stubMovementRepo) Create(ctx context.Context, m *entity.Movement) error { return nil }

func TestDashboard_GetSummary(t *testing.T) {
	products := &stubProductRepo{items: []entity.Product{
		{ID: "1", Name: "Widget", Stock: 10},
		{ID: "2", Name: "Gadget", Stock: 3},
	}}
	movements := &stubMovementRepo{items: []entity.Movement{
		{ID: "m1", Type: entity.MovementTypeIngreso, ProductID: "1", Quantity: 15, Date: time.Now()},
		{ID: "m2", Type: entity.MovementTypeSalida, ProductID: "2", Quantity: 5, Date: time.Now().Add(-time.Hour)},
	}}
	loader := appinventory.NewSnapshotLoader(products, movements, logger.Nop())
	uc := analytics.NewDashboardUseCase(loader)

	out, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalProducts)
	assert.Equal(t, 13, out.TotalStock)
	assert.Equal(t, 15, out.TotalReceived)
	assert.Equal(t, 5, out.TotalShipped)

	require.Len(t, out.StockSeries, 2)
	assert.Equal(t, "Widget", out.StockSeries[0].Name)
	assert.Equal(t, 10, out.StockSeries[0].Stock)

	require.Len(t, out.FlowSplit, 2)
	assert.Equal(t, "Recibidos", out.FlowSplit[0].Name)
	assert.Equal(t, 15, out.FlowSplit[0].Value)
	assert.Equal(t, "Enviados", out.FlowSplit[1].Name)
	assert.Equal(t, 5, out.FlowSplit[1].Value)

	require.NotNil(t, out.LatestMovement)
	assert.Equal(t, "m1", out.LatestMovement.ID, "el último movimiento es el primero del snapshot")
}

// El tablero nunca falla por storage caído: renderiza con los snapshots
// retenidos (vacíos en la primera carga) en vez de propagar el error.
func TestDashboard_StorageCaido_RenderizaConRetenidos(t *testing.T) {
	products := &stubProductRepo{items: []entity.Product{{ID: "1", Name: "Widget", Stock: 10}}}
	movements := &stubMovementRepo{}
	loader := appinventory.NewSnapshotLoader(products, movements, logger.Nop())
	uc := analytics.NewDashboardUseCase(loader)

	_, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	// A partir de aquí ambas lecturas fallan.
	products.err = errors.New("storage caído")
	movements.err = errors.New("storage caído")

	out, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalProducts, "se resumen los snapshots retenidos")
	assert.Equal(t, 10, out.TotalStock)
}

func TestDashboard_SinDatos(t *testing.T) {
	loader := appinventory.NewSnapshotLoader(&stubProductRepo{}, &stubMovementRepo{}, logger.Nop())
	uc := analytics.NewDashboardUseCase(loader)

	out, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Zero(t, out.TotalProducts)
	assert.Zero(t, out.TotalStock)
	assert.Empty(t, out.StockSeries)
	assert.Nil(t, out.LatestMovement)
	require.Len(t, out.FlowSplit, 2, "el split siempre trae ambas categorías, aun en cero")
}
