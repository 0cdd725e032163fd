// Package analytics contiene el caso de uso del tablero de inventario.
package analytics

import (
	"context"

	"github.com/follacamiones24/gestora-uni/internal/application/dto"
	appinventory "github.com/follacamiones24/gestora-uni/internal/application/inventory"
	"github.com/follacamiones24/gestora-uni/internal/domain/inventory"
)

// DashboardUseCase produce el resumen del tablero: KPIs, serie de stock por
// producto y split Recibidos/Enviados.
//
// Fuente de datos: SnapshotLoader. Una carga fallida no es fatal aquí: el
// resumen se calcula sobre los snapshots retenidos (o vacíos en la primera
// carga) y el error queda solo en el log.
type DashboardUseCase struct {
	snapshots *appinventory.SnapshotLoader
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(snapshots *appinventory.SnapshotLoader) *DashboardUseCase {
	return &DashboardUseCase{snapshots: snapshots}
}

// GetSummary recarga ambos snapshots (join de dos lecturas paralelas) y
// deriva las métricas con la función pura de agregación.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	snaps, _ := uc.snapshots.Load(ctx) // error recuperable: renderiza con lo retenido

	summary := inventory.Summarize(snaps.Products, snaps.Movements)

	out := &dto.DashboardSummaryDTO{
		TotalProducts: summary.TotalProducts,
		TotalStock:    summary.TotalStock,
		TotalReceived: summary.TotalReceived,
		TotalShipped:  summary.TotalShipped,
		StockSeries:   make([]dto.StockPointDTO, 0, len(summary.StockSeries)),
		FlowSplit: []dto.FlowBucketDTO{
			{Name: summary.FlowSplit[0].Name, Value: summary.FlowSplit[0].Value},
			{Name: summary.FlowSplit[1].Name, Value: summary.FlowSplit[1].Value},
		},
	}
	for _, p := range summary.StockSeries {
		out.StockSeries = append(out.StockSeries, dto.StockPointDTO{Name: p.Name, Stock: p.Stock})
	}
	if m := summary.LatestMovement; m != nil {
		out.LatestMovement = &dto.MovementResponse{
			ID:          m.ID,
			Type:        m.Type,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			Quantity:    m.Quantity,
			Date:        m.Date,
			Notes:       m.Notes,
		}
	}
	return out, nil
}
