package reporting

import (
	"context"
	"fmt"

	appinventory "github.com/follacamiones24/gestora-uni/internal/application/inventory"
	"github.com/follacamiones24/gestora-uni/internal/domain/inventory"
)

// ReportUseCase genera el PDF del reporte completo de inventario.
//
// A diferencia del tablero, aquí una carga fallida sí corta la operación: el
// reporte exige que ambos snapshots de esta invocación sean frescos.
type ReportUseCase struct {
	snapshots *appinventory.SnapshotLoader
	renderer  PDFRenderer
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(snapshots *appinventory.SnapshotLoader, renderer PDFRenderer) *ReportUseCase {
	return &ReportUseCase{snapshots: snapshots, renderer: renderer}
}

// Generate carga ambos snapshots, arma el documento y lo serializa en un solo
// paso (sin salida parcial ni streaming).
func (uc *ReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	snaps, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: cargar snapshots: %w", err)
	}

	summary := inventory.Summarize(snaps.Products, snaps.Movements)
	report := Build(snaps.Products, snaps.Movements, summary)

	out, err := uc.renderer.RenderInventoryReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("reporte: serializar PDF: %w", err)
	}
	return out, nil
}
