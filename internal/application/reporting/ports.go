package reporting

import "context"

// PDFRenderer serializa un reporte ya armado a bytes PDF (puerto de salida).
type PDFRenderer interface {
	RenderInventoryReport(ctx context.Context, report *InventoryReport) ([]byte, error)
}
