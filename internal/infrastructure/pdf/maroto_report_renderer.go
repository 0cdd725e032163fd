// Package pdf implementa el render del Reporte Completo de Inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Reporte Completo de Inventario                     │
//	│  RESUMEN GENERAL: 4 líneas etiqueta: valor                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LISTA DE PRODUCTOS: # | Nombre | Cat. | Stock | $ | Desc.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HISTORIAL: # | Tipo | Producto ID | Fecha | Cant. | Obs.   │
//	└─────────────────────────────────────────────────────────────┘
//
// La tabla del historial arranca inmediatamente después del final de la
// tabla de productos más un margen fijo; todo el documento se serializa en
// una sola pasada sobre el snapshot en memoria.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/follacamiones24/gestora-uni/internal/application/reporting"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Anchos de columna (grid de 12) para las dos tablas del reporte.
var (
	productColWidths  = []int{1, 3, 2, 1, 2, 3}
	movementColWidths = []int{1, 2, 3, 2, 1, 3}
)

// MarotoReportRenderer implementa reporting.PDFRenderer usando Maroto v2.
type MarotoReportRenderer struct{}

// NewMarotoReportRenderer construye el renderer.
func NewMarotoReportRenderer() *MarotoReportRenderer { return &MarotoReportRenderer{} }

// RenderInventoryReport serializa el documento ya armado y devuelve sus bytes.
// El contenido llega formateado desde reporting.Build; aquí solo se dibuja.
func (g *MarotoReportRenderer) RenderInventoryReport(_ context.Context, report *reporting.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	// Título
	m.AddRows(row.New(12).Add(col.New(12).Add(
		text.New(report.Title, props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
		}),
	)))

	// Resumen general: cuatro líneas "etiqueta: valor" en orden fijo
	m.AddRows(sectionTitleRow(report.SummaryTitle))
	for _, lineText := range report.SummaryLines {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New(lineText, props.Text{Size: 10, Top: 1, Left: 2}),
		)))
	}

	// Lista de productos
	m.AddRows(line.NewRow(3, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow(report.ProductsTitle))
	m.AddRows(tableHeaderRow(report.ProductHeader, productColWidths))
	for _, cells := range report.ProductRows {
		m.AddRows(tableDataRow(cells, productColWidths))
	}

	// Historial, inmediatamente después de la tabla anterior más margen fijo
	m.AddRows(line.NewRow(3, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow(report.MovementsTitle))
	m.AddRows(tableHeaderRow(report.MovementHeader, movementColWidths))
	for _, cells := range report.MovementRows {
		m.AddRows(tableDataRow(cells, movementColWidths))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
		}),
	))
}

func tableHeaderRow(header []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(header))
	for i, label := range header {
		cols = append(cols, col.New(widths[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Left,
			Color: colorPrimary, Top: 1.5, Left: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

func tableDataRow(cells []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, cell := range cells {
		cols = append(cols, col.New(widths[i]).Add(text.New(cell, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray,
		})))
	}
	return row.New(6).Add(cols...)
}
