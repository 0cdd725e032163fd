// Package reporting arma el reporte completo de inventario: bloque de
// resumen, tabla de productos y tabla del historial, en ese orden fijo.
package reporting

import (
	"fmt"

	"github.com/follacamiones24/gestora-uni/internal/domain/entity"
	"github.com/follacamiones24/gestora-uni/internal/domain/inventory"
)

// Filename es el nombre fijo del archivo exportado.
const Filename = "reporte_inventario_completo.pdf"

// Textos fijos del documento.
const (
	reportTitle    = "Reporte Completo de Inventario"
	summaryTitle   = "Resumen General"
	productsTitle  = "Lista de Productos"
	movementsTitle = "Historial de Movimientos"

	missingLabel = "N/A" // respaldo para categoría y precio ausentes
	dateLayout   = "02/01/2006 15:04:05"
)

// InventoryReport es el modelo del documento, listo para serializar.
// Todo el contenido ya viene formateado como texto: la capa de render solo
// dibuja, no decide.
type InventoryReport struct {
	Title string

	SummaryTitle string
	SummaryLines []string // "<etiqueta>: <valor>", cuatro líneas en orden fijo

	ProductsTitle string
	ProductHeader []string
	ProductRows   [][]string

	MovementsTitle string
	MovementHeader []string
	MovementRows   [][]string
}

// Build arma el documento a partir de los dos snapshots y sus métricas.
//
// La numeración (#) de ambas tablas es la posición 1-based dentro de la
// colección cargada, no el id almacenado. Una referencia de producto colgada
// se imprime con el id crudo; el reporte nunca falla por eso.
func Build(products []entity.Product, movements []entity.Movement, summary inventory.Summary) *InventoryReport {
	r := &InventoryReport{
		Title:        reportTitle,
		SummaryTitle: summaryTitle,
		SummaryLines: []string{
			fmt.Sprintf("Total Productos: %d", summary.TotalProducts),
			fmt.Sprintf("Stock Total: %d", summary.TotalStock),
			fmt.Sprintf("Recibidos: %d", summary.TotalReceived),
			fmt.Sprintf("Enviados: %d", summary.TotalShipped),
		},
		ProductsTitle: productsTitle,
		ProductHeader: []string{"#", "Nombre", "Categoría", "Stock", "Precio", "Descripción"},
		ProductRows:   make([][]string, 0, len(products)),

		MovementsTitle: movementsTitle,
		MovementHeader: []string{"#", "Tipo", "Producto ID", "Fecha", "Cantidad", "Observaciones"},
		MovementRows:   make([][]string, 0, len(movements)),
	}

	for i, p := range products {
		r.ProductRows = append(r.ProductRows, []string{
			fmt.Sprintf("%d", i+1),
			p.Name,
			orFallback(p.Category, missingLabel),
			fmt.Sprintf("%d", p.Stock),
			formatPrice(&p),
			orFallback(p.Description, ""),
		})
	}

	for i, m := range movements {
		r.MovementRows = append(r.MovementRows, []string{
			fmt.Sprintf("%d", i+1),
			m.Type,
			m.ProductID,
			m.Date.Format(dateLayout),
			fmt.Sprintf("%d", m.Quantity),
			orFallback(m.Notes, ""),
		})
	}

	return r
}

func orFallback(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func formatPrice(p *entity.Product) string {
	if p.Price == nil {
		return missingLabel
	}
	return "$" + p.Price.String()
}
