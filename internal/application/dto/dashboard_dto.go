package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del tablero más las dos series listas para graficar.
type DashboardSummaryDTO struct {
	TotalProducts int `json:"total_products"` // productos en el catálogo
	TotalStock    int `json:"total_stock"`    // suma de stock del catálogo
	TotalReceived int `json:"total_received"` // suma de cantidades de tipo Ingreso
	TotalShipped  int `json:"total_shipped"`  // suma de cantidades de tipo Salida

	// Último movimiento del historial (null si no hay movimientos).
	LatestMovement *MovementResponse `json:"latest_movement,omitempty"`

	// Serie (nombre, stock) por producto, en el orden del snapshot (barras).
	StockSeries []StockPointDTO `json:"stock_series"`

	// Exactamente dos buckets, siempre [Recibidos, Enviados] en ese orden
	// para que los colores del gráfico sean estables (torta).
	FlowSplit []FlowBucketDTO `json:"flow_split"`
}

// StockPointDTO un punto de la serie de stock por producto.
type StockPointDTO struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// FlowBucketDTO un bucket del gráfico Recibidos/Enviados.
type FlowBucketDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
