package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/follacamiones24/gestora-uni/internal/application/dto"
	"github.com/follacamiones24/gestora-uni/internal/application/reporting"
)

// ReportHandler maneja la exportación del reporte de inventario (protegido).
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Download godoc
// @Summary      Descargar el reporte completo de inventario (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
//
// Operación terminal de una sola pasada: si alguna de las dos cargas de esta
// invocación falla, el reporte no se genera (503, reintentar).
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SNAPSHOT_UNAVAILABLE", Message: "no se pudieron cargar los datos del reporte"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+reporting.Filename+`"`)
	return c.Send(out)
}
