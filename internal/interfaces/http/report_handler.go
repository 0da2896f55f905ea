package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
)

// ReportHandler página del reporte de ventas (solo administrador).
type ReportHandler struct {
	svc reportService
}

// NewReportHandler construye el handler del reporte.
func NewReportHandler(svc reportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Page genera y muestra el reporte con los filtros de la query string.
// GET /report?from_date=&to_date=&invoice_type=
//
// Sin conexión disponible -> redirección a /settings; cualquier fallo de
// consulta se propaga sin resultados parciales.
func (h *ReportHandler) Page(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	reportOut, err := h.svc.Generate(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrNoConnection) {
			return c.Redirect("/settings", fiber.StatusFound)
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.Render("report", fiber.Map{
		"Report": reportOut,
	})
}
