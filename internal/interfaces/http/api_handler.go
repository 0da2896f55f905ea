package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
)

// APIHandler superficie JSON para integraciones: login con JWT y reporte.
type APIHandler struct {
	authSvc   authService
	reportSvc reportService
}

// NewAPIHandler construye el handler de la superficie JSON.
func NewAPIHandler(authSvc authService, reportSvc reportService) *APIHandler {
	return &APIHandler{authSvc: authSvc, reportSvc: reportSvc}
}

// Login verifica credenciales y emite un token.
// POST /api/auth/login
func (h *APIHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}

	out, err := h.authSvc.APILogin(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNoConnection) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_NOT_CONFIGURED", Message: "la conexión a la base de datos no está configurada"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Report genera el reporte de ventas con los filtros de la query string.
// GET /api/report?from_date=&to_date=&invoice_type=
func (h *APIHandler) Report(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}

	out, err := h.reportSvc.Generate(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrNoConnection) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_NOT_CONFIGURED", Message: "la conexión a la base de datos no está configurada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
