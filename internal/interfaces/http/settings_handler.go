package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
)

// SettingsHandler página de configuración de la conexión (solo administrador).
type SettingsHandler struct {
	svc  settingsService
	gate *SessionGate
}

// NewSettingsHandler construye el handler de configuración.
func NewSettingsHandler(svc settingsService, gate *SessionGate) *SettingsHandler {
	return &SettingsHandler{svc: svc, gate: gate}
}

// Page muestra el formulario con los ajustes vigentes.
// GET /settings
func (h *SettingsHandler) Page(c *fiber.Ctx) error {
	current, err := h.svc.Current()
	if err != nil {
		// Documento de ajustes corrupto: error no recuperado de la petición.
		return err
	}
	return c.Render("settings", fiber.Map{
		"Settings": current,
		"Flash":    h.gate.PopFlash(c),
	})
}

// Save sobreescribe los ajustes y vuelve al formulario de acceso.
// POST /settings
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	var form dto.SettingsForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	if err := h.svc.Save(form); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusFound)
}
