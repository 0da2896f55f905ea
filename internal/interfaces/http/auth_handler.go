package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
)

// AuthHandler páginas de acceso y salida de la superficie HTML.
type AuthHandler struct {
	svc  authService
	gate *SessionGate
}

// NewAuthHandler construye el handler de acceso.
func NewAuthHandler(svc authService, gate *SessionGate) *AuthHandler {
	return &AuthHandler{svc: svc, gate: gate}
}

// LoginPage muestra el formulario de acceso.
// GET /
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Flash": h.gate.PopFlash(c),
	})
}

// Login verifica credenciales y abre sesión.
// POST /
//
// Sin conexión configurada -> flash + redirección a /settings.
// Credenciales incorrectas -> flash + vuelta al formulario.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		h.gate.Flash(c, "Formulario inválido.")
		return c.Redirect("/", fiber.StatusFound)
	}

	user, err := h.svc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNoConnection) {
			h.gate.Flash(c, "Primero configure la conexión a la base de datos.")
			return c.Redirect("/settings", fiber.StatusFound)
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			h.gate.Flash(c, "Credenciales de acceso incorrectas.")
			return c.Redirect("/", fiber.StatusFound)
		}
		return err
	}

	if err := h.gate.SignIn(c, user); err != nil {
		return err
	}
	return c.Redirect("/report", fiber.StatusFound)
}

// Logout destruye la sesión y vuelve al formulario de acceso.
// GET /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.gate.SignOut(c); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusFound)
}
