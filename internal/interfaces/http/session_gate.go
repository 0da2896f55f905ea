package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// Claves dentro de la sesión de cookie.
const (
	sessionKeyUsername = "username"
	sessionKeyRole     = "role"
	sessionKeyFlash    = "flash"
)

// ForbiddenMessage respuesta fija de las rutas de administrador para un
// usuario autenticado sin el rol. Terminal para esa petición.
const ForbiddenMessage = "Esta página es solo para el administrador."

// SessionGate puerta de acceso de las páginas HTML: sesión de cookie con la
// identidad y el rol ya resuelto, más los mensajes flash de una sola lectura.
// El resto de la aplicación confía en la decisión de esta puerta y no vuelve
// a comprobar permisos.
type SessionGate struct {
	store *session.Store
}

// NewSessionGate construye la puerta con la expiración dada en minutos.
func NewSessionGate(expMinutes int) *SessionGate {
	store := session.New(session.Config{
		Expiration:     time.Duration(expMinutes) * time.Minute,
		KeyLookup:      "cookie:ventas_session",
		CookieHTTPOnly: true,
	})
	return &SessionGate{store: store}
}

// SignIn fija la identidad en la sesión tras una autenticación correcta.
func (g *SessionGate) SignIn(c *fiber.Ctx, user *entity.User) error {
	sess, err := g.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionKeyUsername, user.UserID)
	sess.Set(sessionKeyRole, string(user.Role))
	return sess.Save()
}

// SignOut destruye la sesión completa.
func (g *SessionGate) SignOut(c *fiber.Ctx) error {
	sess, err := g.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// CurrentUser devuelve la identidad de la sesión, si existe.
func (g *SessionGate) CurrentUser(c *fiber.Ctx) (username string, role entity.Role, ok bool) {
	sess, err := g.store.Get(c)
	if err != nil {
		return "", "", false
	}
	u, _ := sess.Get(sessionKeyUsername).(string)
	if u == "" {
		return "", "", false
	}
	r, _ := sess.Get(sessionKeyRole).(string)
	return u, entity.ParseRole(r), true
}

// Flash guarda un mensaje de una sola lectura en la sesión.
func (g *SessionGate) Flash(c *fiber.Ctx, message string) {
	sess, err := g.store.Get(c)
	if err != nil {
		return
	}
	sess.Set(sessionKeyFlash, message)
	_ = sess.Save()
}

// PopFlash devuelve y borra el mensaje flash pendiente, si lo hay.
func (g *SessionGate) PopFlash(c *fiber.Ctx) string {
	sess, err := g.store.Get(c)
	if err != nil {
		return ""
	}
	msg, _ := sess.Get(sessionKeyFlash).(string)
	if msg != "" {
		sess.Delete(sessionKeyFlash)
		_ = sess.Save()
	}
	return msg
}

// RequireLogin redirige al formulario de acceso si no hay sesión iniciada.
func (g *SessionGate) RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, _, ok := g.CurrentUser(c); !ok {
			return c.Redirect("/", fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireAdmin responde 403 con el mensaje fijo si el rol no es admin.
// Debe encadenarse después de RequireLogin.
func (g *SessionGate) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, role, ok := g.CurrentUser(c)
		if !ok {
			return c.Redirect("/", fiber.StatusFound)
		}
		if role != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).SendString(ForbiddenMessage)
		}
		return c.Next()
	}
}
