package http

import (
	"context"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los servicios que consumen los handlers
// ──────────────────────────────────────────────────────────────────────────────

type fakeAuthService struct {
	user *entity.User
	resp *dto.LoginResponse
	err  error
}

func (f *fakeAuthService) Login(context.Context, dto.LoginRequest) (*entity.User, error) {
	return f.user, f.err
}

func (f *fakeAuthService) APILogin(context.Context, dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.resp, f.err
}

type fakeReportService struct {
	out     *dto.SalesReportDTO
	err     error
	lastReq dto.ReportRequest
}

func (f *fakeReportService) Generate(_ context.Context, req dto.ReportRequest) (*dto.SalesReportDTO, error) {
	f.lastReq = req
	return f.out, f.err
}

type fakeSettingsService struct {
	current entity.ConnectionSettings
	saved   []dto.SettingsForm
}

func (f *fakeSettingsService) Current() (entity.ConnectionSettings, error) { return f.current, nil }

func (f *fakeSettingsService) Save(form dto.SettingsForm) error {
	f.saved = append(f.saved, form)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Ayudantes
// ──────────────────────────────────────────────────────────────────────────────

// newHTMLApp monta las rutas HTML que no renderizan plantillas (redirecciones
// y puertas de sesión), con los servicios falsos dados.
func newHTMLApp(authSvc authService, reportSvc reportService, settingsSvc settingsService) (*fiber.App, *SessionGate) {
	gate := NewSessionGate(30)
	app := fiber.New()

	authHandler := NewAuthHandler(authSvc, gate)
	app.Post("/", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	settingsHandler := NewSettingsHandler(settingsSvc, gate)
	app.Post("/settings", gate.RequireLogin(), gate.RequireAdmin(), settingsHandler.Save)

	reportHandler := NewReportHandler(reportSvc)
	app.Get("/report", gate.RequireLogin(), gate.RequireAdmin(), reportHandler.Page)

	return app, gate
}

func loginForm(username, password string) *nethttp.Request {
	req := httptest.NewRequest(nethttp.MethodPost, "/",
		strings.NewReader("username="+username+"&password="+password))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// withSession copia las cookies de la respuesta de login a la petición dada.
func withSession(req *nethttp.Request, loginResp *nethttp.Response) *nethttp.Request {
	for _, c := range loginResp.Cookies() {
		req.AddCookie(c)
	}
	return req
}

func doLogin(t *testing.T, app *fiber.App) *nethttp.Response {
	t.Helper()
	resp, err := app.Test(loginForm("gerente", "clave"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/report", resp.Header.Get("Location"))
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Acceso HTML
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesIncorrectas_VuelveAlFormulario(t *testing.T) {
	app, _ := newHTMLApp(&fakeAuthService{err: domain.ErrUserNotFound}, &fakeReportService{}, &fakeSettingsService{})

	resp, err := app.Test(loginForm("gerente", "mala"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestLogin_SinConexion_RedirigeAConfiguracion(t *testing.T) {
	app, _ := newHTMLApp(&fakeAuthService{err: domain.ErrNoConnection}, &fakeReportService{}, &fakeSettingsService{})

	resp, err := app.Test(loginForm("gerente", "clave"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/settings", resp.Header.Get("Location"))
}

func TestLogin_Correcto_AbreSesionYRedirigeAlReporte(t *testing.T) {
	app, _ := newHTMLApp(
		&fakeAuthService{user: &entity.User{UserID: "gerente", Role: entity.RoleAdmin}},
		&fakeReportService{}, &fakeSettingsService{})

	resp := doLogin(t, app)
	assert.NotEmpty(t, resp.Cookies(), "el login debe dejar la cookie de sesión")
}

func TestLogout_DestruyeLaSesion(t *testing.T) {
	app, _ := newHTMLApp(
		&fakeAuthService{user: &entity.User{UserID: "gerente", Role: entity.RoleAdmin}},
		&fakeReportService{err: domain.ErrNoConnection}, &fakeSettingsService{})

	login := doLogin(t, app)

	resp, err := app.Test(withSession(httptest.NewRequest(nethttp.MethodGet, "/logout", nil), login))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// Con la sesión destruida, la ruta protegida vuelve al formulario.
	resp, err = app.Test(withSession(httptest.NewRequest(nethttp.MethodGet, "/report", nil), login))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Puerta de sesión y roles
// ──────────────────────────────────────────────────────────────────────────────

func TestRutasProtegidas_SinSesion_RedirigenAlFormulario(t *testing.T) {
	app, _ := newHTMLApp(&fakeAuthService{}, &fakeReportService{}, &fakeSettingsService{})

	for _, ruta := range []struct{ method, path string }{
		{nethttp.MethodGet, "/report"},
		{nethttp.MethodPost, "/settings"},
	} {
		resp, err := app.Test(httptest.NewRequest(ruta.method, ruta.path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, "%s %s", ruta.method, ruta.path)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	}
}

func TestRutasDeAdmin_UsuarioStandard_403ConMensajeFijo(t *testing.T) {
	app, _ := newHTMLApp(
		&fakeAuthService{user: &entity.User{UserID: "cajero", Role: entity.RoleStandard}},
		&fakeReportService{}, &fakeSettingsService{})

	login, err := app.Test(loginForm("cajero", "clave"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, login.StatusCode)

	resp, err := app.Test(withSession(httptest.NewRequest(nethttp.MethodGet, "/report", nil), login))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, ForbiddenMessage, string(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte y configuración HTML
// ──────────────────────────────────────────────────────────────────────────────

func TestReportPage_SinConexion_RedirigeAConfiguracion(t *testing.T) {
	reportSvc := &fakeReportService{err: domain.ErrNoConnection}
	app, _ := newHTMLApp(
		&fakeAuthService{user: &entity.User{UserID: "gerente", Role: entity.RoleAdmin}},
		reportSvc, &fakeSettingsService{})

	login := doLogin(t, app)

	req := withSession(httptest.NewRequest(nethttp.MethodGet,
		"/report?from_date=2024-01-01&to_date=2024-01-31&invoice_type=cash", nil), login)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/settings", resp.Header.Get("Location"))

	// La query string llegó parseada al servicio antes de fallar la conexión.
	assert.Equal(t, dto.ReportRequest{
		FromDate:    "2024-01-01",
		ToDate:      "2024-01-31",
		InvoiceType: "cash",
	}, reportSvc.lastReq)
}

func TestReportPage_FechasInvalidas_400(t *testing.T) {
	app, _ := newHTMLApp(
		&fakeAuthService{user: &entity.User{UserID: "gerente", Role: entity.RoleAdmin}},
		&fakeReportService{err: domain.ErrInvalidInput}, &fakeSettingsService{})

	login := doLogin(t, app)

	req := withSession(httptest.NewRequest(nethttp.MethodGet,
		"/report?from_date=x&to_date=y", nil), login)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSettingsSave_GuardaYVuelveAlAcceso(t *testing.T) {
	settingsSvc := &fakeSettingsService{}
	app, _ := newHTMLApp(
		&fakeAuthService{user: &entity.User{UserID: "gerente", Role: entity.RoleAdmin}},
		&fakeReportService{}, settingsSvc)

	login := doLogin(t, app)

	req := withSession(httptest.NewRequest(nethttp.MethodPost, "/settings",
		strings.NewReader("server=db.interna.local&database=ventas")), login)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	require.Len(t, settingsSvc.saved, 1)
	assert.Equal(t, dto.SettingsForm{Server: "db.interna.local", Database: "ventas"}, settingsSvc.saved[0])
}
