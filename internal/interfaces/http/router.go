package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/application/settings"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/postgres"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Gate       *SessionGate
	Provider   *postgres.Provider
	AuthUC     *auth.AuthUseCase
	ReportUC   *report.ReportUseCase
	SettingsUC *settings.SettingsUseCase
	JWTSecret  string
}

// Router registra las rutas HTML (sesión) y la superficie JSON (/api, JWT).
func Router(app *fiber.App, deps RouterDeps) {
	authSvc := &authFlow{provider: deps.Provider, uc: deps.AuthUC}
	reportSvc := &reportFlow{provider: deps.Provider, uc: deps.ReportUC}

	// ── Páginas HTML ──────────────────────────────────────────────────────────
	authHandler := NewAuthHandler(authSvc, deps.Gate)
	app.Get("/", authHandler.LoginPage)
	app.Post("/", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	settingsHandler := NewSettingsHandler(deps.SettingsUC, deps.Gate)
	app.Get("/settings", deps.Gate.RequireLogin(), deps.Gate.RequireAdmin(), settingsHandler.Page)
	app.Post("/settings", deps.Gate.RequireLogin(), deps.Gate.RequireAdmin(), settingsHandler.Save)

	reportHandler := NewReportHandler(reportSvc)
	app.Get("/report", deps.Gate.RequireLogin(), deps.Gate.RequireAdmin(), reportHandler.Page)

	// ── Superficie JSON (integraciones) ──────────────────────────────────────
	api := app.Group("/api")
	apiHandler := NewAPIHandler(authSvc, reportSvc)
	api.Post("/auth/login", apiHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/report", RequireRole(string(entity.RoleAdmin)), apiHandler.Report)
}
