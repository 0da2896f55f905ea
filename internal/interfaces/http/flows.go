package http

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/postgres"
)

// Contratos mínimos que consumen los handlers; las implementaciones de abajo
// encadenan conexión de petición -> repositorio -> caso de uso. El uso de
// interfaz permite fakes en los tests sin base de datos.
type (
	authService interface {
		Login(ctx context.Context, in dto.LoginRequest) (*entity.User, error)
		APILogin(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	}

	reportService interface {
		Generate(ctx context.Context, req dto.ReportRequest) (*dto.SalesReportDTO, error)
	}

	settingsService interface {
		Current() (entity.ConnectionSettings, error)
		Save(form dto.SettingsForm) error
	}
)

// authFlow abre la conexión de la petición y delega en el caso de uso de auth.
// Sin conexión disponible devuelve ErrNoConnection: el llamador decide si eso
// es una redirección a configuración (HTML) o un 503 (API).
type authFlow struct {
	provider *postgres.Provider
	uc       *auth.AuthUseCase
}

func (f *authFlow) Login(ctx context.Context, in dto.LoginRequest) (*entity.User, error) {
	conn, err := f.provider.Connect(ctx)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, domain.ErrNoConnection
	}
	defer func() { _ = conn.Close(ctx) }()

	return f.uc.Authenticate(ctx, postgres.NewUserRepository(conn), in)
}

func (f *authFlow) APILogin(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	conn, err := f.provider.Connect(ctx)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, domain.ErrNoConnection
	}
	defer func() { _ = conn.Close(ctx) }()

	return f.uc.APILogin(ctx, postgres.NewUserRepository(conn), in)
}

// reportFlow abre la conexión de la petición, arma el repositorio de reporte
// y delega en el agregador. Una conexión por petición, cerrada al terminar.
type reportFlow struct {
	provider *postgres.Provider
	uc       *report.ReportUseCase
}

func (f *reportFlow) Generate(ctx context.Context, req dto.ReportRequest) (*dto.SalesReportDTO, error) {
	conn, err := f.provider.Connect(ctx)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, domain.ErrNoConnection
	}
	defer func() { _ = conn.Close(ctx) }()

	return f.uc.Generate(ctx, postgres.NewReportRepository(conn), req)
}
