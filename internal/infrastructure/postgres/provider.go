package postgres

import (
	"context"
	"net/url"

	"github.com/jackc/pgx/v5"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// Querier es el contrato mínimo que necesitan los repositorios para consultar.
// Lo satisfacen *pgx.Conn y *pgxpool.Pool.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Provider abre una conexión por petición a partir de los ajustes persistidos.
//
// Contrato de disponibilidad: (nil, nil) significa "sin conexión" — ajustes
// incompletos o fallo del driver — y es un resultado normal que el llamador
// debe comprobar; la única reacción posible es llevar al usuario a la página
// de configuración, así que el detalle del fallo solo se registra en el log.
// Un error real solo sale de aquí si el documento de ajustes está corrupto.
type Provider struct {
	store repository.SettingsStore
	log   *logger.Logger
}

// NewProvider construye el proveedor de conexiones.
func NewProvider(store repository.SettingsStore, log *logger.Logger) *Provider {
	return &Provider{store: store, log: log}
}

// Connect lee los ajustes en cada intento y abre una conexión a PostgreSQL.
// La conexión devuelta es de la petición: el llamador la cierra al terminar.
func (p *Provider) Connect(ctx context.Context) (*pgx.Conn, error) {
	settings, err := p.store.Load()
	if err != nil {
		return nil, err
	}
	if !settings.Configured() {
		return nil, nil
	}

	conn, err := pgx.Connect(ctx, dsn(settings.Server, settings.Database))
	if err != nil {
		p.log.Warn().Err(err).
			Str("server", settings.Server).
			Str("database", settings.Database).
			Msg("no se pudo conectar a la base de datos")
		return nil, nil
	}

	// Codec NUMERIC/DECIMAL -> shopspring/decimal en esta conexión.
	pgxdecimal.Register(conn.TypeMap())
	return conn, nil
}

// dsn arma el connection string. Las credenciales no viven en los ajustes:
// pgx las toma del ambiente (PGUSER/PGPASSWORD/pgpass) como sesión integrada.
func dsn(server, database string) string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   server,
		Path:   "/" + database,
	}
	return u.String()
}
