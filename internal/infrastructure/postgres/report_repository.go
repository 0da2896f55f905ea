package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// Tabla de cada categoría de factura. La categoría la determina la tabla donde
// vive la fila, no una columna; el esquema es heredado y se consulta tal cual.
var salesTables = map[entity.InvoiceType]string{
	entity.InvoiceTypeCash:   `"Invoices"`,
	entity.InvoiceTypeCredit: `"Invoices2"`,
	entity.InvoiceTypeReturn: `"Invoices1"`,
}

// ReportRepo consultas agregadas de solo lectura para el reporte de ventas.
type ReportRepo struct {
	db Querier
}

// NewReportRepository construye el adaptador de reporte sobre la conexión de la petición.
func NewReportRepository(db Querier) *ReportRepo {
	return &ReportRepo{db: db}
}

// SalesTotal suma TotalAmount de la tabla de la categoría, con el rango de
// fechas opcional. COALESCE devuelve cero cuando no hay filas.
func (r *ReportRepo) SalesTotal(
	ctx context.Context,
	category entity.InvoiceType,
	rng *repository.DateRange,
) (decimal.Decimal, error) {
	table, ok := salesTables[category]
	if !ok {
		return decimal.Zero, fmt.Errorf("report.SalesTotal: categoría desconocida %q", category)
	}

	base := `SELECT COALESCE(SUM(CAST("TotalAmount" AS numeric)), 0) FROM ` + table
	query, args := newConditions().
		dateBetween(`"InvoiceDate"`, rng).
		apply(base)

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, args).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("report.SalesTotal %s: %w", table, err)
	}
	return total, nil
}

// LedgerTotals suma egresos (sarf) e ingresos (estlam) del libro de caja
// completo. Por diseño no recibe rango ni tipo: el libro se agrega entero.
func (r *ReportRepo) LedgerTotals(ctx context.Context) (disbursed, received decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(sarf),   0) AS disbursed,
	    COALESCE(SUM(estlam), 0) AS received
	FROM accountofcustomer2`

	if err = r.db.QueryRow(ctx, query).Scan(&disbursed, &received); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("report.LedgerTotals: %w", err)
	}
	return disbursed, received, nil
}

// DailySales serie diaria sumada por fecha, ordenada descendente. Se lee de la
// tabla de devoluciones y sin filtro de fechas: asimetría heredada que se
// conserva por paridad de comportamiento (pendiente de confirmar con negocio).
func (r *ReportRepo) DailySales(ctx context.Context) ([]entity.DailySale, error) {
	const query = `
	SELECT "InvoiceDate", SUM(CAST("TotalAmount" AS numeric))
	FROM "Invoices1"
	GROUP BY "InvoiceDate"
	ORDER BY "InvoiceDate" DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.DailySales: %w", err)
	}
	defer rows.Close()

	var series []entity.DailySale
	for rows.Next() {
		var d entity.DailySale
		if err := rows.Scan(&d.Date, &d.Total); err != nil {
			return nil, fmt.Errorf("report.DailySales scan: %w", err)
		}
		series = append(series, d)
	}
	return series, rows.Err()
}

// TopProducts ranking de productos por cantidad acumulada, descendente.
// Sin filtro de fecha ni de tipo; el empate queda en el orden que dé la DB.
func (r *ReportRepo) TopProducts(ctx context.Context) ([]entity.TopProduct, error) {
	const query = `
	SELECT "ProductName", SUM(CAST("Quantity" AS numeric)) AS total_quantity
	FROM "InvoiceDetails"
	GROUP BY "ProductName"
	ORDER BY total_quantity DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.TopProducts: %w", err)
	}
	defer rows.Close()

	var ranking []entity.TopProduct
	for rows.Next() {
		var p entity.TopProduct
		if err := rows.Scan(&p.ProductName, &p.Quantity); err != nil {
			return nil, fmt.Errorf("report.TopProducts scan: %w", err)
		}
		ranking = append(ranking, p)
	}
	return ranking, rows.Err()
}
