package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// DateRange rango inclusivo de fechas. Un puntero nil significa "sin filtro";
// el rango solo existe cuando el llamador recibió ambos extremos.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ReportRepository define el puerto de consultas read-only del reporte.
// Cada método corresponde a una consulta agregada; las sumas vacías resuelven
// a cero por COALESCE, nunca a un valor ausente.
type ReportRepository interface {
	// SalesTotal suma TotalAmount de la tabla de la categoría dada, aplicando
	// el rango de fechas si no es nil.
	SalesTotal(ctx context.Context, category entity.InvoiceType, rng *DateRange) (decimal.Decimal, error)

	// LedgerTotals suma sarf (egresos) y estlam (ingresos) del libro de caja
	// completo. Nunca se filtra por fecha ni por tipo.
	LedgerTotals(ctx context.Context) (disbursed, received decimal.Decimal, err error)

	// DailySales serie por fecha, ordenada por fecha descendente.
	DailySales(ctx context.Context) ([]entity.DailySale, error)

	// TopProducts ranking por cantidad acumulada, ordenado descendente.
	TopProducts(ctx context.Context) ([]entity.TopProduct, error)
}
