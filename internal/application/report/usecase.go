// Package report contiene el caso de uso central: la agregación del reporte
// de ventas (totales por categoría, totales derivados, serie diaria y ranking
// de productos).
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReportUseCase genera el reporte de ventas sobre un repositorio de consultas
// construido para la petición en curso.
//
// Las consultas son secuenciales a propósito: cada petición trabaja sobre una
// única conexión y el modelo de recursos es una conexión, una secuencia de
// consultas, cierre. Cualquier fallo de consulta aborta el reporte completo;
// no hay resultados parciales ni reintentos.
type ReportUseCase struct{}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase() *ReportUseCase {
	return &ReportUseCase{}
}

// Generate calcula el reporte completo para los filtros dados.
//
// Reglas:
//   - El rango de fechas solo aplica si llegan ambos extremos; con uno solo se
//     omite en silencio y los totales son los de "sin filtro".
//   - Un invoice_type concreto fuerza a cero las otras dos categorías sin
//     consultarlas; eso arrastra net_sales y total. Es una decisión de diseño
//     heredada, no un defecto.
//   - El libro de caja y la serie diaria no reciben ningún filtro, y la serie
//     diaria sale de la tabla de devoluciones (asimetría heredada, conservada
//     por paridad; ver DESIGN.md).
func (uc *ReportUseCase) Generate(
	ctx context.Context,
	repo repository.ReportRepository,
	req dto.ReportRequest,
) (*dto.SalesReportDTO, error) {
	rng, err := parseRange(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}
	filter := entity.InvoiceType(strings.TrimSpace(req.InvoiceType))

	cash, err := categoryTotal(ctx, repo, filter, entity.InvoiceTypeCash, rng)
	if err != nil {
		return nil, err
	}
	credit, err := categoryTotal(ctx, repo, filter, entity.InvoiceTypeCredit, rng)
	if err != nil {
		return nil, err
	}
	returns, err := categoryTotal(ctx, repo, filter, entity.InvoiceTypeReturn, rng)
	if err != nil {
		return nil, err
	}

	netSales := cash.Add(credit).Sub(returns)

	disbursed, received, err := repo.LedgerTotals(ctx)
	if err != nil {
		return nil, err
	}

	total := cash.Add(credit).Add(received).Sub(returns).Sub(disbursed)

	daily, err := repo.DailySales(ctx)
	if err != nil {
		return nil, err
	}
	top, err := repo.TopProducts(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.SalesReportDTO{
		CashSales:      cash,
		CreditSales:    credit,
		ReturnSales:    returns,
		NetSales:       netSales,
		TotalDisbursed: disbursed,
		TotalReceived:  received,
		Total:          total,
		DailySales:     make([]dto.DailySaleDTO, 0, len(daily)),
		TopProducts:    make([]dto.TopProductDTO, 0, len(top)),
		FromDate:       req.FromDate,
		ToDate:         req.ToDate,
		InvoiceType:    req.InvoiceType,
	}
	for _, d := range daily {
		out.DailySales = append(out.DailySales, dto.DailySaleDTO{
			Date:  d.Date.Format(dateLayout),
			Total: d.Total,
		})
	}
	for _, p := range top {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
		})
	}
	return out, nil
}

// categoryTotal devuelve la suma de la categoría si el filtro la cubre; si no,
// cero sin tocar la base de datos.
func categoryTotal(
	ctx context.Context,
	repo repository.ReportRepository,
	filter, category entity.InvoiceType,
	rng *repository.DateRange,
) (decimal.Decimal, error) {
	if !filter.Includes(category) {
		return decimal.Zero, nil
	}
	return repo.SalesTotal(ctx, category, rng)
}

// parseRange interpreta los extremos del rango. Falta alguno -> sin filtro.
// Ambos presentes pero inválidos -> ErrInvalidInput.
func parseRange(from, to string) (*repository.DateRange, error) {
	if from == "" || to == "" {
		return nil, nil
	}
	f, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("%w: from_date %q", domain.ErrInvalidInput, from)
	}
	t, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("%w: to_date %q", domain.ErrInvalidInput, to)
	}
	return &repository.DateRange{From: f, To: t}, nil
}
