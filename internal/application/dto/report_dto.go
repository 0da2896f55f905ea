package dto

import "github.com/shopspring/decimal"

// ReportRequest parámetros de GET /report y GET /api/report.
//
// Las fechas son YYYY-MM-DD e inclusivas, y van juntas: si solo llega una, el
// filtro de fechas se omite en silencio. invoice_type: cash | credit | return;
// vacío significa todas las categorías.
type ReportRequest struct {
	FromDate    string `query:"from_date"`
	ToDate      string `query:"to_date"`
	InvoiceType string `query:"invoice_type"`
}

// DailySaleDTO una fecha de la serie diaria con su total.
type DailySaleDTO struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// TopProductDTO un producto del ranking con su cantidad acumulada.
type TopProductDTO struct {
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// SalesReportDTO respuesta completa del reporte de ventas.
//
// net_sales = cash_sales + credit_sales - return_sales
// total     = cash_sales + credit_sales + total_received - return_sales - total_disbursed
type SalesReportDTO struct {
	CashSales   decimal.Decimal `json:"cash_sales"`
	CreditSales decimal.Decimal `json:"credit_sales"`
	ReturnSales decimal.Decimal `json:"return_sales"`
	NetSales    decimal.Decimal `json:"net_sales"`

	TotalDisbursed decimal.Decimal `json:"total_disbursed"` // SUM(sarf) del libro de caja
	TotalReceived  decimal.Decimal `json:"total_received"`  // SUM(estlam) del libro de caja
	Total          decimal.Decimal `json:"total"`

	DailySales  []DailySaleDTO  `json:"daily_sales"`
	TopProducts []TopProductDTO `json:"top_products"`

	// Filtros de entrada, devueltos tal cual para la presentación.
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
	InvoiceType string `json:"invoice_type"`
}
