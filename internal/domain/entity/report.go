package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType categoría de factura. La pertenencia a una categoría la decide la
// tabla donde vive la fila, no una columna; el tipo vacío significa "todas".
type InvoiceType string

const (
	InvoiceTypeAll    InvoiceType = ""
	InvoiceTypeCash   InvoiceType = "cash"
	InvoiceTypeCredit InvoiceType = "credit"
	InvoiceTypeReturn InvoiceType = "return"
)

// Includes indica si el filtro cubre la categoría dada. Un filtro vacío cubre
// todas; un valor desconocido no cubre ninguna (las tres sumas quedan en cero,
// igual que el comportamiento histórico).
func (t InvoiceType) Includes(category InvoiceType) bool {
	return t == InvoiceTypeAll || t == category
}

// DailySale total vendido en una fecha concreta de la serie diaria.
type DailySale struct {
	Date  time.Time
	Total decimal.Decimal
}

// TopProduct cantidad acumulada de un producto en el ranking.
type TopProduct struct {
	ProductName string
	Quantity    decimal.Decimal
}

// SalesReport agregado transitorio de un reporte: nunca se persiste, se
// construye por petición y se entrega a la capa de presentación.
type SalesReport struct {
	CashSales   decimal.Decimal
	CreditSales decimal.Decimal
	ReturnSales decimal.Decimal

	// NetSales = CashSales + CreditSales - ReturnSales
	NetSales decimal.Decimal

	// Agregados del libro de caja, independientes del filtro de tipo y fechas.
	TotalDisbursed decimal.Decimal // SUM(sarf)
	TotalReceived  decimal.Decimal // SUM(estlam)

	// Total = CashSales + CreditSales + TotalReceived - ReturnSales - TotalDisbursed
	Total decimal.Decimal

	DailySales  []DailySale
	TopProducts []TopProduct
}
