package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Monedas soportadas por el selector (etiqueta de visualización, sin conversión).
const (
	CurrencyUSD = "USD ($)"
	CurrencyEUR = "EUR (€)"
	CurrencyGBP = "GBP (£)"
)

// InvoiceDocument es el documento activo: la única fuente de verdad mutable
// de los campos de la factura en edición. Los presets son copias independientes,
// nunca referencias a estos campos.
type InvoiceDocument struct {
	ID             string
	CompanyDetails string
	CompanyLogo    string // referencia opaca a la fuente de imagen (data URI o ruta)
	BillTo         string
	PaymentDetails string
	InvoiceNumber  string
	InvoiceDate    *time.Time
	DueDate        *time.Time
	EnableDueDate  bool
	Currency       string
	Items          []LineItem
	AmountPaid     decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
