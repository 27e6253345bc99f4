package entity

import "github.com/shopspring/decimal"

// LineItem representa una línea de la factura en edición.
// Amount es un campo derivado: siempre Quantity * Rate tras cualquier
// mutación de cantidad o tarifa; nunca se asigna directamente desde la UI.
type LineItem struct {
	ID          string
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}
