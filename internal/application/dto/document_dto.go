package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDocumentRequest entrada para crear un documento de factura.
// Todos los campos son opcionales; los vacíos toman los defaults configurados.
type CreateDocumentRequest struct {
	Currency      string `json:"currency"`
	InvoiceNumber string `json:"invoice_number"`
}

// UpdateDocumentRequest actualización parcial de los campos del documento
// activo (solo se aplican los campos presentes). Las fechas usan formato
// 2006-01-02; cadena vacía limpia la fecha. AmountPaid llega como texto crudo
// del input y se coacciona a número (no parseable -> 0).
type UpdateDocumentRequest struct {
	CompanyDetails *string `json:"company_details"`
	CompanyLogo    *string `json:"company_logo"`
	BillTo         *string `json:"bill_to"`
	PaymentDetails *string `json:"payment_details"`
	InvoiceNumber  *string `json:"invoice_number"`
	InvoiceDate    *string `json:"invoice_date"`
	DueDate        *string `json:"due_date"`
	EnableDueDate  *bool   `json:"enable_due_date"`
	Currency       *string `json:"currency"`
	AmountPaid     *string `json:"amount_paid"`
}

// UpdateItemRequest edición de un campo de un ítem: field ∈ {description,
// quantity, rate}. Value es el texto crudo del input.
type UpdateItemRequest struct {
	Field string `json:"field" validate:"required,oneof=description quantity rate"`
	Value string `json:"value"`
}

// LineItemResponse salida de un ítem con su monto derivado.
type LineItemResponse struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
}

// TotalsResponse totales derivados, con los valores de visualización
// formateados a dos decimales y símbolo de moneda.
type TotalsResponse struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	Total             decimal.Decimal `json:"total"`
	BalanceDue        decimal.Decimal `json:"balance_due"`
	SubtotalDisplay   string          `json:"subtotal_display"`
	TotalDisplay      string          `json:"total_display"`
	BalanceDueDisplay string          `json:"balance_due_display"`
}

// DocumentResponse salida completa del documento activo.
type DocumentResponse struct {
	ID             string             `json:"id"`
	CompanyDetails string             `json:"company_details"`
	CompanyLogo    string             `json:"company_logo,omitempty"`
	BillTo         string             `json:"bill_to"`
	PaymentDetails string             `json:"payment_details"`
	InvoiceNumber  string             `json:"invoice_number"`
	InvoiceDate    *string            `json:"invoice_date,omitempty"`
	DueDate        *string            `json:"due_date,omitempty"`
	EnableDueDate  bool               `json:"enable_due_date"`
	Currency       string             `json:"currency"`
	Items          []LineItemResponse `json:"items"`
	AmountPaid     decimal.Decimal    `json:"amount_paid"`
	Totals         TotalsResponse     `json:"totals"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// DocumentSummaryResponse entrada de un listado de documentos.
type DocumentSummaryResponse struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	Currency      string    `json:"currency"`
	TotalDisplay  string    `json:"total_display"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DocumentListResponse listado de documentos activos.
type DocumentListResponse struct {
	Items []DocumentSummaryResponse `json:"items"`
}
