// Package invoice contiene la lógica pura del documento de factura:
// el libro de ítems (ledger) con sus totales derivados y las colecciones
// de presets. Sin I/O; todas las operaciones son funciones totales sobre
// la secuencia actual que devuelven una secuencia nueva.
package invoice

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

// ItemField campos editables de un ítem desde la superficie de edición.
type ItemField string

const (
	FieldDescription ItemField = "description"
	FieldQuantity    ItemField = "quantity"
	FieldRate        ItemField = "rate"
)

// Valid indica si el campo es uno de los editables.
func (f ItemField) Valid() bool {
	switch f {
	case FieldDescription, FieldQuantity, FieldRate:
		return true
	}
	return false
}

// Totals es la derivación pura de los totales de la factura.
// No se almacena: se recalcula a partir de los ítems y el monto pagado.
type Totals struct {
	Subtotal   decimal.Decimal
	Total      decimal.Decimal
	BalanceDue decimal.Decimal
}

// AddItem agrega un ítem por defecto al final (descripción vacía,
// cantidad 1, tarifa 0, monto 0) con un ID recién generado.
func AddItem(items []entity.LineItem) ([]entity.LineItem, entity.LineItem) {
	item := entity.LineItem{
		ID:       uuid.New().String(),
		Quantity: decimal.NewFromInt(1),
		Rate:     decimal.Zero,
		Amount:   decimal.Zero,
	}
	return append(cloneItems(items), item), item
}

// AppendSeeded agrega la línea inicial de la factura con valores semilla.
// El monto se deriva de cantidad*tarifa, igual que en cualquier mutación.
func AppendSeeded(items []entity.LineItem, description string, quantity, rate decimal.Decimal) ([]entity.LineItem, entity.LineItem) {
	item := entity.LineItem{
		ID:          uuid.New().String(),
		Description: description,
		Quantity:    quantity,
		Rate:        rate,
		Amount:      quantity.Mul(rate),
	}
	return append(cloneItems(items), item), item
}

// RemoveItem elimina el ítem con el ID dado. Si el ID no existe es un no-op
// (no un error). La operación elimina incondicionalmente aunque sea el último
// ítem: la regla de "conservar al menos uno" pertenece a la superficie que
// llama, no al ledger.
func RemoveItem(items []entity.LineItem, id string) ([]entity.LineItem, bool) {
	out := make([]entity.LineItem, 0, len(items))
	removed := false
	for _, it := range items {
		if it.ID == id {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out, removed
}

// UpdateItem asigna el campo indicado en el ítem con el ID dado y devuelve la
// secuencia resultante. No-op si el ID no existe o el campo no es editable.
// Para quantity y rate el valor crudo se coacciona a número (entrada no
// parseable se degrada a cero) y el monto se recalcula con los valores
// posteriores a la actualización de ambos campos.
func UpdateItem(items []entity.LineItem, id string, field ItemField, value string) ([]entity.LineItem, bool) {
	if !field.Valid() {
		return items, false
	}
	out := cloneItems(items)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		switch field {
		case FieldDescription:
			out[i].Description = value
		case FieldQuantity:
			out[i].Quantity = CoerceNumber(value)
		case FieldRate:
			out[i].Rate = CoerceNumber(value)
		}
		if field == FieldQuantity || field == FieldRate {
			out[i].Amount = out[i].Quantity.Mul(out[i].Rate)
		}
		return out, true
	}
	return items, false
}

// ComputeTotals deriva subtotal, total y saldo pendiente. Función pura:
// no muta sus entradas y puede llamarse en cualquier momento.
// En el diseño canónico no hay impuesto, descuento ni envío: total == subtotal.
func ComputeTotals(items []entity.LineItem, amountPaid decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount)
	}
	total := subtotal
	return Totals{
		Subtotal:   subtotal,
		Total:      total,
		BalanceDue: total.Sub(amountPaid),
	}
}

// CoerceNumber convierte entrada de usuario en decimal. Espacios se recortan;
// texto vacío o no numérico se degrada a cero en lugar de rechazar la edición.
func CoerceNumber(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func cloneItems(items []entity.LineItem) []entity.LineItem {
	out := make([]entity.LineItem, len(items))
	copy(out, items)
	return out
}
