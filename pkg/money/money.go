// Package money concentra el redondeo y el formato de visualización de los
// montos. El almacenamiento interno es decimal de precisión completa; el
// redondeo a dos decimales ocurre únicamente en esta frontera de presentación.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Round redondea un monto a dos decimales (redondeo decimal estándar).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Symbol extrae el símbolo de la etiqueta de moneda del selector,
// ej. "EUR (€)" -> "€". Etiquetas sin paréntesis devuelven "$".
func Symbol(currencyLabel string) string {
	open := strings.Index(currencyLabel, "(")
	end := strings.LastIndex(currencyLabel, ")")
	if open >= 0 && end > open+1 {
		return currencyLabel[open+1 : end]
	}
	return "$"
}

// Format devuelve el monto con exactamente dos decimales, separador de miles
// y el símbolo de la moneda como prefijo, ej. Format(1234.5, "USD ($)") -> "$1,234.50".
func Format(d decimal.Decimal, currencyLabel string) string {
	f, _ := Round(d).Float64()
	return Symbol(currencyLabel) + printer.Sprintf("%v",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
