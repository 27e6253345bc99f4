package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/internal/domain/invoice"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// assertAmountInvariant verifica que todo ítem cumple amount == quantity * rate.
func assertAmountInvariant(t *testing.T, items []entity.LineItem) {
	t.Helper()
	for _, it := range items {
		assert.True(t, it.Amount.Equal(it.Quantity.Mul(it.Rate)),
			"el ítem %s viola amount == quantity*rate: %s != %s*%s",
			it.ID, it.Amount, it.Quantity, it.Rate)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddItem / AppendSeeded
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_ValoresPorDefecto(t *testing.T) {
	items, item := invoice.AddItem(nil)

	require.Len(t, items, 1)
	assert.NotEmpty(t, item.ID)
	assert.Empty(t, item.Description)
	assert.True(t, item.Quantity.Equal(dec("1")))
	assert.True(t, item.Rate.IsZero())
	assert.True(t, item.Amount.IsZero())
}

func TestAddItem_IDsUnicosYAlFinal(t *testing.T) {
	var items []entity.LineItem
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		var item entity.LineItem
		items, item = invoice.AddItem(items)
		assert.False(t, seen[item.ID], "ID repetido dentro del mismo ledger")
		seen[item.ID] = true
		assert.Equal(t, item.ID, items[len(items)-1].ID, "el ítem nuevo debe quedar al final")
	}
	require.Len(t, items, 10)
}

func TestAppendSeeded_DerivaMonto(t *testing.T) {
	items, item := invoice.AppendSeeded(nil, "Renders interiores", dec("4"), dec("25"))

	require.Len(t, items, 1)
	assert.Equal(t, "Renders interiores", item.Description)
	assert.True(t, item.Amount.Equal(dec("100")), "amount debe ser quantity*rate")
	assertAmountInvariant(t, items)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateItem
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateItem_RecalculaMontoConValoresPosteriores(t *testing.T) {
	items, item := invoice.AddItem(nil)

	items, changed := invoice.UpdateItem(items, item.ID, invoice.FieldQuantity, "3")
	require.True(t, changed)
	items, changed = invoice.UpdateItem(items, item.ID, invoice.FieldRate, "12.50")
	require.True(t, changed)

	assert.True(t, items[0].Amount.Equal(dec("37.5")))
	assertAmountInvariant(t, items)
}

func TestUpdateItem_DescripcionNoTocaMonto(t *testing.T) {
	items, item := invoice.AppendSeeded(nil, "", dec("2"), dec("5"))

	items, changed := invoice.UpdateItem(items, item.ID, invoice.FieldDescription, "Diseño de logo")
	require.True(t, changed)
	assert.Equal(t, "Diseño de logo", items[0].Description)
	assert.True(t, items[0].Amount.Equal(dec("10")))
}

func TestUpdateItem_CoercionNumericaDegradaACero(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"vacío", ""},
		{"solo espacios", "   "},
		{"texto", "abc"},
		{"número malformado", "12,5x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, item := invoice.AppendSeeded(nil, "", dec("2"), dec("5"))
			items, changed := invoice.UpdateItem(items, item.ID, invoice.FieldRate, tc.input)
			require.True(t, changed)
			assert.True(t, items[0].Rate.IsZero(), "entrada no parseable debe degradar a cero")
			assert.True(t, items[0].Amount.IsZero())
		})
	}
}

func TestUpdateItem_RecortaEspaciosEnNumeros(t *testing.T) {
	items, item := invoice.AddItem(nil)
	items, _ = invoice.UpdateItem(items, item.ID, invoice.FieldRate, "  7.25  ")
	assert.True(t, items[0].Rate.Equal(dec("7.25")))
}

func TestUpdateItem_NegativosNoSeRechazan(t *testing.T) {
	// El ledger no valida signos; la superficie que llama decide si endurecer.
	items, item := invoice.AddItem(nil)
	items, _ = invoice.UpdateItem(items, item.ID, invoice.FieldRate, "-10")
	assert.True(t, items[0].Rate.Equal(dec("-10")))
	assertAmountInvariant(t, items)
}

func TestUpdateItem_IDInexistenteEsNoOp(t *testing.T) {
	items, _ := invoice.AppendSeeded(nil, "A", dec("1"), dec("1"))
	out, changed := invoice.UpdateItem(items, "no-existe", invoice.FieldRate, "99")
	assert.False(t, changed)
	assert.Equal(t, items, out)
}

func TestUpdateItem_CampoInvalidoEsNoOp(t *testing.T) {
	items, item := invoice.AddItem(nil)
	out, changed := invoice.UpdateItem(items, item.ID, invoice.ItemField("amount"), "999")
	assert.False(t, changed, "amount es derivado, no asignable desde la superficie")
	assert.Equal(t, items, out)
}

func TestUpdateItem_NoMutaLaSecuenciaOriginal(t *testing.T) {
	items, item := invoice.AppendSeeded(nil, "A", dec("2"), dec("3"))
	before := items[0].Rate

	_, _ = invoice.UpdateItem(items, item.ID, invoice.FieldRate, "50")
	assert.True(t, items[0].Rate.Equal(before), "UpdateItem debe devolver una secuencia nueva")
}

// ──────────────────────────────────────────────────────────────────────────────
// RemoveItem
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveItem_ConservaOrdenRelativo(t *testing.T) {
	var items []entity.LineItem
	var a, b, c entity.LineItem
	items, a = invoice.AppendSeeded(items, "A", dec("1"), dec("1"))
	items, b = invoice.AppendSeeded(items, "B", dec("1"), dec("1"))
	items, c = invoice.AppendSeeded(items, "C", dec("1"), dec("1"))

	items, removed := invoice.RemoveItem(items, b.ID)
	require.True(t, removed)
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, c.ID, items[1].ID)
}

func TestRemoveItem_IDInexistenteEsNoOp(t *testing.T) {
	items, _ := invoice.AppendSeeded(nil, "A", dec("1"), dec("1"))
	out, removed := invoice.RemoveItem(items, "no-existe")
	assert.False(t, removed)
	assert.Len(t, out, 1)
}

// El ledger elimina incondicionalmente aunque sea el último ítem: la política
// de "conservar al menos uno" pertenece a la superficie de edición (ver el
// caso de uso de documento), no a esta capa.
func TestRemoveItem_UltimoItemQuedaLedgerVacio(t *testing.T) {
	items, item := invoice.AppendSeeded(nil, "único", dec("4"), dec("25"))

	items, removed := invoice.RemoveItem(items, item.ID)
	require.True(t, removed)
	assert.Empty(t, items)

	totals := invoice.ComputeTotals(items, decimal.Zero)
	assert.True(t, totals.Subtotal.IsZero(), "ledger vacío debe derivar subtotal cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTotals
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotals_LedgerVacio(t *testing.T) {
	totals := invoice.ComputeTotals(nil, decimal.Zero)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.BalanceDue.IsZero())
}

func TestComputeTotals_SubtotalEsSumaDeMontos(t *testing.T) {
	var items []entity.LineItem
	items, _ = invoice.AppendSeeded(items, "A", dec("2"), dec("10"))
	items, _ = invoice.AppendSeeded(items, "B", dec("3"), dec("7.5"))

	totals := invoice.ComputeTotals(items, decimal.Zero)
	assert.True(t, totals.Subtotal.Equal(dec("42.5")))
	assert.True(t, totals.Total.Equal(totals.Subtotal), "sin impuesto/descuento/envío: total == subtotal")
}

func TestComputeTotals_EsPuraYDeterminista(t *testing.T) {
	items, _ := invoice.AppendSeeded(nil, "A", dec("4"), dec("25"))
	paid := dec("40")

	before := items[0]
	t1 := invoice.ComputeTotals(items, paid)
	t2 := invoice.ComputeTotals(items, paid)

	assert.True(t, t1.Subtotal.Equal(t2.Subtotal))
	assert.True(t, t1.BalanceDue.Equal(t2.BalanceDue))
	assert.Equal(t, before, items[0], "ComputeTotals no debe mutar sus entradas")
}

// Escenario completo del formulario: una línea 4×25, pago parcial, nueva
// línea editada después.
func TestComputeTotals_EscenarioCompleto(t *testing.T) {
	items, _ := invoice.AppendSeeded(nil, "Renders", dec("4"), dec("25"))

	totals := invoice.ComputeTotals(items, decimal.Zero)
	require.True(t, totals.Subtotal.Equal(dec("100")))
	require.True(t, totals.Total.Equal(dec("100")))

	totals = invoice.ComputeTotals(items, dec("40"))
	assert.True(t, totals.BalanceDue.Equal(dec("60")))

	// Agregar un ítem por defecto no cambia el subtotal hasta editarlo
	var nuevo entity.LineItem
	items, nuevo = invoice.AddItem(items)
	totals = invoice.ComputeTotals(items, dec("40"))
	assert.True(t, totals.Subtotal.Equal(dec("100")))

	items, _ = invoice.UpdateItem(items, nuevo.ID, invoice.FieldQuantity, "2")
	items, _ = invoice.UpdateItem(items, nuevo.ID, invoice.FieldRate, "10")
	totals = invoice.ComputeTotals(items, dec("40"))
	assert.True(t, totals.Subtotal.Equal(dec("120")))
	assert.True(t, totals.BalanceDue.Equal(dec("80")))
	assertAmountInvariant(t, items)
}

// Propiedad general: tras cualquier secuencia de operaciones, todo ítem
// restante cumple la invariante de monto derivado.
func TestLedger_InvarianteTrasSecuenciaDeOperaciones(t *testing.T) {
	var items []entity.LineItem
	var ids []string
	for i := 0; i < 5; i++ {
		var it entity.LineItem
		items, it = invoice.AddItem(items)
		ids = append(ids, it.ID)
	}

	items, _ = invoice.UpdateItem(items, ids[0], invoice.FieldQuantity, "3")
	items, _ = invoice.UpdateItem(items, ids[1], invoice.FieldRate, "9.99")
	items, _ = invoice.RemoveItem(items, ids[2])
	items, _ = invoice.UpdateItem(items, ids[3], invoice.FieldQuantity, "basura")
	items, _ = invoice.UpdateItem(items, ids[4], invoice.FieldRate, "-2")
	items, _ = invoice.RemoveItem(items, "no-existe")

	require.Len(t, items, 4)
	assertAmountInvariant(t, items)
}
