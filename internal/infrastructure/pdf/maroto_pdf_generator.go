// Package pdf implementa la representación imprimible del documento de
// factura usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Datos de la empresa  │  INVOICE + N° + Fechas      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: datos del cliente                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant. | Tarifa | Monto                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGO: datos de pago   │   TOTALES: Subtotal / Total /      │
//	│                        │   Pagado / Saldo pendiente         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/invoice-studio/internal/application/usecase"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/internal/domain/invoice"
	"github.com/tu-usuario/invoice-studio/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Asegura que MarotoPDFGenerator implementa usecase.DocumentPDFGenerator.
var _ usecase.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa el puerto de render imprimible usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateDocumentPDF genera el PDF del documento activo y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(
	_ context.Context,
	doc *entity.InvoiceDocument,
	totals invoice.Totals,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+doc.InvoiceNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(doc) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(doc, totals))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: logo y datos de la empresa (izq), título INVOICE + número +
// fechas (der). Un logo vacío o no decodificable degrada al header solo de texto.
func headerRows(doc *entity.InvoiceDocument) []core.Row {
	companyLines := splitLines(doc.CompanyDetails)

	textWidth := 7
	var logoCol core.Col
	if payload, ext, ok := decodeLogo(doc.CompanyLogo); ok {
		logoCol = image.NewFromBytesCol(2, payload, ext, props.Rect{Percent: 90, Top: 1})
		textWidth = 5
	}

	left := col.New(textWidth)
	top := 1.0
	for i, l := range companyLines {
		style := props.Text{Size: 9, Top: top, Color: colorGray}
		if i == 0 {
			style = props.Text{Style: fontstyle.Bold, Size: 12, Top: top, Color: colorPrimary}
		}
		left.Add(text.New(l, style))
		top += 5
	}

	rightTexts := []core.Component{
		text.New("INVOICE", props.Text{
			Style: fontstyle.Bold, Size: 16, Align: align.Right, Color: colorPrimary, Top: 1,
		}),
		text.New("# "+doc.InvoiceNumber, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 9,
		}),
	}
	if doc.InvoiceDate != nil {
		rightTexts = append(rightTexts, text.New("Fecha: "+doc.InvoiceDate.Format("02/01/2006"), props.Text{
			Size: 8, Align: align.Right, Top: 16, Color: colorGray,
		}))
	}
	if doc.EnableDueDate && doc.DueDate != nil {
		rightTexts = append(rightTexts, text.New("Vence: "+doc.DueDate.Format("02/01/2006"), props.Text{
			Size: 8, Align: align.Right, Top: 21, Color: colorGray,
		}))
	}

	height := float64(6*len(companyLines) + 6)
	if height < 28 {
		height = 28
	}
	header := row.New(height)
	if logoCol != nil {
		header.Add(logoCol)
	}
	header.Add(left, col.New(5).Add(rightTexts...))
	return []core.Row{header}
}

// billToRows: bloque del cliente.
func billToRows(doc *entity.InvoiceDocument) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("BILL TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)),
	}
	for _, l := range splitLines(doc.BillTo) {
		rows = append(rows, row.New(4.5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 8.5, Top: 0.5, Left: 1}),
		)))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Descripción", 6, align.Left),
		h("Cant.", 2, align.Center),
		h("Tarifa", 2, align.Right),
		h("Monto", 2, align.Right),
	)
}

// tableItemRows: una fila por ítem del ledger.
func tableItemRows(doc *entity.InvoiceDocument) []core.Row {
	result := make([]core.Row, 0, len(doc.Items))
	for _, it := range doc.Items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				money.Format(it.Rate, doc.Currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				money.Format(it.Amount, doc.Currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRow: datos de pago (izq) y bloque de totales (der).
func footerRow(doc *entity.InvoiceDocument, totals invoice.Totals) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	payment := col.New(6).Add(text.New("DATOS DE PAGO", props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
	}))
	top := 6.0
	for _, l := range splitLines(doc.PaymentDetails) {
		payment.Add(text.New(l, props.Text{Size: 8, Top: top, Color: colorGray}))
		top += 4.5
	}

	return row.New(32).Add(
		payment,
		col.New(3).Add(
			label("Subtotal:", 1),
			label("Total:", 7),
			label("Pagado:", 13),
			text.New("Saldo pendiente:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 20,
			}),
		),
		col.New(3).Add(
			value(money.Format(totals.Subtotal, doc.Currency), 1),
			value(money.Format(totals.Total, doc.Currency), 7),
			value(money.Format(doc.AmountPaid, doc.Currency), 13),
			text.New(money.Format(totals.BalanceDue, doc.Currency), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 20,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// decodeLogo separa un data URI de imagen ("data:image/png;base64,...") en el
// payload decodificado y su extensión. ok es false para logos vacíos, de otro
// formato o con base64 inválido.
func decodeLogo(logo string) (payload []byte, ext extension.Type, ok bool) {
	rest, found := strings.CutPrefix(logo, "data:image/")
	if !found {
		return nil, "", false
	}
	mediaType, encoded, found := strings.Cut(rest, ";base64,")
	if !found || encoded == "" {
		return nil, "", false
	}
	switch strings.ToLower(mediaType) {
	case "png":
		ext = extension.Png
	case "jpg", "jpeg":
		ext = extension.Jpg
	default:
		return nil, "", false
	}
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", false
	}
	return payload, ext, true
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
