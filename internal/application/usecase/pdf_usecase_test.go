package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoice-studio/internal/application/dto"
	"github.com/tu-usuario/invoice-studio/internal/application/usecase"
	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/internal/domain/invoice"
	"github.com/tu-usuario/invoice-studio/internal/infrastructure/memory"
)

// stubGenerator captura los argumentos del render sin generar un PDF real.
type stubGenerator struct {
	lastTotals invoice.Totals
}

func (s *stubGenerator) GenerateDocumentPDF(_ context.Context, _ *entity.InvoiceDocument, totals invoice.Totals) ([]byte, error) {
	s.lastTotals = totals
	return []byte("%PDF-stub"), nil
}

func TestPDFUseCase_GeneraYNotifica(t *testing.T) {
	docRepo := memory.NewDocumentRepository()
	docUC := usecase.NewDocumentUseCase(docRepo, usecase.DocumentDefaults{})
	notifier := &fakeNotifier{}
	gen := &stubGenerator{}
	pdfUC := usecase.NewPDFUseCase(docRepo, gen, notifier)

	doc, err := docUC.Create(dto.CreateDocumentRequest{InvoiceNumber: "38"})
	require.NoError(t, err)
	itemID := doc.Items[0].ID
	_, err = docUC.UpdateItem(doc.ID, itemID, dto.UpdateItemRequest{Field: "quantity", Value: "4"})
	require.NoError(t, err)
	_, err = docUC.UpdateItem(doc.ID, itemID, dto.UpdateItemRequest{Field: "rate", Value: "25"})
	require.NoError(t, err)

	pdfBytes, filename, err := pdfUC.DownloadDocumentPDF(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), pdfBytes)
	assert.Equal(t, "factura_38.pdf", filename)
	assert.Equal(t, "100", gen.lastTotals.Total.String(), "el render recibe los totales derivados")

	title, _ := notifier.last()
	assert.Equal(t, "Factura creada", title)
}

func TestPDFUseCase_DocumentoInexistente(t *testing.T) {
	pdfUC := usecase.NewPDFUseCase(memory.NewDocumentRepository(), &stubGenerator{}, &fakeNotifier{})
	_, _, err := pdfUC.DownloadDocumentPDF(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}
