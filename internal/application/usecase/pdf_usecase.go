package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/invoice-studio/internal/application/ports"
	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/internal/domain/invoice"
	"github.com/tu-usuario/invoice-studio/internal/domain/repository"
)

// DocumentPDFGenerator define el puerto de salida para la representación
// imprimible del documento (el colaborador "render a salida imprimible").
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, doc *entity.InvoiceDocument, totals invoice.Totals) ([]byte, error)
}

// PDFUseCase genera la versión imprimible del documento activo.
type PDFUseCase struct {
	docs      repository.DocumentRepository
	generator DocumentPDFGenerator
	notifier  ports.Notifier
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(docs repository.DocumentRepository, generator DocumentPDFGenerator, notifier ports.Notifier) *PDFUseCase {
	return &PDFUseCase{docs: docs, generator: generator, notifier: notifier}
}

// DownloadDocumentPDF genera el PDF del documento con sus totales derivados.
//
// Retorna:
//   - (pdfBytes, filename, nil)       si todo sale bien.
//   - domain.ErrDocumentNotFound      si el documento no existe.
func (uc *PDFUseCase) DownloadDocumentPDF(ctx context.Context, documentID string) (pdfBytes []byte, filename string, err error) {
	doc, err := uc.docs.GetByID(documentID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener documento: %w", err)
	}
	if doc == nil {
		return nil, "", domain.ErrDocumentNotFound
	}

	totals := invoice.ComputeTotals(doc.Items, doc.AmountPaid)
	pdfBytes, err = uc.generator.GenerateDocumentPDF(ctx, doc, totals)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	uc.notifier.Notify("Factura creada", "La factura está lista para enviarse", ports.SeveritySuccess)

	number := doc.InvoiceNumber
	if number == "" {
		number = doc.ID
	}
	filename = fmt.Sprintf("factura_%s.pdf", number)
	return pdfBytes, filename, nil
}
