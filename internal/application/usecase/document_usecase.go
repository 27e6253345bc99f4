package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoice-studio/internal/application/dto"
	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/internal/domain/invoice"
	"github.com/tu-usuario/invoice-studio/internal/domain/repository"
	"github.com/tu-usuario/invoice-studio/pkg/money"
)

// dateLayout formato de las fechas en la API (selección de fecha de la UI).
const dateLayout = "2006-01-02"

// DocumentDefaults valores iniciales del documento recién creado.
type DocumentDefaults struct {
	Currency        string
	SeedDescription string
}

// DocumentUseCase es la superficie de edición del documento activo: media
// entre los eventos de entrada del usuario y el ledger de ítems, y aplica la
// política de UI de conservar al menos un ítem visible.
type DocumentUseCase struct {
	repo     repository.DocumentRepository
	defaults DocumentDefaults
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository, defaults DocumentDefaults) *DocumentUseCase {
	if defaults.Currency == "" {
		defaults.Currency = entity.CurrencyUSD
	}
	return &DocumentUseCase{repo: repo, defaults: defaults}
}

// Create crea un documento nuevo con la línea semilla inicial y los defaults
// configurados. El ledger nunca nace vacío.
func (uc *DocumentUseCase) Create(in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	now := time.Now()
	currency := in.Currency
	if currency == "" {
		currency = uc.defaults.Currency
	}
	items, _ := invoice.AppendSeeded(nil, uc.defaults.SeedDescription, decimal.NewFromInt(1), decimal.Zero)
	doc := &entity.InvoiceDocument{
		ID:            uuid.New().String(),
		InvoiceNumber: in.InvoiceNumber,
		InvoiceDate:   &now,
		Currency:      currency,
		Items:         items,
		AmountPaid:    decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// GetByID obtiene un documento por ID. Devuelve (nil, nil) si no existe.
func (uc *DocumentUseCase) GetByID(id string) (*dto.DocumentResponse, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return toDocumentResponse(doc), nil
}

// List lista los documentos activos.
func (uc *DocumentUseCase) List() (*dto.DocumentListResponse, error) {
	docs, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentSummaryResponse, 0, len(docs))
	for _, d := range docs {
		totals := invoice.ComputeTotals(d.Items, d.AmountPaid)
		items = append(items, dto.DocumentSummaryResponse{
			ID:            d.ID,
			InvoiceNumber: d.InvoiceNumber,
			Currency:      d.Currency,
			TotalDisplay:  money.Format(totals.Total, d.Currency),
			UpdatedAt:     d.UpdatedAt,
		})
	}
	return &dto.DocumentListResponse{Items: items}, nil
}

// UpdateFields aplica una edición parcial de los campos del documento.
// Solo los campos presentes en la petición se asignan; AmountPaid se coacciona
// a número y las fechas inválidas retornan domain.ErrInvalidInput.
func (uc *DocumentUseCase) UpdateFields(id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrDocumentNotFound
	}

	if in.CompanyDetails != nil {
		doc.CompanyDetails = *in.CompanyDetails
	}
	if in.CompanyLogo != nil {
		doc.CompanyLogo = *in.CompanyLogo
	}
	if in.BillTo != nil {
		doc.BillTo = *in.BillTo
	}
	if in.PaymentDetails != nil {
		doc.PaymentDetails = *in.PaymentDetails
	}
	if in.InvoiceNumber != nil {
		doc.InvoiceNumber = *in.InvoiceNumber
	}
	if in.Currency != nil && *in.Currency != "" {
		doc.Currency = *in.Currency
	}
	if in.EnableDueDate != nil {
		doc.EnableDueDate = *in.EnableDueDate
		if !doc.EnableDueDate {
			doc.DueDate = nil
		}
	}
	if in.InvoiceDate != nil {
		t, err := parseDate(*in.InvoiceDate)
		if err != nil {
			return nil, err
		}
		doc.InvoiceDate = t
	}
	if in.DueDate != nil {
		t, err := parseDate(*in.DueDate)
		if err != nil {
			return nil, err
		}
		doc.DueDate = t
	}
	if in.AmountPaid != nil {
		doc.AmountPaid = invoice.CoerceNumber(*in.AmountPaid)
	}

	doc.UpdatedAt = time.Now()
	if err := uc.repo.Update(doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// AddItem agrega un ítem por defecto al final del ledger.
func (uc *DocumentUseCase) AddItem(id string) (*dto.DocumentResponse, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrDocumentNotFound
	}
	doc.Items, _ = invoice.AddItem(doc.Items)
	doc.UpdatedAt = time.Now()
	if err := uc.repo.Update(doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// UpdateItem asigna un campo de un ítem. Un itemID desconocido es un no-op
// silencioso (el documento se devuelve sin cambios); un campo desconocido
// retorna domain.ErrInvalidInput.
func (uc *DocumentUseCase) UpdateItem(id, itemID string, in dto.UpdateItemRequest) (*dto.DocumentResponse, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrDocumentNotFound
	}
	field := invoice.ItemField(in.Field)
	if !field.Valid() {
		return nil, fmt.Errorf("%w: campo %q", domain.ErrInvalidInput, in.Field)
	}
	items, changed := invoice.UpdateItem(doc.Items, itemID, field, in.Value)
	if changed {
		doc.Items = items
		doc.UpdatedAt = time.Now()
		if err := uc.repo.Update(doc); err != nil {
			return nil, err
		}
	}
	return toDocumentResponse(doc), nil
}

// RemoveItem elimina un ítem del ledger. Esta capa es la dueña de la garantía
// de "al menos un ítem": con un solo ítem restante rechaza con
// domain.ErrLastItem (el ledger en sí eliminaría incondicionalmente).
// Un itemID desconocido es un no-op silencioso.
func (uc *DocumentUseCase) RemoveItem(id, itemID string) (*dto.DocumentResponse, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrDocumentNotFound
	}
	if len(doc.Items) == 1 {
		return nil, domain.ErrLastItem
	}
	items, removed := invoice.RemoveItem(doc.Items, itemID)
	if removed {
		doc.Items = items
		doc.UpdatedAt = time.Now()
		if err := uc.repo.Update(doc); err != nil {
			return nil, err
		}
	}
	return toDocumentResponse(doc), nil
}

// Totals deriva los totales del documento sin mutarlo.
func (uc *DocumentUseCase) Totals(id string) (*dto.TotalsResponse, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrDocumentNotFound
	}
	t := totalsResponse(doc)
	return &t, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q (formato esperado %s)", domain.ErrInvalidInput, s, dateLayout)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func totalsResponse(doc *entity.InvoiceDocument) dto.TotalsResponse {
	t := invoice.ComputeTotals(doc.Items, doc.AmountPaid)
	return dto.TotalsResponse{
		Subtotal:          money.Round(t.Subtotal),
		Total:             money.Round(t.Total),
		BalanceDue:        money.Round(t.BalanceDue),
		SubtotalDisplay:   money.Format(t.Subtotal, doc.Currency),
		TotalDisplay:      money.Format(t.Total, doc.Currency),
		BalanceDueDisplay: money.Format(t.BalanceDue, doc.Currency),
	}
}

func toDocumentResponse(doc *entity.InvoiceDocument) *dto.DocumentResponse {
	items := make([]dto.LineItemResponse, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, dto.LineItemResponse{
			ID:            it.ID,
			Description:   it.Description,
			Quantity:      it.Quantity,
			Rate:          it.Rate,
			Amount:        it.Amount,
			AmountDisplay: money.Format(it.Amount, doc.Currency),
		})
	}
	return &dto.DocumentResponse{
		ID:             doc.ID,
		CompanyDetails: doc.CompanyDetails,
		CompanyLogo:    doc.CompanyLogo,
		BillTo:         doc.BillTo,
		PaymentDetails: doc.PaymentDetails,
		InvoiceNumber:  doc.InvoiceNumber,
		InvoiceDate:    formatDate(doc.InvoiceDate),
		DueDate:        formatDate(doc.DueDate),
		EnableDueDate:  doc.EnableDueDate,
		Currency:       doc.Currency,
		Items:          items,
		AmountPaid:     doc.AmountPaid,
		Totals:         totalsResponse(doc),
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}
