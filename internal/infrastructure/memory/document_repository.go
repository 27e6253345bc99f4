// Package memory implementa los puertos de almacenamiento sobre estructuras
// en memoria. No hay persistencia de servidor: el estado vive lo que vive el
// proceso, protegido con un RWMutex porque el servidor HTTP atiende en
// paralelo aunque el modelo de edición sea de un solo usuario.
package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/internal/domain/repository"
)

// Asegura que DocumentRepo implementa repository.DocumentRepository.
var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo almacén en memoria de documentos activos.
type DocumentRepo struct {
	mu   sync.RWMutex
	docs map[string]*entity.InvoiceDocument
}

// NewDocumentRepository construye el almacén vacío.
func NewDocumentRepository() *DocumentRepo {
	return &DocumentRepo{docs: make(map[string]*entity.InvoiceDocument)}
}

// Create registra un documento nuevo.
func (r *DocumentRepo) Create(doc *entity.InvoiceDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = cloneDocument(doc)
	return nil
}

// GetByID obtiene una copia del documento o (nil, nil) si no existe.
func (r *DocumentRepo) GetByID(id string) (*entity.InvoiceDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return cloneDocument(doc), nil
}

// Update reemplaza el documento almacenado.
func (r *DocumentRepo) Update(doc *entity.InvoiceDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = cloneDocument(doc)
	return nil
}

// List devuelve los documentos ordenados por fecha de creación.
func (r *DocumentRepo) List() ([]*entity.InvoiceDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.InvoiceDocument, 0, len(r.docs))
	for _, d := range r.docs {
		out = append(out, cloneDocument(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// cloneDocument copia el documento para que los callers no compartan el slice
// de ítems con el almacén.
func cloneDocument(doc *entity.InvoiceDocument) *entity.InvoiceDocument {
	c := *doc
	c.Items = make([]entity.LineItem, len(doc.Items))
	copy(c.Items, doc.Items)
	if doc.InvoiceDate != nil {
		t := *doc.InvoiceDate
		c.InvoiceDate = &t
	}
	if doc.DueDate != nil {
		t := *doc.DueDate
		c.DueDate = &t
	}
	return &c
}
