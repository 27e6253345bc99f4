package repository

import "github.com/tu-usuario/invoice-studio/internal/domain/entity"

// DocumentRepository define el puerto de almacenamiento para los documentos
// activos en edición (DIP). La implementación vive en infrastructure.
// GetByID devuelve (nil, nil) cuando el documento no existe.
type DocumentRepository interface {
	Create(doc *entity.InvoiceDocument) error
	GetByID(id string) (*entity.InvoiceDocument, error)
	Update(doc *entity.InvoiceDocument) error
	List() ([]*entity.InvoiceDocument, error)
}
