package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/invoice-studio/internal/application/dto"
	"github.com/tu-usuario/invoice-studio/internal/application/ports"
	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/internal/domain/invoice"
	"github.com/tu-usuario/invoice-studio/internal/domain/repository"
)

// PresetUseCase gestiona las tres colecciones de presets contra el documento
// activo: guardar (copy-out de los campos del documento), aplicar (copy-in
// hacia el documento) y eliminar. Las colecciones son instantáneas
// independientes; cargar un preset no crea ningún vínculo vivo posterior.
type PresetUseCase struct {
	presets  repository.PresetRepository
	docs     repository.DocumentRepository
	notifier ports.Notifier
}

// NewPresetUseCase construye el caso de uso.
func NewPresetUseCase(presets repository.PresetRepository, docs repository.DocumentRepository, notifier ports.Notifier) *PresetUseCase {
	return &PresetUseCase{presets: presets, docs: docs, notifier: notifier}
}

// List lista la colección del kind en orden de inserción.
func (uc *PresetUseCase) List(kind entity.PresetKind) (*dto.PresetListResponse, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidPresetKind
	}
	list, err := uc.presets.List(kind)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PresetResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toPresetResponse(p))
	}
	return &dto.PresetListResponse{Items: items}, nil
}

// Save guarda un preset desde los valores actuales del documento. El nombre es
// obligatorio tras recortar espacios: vacío aborta sin mutar nada y emite una
// notificación de error. Un nombre ya existente sobrescribe ese preset en
// sitio conservando su ID.
func (uc *PresetUseCase) Save(kind entity.PresetKind, in dto.SavePresetRequest) (*dto.PresetResponse, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidPresetKind
	}
	doc, err := uc.docs.GetByID(in.DocumentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrDocumentNotFound
	}

	details, logo := snapshotFromDocument(kind, doc)
	list, err := uc.presets.List(kind)
	if err != nil {
		return nil, err
	}
	updated, preset, created, err := invoice.SavePreset(list, in.Name, details, logo)
	if err != nil {
		if errors.Is(err, domain.ErrPresetNameRequired) {
			uc.notifier.Notify("Nombre requerido", "Ingresa un nombre para el preset", ports.SeverityError)
		}
		return nil, err
	}
	if err := uc.presets.Replace(kind, updated); err != nil {
		return nil, err
	}

	if created {
		uc.notifier.Notify("Preset guardado", fmt.Sprintf("El preset %q se guardó correctamente", preset.Name), ports.SeveritySuccess)
	} else {
		uc.notifier.Notify("Preset actualizado", fmt.Sprintf("El preset %q se sobrescribió con los valores actuales", preset.Name), ports.SeveritySuccess)
	}
	out := toPresetResponse(preset)
	return &out, nil
}

// Apply copia los campos del preset en el documento activo. La colección no
// se muta. Un preset inexistente no tiene efecto visible sobre el documento
// (la capa HTTP lo reporta como no encontrado).
func (uc *PresetUseCase) Apply(kind entity.PresetKind, presetID, documentID string) (*dto.DocumentResponse, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidPresetKind
	}
	doc, err := uc.docs.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrDocumentNotFound
	}
	list, err := uc.presets.List(kind)
	if err != nil {
		return nil, err
	}
	preset := invoice.FindPreset(list, presetID)
	if preset == nil {
		return nil, domain.ErrPresetNotFound
	}

	switch kind {
	case entity.PresetCompany:
		doc.CompanyDetails = preset.Details
		if preset.Logo != "" {
			doc.CompanyLogo = preset.Logo
		}
	case entity.PresetClient:
		doc.BillTo = preset.Details
	case entity.PresetPayment:
		doc.PaymentDetails = preset.Details
	}
	doc.UpdatedAt = time.Now()
	if err := uc.docs.Update(doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// Delete elimina el preset con el ID dado. Un ID inexistente es un no-op
// silencioso; solo se notifica cuando algo se eliminó de verdad. Los campos
// actuales del documento no se tocan aunque provengan de este preset.
func (uc *PresetUseCase) Delete(kind entity.PresetKind, presetID string) error {
	if !kind.Valid() {
		return domain.ErrInvalidPresetKind
	}
	list, err := uc.presets.List(kind)
	if err != nil {
		return err
	}
	updated, deleted := invoice.DeletePreset(list, presetID)
	if !deleted {
		return nil
	}
	if err := uc.presets.Replace(kind, updated); err != nil {
		return err
	}
	uc.notifier.Notify("Preset eliminado", "El preset se eliminó de la colección", ports.SeverityInfo)
	return nil
}

// snapshotFromDocument extrae la instantánea correspondiente al kind.
// El logo solo aplica a presets de empresa.
func snapshotFromDocument(kind entity.PresetKind, doc *entity.InvoiceDocument) (details, logo string) {
	switch kind {
	case entity.PresetCompany:
		return doc.CompanyDetails, doc.CompanyLogo
	case entity.PresetClient:
		return doc.BillTo, ""
	case entity.PresetPayment:
		return doc.PaymentDetails, ""
	}
	return "", ""
}

func toPresetResponse(p entity.Preset) dto.PresetResponse {
	return dto.PresetResponse{
		ID:      p.ID,
		Name:    p.Name,
		Details: p.Details,
		Logo:    p.Logo,
	}
}
