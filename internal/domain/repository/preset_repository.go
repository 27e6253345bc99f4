package repository

import "github.com/tu-usuario/invoice-studio/internal/domain/entity"

// PresetRepository define el puerto de almacenamiento para las tres
// colecciones independientes de presets (company, client, payment).
// List devuelve la colección en su orden de inserción; Replace la
// sustituye completa (las mutaciones se calculan en el dominio).
type PresetRepository interface {
	List(kind entity.PresetKind) ([]entity.Preset, error)
	Replace(kind entity.PresetKind, presets []entity.Preset) error
}
