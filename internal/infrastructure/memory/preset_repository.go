package memory

import (
	"sync"

	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/internal/domain/repository"
)

// Asegura que PresetRepo implementa repository.PresetRepository.
var _ repository.PresetRepository = (*PresetRepo)(nil)

// PresetRepo almacén en memoria de las tres colecciones de presets,
// cada una como secuencia ordenada por inserción.
type PresetRepo struct {
	mu          sync.RWMutex
	collections map[entity.PresetKind][]entity.Preset
}

// NewPresetRepository construye el almacén con las colecciones vacías.
func NewPresetRepository() *PresetRepo {
	return &PresetRepo{collections: make(map[entity.PresetKind][]entity.Preset)}
}

// List devuelve una copia de la colección en su orden de inserción.
func (r *PresetRepo) List(kind entity.PresetKind) ([]entity.Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.collections[kind]
	out := make([]entity.Preset, len(src))
	copy(out, src)
	return out, nil
}

// Replace sustituye la colección completa del kind.
func (r *PresetRepo) Replace(kind entity.PresetKind, presets []entity.Preset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]entity.Preset, len(presets))
	copy(stored, presets)
	r.collections[kind] = stored
	return nil
}
