package invoice

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

// SavePreset guarda una instantánea en la colección ordenada. El nombre,
// tras recortar espacios, no puede quedar vacío (domain.ErrPresetNameRequired,
// sin mutación). Si un preset existente tiene exactamente ese nombre se
// sobrescriben sus Details y Logo en sitio, conservando su ID y su posición;
// si no, se agrega uno nuevo al final con ID recién generado.
// Devuelve la colección resultante, el preset afectado y si fue creado.
func SavePreset(presets []entity.Preset, name, details, logo string) ([]entity.Preset, entity.Preset, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return presets, entity.Preset{}, false, domain.ErrPresetNameRequired
	}
	out := clonePresets(presets)
	for i := range out {
		if out[i].Name == name {
			out[i].Details = details
			out[i].Logo = logo
			return out, out[i], false, nil
		}
	}
	p := entity.Preset{
		ID:      uuid.New().String(),
		Name:    name,
		Details: details,
		Logo:    logo,
	}
	return append(out, p), p, true, nil
}

// FindPreset busca por ID. Devuelve nil si no existe.
func FindPreset(presets []entity.Preset, id string) *entity.Preset {
	for i := range presets {
		if presets[i].ID == id {
			p := presets[i]
			return &p
		}
	}
	return nil
}

// DeletePreset elimina el preset con el ID dado conservando el orden relativo
// del resto. No-op si el ID no existe. No afecta los campos del documento
// activo aunque hayan sido poblados cargando este preset.
func DeletePreset(presets []entity.Preset, id string) ([]entity.Preset, bool) {
	out := make([]entity.Preset, 0, len(presets))
	deleted := false
	for _, p := range presets {
		if p.ID == id {
			deleted = true
			continue
		}
		out = append(out, p)
	}
	return out, deleted
}

func clonePresets(presets []entity.Preset) []entity.Preset {
	out := make([]entity.Preset, len(presets))
	copy(out, presets)
	return out
}
