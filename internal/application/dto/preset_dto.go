package dto

// SavePresetRequest entrada para guardar un preset a partir de los valores
// actuales del documento activo.
type SavePresetRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	DocumentID string `json:"document_id" validate:"required"`
}

// ApplyPresetRequest entrada para copiar un preset en el documento activo.
type ApplyPresetRequest struct {
	DocumentID string `json:"document_id" validate:"required"`
}

// PresetResponse salida de un preset.
type PresetResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Details string `json:"details"`
	Logo    string `json:"logo,omitempty"`
}

// PresetListResponse colección de presets en orden de inserción.
type PresetListResponse struct {
	Items []PresetResponse `json:"items"`
}
