package entity

// PresetKind identifica una de las tres colecciones independientes de presets.
type PresetKind string

const (
	PresetCompany PresetKind = "company"
	PresetClient  PresetKind = "client"
	PresetPayment PresetKind = "payment"
)

// Valid indica si el kind corresponde a una colección conocida.
func (k PresetKind) Valid() bool {
	switch k {
	case PresetCompany, PresetClient, PresetPayment:
		return true
	}
	return false
}

// Preset es una instantánea nombrada y reutilizable de un bloque del documento.
// Name es la identidad efectiva al guardar (guardar con un nombre existente
// sobrescribe en sitio); ID es la identidad estable para cargar y eliminar.
// Logo solo se usa en presets de empresa.
type Preset struct {
	ID      string
	Name    string
	Details string
	Logo    string
}
