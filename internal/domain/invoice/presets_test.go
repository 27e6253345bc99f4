package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
	"github.com/tu-usuario/invoice-studio/internal/domain/invoice"
)

func TestSavePreset_CreaConIDNuevo(t *testing.T) {
	presets, p, created, err := invoice.SavePreset(nil, "Acme", "Acme Corp\nacme@mail.com", "logo.png")

	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, presets, 1)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Acme", p.Name)
	assert.Equal(t, "logo.png", p.Logo)
}

func TestSavePreset_NombreSeRecorta(t *testing.T) {
	presets, p, _, err := invoice.SavePreset(nil, "  Acme  ", "detalles", "")
	require.NoError(t, err)
	assert.Equal(t, "Acme", p.Name)

	// Guardar de nuevo con el nombre sin espacios sobrescribe el mismo preset
	presets, _, created, err := invoice.SavePreset(presets, "Acme", "otros", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, presets, 1)
}

func TestSavePreset_NombreVacioNoMutaNada(t *testing.T) {
	base, _, _, err := invoice.SavePreset(nil, "Acme", "detalles", "")
	require.NoError(t, err)

	for _, name := range []string{"", "   ", "\t\n"} {
		out, _, created, err := invoice.SavePreset(base, name, "x", "")
		assert.ErrorIs(t, err, domain.ErrPresetNameRequired)
		assert.False(t, created)
		assert.Equal(t, base, out, "la colección no debe mutar ante un nombre inválido")
	}
}

// Guardar "Acme" dos veces con detalles distintos: la colección sigue con una
// sola entrada "Acme", con los segundos detalles y el ID original.
func TestSavePreset_SobrescribeEnSitioConservandoID(t *testing.T) {
	presets, first, created, err := invoice.SavePreset(nil, "Acme", "v1", "logo1.png")
	require.NoError(t, err)
	require.True(t, created)

	presets, second, created, err := invoice.SavePreset(presets, "Acme", "v2", "logo2.png")
	require.NoError(t, err)
	assert.False(t, created, "mismo nombre debe sobrescribir, no crear")
	require.Len(t, presets, 1)
	assert.Equal(t, first.ID, second.ID, "el ID debe conservarse al sobrescribir")
	assert.Equal(t, "v2", presets[0].Details)
	assert.Equal(t, "logo2.png", presets[0].Logo)
}

func TestSavePreset_SobrescribirConservaPosicion(t *testing.T) {
	var presets []entity.Preset
	var err error
	for _, name := range []string{"A", "B", "C"} {
		presets, _, _, err = invoice.SavePreset(presets, name, name+" v1", "")
		require.NoError(t, err)
	}

	presets, _, _, err = invoice.SavePreset(presets, "B", "B v2", "")
	require.NoError(t, err)

	require.Len(t, presets, 3)
	assert.Equal(t, "B", presets[1].Name, "sobrescribir no debe mover el preset de posición")
	assert.Equal(t, "B v2", presets[1].Details)
}

func TestFindPreset(t *testing.T) {
	presets, p, _, err := invoice.SavePreset(nil, "Acme", "detalles", "")
	require.NoError(t, err)

	found := invoice.FindPreset(presets, p.ID)
	require.NotNil(t, found)
	assert.Equal(t, "Acme", found.Name)

	assert.Nil(t, invoice.FindPreset(presets, "no-existe"))
}

// Dado [A, B, C], eliminar B deja [A, C].
func TestDeletePreset_ConservaOrdenRelativo(t *testing.T) {
	var presets []entity.Preset
	ids := map[string]string{}
	for _, name := range []string{"A", "B", "C"} {
		var p entity.Preset
		var err error
		presets, p, _, err = invoice.SavePreset(presets, name, "", "")
		require.NoError(t, err)
		ids[name] = p.ID
	}

	presets, deleted := invoice.DeletePreset(presets, ids["B"])
	require.True(t, deleted)
	require.Len(t, presets, 2)
	assert.Equal(t, "A", presets[0].Name)
	assert.Equal(t, "C", presets[1].Name)
}

func TestDeletePreset_IDInexistenteEsNoOp(t *testing.T) {
	presets, _, _, err := invoice.SavePreset(nil, "Acme", "", "")
	require.NoError(t, err)

	out, deleted := invoice.DeletePreset(presets, "no-existe")
	assert.False(t, deleted)
	assert.Len(t, out, 1)
}
