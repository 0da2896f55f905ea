package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/settings"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

type fakeStore struct {
	stored entity.ConnectionSettings
}

func (f *fakeStore) Load() (entity.ConnectionSettings, error) { return f.stored, nil }

func (f *fakeStore) Save(s entity.ConnectionSettings) error {
	f.stored = s
	return nil
}

func TestSave_PersisteLosCamposDelFormularioTalCual(t *testing.T) {
	store := &fakeStore{}
	uc := settings.NewSettingsUseCase(store)

	err := uc.Save(dto.SettingsForm{Server: "  db.interna.local ", Database: "ventas"})
	require.NoError(t, err)

	// Sin normalización: lo que envía el formulario es lo que se guarda.
	assert.Equal(t, "  db.interna.local ", store.stored.Server)
	assert.Equal(t, "ventas", store.stored.Database)
}

func TestCurrent_DevuelveLoAlmacenado(t *testing.T) {
	uc := settings.NewSettingsUseCase(&fakeStore{
		stored: entity.ConnectionSettings{Server: "db", Database: "ventas"},
	})

	current, err := uc.Current()
	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionSettings{Server: "db", Database: "ventas"}, current)
}
