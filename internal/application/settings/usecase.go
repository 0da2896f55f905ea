// Package settings contiene el caso de uso de los ajustes de conexión.
package settings

import (
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// SettingsUseCase lectura y escritura de los ajustes de conexión persistidos.
type SettingsUseCase struct {
	store repository.SettingsStore
}

// NewSettingsUseCase construye el caso de uso sobre el store dado.
func NewSettingsUseCase(store repository.SettingsStore) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

// Current devuelve los ajustes vigentes (vacíos si nunca se guardaron).
func (uc *SettingsUseCase) Current() (entity.ConnectionSettings, error) {
	return uc.store.Load()
}

// Save sobreescribe los ajustes con los campos del formulario tal cual;
// no hay validación más allá de lo que el formulario envíe.
func (uc *SettingsUseCase) Save(form dto.SettingsForm) error {
	return uc.store.Save(entity.ConnectionSettings{
		Server:   form.Server,
		Database: form.Database,
	})
}
