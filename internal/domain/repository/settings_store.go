package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// SettingsStore define el puerto de persistencia de los ajustes de conexión.
type SettingsStore interface {
	// Load devuelve los últimos ajustes guardados. Si el documento no existe
	// devuelve el cero de ConnectionSettings sin error; un documento corrupto
	// propaga el error de parseo sin recuperarlo.
	Load() (entity.ConnectionSettings, error)

	// Save sobreescribe el documento completo. Falla solo ante error de E/S.
	Save(settings entity.ConnectionSettings) error
}
