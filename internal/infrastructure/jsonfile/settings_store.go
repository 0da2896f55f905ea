// Package jsonfile persiste los ajustes de conexión en un documento JSON local.
package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.SettingsStore = (*SettingsStore)(nil)

// SettingsStore adaptador del puerto SettingsStore sobre un archivo JSON
// gestionado con Viper. El archivo tiene exactamente dos claves: server y
// database. Último escritor gana; no hay bloqueo entre peticiones.
type SettingsStore struct {
	path string
}

// NewSettingsStore construye el store sobre la ruta dada.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load lee el documento. Archivo inexistente -> ajustes vacíos sin error;
// JSON corrupto -> error de parseo propagado tal cual (no se recupera).
func (s *SettingsStore) Load() (entity.ConnectionSettings, error) {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return entity.ConnectionSettings{}, nil
		}
		return entity.ConnectionSettings{}, fmt.Errorf("leer ajustes %s: %w", s.path, err)
	}

	var settings entity.ConnectionSettings
	if err := v.Unmarshal(&settings); err != nil {
		return entity.ConnectionSettings{}, fmt.Errorf("decodificar ajustes %s: %w", s.path, err)
	}
	return settings, nil
}

// Save sobreescribe el documento completo con los ajustes dados.
func (s *SettingsStore) Save(settings entity.ConnectionSettings) error {
	v := viper.New()
	v.SetConfigType("json")
	v.Set("server", settings.Server)
	v.Set("database", settings.Database)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("guardar ajustes %s: %w", s.path, err)
	}
	return nil
}
