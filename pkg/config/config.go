package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración ambiente de la aplicación (lectura vía Viper
// desde env y opcionalmente archivo). Los parámetros de conexión a la base de
// datos NO viven aquí: se guardan en el documento de ajustes (ver Settings.File)
// porque el administrador los edita desde la página de configuración.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Session  SessionConfig
	JWT      JWTConfig
	Settings SettingsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig configuración de la sesión por cookie de las páginas HTML.
type SessionConfig struct {
	ExpMinutes int
}

// JWTConfig configuración de JWT para la superficie JSON (/api).
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SettingsConfig ubicación del documento de ajustes de conexión.
type SettingsConfig struct {
	File string // ruta del JSON {server, database}
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, JWT_SECRET, SETTINGS_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ventas-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Session: SessionConfig{
			ExpMinutes: getInt(v, "SESSION_EXPIRATION_MINUTES", 120),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "ventas-api"),
		},
		Settings: SettingsConfig{
			File: getString(v, "SETTINGS_FILE", "db_config.json"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
