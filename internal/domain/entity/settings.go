package entity

// ConnectionSettings parámetros de conexión que el administrador guarda desde
// la página de configuración. Se persisten en un documento JSON local con
// exactamente estas dos claves; no hay validación más allá de la presencia.
type ConnectionSettings struct {
	Server   string `json:"server" mapstructure:"server"`
	Database string `json:"database" mapstructure:"database"`
}

// Configured indica si hay suficiente información para intentar conectar.
func (s ConnectionSettings) Configured() bool {
	return s.Server != "" && s.Database != ""
}
