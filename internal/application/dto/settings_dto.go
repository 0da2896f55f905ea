package dto

// SettingsForm campos del formulario de la página de configuración.
type SettingsForm struct {
	Server   string `json:"server" form:"server"`
	Database string `json:"database" form:"database"`
}
