package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNoConnection indica que no hay conexión a la base de datos disponible:
	// o no se han guardado los ajustes de conexión, o el driver no pudo conectar.
	// El llamador redirige a la página de configuración; no es un fallo interno.
	ErrNoConnection = errors.New("sin conexión a la base de datos")

	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrInvalidInput = errors.New("entrada inválida")
)
