package entity

import "strings"

// Role es el conjunto cerrado de roles de la aplicación. El string libre que
// guarda la tabla de usuarios se resuelve UNA sola vez al autenticar; el resto
// del código compara contra estas constantes, nunca contra literales de la DB.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// ResolveRole mapea el rol almacenado en la tabla de usuarios al enum cerrado.
// Cualquier valor que no sea el rol de administrador queda como standard.
func ResolveRole(stored string) Role {
	switch strings.ToLower(strings.TrimSpace(stored)) {
	case "admin", "manager":
		return RoleAdmin
	default:
		return RoleStandard
	}
}

// ParseRole reconstruye un Role desde su representación serializada (sesión,
// claims JWT). Valores desconocidos degradan a standard, nunca a admin.
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleStandard
}

// User identidad autenticada: el identificador de acceso y su rol ya resuelto.
// La credencial nunca viaja en la entidad después de la verificación.
type User struct {
	UserID string
	Role   Role
}
