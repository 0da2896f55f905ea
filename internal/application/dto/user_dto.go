package dto

// LoginRequest credenciales del formulario de acceso y de POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// UserResponse identidad autenticada expuesta hacia fuera.
type UserResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"` // "admin" | "standard"
}

// LoginResponse respuesta de POST /api/auth/login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
