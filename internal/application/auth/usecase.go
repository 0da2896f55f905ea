// Package auth contiene el caso de uso de verificación de credenciales.
package auth

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de la superficie JSON.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase verificación de credenciales contra la tabla de usuarios.
//
// La comparación es literal contra la credencial almacenada: paridad de
// comportamiento con el sistema heredado; el hashing queda fuera de alcance.
type AuthUseCase struct {
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{jwtCfg: jwtCfg}
}

// Authenticate busca la coincidencia exacta de identificador y credencial.
// Devuelve la identidad con el rol ya resuelto al enum cerrado, o
// ErrUserNotFound si no hay fila (condición normal, no excepcional).
//
// El repositorio llega por parámetro porque vive sobre la conexión de la
// petición; el llamador ya comprobó la disponibilidad de la conexión.
func (uc *AuthUseCase) Authenticate(
	ctx context.Context,
	userRepo repository.UserRepository,
	in dto.LoginRequest,
) (*entity.User, error) {
	user, err := userRepo.FindByCredentials(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// APILogin verifica credenciales y emite el JWT de la superficie JSON.
func (uc *AuthUseCase) APILogin(
	ctx context.Context,
	userRepo repository.UserRepository,
	in dto.LoginRequest,
) (*dto.LoginResponse, error) {
	user, err := uc.Authenticate(ctx, userRepo, in)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.UserID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			UserID: user.UserID,
			Role:   string(user.Role),
		},
	}, nil
}
