package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// UserRepository define el puerto de consulta de usuarios (DIP).
type UserRepository interface {
	// FindByCredentials busca la fila con ese identificador y esa credencial
	// exacta. Devuelve (nil, nil) si no hay coincidencia; error solo ante un
	// fallo real de la consulta.
	FindByCredentials(ctx context.Context, userID, secret string) (*entity.User, error)
}
