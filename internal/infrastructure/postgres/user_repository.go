package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la tabla heredada Users1.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de usuarios sobre la conexión de la petición.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// FindByCredentials busca la fila con ese identificador y esa credencial
// exacta (comparación literal, parametrizada). Devuelve (nil, nil) si no hay
// coincidencia. El string de rol almacenado se resuelve aquí al enum cerrado;
// fuera de este adaptador nadie vuelve a comparar literales de la DB.
func (r *UserRepo) FindByCredentials(ctx context.Context, userID, secret string) (*entity.User, error) {
	const query = `
	SELECT "UserID", "Role"
	FROM "Users1"
	WHERE "UserID" = @user_id AND "Password" = @secret`

	args := pgx.NamedArgs{"user_id": userID, "secret": secret}

	var id, storedRole string
	err := r.db.QueryRow(ctx, query, args).Scan(&id, &storedRole)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario por credenciales: %w", err)
	}

	return &entity.User{
		UserID: id,
		Role:   entity.ResolveRole(storedRole),
	}, nil
}
