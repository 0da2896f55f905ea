package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// conditions compone fragmentos de predicado tipados con parámetros por nombre
// (pgx.NamedArgs). Los valores nunca se concatenan en el SQL; solo las
// cláusulas, que son constantes del código.
type conditions struct {
	clauses []string
	args    pgx.NamedArgs
}

func newConditions() *conditions {
	return &conditions{args: pgx.NamedArgs{}}
}

// dateBetween añade el predicado inclusivo de rango sobre la columna dada.
// Un rango nil no añade nada: el filtro de fechas es todo-o-nada.
func (c *conditions) dateBetween(column string, rng *repository.DateRange) *conditions {
	if rng == nil {
		return c
	}
	c.clauses = append(c.clauses, column+` BETWEEN @from_date AND @to_date`)
	c.args["from_date"] = rng.From
	c.args["to_date"] = rng.To
	return c
}

// apply devuelve la consulta con su cláusula WHERE (si hay condiciones) y los
// argumentos nombrados a enlazar.
func (c *conditions) apply(base string) (string, pgx.NamedArgs) {
	if len(c.clauses) == 0 {
		return base, c.args
	}
	return base + " WHERE " + strings.Join(c.clauses, " AND "), c.args
}
