package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reporta si el error viene de un constraint único
// (email de cuenta, ficha laboral por usuario).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapa los metacaracteres de LIKE/ILIKE para que el texto de
// búsqueda del usuario se compare literal: "%" no debe coincidir con todo.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
