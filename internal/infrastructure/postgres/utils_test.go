package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(errors.Join(errors.New("insertar usuario"), unique)), "envuelto")

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, isUniqueViolation(errors.New("conexión rechazada")))
}

func TestEscapeLike_BusquedaLiteral(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"boda", "boda"},
		{"%", `\%`},
		{"100%_algodon", `100\%\_algodon`},
		{`c:\fotos`, `c:\\fotos`},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, escapeLike(c.in), c.in)
	}
}
