package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/studio-pro/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUser   = "00000000-0000-0000-0000-000000000001"
	testIssuer = "studio-pro-test"
)

// El token generado debe poder parsearse con el mismo secret y devolver los mismos claims.
func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, "ADMIN", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUser, userID)
	assert.Equal(t, "ADMIN", role)
}

// Un token firmado con otro secret debe rechazarse.
func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, "EMPLOYEE", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

// Un token expirado debe rechazarse.
func TestParse_Expired(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, "EMPLOYEE", testIssuer, -5)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

// Sin secret no se puede ni generar ni parsear.
func TestEmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testUser, "ADMIN", testIssuer, 60)
	assert.Error(t, err)

	_, _, err = pkgjwt.Parse("", "cualquier-cosa")
	assert.Error(t, err)
}
