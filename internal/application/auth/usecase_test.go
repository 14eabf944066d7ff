package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/studio-pro/internal/application/auth"
	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
)

// fakeUserRepo implementación en memoria del puerto para tests.
type fakeUserRepo struct {
	users map[string]*entity.User // por email en minúsculas
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[strings.ToLower(u.Email)] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return f.users[strings.ToLower(email)], nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(*entity.User) error                  { return nil }
func (f *fakeUserRepo) UpdateRole(string, string) error            { return nil }
func (f *fakeUserRepo) UpdatePasswordHash(string, string) error    { return nil }
func (f *fakeUserRepo) ListByRoles([]string) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Delete(string) error                        { return nil }

func testJWT() auth.JWTConfig {
	return auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "studio-pro-test"}
}

func TestRegister_CreaEmpleadoPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT())

	out, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "Ana@Estudio.Com", Password: "contraseña123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, out.Role)
	assert.Equal(t, "ana@estudio.com", out.Email, "el email se normaliza a minúsculas")

	stored := repo.users["ana@estudio.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña123", stored.PasswordHash, "el password nunca se persiste en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("contraseña123")))
}

func TestRegister_EmailDuplicadoCaseInsensitive(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT())

	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@estudio.com", Password: "contraseña123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Name: "Otra", Email: "ANA@ESTUDIO.COM", Password: "otracontraseña"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposFaltantes(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT())
	_, err := uc.Register(dto.RegisterRequest{Email: "x@y.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_OKYCredencialesMalas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT())

	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@estudio.com", Password: "contraseña123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@estudio.com", Password: "contraseña123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleEmployee, out.User.Role)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@estudio.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@estudio.com", Password: "da igual"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuario inexistente colapsa en el mismo error")
}
