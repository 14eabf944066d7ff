package staff_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/application/staff"
	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

// ── fakes en memoria ─────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: map[string]*entity.User{}} }

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.users[id], nil }

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(*entity.User) error { return nil }

func (f *fakeUserRepo) UpdateRole(id, role string) error {
	if u := f.users[id]; u != nil {
		u.Role = role
	}
	return nil
}

func (f *fakeUserRepo) UpdatePasswordHash(string, string) error { return nil }

func (f *fakeUserRepo) ListByRoles(roles []string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		for _, r := range roles {
			if u.Role == r {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(id string) error { delete(f.users, id); return nil }

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee // por user id
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]*entity.Employee{}}
}

func (f *fakeEmployeeRepo) Create(e *entity.Employee) error { f.employees[e.UserID] = e; return nil }

func (f *fakeEmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	return f.employees[userID], nil
}

func (f *fakeEmployeeRepo) Update(*entity.Employee) error { return nil }

func (f *fakeEmployeeRepo) DeleteByUserID(userID string) (int64, error) {
	if _, ok := f.employees[userID]; !ok {
		return 0, nil
	}
	delete(f.employees, userID)
	return 1, nil
}

// fakeTx pasa los mismos repos al callback; cuenta las transacciones abiertas.
type fakeTx struct {
	users     repository.UserRepository
	employees repository.EmployeeRepository
	runs      int
}

func (f *fakeTx) RunStaff(_ context.Context, fn func(repository.UserRepository, repository.EmployeeRepository) error) error {
	f.runs++
	return fn(f.users, f.employees)
}

type fakeViews struct{ prefixes []string }

func (f *fakeViews) DeleteByPrefix(_ context.Context, prefix string) {
	f.prefixes = append(f.prefixes, prefix)
}

func newUC() (*staff.EmployeeUseCase, *fakeUserRepo, *fakeEmployeeRepo, *fakeTx) {
	users := newFakeUserRepo()
	employees := newFakeEmployeeRepo()
	tx := &fakeTx{users: users, employees: employees}
	return staff.NewEmployeeUseCase(users, employees, tx, &fakeViews{}), users, employees, tx
}

// ── tests ────────────────────────────────────────────────────────────────────

func TestCreate_AltaTransaccional(t *testing.T) {
	uc, users, employees, tx := newUC()

	out, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{
		Name: "Mert", Email: "mert@estudio.com", Position: "Fotógrafo", Role: entity.RoleEmployee,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.runs, "cuenta y ficha se escriben dentro de una transacción")
	assert.NotEmpty(t, out.TemporaryPassword, "sin password en el request se genera uno temporal")

	u, _ := users.GetByID(out.User.ID)
	require.NotNil(t, u)
	e, _ := employees.GetByUserID(out.User.ID)
	require.NotNil(t, e)
	assert.True(t, e.IsActive)
	assert.Equal(t, "Fotógrafo", e.Position)
}

func TestCreate_PasswordPropioNoSeDevuelve(t *testing.T) {
	uc, _, _, _ := newUC()
	out, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{
		Name: "Ana", Email: "ana@estudio.com", Position: "Editora", Role: entity.RoleAdmin, Password: "contraseña-propia",
	})
	require.NoError(t, err)
	assert.Empty(t, out.TemporaryPassword)
}

func TestCreate_RolCustomerRechazado(t *testing.T) {
	uc, _, _, _ := newUC()
	_, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{
		Name: "X", Email: "x@estudio.com", Position: "n/a", Role: entity.RoleCustomer,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Borrar un usuario elimina exactamente una ficha si existe, y cero si no,
// sin error en la ausencia.
func TestDelete_CascadaConYSinFicha(t *testing.T) {
	uc, users, employees, _ := newUC()
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateEmployeeRequest{
		Name: "Mert", Email: "mert@estudio.com", Position: "Fotógrafo", Role: entity.RoleEmployee,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, out.User.ID))
	u, _ := users.GetByID(out.User.ID)
	assert.Nil(t, u)
	e, _ := employees.GetByUserID(out.User.ID)
	assert.Nil(t, e)

	// Cuenta sin ficha laboral (registro directo)
	solo := &entity.User{ID: "u-solo", Email: "solo@estudio.com", Role: entity.RoleEmployee}
	require.NoError(t, users.Create(solo))
	assert.NoError(t, uc.Delete(ctx, "u-solo"), "sin ficha no hay error")
}

func TestDelete_UsuarioInexistente(t *testing.T) {
	uc, _, _, _ := newUC()
	assert.ErrorIs(t, uc.Delete(context.Background(), "nadie"), domain.ErrUserNotFound)
}

func TestChangeRole(t *testing.T) {
	uc, users, _, _ := newUC()
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateEmployeeRequest{
		Name: "Mert", Email: "mert@estudio.com", Position: "Fotógrafo", Role: entity.RoleEmployee,
	})
	require.NoError(t, err)

	require.NoError(t, uc.ChangeRole(ctx, out.User.ID, entity.RoleAdmin))
	u, _ := users.GetByID(out.User.ID)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	assert.ErrorIs(t, uc.ChangeRole(ctx, out.User.ID, entity.RoleCustomer), domain.ErrInvalidInput)
}
