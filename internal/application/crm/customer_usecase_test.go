package crm_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/studio-pro/internal/application/crm"
	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
)

// fakeCustomerRepo puerto en memoria con la misma semántica de búsqueda que
// la implementación SQL (substring case-insensitive sobre name/phone/email).
type fakeCustomerRepo struct {
	customers []*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.customers = append(f.customers, c)
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Search(query string, limit, offset int) ([]*entity.Customer, error) {
	q := strings.ToLower(query)
	var out []*entity.Customer
	for _, c := range f.customers {
		if q == "" ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error { return nil }

func (f *fakeCustomerRepo) Delete(id string) error {
	for i, c := range f.customers {
		if c.ID == id {
			f.customers = append(f.customers[:i], f.customers[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeViews registra las invalidaciones de vistas.
type fakeViews struct{ prefixes []string }

func (f *fakeViews) DeleteByPrefix(_ context.Context, prefix string) {
	f.prefixes = append(f.prefixes, prefix)
}

func TestCustomerCreate_ValidaNombre(t *testing.T) {
	uc := crm.NewCustomerUseCase(&fakeCustomerRepo{}, &fakeViews{})
	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerCreate_InvalidaVistas(t *testing.T) {
	views := &fakeViews{}
	uc := crm.NewCustomerUseCase(&fakeCustomerRepo{}, views)

	out, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Cliente Uno", Phone: "555 0101"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Contains(t, views.prefixes, "stats:")
}

// Una búsqueda que solo coincide en phone debe devolver exactamente esos
// clientes, sin importar name/email.
func TestCustomerSearch_SoloTelefono(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := crm.NewCustomerUseCase(repo, &fakeViews{})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: "Ana Pérez", Phone: "0555 111 2233", Email: "ana@x.com"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateCustomerRequest{Name: "Berk Yılmaz", Phone: "0212 444 5566", Email: "berk@x.com"})
	require.NoError(t, err)

	got, err := uc.Search("111 22", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana Pérez", got[0].Name)
}

func TestCustomerGetDelete_NoEncontrado(t *testing.T) {
	uc := crm.NewCustomerUseCase(&fakeCustomerRepo{}, &fakeViews{})
	_, err := uc.Get("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	err = uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
