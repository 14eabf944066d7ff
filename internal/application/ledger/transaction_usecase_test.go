package ledger_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/application/ledger"
	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ── fakes ────────────────────────────────────────────────────────────────────

type fakeTxnRepo struct {
	txns map[string]*entity.Transaction
}

func newFakeTxnRepo() *fakeTxnRepo { return &fakeTxnRepo{txns: map[string]*entity.Transaction{}} }

func (f *fakeTxnRepo) Create(t *entity.Transaction) error { f.txns[t.ID] = t; return nil }

func (f *fakeTxnRepo) GetByID(id string) (*entity.Transaction, error) {
	if t, ok := f.txns[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTxnRepo) List(limit, offset int) ([]*repository.TransactionWithRelated, error) {
	var out []*repository.TransactionWithRelated
	for _, t := range f.txns {
		out = append(out, &repository.TransactionWithRelated{Transaction: *t})
	}
	return out, nil
}

func (f *fakeTxnRepo) ListByShoot(string) ([]*entity.Transaction, error) { return nil, nil }

func (f *fakeTxnRepo) Update(t *entity.Transaction) error {
	cp := *t
	f.txns[t.ID] = &cp
	return nil
}

func (f *fakeTxnRepo) Delete(id string) error { delete(f.txns, id); return nil }

// fakeCache view cache en memoria que registra las invalidaciones.
type fakeCache struct {
	data        map[string][]byte
	invalidated []string
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string][]byte{}} }

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte) { f.data[key] = value }

func (f *fakeCache) DeleteByPrefix(_ context.Context, prefix string) {
	f.invalidated = append(f.invalidated, prefix)
	for k := range f.data {
		if strings.HasPrefix(k, prefix) {
			delete(f.data, k)
		}
	}
}

// ── CRUD ─────────────────────────────────────────────────────────────────────

func TestTransactionCreate_PorDefectoYValidaciones(t *testing.T) {
	repo := newFakeTxnRepo()
	views := newFakeCache()
	uc := ledger.NewTransactionUseCase(repo, views)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateTransactionRequest{
		Type:     entity.TransactionExpense,
		Category: "Alquiler",
		Amount:   d("1200.50"),
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), out.Date, time.Minute, "sin fecha explícita se asienta con ahora")
	assert.Nil(t, out.Related)
	assert.Contains(t, views.invalidated, "stats:")

	cases := []dto.CreateTransactionRequest{
		{Type: "TRANSFER", Category: "x", Amount: d("1")},                     // tipo fuera del enum
		{Type: entity.TransactionIncome, Category: "", Amount: d("1")},        // sin categoría
		{Type: entity.TransactionIncome, Category: "x", Amount: d("0")},       // monto cero
		{Type: entity.TransactionIncome, Category: "x", Amount: d("-5")},      // monto negativo
		{Type: entity.TransactionIncome, Category: "x", Amount: d("1"), Related: &dto.RelatedRef{Kind: "VENDOR", ID: "v1"}}, // kind desconocido
		{Type: entity.TransactionIncome, Category: "x", Amount: d("1"), Related: &dto.RelatedRef{Kind: entity.RelatedKindShoot}}, // referencia sin id
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestTransactionCreate_ConReferencia(t *testing.T) {
	repo := newFakeTxnRepo()
	uc := ledger.NewTransactionUseCase(repo, newFakeCache())

	out, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		Type:     entity.TransactionExpense,
		Category: "Nómina",
		Amount:   d("800"),
		Related:  &dto.RelatedRef{Kind: entity.RelatedKindEmployee, ID: "user-7"},
	})
	require.NoError(t, err)
	require.NotNil(t, out.Related)
	assert.Equal(t, entity.RelatedKindEmployee, out.Related.Kind)

	stored := repo.txns[out.ID]
	assert.Equal(t, "user-7", stored.Related.ID)
}

func TestTransactionUpdate_ParcialYNoEncontrado(t *testing.T) {
	repo := newFakeTxnRepo()
	views := newFakeCache()
	uc := ledger.NewTransactionUseCase(repo, views)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateTransactionRequest{
		Type:     entity.TransactionIncome,
		Category: "Pago de sesión",
		Amount:   d("500"),
	})
	require.NoError(t, err)

	newAmount := d("650")
	out, err := uc.Update(ctx, created.ID, dto.UpdateTransactionRequest{Amount: &newAmount})
	require.NoError(t, err)
	assert.True(t, out.Amount.Equal(d("650")))
	assert.Equal(t, "Pago de sesión", out.Category, "los campos no enviados no cambian")

	badType := "OTRO"
	_, err = uc.Update(ctx, created.ID, dto.UpdateTransactionRequest{Type: &badType})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, "no-existe", dto.UpdateTransactionRequest{Amount: &newAmount})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransactionDelete_InvalidaVistas(t *testing.T) {
	repo := newFakeTxnRepo()
	views := newFakeCache()
	uc := ledger.NewTransactionUseCase(repo, views)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateTransactionRequest{
		Type:     entity.TransactionExpense,
		Category: "Equipos",
		Amount:   d("300"),
	})
	require.NoError(t, err)
	views.invalidated = nil

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.Empty(t, repo.txns)
	assert.Contains(t, views.invalidated, "stats:")

	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)
}
