package scheduling_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/application/scheduling"
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

// ── fakes en memoria ─────────────────────────────────────────────────────────

type fakeShootRepo struct {
	shoots map[string]*entity.Shoot
}

func newFakeShootRepo() *fakeShootRepo { return &fakeShootRepo{shoots: map[string]*entity.Shoot{}} }

func (f *fakeShootRepo) Create(s *entity.Shoot) error { f.shoots[s.ID] = s; return nil }

func (f *fakeShootRepo) GetByID(id string) (*entity.Shoot, error) {
	if s, ok := f.shoots[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeShootRepo) GetByIDForUpdate(id string) (*entity.Shoot, error) {
	return f.GetByID(id)
}

func (f *fakeShootRepo) GetWithCustomer(id string) (*repository.ShootWithCustomer, error) {
	s, _ := f.GetByID(id)
	if s == nil {
		return nil, nil
	}
	return &repository.ShootWithCustomer{Shoot: *s}, nil
}

func (f *fakeShootRepo) List(repository.ShootFilter) ([]*repository.ShootWithCustomer, error) {
	var out []*repository.ShootWithCustomer
	for _, s := range f.shoots {
		out = append(out, &repository.ShootWithCustomer{Shoot: *s})
	}
	return out, nil
}

func (f *fakeShootRepo) Update(s *entity.Shoot) error {
	cp := *s
	f.shoots[s.ID] = &cp
	return nil
}

func (f *fakeShootRepo) UpdateDeposit(id string, deposit decimal.Decimal, updatedAt time.Time) error {
	s := f.shoots[id]
	s.Deposit = deposit
	s.UpdatedAt = updatedAt
	return nil
}

func (f *fakeShootRepo) UpdatePrice(id string, price decimal.Decimal, updatedAt time.Time) error {
	s := f.shoots[id]
	s.TotalPrice = price
	s.UpdatedAt = updatedAt
	return nil
}

func (f *fakeShootRepo) Delete(id string) error { delete(f.shoots, id); return nil }

type fakeTxnRepo struct {
	created []*entity.Transaction
}

func (f *fakeTxnRepo) Create(t *entity.Transaction) error { f.created = append(f.created, t); return nil }
func (f *fakeTxnRepo) GetByID(string) (*entity.Transaction, error) { return nil, nil }
func (f *fakeTxnRepo) List(int, int) ([]*repository.TransactionWithRelated, error) {
	return nil, nil
}
func (f *fakeTxnRepo) ListByShoot(string) ([]*entity.Transaction, error) { return nil, nil }
func (f *fakeTxnRepo) Update(*entity.Transaction) error                  { return nil }
func (f *fakeTxnRepo) Delete(string) error                               { return nil }

// fakeTx serializa los callbacks como lo haría el bloqueo de fila en pg.
type fakeTx struct {
	shoots *fakeShootRepo
	txns   *fakeTxnRepo
}

func (f *fakeTx) RunShoot(_ context.Context, fn func(repository.ShootRepository, repository.TransactionRepository) error) error {
	return fn(f.shoots, f.txns)
}

type fakeViews struct{ invalidations int }

func (f *fakeViews) DeleteByPrefix(context.Context, string) { f.invalidations++ }

func newUC() (*scheduling.ShootUseCase, *fakeShootRepo, *fakeTxnRepo) {
	shoots := newFakeShootRepo()
	txns := &fakeTxnRepo{}
	uc := scheduling.NewShootUseCase(shoots, &fakeTx{shoots: shoots, txns: txns}, &fakeViews{})
	return uc, shoots, txns
}

func seedShoot(repo *fakeShootRepo, deposit, price string) *entity.Shoot {
	s := &entity.Shoot{
		ID:            "shoot-1",
		CustomerID:    "cust-1",
		Title:         "Boda en la playa",
		Status:        entity.ShootStatusPlanned,
		StartDateTime: time.Now().Add(24 * time.Hour),
		EndDateTime:   time.Now().Add(28 * time.Hour),
		TotalPrice:    d(price),
		Deposit:       d(deposit),
	}
	repo.shoots[s.ID] = s
	return s
}

// ── RecordPayment ────────────────────────────────────────────────────────────

// Abono de 500 sobre deposit=1000 y precio=3000: deposit queda en 1500 y el
// libro recibe exactamente un INCOME de 500 referenciando la sesión.
func TestRecordPayment_AbonoNormal(t *testing.T) {
	uc, shoots, txns := newUC()
	seedShoot(shoots, "1000", "3000")

	out, err := uc.RecordPayment(context.Background(), "shoot-1", dto.RecordPaymentRequest{Amount: d("500")})
	require.NoError(t, err)
	assert.True(t, out.NewDeposit.Equal(d("1500")), "new deposit: %s", out.NewDeposit)
	assert.True(t, out.Remaining.Equal(d("1500")))

	s, _ := shoots.GetByID("shoot-1")
	assert.True(t, s.Deposit.Equal(d("1500")))

	require.Len(t, txns.created, 1)
	tx := txns.created[0]
	assert.Equal(t, entity.TransactionIncome, tx.Type)
	assert.True(t, tx.Amount.Equal(d("500")))
	assert.Equal(t, entity.RelatedKindShoot, tx.Related.Kind)
	assert.Equal(t, "shoot-1", tx.Related.ID)
	assert.Equal(t, scheduling.PaymentCategory, tx.Category)
}

// Dos abonos de 100 partiendo de deposit=0 terminan en 200: cada uno computa
// sobre la lectura hecha dentro de su transacción, no sobre un estado stale.
func TestRecordPayment_AbonosSucesivosAcumulan(t *testing.T) {
	uc, shoots, txns := newUC()
	seedShoot(shoots, "0", "3000")
	ctx := context.Background()

	_, err := uc.RecordPayment(ctx, "shoot-1", dto.RecordPaymentRequest{Amount: d("100")})
	require.NoError(t, err)
	out, err := uc.RecordPayment(ctx, "shoot-1", dto.RecordPaymentRequest{Amount: d("100")})
	require.NoError(t, err)

	assert.True(t, out.NewDeposit.Equal(d("200")), "no se pierde ningún incremento: %s", out.NewDeposit)
	assert.Len(t, txns.created, 2)
}

func TestRecordPayment_SobrepagoRechazado(t *testing.T) {
	uc, shoots, txns := newUC()
	seedShoot(shoots, "2800", "3000")

	_, err := uc.RecordPayment(context.Background(), "shoot-1", dto.RecordPaymentRequest{Amount: d("500")})
	assert.ErrorIs(t, err, domain.ErrDepositExceedsPrice)

	s, _ := shoots.GetByID("shoot-1")
	assert.True(t, s.Deposit.Equal(d("2800")), "el abono rechazado no toca la sesión")
	assert.Empty(t, txns.created, "ni el libro")
}

func TestRecordPayment_MontoNoPositivo(t *testing.T) {
	uc, shoots, _ := newUC()
	seedShoot(shoots, "0", "3000")
	ctx := context.Background()

	_, err := uc.RecordPayment(ctx, "shoot-1", dto.RecordPaymentRequest{Amount: d("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RecordPayment(ctx, "shoot-1", dto.RecordPaymentRequest{Amount: d("-50")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordPayment_SesionInexistente(t *testing.T) {
	uc, _, _ := newUC()
	_, err := uc.RecordPayment(context.Background(), "nada", dto.RecordPaymentRequest{Amount: d("100")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── UpdatePrice ──────────────────────────────────────────────────────────────

func TestUpdatePrice_SubirYBajar(t *testing.T) {
	uc, shoots, _ := newUC()
	seedShoot(shoots, "1000", "3000")
	ctx := context.Background()

	// Subir el precio está permitido (la regla "solo bajar" era de la UI vieja)
	out, err := uc.UpdatePrice(ctx, "shoot-1", d("5000"))
	require.NoError(t, err)
	assert.True(t, out.TotalPrice.Equal(d("5000")))

	// Bajar también, mientras no quede debajo del abono recaudado
	out, err = uc.UpdatePrice(ctx, "shoot-1", d("1000"))
	require.NoError(t, err)
	assert.True(t, out.TotalPrice.Equal(d("1000")))
	assert.True(t, out.Remaining.Equal(d("0")))
}

func TestUpdatePrice_DebajoDelAbono(t *testing.T) {
	uc, shoots, _ := newUC()
	seedShoot(shoots, "1000", "3000")

	_, err := uc.UpdatePrice(context.Background(), "shoot-1", d("900"))
	assert.ErrorIs(t, err, domain.ErrPriceBelowDeposit)

	_, err = uc.UpdatePrice(context.Background(), "shoot-1", d("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestShootCreate_Validaciones(t *testing.T) {
	uc, _, _ := newUC()
	ctx := context.Background()
	base := dto.CreateShootRequest{
		CustomerID:    "cust-1",
		Title:         "Sesión familiar",
		StartDateTime: time.Now(),
		EndDateTime:   time.Now().Add(2 * time.Hour),
		TotalPrice:    d("1500"),
	}

	out, err := uc.Create(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, entity.ShootStatusPlanned, out.Status, "toda sesión nueva arranca PLANNED")
	assert.True(t, out.Remaining.Equal(d("1500")))

	bad := base
	bad.Deposit = d("2000")
	_, err = uc.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrDepositExceedsPrice, "el abono inicial no puede superar el precio")

	bad = base
	bad.EndDateTime = base.StartDateTime.Add(-time.Hour)
	_, err = uc.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
