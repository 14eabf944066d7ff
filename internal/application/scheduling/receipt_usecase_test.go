package scheduling_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/application/scheduling"
	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
)

// fakeGenerator captura lo que se le pasa y devuelve bytes fijos.
type fakeGenerator struct {
	shoot    *entity.Shoot
	customer *entity.Customer
	payments []*entity.Transaction
}

func (f *fakeGenerator) GenerateReceipt(_ context.Context, s *entity.Shoot, c *entity.Customer, p []*entity.Transaction) ([]byte, error) {
	f.shoot, f.customer, f.payments = s, c, p
	return []byte("%PDF-fake"), nil
}

func TestReceipt_GeneraConHistorial(t *testing.T) {
	uc, shoots, txns := newUC()
	seedShoot(shoots, "0", "3000")
	ctx := context.Background()

	_, err := uc.RecordPayment(ctx, "shoot-1", dto.RecordPaymentRequest{Amount: d("1000")})
	require.NoError(t, err)
	_, err = uc.RecordPayment(ctx, "shoot-1", dto.RecordPaymentRequest{Amount: d("500")})
	require.NoError(t, err)

	gen := &fakeGenerator{}
	receipts := scheduling.NewReceiptUseCase(shoots, &listingTxnRepo{created: txns.created}, gen)

	pdf, filename, err := receipts.Generate(ctx, "shoot-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "recibo-boda-en-la-playa.pdf", filename)

	require.NotNil(t, gen.shoot)
	assert.True(t, gen.shoot.Deposit.Equal(d("1500")))
	assert.Len(t, gen.payments, 2)
}

func TestReceipt_SesionInexistente(t *testing.T) {
	shoots := newFakeShootRepo()
	receipts := scheduling.NewReceiptUseCase(shoots, &fakeTxnRepo{}, &fakeGenerator{})

	_, _, err := receipts.Generate(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// listingTxnRepo expone como historial de sesión lo acumulado por el fake del libro.
type listingTxnRepo struct {
	fakeTxnRepo
	created []*entity.Transaction
}

func (f *listingTxnRepo) ListByShoot(shootID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range f.created {
		if t.Related.Kind == entity.RelatedKindShoot && t.Related.ID == shootID {
			out = append(out, t)
		}
	}
	return out, nil
}
