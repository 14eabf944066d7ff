package scheduling

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

// ReceiptGenerator puerto del render del recibo de pago (lo implementa pdf.ReceiptGenerator).
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, shoot *entity.Shoot, customer *entity.Customer, payments []*entity.Transaction) ([]byte, error)
}

// ReceiptUseCase arma el recibo de pago de una sesión: la sesión con su cliente
// más el historial cronológico de abonos del libro.
type ReceiptUseCase struct {
	shootRepo repository.ShootRepository
	txnRepo   repository.TransactionRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(shootRepo repository.ShootRepository, txnRepo repository.TransactionRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{shootRepo: shootRepo, txnRepo: txnRepo, generator: generator}
}

// Generate produce el PDF del recibo y un nombre de archivo descargable.
func (uc *ReceiptUseCase) Generate(ctx context.Context, shootID string) ([]byte, string, error) {
	sc, err := uc.shootRepo.GetWithCustomer(shootID)
	if err != nil {
		return nil, "", err
	}
	if sc == nil {
		return nil, "", domain.ErrNotFound
	}
	payments, err := uc.txnRepo.ListByShoot(shootID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateReceipt(ctx, &sc.Shoot, sc.Customer, payments)
	if err != nil {
		return nil, "", err
	}
	return pdf, receiptFilename(&sc.Shoot), nil
}

// receiptFilename arma un nombre seguro a partir del título de la sesión.
func receiptFilename(s *entity.Shoot) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, s.Title)
	slug = strings.Trim(strings.ToLower(slug), "-")
	if slug == "" {
		slug = s.ID
	}
	return fmt.Sprintf("recibo-%s.pdf", slug)
}
