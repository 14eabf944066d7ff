// Package scheduling gestiona la agenda del estudio: sesiones, abonos y tareas.
package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/studio-pro/internal/application/crm"
	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

// Categoría con la que los abonos de sesión se asientan en el libro.
const PaymentCategory = "Pago de sesión"

// ShootUseCase casos de uso de sesiones fotográficas.
type ShootUseCase struct {
	shootRepo repository.ShootRepository
	tx        TxRunner
	views     viewCache
}

// NewShootUseCase construye el caso de uso.
func NewShootUseCase(shootRepo repository.ShootRepository, tx TxRunner, views viewCache) *ShootUseCase {
	return &ShootUseCase{shootRepo: shootRepo, tx: tx, views: views}
}

// Create agenda una sesión nueva en estado PLANNED.
// Invariantes de dinero verificadas acá y no en la UI: precio y abono no
// negativos, abono inicial no mayor que el precio.
func (uc *ShootUseCase) Create(ctx context.Context, in dto.CreateShootRequest) (*dto.ShootResponse, error) {
	if in.CustomerID == "" || in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.EndDateTime.Before(in.StartDateTime) {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalPrice.IsNegative() || in.Deposit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Deposit.GreaterThan(in.TotalPrice) {
		return nil, domain.ErrDepositExceedsPrice
	}
	now := time.Now()
	s := &entity.Shoot{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		Title:         in.Title,
		Type:          in.Type,
		Status:        entity.ShootStatusPlanned,
		StartDateTime: in.StartDateTime,
		EndDateTime:   in.EndDateTime,
		Location:      in.Location,
		Package:       in.Package,
		Extras:        in.Extras,
		TotalPrice:    in.TotalPrice,
		Deposit:       in.Deposit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.shootRepo.Create(s); err != nil {
		return nil, err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return ToShootResponse(s, nil), nil
}

// List devuelve las sesiones con su cliente, filtradas por búsqueda y/o rango
// calendario, ordenadas por fecha de inicio ascendente.
func (uc *ShootUseCase) List(in dto.ShootListRequest) ([]dto.ShootResponse, error) {
	rows, err := uc.shootRepo.List(repository.ShootFilter{Query: in.Query, From: in.From, To: in.To})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShootResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, *ToShootResponse(&r.Shoot, r.Customer))
	}
	return out, nil
}

// Get devuelve una sesión con su cliente resuelto.
func (uc *ShootUseCase) Get(id string) (*dto.ShootResponse, error) {
	row, err := uc.shootRepo.GetWithCustomer(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return ToShootResponse(&row.Shoot, row.Customer), nil
}

// Update aplica los campos presentes del request parcial. Precio y abono
// quedan fuera: tienen operaciones dedicadas con sus invariantes.
func (uc *ShootUseCase) Update(ctx context.Context, id string, in dto.UpdateShootRequest) (*dto.ShootResponse, error) {
	s, err := uc.shootRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerID != nil {
		if *in.CustomerID == "" {
			return nil, domain.ErrInvalidInput
		}
		s.CustomerID = *in.CustomerID
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		s.Title = *in.Title
	}
	if in.Type != nil {
		s.Type = *in.Type
	}
	if in.Status != nil {
		if !entity.ValidShootStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		s.Status = *in.Status
	}
	if in.StartDateTime != nil {
		s.StartDateTime = *in.StartDateTime
	}
	if in.EndDateTime != nil {
		s.EndDateTime = *in.EndDateTime
	}
	if s.EndDateTime.Before(s.StartDateTime) {
		return nil, domain.ErrInvalidInput
	}
	if in.Location != nil {
		s.Location = *in.Location
	}
	if in.Package != nil {
		s.Package = *in.Package
	}
	if in.Extras != nil {
		s.Extras = in.Extras
	}
	s.UpdatedAt = time.Now()
	if err := uc.shootRepo.Update(s); err != nil {
		return nil, err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return ToShootResponse(s, nil), nil
}

// Delete elimina una sesión.
func (uc *ShootUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.shootRepo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if err := uc.shootRepo.Delete(id); err != nil {
		return err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return nil
}

// RecordPayment registra un abono: incrementa el acumulado de la sesión e
// inserta el ingreso correspondiente en el libro, todo en una transacción con
// la fila de la sesión bloqueada. Dos abonos concurrentes de 100 sobre un
// acumulado de 0 terminan en 200, nunca en 100.
func (uc *ShootUseCase) RecordPayment(ctx context.Context, shootID string, in dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	if in.Amount.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out dto.RecordPaymentResponse
	err := uc.tx.RunShoot(ctx, func(shoots repository.ShootRepository, txns repository.TransactionRepository) error {
		s, err := shoots.GetByIDForUpdate(shootID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		newDeposit := s.Deposit.Add(in.Amount)
		if newDeposit.GreaterThan(s.TotalPrice) {
			return domain.ErrDepositExceedsPrice
		}
		now := time.Now()
		if err := shoots.UpdateDeposit(shootID, newDeposit, now); err != nil {
			return err
		}
		description := in.Note
		if description == "" {
			description = fmt.Sprintf("Abono de sesión (%s)", s.Title)
		}
		t := &entity.Transaction{
			ID:          uuid.New().String(),
			Type:        entity.TransactionIncome,
			Category:    PaymentCategory,
			Title:       s.Title,
			Amount:      in.Amount,
			Description: description,
			Date:        now,
			Related:     entity.RelatedParty{Kind: entity.RelatedKindShoot, ID: s.ID},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := txns.Create(t); err != nil {
			return err
		}
		out.NewDeposit = newDeposit
		out.Remaining = s.TotalPrice.Sub(newDeposit)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return &out, nil
}

// UpdatePrice ajusta el precio total bajo bloqueo de fila. El precio no puede
// ser negativo ni quedar por debajo del abono ya recaudado.
func (uc *ShootUseCase) UpdatePrice(ctx context.Context, shootID string, newPrice decimal.Decimal) (*dto.ShootResponse, error) {
	if newPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Shoot
	err := uc.tx.RunShoot(ctx, func(shoots repository.ShootRepository, _ repository.TransactionRepository) error {
		s, err := shoots.GetByIDForUpdate(shootID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if newPrice.LessThan(s.Deposit) {
			return domain.ErrPriceBelowDeposit
		}
		now := time.Now()
		if err := shoots.UpdatePrice(shootID, newPrice, now); err != nil {
			return err
		}
		s.TotalPrice = newPrice
		s.UpdatedAt = now
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return ToShootResponse(updated, nil), nil
}

// ToShootResponse mapea la entidad (y su cliente, si viene) a la respuesta.
func ToShootResponse(s *entity.Shoot, c *entity.Customer) *dto.ShootResponse {
	if s == nil {
		return nil
	}
	return &dto.ShootResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		Customer:      crm.ToCustomerResponse(c),
		Title:         s.Title,
		Type:          s.Type,
		Status:        s.Status,
		StartDateTime: s.StartDateTime,
		EndDateTime:   s.EndDateTime,
		Location:      s.Location,
		Package:       s.Package,
		Extras:        s.Extras,
		TotalPrice:    s.TotalPrice,
		Deposit:       s.Deposit,
		Remaining:     s.Remaining(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
