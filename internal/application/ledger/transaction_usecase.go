// Package ledger gestiona el libro contable del estudio: movimientos de
// ingreso y egreso, el agregado financiero y la vista de dashboard.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

// viewCache contrato mínimo del view cache para este paquete: los casos de uso
// de lectura sirven de él y las mutaciones lo invalidan. Lo implementa cache.Cacher.
type viewCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	DeleteByPrefix(ctx context.Context, prefix string)
}

// TransactionUseCase casos de uso del libro: CRUD de movimientos.
type TransactionUseCase struct {
	repo  repository.TransactionRepository
	views viewCache
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository, views viewCache) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, views: views}
}

// Create asienta un movimiento nuevo. Sin fecha se usa el momento actual.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !entity.ValidTransactionType(in.Type) || in.Category == "" || in.Amount.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}
	related, err := toRelatedParty(in.Related)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	t := &entity.Transaction{
		ID:          uuid.New().String(),
		Type:        in.Type,
		Category:    in.Category,
		Title:       in.Title,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        date,
		Related:     related,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return ToTransactionResponse(t, ""), nil
}

// List devuelve el libro paginado, más reciente primero.
func (uc *TransactionUseCase) List(page dto.PageRequest) ([]dto.TransactionResponse, error) {
	page.DefaultPage()
	rows, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, *ToTransactionResponse(&r.Transaction, r.RelatedName))
	}
	return out, nil
}

// Get devuelve un movimiento por id.
func (uc *TransactionUseCase) Get(id string) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return ToTransactionResponse(t, ""), nil
}

// Update corrige los campos presentes de un movimiento.
func (uc *TransactionUseCase) Update(ctx context.Context, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil {
		if !entity.ValidTransactionType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		t.Type = *in.Type
	}
	if in.Category != nil {
		if *in.Category == "" {
			return nil, domain.ErrInvalidInput
		}
		t.Category = *in.Category
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Amount != nil {
		if in.Amount.Sign() <= 0 {
			return nil, domain.ErrInvalidInput
		}
		t.Amount = *in.Amount
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Date != nil {
		t.Date = *in.Date
	}
	if in.Related != nil {
		related, err := toRelatedParty(in.Related)
		if err != nil {
			return nil, err
		}
		t.Related = related
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return ToTransactionResponse(t, ""), nil
}

// Delete elimina un movimiento del libro.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return nil
}

// toRelatedParty valida y convierte la referencia del request. Una referencia
// con kind vacío limpia la relación.
func toRelatedParty(ref *dto.RelatedRef) (entity.RelatedParty, error) {
	if ref == nil {
		return entity.RelatedParty{}, nil
	}
	r := entity.RelatedParty{Kind: ref.Kind, ID: ref.ID}
	if !r.Valid() {
		return entity.RelatedParty{}, domain.ErrInvalidInput
	}
	return r, nil
}

// ToTransactionResponse mapea la entidad a la respuesta del API.
func ToTransactionResponse(t *entity.Transaction, relatedName string) *dto.TransactionResponse {
	resp := &dto.TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Category:    t.Category,
		Title:       t.Title,
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
		RelatedName: relatedName,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if !t.Related.IsZero() {
		resp.Related = &dto.RelatedRef{Kind: t.Related.Kind, ID: t.Related.ID}
	}
	return resp
}
