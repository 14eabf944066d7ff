// Package crm gestiona la cartera de clientes del estudio.
package crm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

// viewCache contrato mínimo para invalidar vistas cacheadas tras una mutación.
// Lo implementa cache.Cacher; la interfaz local evita acoplar al paquete.
type viewCache interface {
	DeleteByPrefix(ctx context.Context, prefix string)
}

// CustomerUseCase casos de uso de clientes: CRUD y búsqueda.
type CustomerUseCase struct {
	repo  repository.CustomerRepository
	views viewCache
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, views viewCache) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, views: views}
}

// Create registra un cliente nuevo.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Customer{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		SocialMedia: in.SocialMedia,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return ToCustomerResponse(c), nil
}

// Search lista clientes; con query filtra por substring case-insensitive sobre
// name, phone y email (una coincidencia solo en phone también entra).
func (uc *CustomerUseCase) Search(query string, page dto.PageRequest) ([]dto.CustomerResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.Search(query, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *ToCustomerResponse(c))
	}
	return out, nil
}

// Get devuelve un cliente por id.
func (uc *CustomerUseCase) Get(id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return ToCustomerResponse(c), nil
}

// Update aplica los campos presentes del request parcial.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Name = *in.Name
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.SocialMedia != nil {
		c.SocialMedia = *in.SocialMedia
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return ToCustomerResponse(c), nil
}

// Delete elimina un cliente (borrado duro, como el resto del sistema).
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return nil
}

// ToCustomerResponse mapea la entidad a la respuesta.
func ToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		SocialMedia: c.SocialMedia,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
