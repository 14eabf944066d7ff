package repository

import "github.com/tu-usuario/studio-pro/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// Search lista clientes ordenados por creación descendente. Con query no vacío
	// filtra por substring case-insensitive sobre name, phone y email.
	Search(query string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
