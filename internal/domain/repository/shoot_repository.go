package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/studio-pro/internal/domain/entity"
)

// ShootWithCustomer es la fila combinada sesión + cliente para listados y detalle.
type ShootWithCustomer struct {
	Shoot    entity.Shoot
	Customer *entity.Customer // nil si el cliente fue eliminado
}

// ShootFilter filtros del listado de sesiones.
type ShootFilter struct {
	Query string     // substring case-insensitive sobre título, tipo y nombre del cliente
	From  *time.Time // rango sobre start_datetime (vista calendario)
	To    *time.Time
}

// ShootRepository define el puerto de persistencia para Shoot.
type ShootRepository interface {
	Create(shoot *entity.Shoot) error
	GetByID(id string) (*entity.Shoot, error)
	// GetByIDForUpdate lee la sesión con bloqueo de fila (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción del TxRunner.
	GetByIDForUpdate(id string) (*entity.Shoot, error)
	GetWithCustomer(id string) (*ShootWithCustomer, error)
	List(filter ShootFilter) ([]*ShootWithCustomer, error)
	Update(shoot *entity.Shoot) error
	UpdateDeposit(id string, deposit decimal.Decimal, updatedAt time.Time) error
	UpdatePrice(id string, totalPrice decimal.Decimal, updatedAt time.Time) error
	Delete(id string) error
}
