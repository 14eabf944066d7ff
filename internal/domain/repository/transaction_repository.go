package repository

import "github.com/tu-usuario/studio-pro/internal/domain/entity"

// TransactionWithRelated es la fila del libro con la parte relacionada ya resuelta.
// RelatedName se resuelve según el kind: nombre del empleado, o título de la
// sesión con el nombre del cliente para ingresos por sesión.
type TransactionWithRelated struct {
	Transaction entity.Transaction
	RelatedName string // "" si no hay referencia o el destino fue eliminado
}

// TransactionRepository define el puerto de persistencia para Transaction.
type TransactionRepository interface {
	Create(t *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	// List devuelve el libro ordenado por fecha descendente.
	List(limit, offset int) ([]*TransactionWithRelated, error)
	ListByShoot(shootID string) ([]*entity.Transaction, error)
	Update(t *entity.Transaction) error
	Delete(id string) error
}
