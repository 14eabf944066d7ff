package repository

import "github.com/tu-usuario/studio-pro/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByUserID(userID string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	// DeleteByUserID borra la ficha asociada al usuario si existe.
	// La ausencia no es un error: devuelve cuántas filas eliminó (0 o 1).
	DeleteByUserID(userID string) (int64, error)
}
