package repository

import "github.com/tu-usuario/studio-pro/internal/domain/entity"

// TaskWithRefs es la fila combinada tarea + asignado + sesión para el listado.
type TaskWithRefs struct {
	Task     entity.Task
	Assignee *entity.User  // nil si no hay asignado
	Shoot    *entity.Shoot // nil si la tarea no está ligada a una sesión
}

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	// List devuelve las tareas ordenadas por creación descendente, con sus referencias.
	List() ([]*TaskWithRefs, error)
	ListByAssignee(userID string) ([]*TaskWithRefs, error)
	Update(task *entity.Task) error
	Delete(id string) error
}
