package entity

import "time"

// Prioridades de una tarea.
const (
	TaskPriorityLow    = "LOW"
	TaskPriorityMedium = "MEDIUM"
	TaskPriorityHigh   = "HIGH"
	TaskPriorityUrgent = "URGENT"
)

// Estados de una tarea.
const (
	TaskStatusTodo       = "TODO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusOnHold     = "ON_HOLD"
	TaskStatusCompleted  = "COMPLETED"
)

// ValidTaskPriority indica si la prioridad pertenece al enum cerrado.
func ValidTaskPriority(p string) bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// ValidTaskStatus indica si el estado pertenece al enum cerrado.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusOnHold, TaskStatusCompleted:
		return true
	}
	return false
}

// Task representa una tarea interna, opcionalmente ligada a una sesión.
type Task struct {
	ID          string
	Title       string
	Type        string
	Description string
	AssignedTo  string // User.ID del asignado ("" = sin asignar)
	ShootID     string // Shoot.ID opcional ("" = no ligada a sesión)
	Priority    string
	Status      string
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
