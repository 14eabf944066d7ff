package dto

import "time"

// CreateTaskRequest entrada para crear una tarea. El estado inicial es TODO.
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Type        string     `json:"type" validate:"omitempty,max=100"`
	Description string     `json:"description"`
	AssignedTo  string     `json:"assigned_to" validate:"omitempty,uuid"`
	ShootID     string     `json:"shoot_id" validate:"omitempty,uuid"`
	Priority    string     `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH URGENT"`
	Deadline    *time.Time `json:"deadline"`
}

// UpdateTaskRequest entrada parcial para editar una tarea.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Type        *string    `json:"type" validate:"omitempty,max=100"`
	Description *string    `json:"description"`
	AssignedTo  *string    `json:"assigned_to" validate:"omitempty,uuid"`
	ShootID     *string    `json:"shoot_id" validate:"omitempty,uuid"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Status      *string    `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS ON_HOLD COMPLETED"`
	Deadline    *time.Time `json:"deadline"`
}

// TaskRefUser referencia mínima al asignado dentro de la respuesta.
type TaskRefUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TaskRefShoot referencia mínima a la sesión ligada dentro de la respuesta.
type TaskRefShoot struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// TaskResponse salida de una tarea con referencias resueltas.
type TaskResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Type        string        `json:"type,omitempty"`
	Description string        `json:"description,omitempty"`
	Assignee    *TaskRefUser  `json:"assignee,omitempty"`
	Shoot       *TaskRefShoot `json:"shoot,omitempty"`
	Priority    string        `json:"priority"`
	Status      string        `json:"status"`
	Deadline    *time.Time    `json:"deadline,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
