package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

// TaskUseCase casos de uso de tareas internas.
type TaskUseCase struct {
	taskRepo repository.TaskRepository
	views    viewCache
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(taskRepo repository.TaskRepository, views viewCache) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo, views: views}
}

// Create crea una tarea en estado TODO.
func (uc *TaskUseCase) Create(ctx context.Context, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.Title == "" || !entity.ValidTaskPriority(in.Priority) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	t := &entity.Task{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Type:        in.Type,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		ShootID:     in.ShootID,
		Priority:    in.Priority,
		Status:      entity.TaskStatusTodo,
		Deadline:    in.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.taskRepo.Create(t); err != nil {
		return nil, err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return toTaskResponse(&repository.TaskWithRefs{Task: *t}), nil
}

// List devuelve todas las tareas con asignado y sesión resueltos.
func (uc *TaskUseCase) List() ([]dto.TaskResponse, error) {
	rows, err := uc.taskRepo.List()
	if err != nil {
		return nil, err
	}
	return toTaskResponses(rows), nil
}

// ListByAssignee devuelve las tareas asignadas a un usuario.
func (uc *TaskUseCase) ListByAssignee(userID string) ([]dto.TaskResponse, error) {
	rows, err := uc.taskRepo.ListByAssignee(userID)
	if err != nil {
		return nil, err
	}
	return toTaskResponses(rows), nil
}

// Update aplica los campos presentes del request parcial.
func (uc *TaskUseCase) Update(ctx context.Context, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	t, err := uc.taskRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		t.Title = *in.Title
	}
	if in.Type != nil {
		t.Type = *in.Type
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.AssignedTo != nil {
		t.AssignedTo = *in.AssignedTo
	}
	if in.ShootID != nil {
		t.ShootID = *in.ShootID
	}
	if in.Priority != nil {
		if !entity.ValidTaskPriority(*in.Priority) {
			return nil, domain.ErrInvalidInput
		}
		t.Priority = *in.Priority
	}
	if in.Status != nil {
		if !entity.ValidTaskStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		t.Status = *in.Status
	}
	if in.Deadline != nil {
		t.Deadline = in.Deadline
	}
	t.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(t); err != nil {
		return nil, err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return toTaskResponse(&repository.TaskWithRefs{Task: *t}), nil
}

// Delete elimina una tarea.
func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	t, err := uc.taskRepo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if err := uc.taskRepo.Delete(id); err != nil {
		return err
	}
	uc.views.DeleteByPrefix(ctx, "stats:")
	return nil
}

func toTaskResponses(rows []*repository.TaskWithRefs) []dto.TaskResponse {
	out := make([]dto.TaskResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, *toTaskResponse(r))
	}
	return out
}

func toTaskResponse(r *repository.TaskWithRefs) *dto.TaskResponse {
	t := r.Task
	resp := &dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Type:        t.Type,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		Deadline:    t.Deadline,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if r.Assignee != nil {
		resp.Assignee = &dto.TaskRefUser{ID: r.Assignee.ID, Name: r.Assignee.Name}
	}
	if r.Shoot != nil {
		resp.Shoot = &dto.TaskRefShoot{ID: r.Shoot.ID, Title: r.Shoot.Title}
	}
	return resp
}
