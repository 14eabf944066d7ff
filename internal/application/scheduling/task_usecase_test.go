package scheduling_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/application/scheduling"
	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

type fakeTaskRepo struct {
	tasks map[string]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo { return &fakeTaskRepo{tasks: map[string]*entity.Task{}} }

func (f *fakeTaskRepo) Create(t *entity.Task) error { f.tasks[t.ID] = t; return nil }

func (f *fakeTaskRepo) GetByID(id string) (*entity.Task, error) {
	if t, ok := f.tasks[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTaskRepo) List() ([]*repository.TaskWithRefs, error) {
	var out []*repository.TaskWithRefs
	for _, t := range f.tasks {
		out = append(out, &repository.TaskWithRefs{Task: *t})
	}
	return out, nil
}

func (f *fakeTaskRepo) ListByAssignee(userID string) ([]*repository.TaskWithRefs, error) {
	var out []*repository.TaskWithRefs
	for _, t := range f.tasks {
		if t.AssignedTo == userID {
			out = append(out, &repository.TaskWithRefs{Task: *t})
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(t *entity.Task) error {
	if _, ok := f.tasks[t.ID]; !ok {
		return domain.ErrNotFound
	}
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Delete(id string) error { delete(f.tasks, id); return nil }

func newTaskUC() (*scheduling.TaskUseCase, *fakeTaskRepo, *fakeViews) {
	repo := newFakeTaskRepo()
	views := &fakeViews{}
	return scheduling.NewTaskUseCase(repo, views), repo, views
}

func TestTaskCreate_ArrancaEnTodo(t *testing.T) {
	uc, repo, views := newTaskUC()

	deadline := time.Now().Add(48 * time.Hour)
	out, err := uc.Create(context.Background(), dto.CreateTaskRequest{
		Title:      "Editar galería de la boda",
		Priority:   entity.TaskPriorityHigh,
		AssignedTo: "user-1",
		Deadline:   &deadline,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TaskStatusTodo, out.Status)
	assert.Equal(t, entity.TaskPriorityHigh, out.Priority)
	assert.NotEmpty(t, out.ID)
	assert.Len(t, repo.tasks, 1)
	assert.Equal(t, 1, views.invalidations)
}

func TestTaskCreate_Validaciones(t *testing.T) {
	uc, _, _ := newTaskUC()

	_, err := uc.Create(context.Background(), dto.CreateTaskRequest{
		Priority: entity.TaskPriorityLow,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin título")

	_, err = uc.Create(context.Background(), dto.CreateTaskRequest{
		Title:    "Revisar pruebas de impresión",
		Priority: "ASAP",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "prioridad desconocida")
}

func TestTaskUpdate_Parcial(t *testing.T) {
	uc, repo, _ := newTaskUC()
	repo.tasks["task-1"] = &entity.Task{
		ID:       "task-1",
		Title:    "Seleccionar fotos",
		Priority: entity.TaskPriorityMedium,
		Status:   entity.TaskStatusTodo,
	}

	status := entity.TaskStatusInProgress
	out, err := uc.Update(context.Background(), "task-1", dto.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusInProgress, out.Status)
	assert.Equal(t, "Seleccionar fotos", out.Title)

	bad := "DONE"
	_, err = uc.Update(context.Background(), "task-1", dto.UpdateTaskRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	empty := ""
	_, err = uc.Update(context.Background(), "task-1", dto.UpdateTaskRequest{Title: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskListByAssignee_FiltraPorUsuario(t *testing.T) {
	uc, repo, _ := newTaskUC()
	repo.tasks["t1"] = &entity.Task{ID: "t1", Title: "Editar", AssignedTo: "user-1"}
	repo.tasks["t2"] = &entity.Task{ID: "t2", Title: "Imprimir", AssignedTo: "user-2"}
	repo.tasks["t3"] = &entity.Task{ID: "t3", Title: "Entregar", AssignedTo: "user-1"}

	mine, err := uc.ListByAssignee("user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTaskDelete_InexistenteRetornaNotFound(t *testing.T) {
	uc, repo, views := newTaskUC()
	repo.tasks["task-1"] = &entity.Task{ID: "task-1", Title: "Backup de tarjetas"}

	require.NoError(t, uc.Delete(context.Background(), "task-1"))
	assert.Empty(t, repo.tasks)
	assert.Equal(t, 1, views.invalidations)

	err := uc.Delete(context.Background(), "task-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
