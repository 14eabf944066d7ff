package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// assigned_to y shoot_id son NULL cuando no aplican; en dominio eso es "".
const taskColumns = `t.id, t.title, t.type, t.description,
	COALESCE(t.assigned_to::text, ''), COALESCE(t.shoot_id::text, ''),
	t.priority, t.status, t.deadline, t.created_at, t.updated_at`

// Create persiste una tarea nueva.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, title, type, description, assigned_to, shoot_id,
			priority, status, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, NULLIF($6, '')::uuid, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.Title, task.Type, task.Description, task.AssignedTo, task.ShootID,
		task.Priority, task.Status, task.Deadline, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.id = $1`
	var t entity.Task
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Title, &t.Type, &t.Description, &t.AssignedTo, &t.ShootID,
		&t.Priority, &t.Status, &t.Deadline, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// List devuelve todas las tareas con sus referencias, más recientes primero.
func (r *TaskRepo) List() ([]*repository.TaskWithRefs, error) {
	return r.list("")
}

// ListByAssignee devuelve las tareas asignadas a un usuario.
func (r *TaskRepo) ListByAssignee(userID string) ([]*repository.TaskWithRefs, error) {
	return r.list(userID)
}

func (r *TaskRepo) list(assignee string) ([]*repository.TaskWithRefs, error) {
	query := `
		SELECT ` + taskColumns + `,
			u.id, u.name, u.email, u.role,
			s.id, s.title, s.status, s.start_datetime, s.end_datetime, s.total_price, s.deposit
		FROM tasks t
		LEFT JOIN users u ON u.id = t.assigned_to
		LEFT JOIN shoots s ON s.id = t.shoot_id`
	var args []any
	if assignee != "" {
		query += ` WHERE t.assigned_to = $1`
		args = append(args, assignee)
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*repository.TaskWithRefs
	for rows.Next() {
		var (
			tr      repository.TaskWithRefs
			uID     *string
			uName   *string
			uEmail  *string
			uRole   *string
			sID     *string
			sTitle  *string
			sStatus *string
			sStart  *time.Time
			sEnd    *time.Time
			sPrice  *decimal.Decimal
			sDep    *decimal.Decimal
		)
		t := &tr.Task
		err := rows.Scan(
			&t.ID, &t.Title, &t.Type, &t.Description, &t.AssignedTo, &t.ShootID,
			&t.Priority, &t.Status, &t.Deadline, &t.CreatedAt, &t.UpdatedAt,
			&uID, &uName, &uEmail, &uRole,
			&sID, &sTitle, &sStatus, &sStart, &sEnd, &sPrice, &sDep,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if uID != nil {
			tr.Assignee = &entity.User{ID: *uID, Name: *uName, Email: *uEmail, Role: *uRole}
		}
		if sID != nil {
			tr.Shoot = &entity.Shoot{
				ID:            *sID,
				Title:         *sTitle,
				Status:        *sStatus,
				StartDateTime: *sStart,
				EndDateTime:   *sEnd,
				TotalPrice:    *sPrice,
				Deposit:       *sDep,
			}
		}
		list = append(list, &tr)
	}
	return list, rows.Err()
}

// Update actualiza una tarea.
func (r *TaskRepo) Update(task *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, type = $3, description = $4,
			assigned_to = NULLIF($5, '')::uuid, shoot_id = NULLIF($6, '')::uuid,
			priority = $7, status = $8, deadline = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.Title, task.Type, task.Description, task.AssignedTo, task.ShootID,
		task.Priority, task.Status, task.Deadline, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete elimina una tarea por ID.
func (r *TaskRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
