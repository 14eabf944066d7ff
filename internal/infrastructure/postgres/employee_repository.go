package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/studio-pro/internal/domain"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste la ficha laboral. La cuenta solo puede tener una (user_id es único).
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, user_id, position, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.UserID, employee.Position, employee.IsActive,
		employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByUserID obtiene la ficha asociada a una cuenta.
func (r *EmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	query := `
		SELECT id, user_id, position, is_active, created_at, updated_at
		FROM employees WHERE user_id = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&e.ID, &e.UserID, &e.Position, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by user: %w", err)
	}
	return &e, nil
}

// Update actualiza la ficha laboral.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees SET position = $2, is_active = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Position, employee.IsActive, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// DeleteByUserID borra la ficha asociada al usuario. Devuelve cuántas filas eliminó.
func (r *EmployeeRepo) DeleteByUserID(userID string) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete employee: %w", err)
	}
	return tag.RowsAffected(), nil
}
