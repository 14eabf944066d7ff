package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `t.id, t.type, t.category, t.title, t.amount, t.description, t.date,
	COALESCE(t.related_kind, ''), COALESCE(t.related_id::text, ''), t.created_at, t.updated_at`

// relatedNameExpr resuelve el nombre de la parte relacionada según el kind:
// nombre del empleado, o título de la sesión con el nombre de su cliente.
const relatedNameExpr = `COALESCE(
	CASE t.related_kind
		WHEN 'EMPLOYEE' THEN ru.name
		WHEN 'SHOOT' THEN CASE WHEN rc.name IS NULL THEN rs.title ELSE rs.title || ' (' || rc.name || ')' END
	END, '')`

const relatedJoins = `
	LEFT JOIN users ru ON t.related_kind = 'EMPLOYEE' AND ru.id = t.related_id
	LEFT JOIN shoots rs ON t.related_kind = 'SHOOT' AND rs.id = t.related_id
	LEFT JOIN customers rc ON rc.id = rs.customer_id`

// Create asienta un movimiento en el libro.
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, type, category, title, amount, description, date,
			related_kind, related_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, '')::uuid, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Type, t.Category, t.Title, t.Amount, t.Description, t.Date,
		t.Related.Kind, t.Related.ID, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions t WHERE t.id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Type, &t.Category, &t.Title, &t.Amount, &t.Description, &t.Date,
		&t.Related.Kind, &t.Related.ID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// List devuelve el libro paginado, más reciente primero, con la parte
// relacionada resuelta a nombre visible.
func (r *TransactionRepo) List(limit, offset int) ([]*repository.TransactionWithRelated, error) {
	query := `
		SELECT ` + transactionColumns + `, ` + relatedNameExpr + `
		FROM transactions t` + relatedJoins + `
		ORDER BY t.date DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactionsWithRelated(rows)
}

// ListByShoot devuelve los movimientos ligados a una sesión, más antiguos primero
// (orden cronológico del historial de pagos).
func (r *TransactionRepo) ListByShoot(shootID string) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		WHERE t.related_kind = 'SHOOT' AND t.related_id = $1
		ORDER BY t.date ASC`
	rows, err := r.q.Query(context.Background(), query, shootID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by shoot: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.Type, &t.Category, &t.Title, &t.Amount, &t.Description, &t.Date,
			&t.Related.Kind, &t.Related.ID, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update corrige un movimiento.
func (r *TransactionRepo) Update(t *entity.Transaction) error {
	query := `
		UPDATE transactions SET type = $2, category = $3, title = $4, amount = $5,
			description = $6, date = $7, related_kind = NULLIF($8, ''),
			related_id = NULLIF($9, '')::uuid, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Type, t.Category, t.Title, t.Amount, t.Description, t.Date,
		t.Related.Kind, t.Related.ID, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *TransactionRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// scanTransactionsWithRelated escanea filas de movimiento + nombre relacionado.
func scanTransactionsWithRelated(rows pgx.Rows) ([]*repository.TransactionWithRelated, error) {
	var list []*repository.TransactionWithRelated
	for rows.Next() {
		var tr repository.TransactionWithRelated
		t := &tr.Transaction
		if err := rows.Scan(
			&t.ID, &t.Type, &t.Category, &t.Title, &t.Amount, &t.Description, &t.Date,
			&t.Related.Kind, &t.Related.ID, &t.CreatedAt, &t.UpdatedAt,
			&tr.RelatedName,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &tr)
	}
	return list, rows.Err()
}
