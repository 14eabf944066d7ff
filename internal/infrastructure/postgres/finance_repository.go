package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

// FinanceRepo consultas de agregación de solo lectura: finanzas y dashboard.
type FinanceRepo struct {
	pool *pgxpool.Pool
}

// NewFinanceRepository construye el adaptador de agregados.
func NewFinanceRepository(pool *pgxpool.Pool) *FinanceRepo {
	return &FinanceRepo{pool: pool}
}

// LedgerTotals devuelve las tres sumas base del agregado financiero.
// COALESCE garantiza ceros con el libro vacío, nunca NULL.
func (r *FinanceRepo) LedgerTotals(ctx context.Context) (repository.LedgerTotals, error) {
	const query = `
	SELECT
	    COALESCE((SELECT SUM(amount) FROM transactions WHERE type = 'INCOME'), 0)  AS total_income,
	    COALESCE((SELECT SUM(amount) FROM transactions WHERE type = 'EXPENSE'), 0) AS total_expense,
	    COALESCE((SELECT SUM(total_price) FROM shoots), 0)                         AS projected_revenue`

	var t repository.LedgerTotals
	err := r.pool.QueryRow(ctx, query).Scan(&t.TotalIncome, &t.TotalExpense, &t.ProjectedRevenue)
	if err != nil {
		return repository.LedgerTotals{}, fmt.Errorf("finance.LedgerTotals: %w", err)
	}
	return t, nil
}

// DashboardCounts devuelve los contadores de la vista principal.
func (r *FinanceRepo) DashboardCounts(ctx context.Context, now time.Time) (repository.DashboardCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM customers)                                                   AS customers,
	    (SELECT COUNT(*) FROM shoots WHERE status = 'PLANNED' AND start_datetime >= $1)    AS planned_shoots,
	    (SELECT COUNT(*) FROM tasks WHERE status <> 'COMPLETED')                           AS open_tasks`

	var c repository.DashboardCounts
	err := r.pool.QueryRow(ctx, query, now).Scan(&c.Customers, &c.PlannedShoots, &c.OpenTasks)
	if err != nil {
		return repository.DashboardCounts{}, fmt.Errorf("finance.DashboardCounts: %w", err)
	}
	return c, nil
}

// UpcomingShoots devuelve las próximas sesiones no canceladas, más cercanas primero.
func (r *FinanceRepo) UpcomingShoots(ctx context.Context, now time.Time, limit int) ([]*repository.ShootWithCustomer, error) {
	query := `
		SELECT ` + shootColumns + `,
			c.id, c.name, c.phone, c.email, c.social_media, c.notes, c.created_at, c.updated_at
		FROM shoots s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.start_datetime >= $1 AND s.status <> '` + entity.ShootStatusCancelled + `'
		ORDER BY s.start_datetime ASC
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("finance.UpcomingShoots: %w", err)
	}
	defer rows.Close()
	var list []*repository.ShootWithCustomer
	for rows.Next() {
		sc, err := scanShootWithCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan upcoming shoot: %w", err)
		}
		list = append(list, sc)
	}
	return list, rows.Err()
}

// RecentTransactions devuelve los últimos movimientos del libro con su parte
// relacionada resuelta.
func (r *FinanceRepo) RecentTransactions(ctx context.Context, limit int) ([]*repository.TransactionWithRelated, error) {
	query := `
		SELECT ` + transactionColumns + `, ` + relatedNameExpr + `
		FROM transactions t` + relatedJoins + `
		ORDER BY t.date DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("finance.RecentTransactions: %w", err)
	}
	defer rows.Close()
	return scanTransactionsWithRelated(rows)
}
