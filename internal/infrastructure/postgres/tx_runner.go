package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/studio-pro/internal/application/scheduling"
	"github.com/tu-usuario/studio-pro/internal/application/staff"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

var _ staff.TxRunner = (*TxRunner)(nil)
var _ scheduling.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunStaff inicia una transacción con repos de cuentas y fichas laborales
// (alta y baja de personal en un solo commit).
func (r *TxRunner) RunStaff(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	employeeRepo := NewEmployeeRepository(tx)

	if err := fn(userRepo, employeeRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunShoot inicia una transacción con repos de sesiones y movimientos.
// Los pagos leen la sesión con FOR UPDATE dentro de este scope para serializar
// abonos concurrentes sobre la misma fila.
func (r *TxRunner) RunShoot(ctx context.Context, fn func(
	shootRepo repository.ShootRepository,
	txnRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shootRepo := NewShootRepository(tx)
	txnRepo := NewTransactionRepository(tx)

	if err := fn(shootRepo, txnRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
