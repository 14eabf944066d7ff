package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTotals son las tres sumas base del agregado financiero.
// Colecciones vacías producen ceros (COALESCE en la implementación SQL).
type LedgerTotals struct {
	TotalIncome      decimal.Decimal // SUM(amount) WHERE type = INCOME
	TotalExpense     decimal.Decimal // SUM(amount) WHERE type = EXPENSE
	ProjectedRevenue decimal.Decimal // SUM(total_price) sobre todas las sesiones
}

// DashboardCounts son los contadores de la vista principal.
type DashboardCounts struct {
	Customers     int64
	PlannedShoots int64
	OpenTasks     int64 // tareas en estado distinto de COMPLETED
}

// FinanceRepository consultas de agregación de solo lectura (finanzas y dashboard).
type FinanceRepository interface {
	LedgerTotals(ctx context.Context) (LedgerTotals, error)
	DashboardCounts(ctx context.Context, now time.Time) (DashboardCounts, error)
	UpcomingShoots(ctx context.Context, now time.Time, limit int) ([]*ShootWithCustomer, error)
	RecentTransactions(ctx context.Context, limit int) ([]*TransactionWithRelated, error)
}
