package dto

import "github.com/shopspring/decimal"

// FinanceStatsResponse agregado financiero de forma fija.
// Con colecciones vacías todas las cifras son cero.
type FinanceStatsResponse struct {
	TotalIncome           decimal.Decimal `json:"total_income"`
	TotalExpense          decimal.Decimal `json:"total_expense"`
	Balance               decimal.Decimal `json:"balance"`
	TotalProjectedRevenue decimal.Decimal `json:"total_projected_revenue"`
	TotalRemainingBalance decimal.Decimal `json:"total_remaining_balance"`
}

// DashboardResponse vista principal: contadores, próximas sesiones y últimos
// movimientos. Stats solo se incluye para sesiones ADMIN.
type DashboardResponse struct {
	Customers          int64                 `json:"customers"`
	PlannedShoots      int64                 `json:"planned_shoots"`
	OpenTasks          int64                 `json:"open_tasks"`
	UpcomingShoots     []ShootResponse       `json:"upcoming_shoots"`
	RecentTransactions []TransactionResponse `json:"recent_transactions,omitempty"`
	Stats              *FinanceStatsResponse `json:"stats,omitempty"`
}
