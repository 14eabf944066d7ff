package ledger

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/application/scheduling"
	"github.com/tu-usuario/studio-pro/internal/domain/entity"
	"github.com/tu-usuario/studio-pro/internal/domain/finance"
	"github.com/tu-usuario/studio-pro/internal/domain/repository"
)

// Claves del view cache. Toda mutación de clientes, sesiones, tareas o
// movimientos invalida el prefijo "stats:" completo.
const (
	statsKey     = "stats:finance"
	dashboardKey = "stats:dashboard:"
)

// upcomingLimit y recentLimit acotan las listas del dashboard.
const (
	upcomingLimit = 5
	recentLimit   = 5
)

// StatsUseCase vistas agregadas de solo lectura: finanzas y dashboard.
type StatsUseCase struct {
	repo  repository.FinanceRepository
	views viewCache
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.FinanceRepository, views viewCache) *StatsUseCase {
	return &StatsUseCase{repo: repo, views: views}
}

// Stats devuelve el agregado financiero, sirviéndolo del cache cuando está
// fresco. Un error de lectura se propaga: nunca se responde un agregado en
// cero que en realidad no se pudo calcular.
func (uc *StatsUseCase) Stats(ctx context.Context) (*dto.FinanceStatsResponse, error) {
	if raw, ok := uc.views.Get(ctx, statsKey); ok {
		var cached dto.FinanceStatsResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}
	totals, err := uc.repo.LedgerTotals(ctx)
	if err != nil {
		return nil, err
	}
	resp := toStatsResponse(finance.Compute(totals.TotalIncome, totals.TotalExpense, totals.ProjectedRevenue))
	if raw, err := json.Marshal(resp); err == nil {
		uc.views.Set(ctx, statsKey, raw)
	}
	return resp, nil
}

// Dashboard arma la vista principal según el rol: contadores y próximas
// sesiones para todos; el agregado financiero y los últimos movimientos solo
// para ADMIN. Se cachea por rol porque el contenido difiere.
func (uc *StatsUseCase) Dashboard(ctx context.Context, role string) (*dto.DashboardResponse, error) {
	admin := role == entity.RoleAdmin
	key := dashboardKey + role
	if raw, ok := uc.views.Get(ctx, key); ok {
		var cached dto.DashboardResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	now := time.Now()
	counts, err := uc.repo.DashboardCounts(ctx, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := uc.repo.UpcomingShoots(ctx, now, upcomingLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Customers:      counts.Customers,
		PlannedShoots:  counts.PlannedShoots,
		OpenTasks:      counts.OpenTasks,
		UpcomingShoots: make([]dto.ShootResponse, 0, len(upcoming)),
	}
	for _, sc := range upcoming {
		resp.UpcomingShoots = append(resp.UpcomingShoots, *scheduling.ToShootResponse(&sc.Shoot, sc.Customer))
	}

	if admin {
		recent, err := uc.repo.RecentTransactions(ctx, recentLimit)
		if err != nil {
			return nil, err
		}
		resp.RecentTransactions = make([]dto.TransactionResponse, 0, len(recent))
		for _, r := range recent {
			resp.RecentTransactions = append(resp.RecentTransactions, *ToTransactionResponse(&r.Transaction, r.RelatedName))
		}
		stats, err := uc.Stats(ctx)
		if err != nil {
			return nil, err
		}
		resp.Stats = stats
	}

	if raw, err := json.Marshal(resp); err == nil {
		uc.views.Set(ctx, key, raw)
	}
	return resp, nil
}

func toStatsResponse(s finance.Stats) *dto.FinanceStatsResponse {
	return &dto.FinanceStatsResponse{
		TotalIncome:           s.TotalIncome,
		TotalExpense:          s.TotalExpense,
		Balance:               s.Balance,
		TotalProjectedRevenue: s.TotalProjectedRevenue,
		TotalRemainingBalance: s.TotalRemainingBalance,
	}
}
