package service

import (
	"context"
	"fmt"

	"game-marketplace/internal/model"
	"game-marketplace/internal/query"

	"github.com/shopspring/decimal"
)

const dashboardListSize = 5

// DashboardStats folds the three collections into the admin dashboard figures.
// Nothing is cached; every call walks the full collections.
func (s *catalogServiceImpl) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	s.latency.Wait(OpDashboardStats)

	games, err := s.gameRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load games: %w", err)
	}
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	return computeDashboardStats(games, orders, users), nil
}

func computeDashboardStats(games []model.Game, orders []model.Order, users []model.User) *model.DashboardStats {
	stats := &model.DashboardStats{
		TotalGames:       len(games),
		TotalOrders:      len(orders),
		TotalUsers:       len(users),
		TotalRevenue:     decimal.Zero,
		CompletedRevenue: decimal.Zero,
		AvgOrderValue:    decimal.Zero,
		TotalUserSpent:   decimal.Zero,
		OrdersByStatus:   make(map[model.OrderStatus]int, len(model.OrderStatuses)),
		GamesByCategory:  make(map[model.Category]int),
	}

	for _, status := range model.OrderStatuses {
		stats.OrdersByStatus[status] = 0
	}
	for _, o := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
		if o.Status == model.OrderStatusCompleted {
			stats.CompletedRevenue = stats.CompletedRevenue.Add(o.Total)
		}
		stats.OrdersByStatus[o.Status]++
	}
	if len(orders) > 0 {
		stats.AvgOrderValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(len(orders))))
	}

	for _, g := range games {
		if g.IsFree {
			stats.FreeGames++
		}
		stats.GamesByCategory[g.Category]++
	}
	stats.PaidGames = stats.TotalGames - stats.FreeGames

	recent := query.SortOrdersByDate(orders)
	stats.RecentOrders = recent[:min(dashboardListSize, len(recent))]
	stats.TopRatedGames = query.TopRated(games, dashboardListSize)

	for _, u := range users {
		if u.IsAdmin() {
			stats.AdminCount++
		} else {
			stats.UserCount++
		}
		stats.TotalUserSpent = stats.TotalUserSpent.Add(u.TotalSpent)
	}

	return stats
}
