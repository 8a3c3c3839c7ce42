package model

import "github.com/shopspring/decimal"

type DashboardStats struct {
	TotalGames  int `json:"totalGames"`
	TotalOrders int `json:"totalOrders"`
	TotalUsers  int `json:"totalUsers"`

	// TotalRevenue sums every order whatever its status, cancelled included.
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	CompletedRevenue decimal.Decimal `json:"completedRevenue"`
	AvgOrderValue    decimal.Decimal `json:"avgOrderValue"`

	FreeGames int `json:"freeGames"`
	PaidGames int `json:"paidGames"`

	RecentOrders  []Order `json:"recentOrders"`
	TopRatedGames []Game  `json:"topRatedGames"`

	OrdersByStatus  map[OrderStatus]int `json:"ordersByStatus"`
	GamesByCategory map[Category]int    `json:"gamesByCategory"`

	AdminCount     int             `json:"adminCount"`
	UserCount      int             `json:"userCount"`
	TotalUserSpent decimal.Decimal `json:"totalUserSpent"`
}
