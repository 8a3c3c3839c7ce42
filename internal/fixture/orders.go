package fixture

import (
	"fmt"
	"time"

	"game-marketplace/internal/model"

	"github.com/shopspring/decimal"
)

// ServiceFeeRate is the surcharge the historical orders were charged.
var ServiceFeeRate = decimal.RequireFromString("0.05")

// Orders builds the historical orders relative to now, newest first.
func Orders(now time.Time) []model.Order {
	games := Games()
	byID := func(id int) model.Game {
		return games[id-1]
	}

	day := 24 * time.Hour
	history := []struct {
		age      time.Duration
		customer model.User
		gameIDs  []int
	}{
		{2 * day, DefaultUser(), []int{1, 5}},
		{7 * day, Users()[2], []int{13}},
		{14 * day, Users()[3], []int{7, 9}},
		{30 * day, Users()[4], []int{14, 15, 4}},
		{45 * day, Users()[5], []int{2}},
	}

	orders := make([]model.Order, 0, len(history))
	for i, h := range history {
		items := make([]model.LineItem, len(h.gameIDs))
		for j, id := range h.gameIDs {
			items[j] = model.LineItem{Game: byID(id), Quantity: 1}
		}

		orders = append(orders, model.Order{
			ID:            fmt.Sprintf("ORD-2024-%d", 1000+i),
			Date:          now.Add(-h.age),
			Items:         items,
			Total:         model.OrderTotal(items, ServiceFeeRate),
			Status:        model.OrderStatusCompleted,
			CustomerID:    h.customer.ID,
			CustomerEmail: h.customer.Email,
		})
	}

	return orders
}
