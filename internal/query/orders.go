package query

import (
	"slices"
	"strings"

	"game-marketplace/internal/model"

	"golang.org/x/text/cases"
)

func FilterOrdersByStatus(orders []model.Order, status model.OrderStatus) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o.Clone())
		}
	}
	return out
}

// SearchOrders matches q case-insensitively against the order id and the
// customer email.
func SearchOrders(orders []model.Order, q string) []model.Order {
	q = strings.TrimSpace(q)
	if q == "" {
		return model.CloneOrders(orders)
	}

	fold := cases.Fold()
	needle := fold.String(q)

	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(fold.String(o.ID), needle) || strings.Contains(fold.String(o.CustomerEmail), needle) {
			out = append(out, o.Clone())
		}
	}
	return out
}

// SortOrdersByDate puts the newest order first. Orders with the same timestamp
// keep their relative order.
func SortOrdersByDate(orders []model.Order) []model.Order {
	out := model.CloneOrders(orders)
	slices.SortStableFunc(out, func(a, b model.Order) int {
		return b.Date.Compare(a.Date)
	})
	return out
}
