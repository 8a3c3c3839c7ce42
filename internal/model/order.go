package model

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	return slices.Contains(OrderStatuses, s)
}

// LineItem is a game snapshot with a quantity. Used by both the cart and orders.
type LineItem struct {
	Game
	Quantity int `json:"quantity"`
}

// Subtotal is effective price times quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.EffectivePrice().Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (li LineItem) Clone() LineItem {
	li.Game = li.Game.Clone()
	return li
}

func CloneLineItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// OrderTotal is the items subtotal plus the service fee.
func OrderTotal(items []LineItem, feeRate decimal.Decimal) decimal.Decimal {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Subtotal())
	}
	return subtotal.Add(subtotal.Mul(feeRate))
}

type Order struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Items         []LineItem      `json:"items"`
	Total         decimal.Decimal `json:"total"` // subtotal plus service fee, fixed at creation
	Status        OrderStatus     `json:"status"`
	CustomerID    string          `json:"userId,omitempty"`
	CustomerEmail string          `json:"userEmail,omitempty"`
}

func (o Order) Clone() Order {
	o.Items = CloneLineItems(o.Items)
	return o
}

func CloneOrders(orders []Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}
