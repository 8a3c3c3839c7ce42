package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"game-marketplace/internal/fixture"
	"game-marketplace/internal/model"

	"github.com/google/uuid"
)

type OrderRepository interface {
	Seed(ctx context.Context) error
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	Create(ctx context.Context, order *model.Order) error
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)
}

type orderRepoImpl struct {
	mu     sync.RWMutex
	orders []model.Order
	seeded bool
	now    func() time.Time
}

// NewOrderRepository stamps orders with now. A nil now means time.Now.
func NewOrderRepository(now func() time.Time) OrderRepository {
	if now == nil {
		now = time.Now
	}
	return &orderRepoImpl{
		now: now,
	}
}

func (r *orderRepoImpl) Seed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seeded {
		return nil
	}

	r.orders = append(r.orders, model.CloneOrders(fixture.Orders(r.now()))...)
	r.seeded = true

	return nil
}

func (r *orderRepoImpl) FindAll(ctx context.Context) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return model.CloneOrders(r.orders), nil
}

func (r *orderRepoImpl) FindByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(orderID)
	if i < 0 {
		return nil, fmt.Errorf("order %s: %w", orderID, model.ErrNotFound)
	}

	order := r.orders[i].Clone()
	return &order, nil
}

// Create fills in the id and creation time and stores a snapshot of order.
// Ids are "ORD-" followed by a UUIDv7, which sorts by creation time.
func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate order id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = "ORD-" + id.String()
	order.Date = r.now()
	r.orders = append(r.orders, order.Clone())

	return nil
}

func (r *orderRepoImpl) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(orderID)
	if i < 0 {
		return nil, fmt.Errorf("order %s: %w", orderID, model.ErrNotFound)
	}

	r.orders[i].Status = status

	order := r.orders[i].Clone()
	return &order, nil
}

func (r *orderRepoImpl) indexOf(orderID string) int {
	return slices.IndexFunc(r.orders, func(o model.Order) bool {
		return o.ID == orderID
	})
}
