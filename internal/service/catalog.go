package service

import (
	"context"
	"fmt"

	"game-marketplace/internal/dto"
	"game-marketplace/internal/model"
	"game-marketplace/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogService is the store every view reads from and mutates through. Each
// call waits out its simulated latency, then returns copies the caller owns.
type CatalogService interface {
	Seed(ctx context.Context) error

	ListGames(ctx context.Context) ([]model.Game, error)
	GetGame(ctx context.Context, id int) (*model.Game, error)
	AddGame(ctx context.Context, in dto.GameInput) (*model.Game, error)
	UpdateGame(ctx context.Context, id int, in dto.GameInput) (*model.Game, error)
	DeleteGame(ctx context.Context, id int) (*model.Game, error)

	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	AddOrder(ctx context.Context, items []model.LineItem, total decimal.Decimal, customer model.User) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)

	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	UpdateUserRole(ctx context.Context, userID string, role model.Role) (*model.User, error)
	DeleteUser(ctx context.Context, userID string) (*model.User, error)

	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

type catalogServiceImpl struct {
	gameRepo  repository.GameRepository
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	latency   *Latency
	log       *zap.SugaredLogger
}

func NewCatalogService(
	gameRepo repository.GameRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	latency *Latency,
	log *zap.SugaredLogger,
) CatalogService {
	return &catalogServiceImpl{
		gameRepo:  gameRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		latency:   latency,
		log:       log,
	}
}

func (s *catalogServiceImpl) Seed(ctx context.Context) error {
	if err := s.gameRepo.Seed(ctx); err != nil {
		return fmt.Errorf("seed games: %w", err)
	}
	if err := s.orderRepo.Seed(ctx); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	if err := s.userRepo.Seed(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	return nil
}

// -------- games --------

func (s *catalogServiceImpl) ListGames(ctx context.Context) ([]model.Game, error) {
	s.latency.Wait(OpListGames)
	return s.gameRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) GetGame(ctx context.Context, id int) (*model.Game, error) {
	s.latency.Wait(OpGetGame)
	return s.gameRepo.FindByID(ctx, id)
}

func (s *catalogServiceImpl) AddGame(ctx context.Context, in dto.GameInput) (*model.Game, error) {
	s.latency.Wait(OpAddGame)

	game := in.NewGame(0)
	if err := s.gameRepo.Create(ctx, &game); err != nil {
		return nil, fmt.Errorf("store game: %w", err)
	}

	s.log.Infow("game added", "gameID", game.ID, "title", game.Title)
	return &game, nil
}

func (s *catalogServiceImpl) UpdateGame(ctx context.Context, id int, in dto.GameInput) (*model.Game, error) {
	s.latency.Wait(OpUpdateGame)

	game, err := s.gameRepo.Update(ctx, id, in.Merge)
	if err != nil {
		return nil, fmt.Errorf("update game: %w", err)
	}

	s.log.Infow("game updated", "gameID", id)
	return game, nil
}

func (s *catalogServiceImpl) DeleteGame(ctx context.Context, id int) (*model.Game, error) {
	s.latency.Wait(OpDeleteGame)

	game, err := s.gameRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete game: %w", err)
	}

	s.log.Infow("game deleted", "gameID", id)
	return game, nil
}

// -------- orders --------

func (s *catalogServiceImpl) ListOrders(ctx context.Context) ([]model.Order, error) {
	s.latency.Wait(OpListOrders)
	return s.orderRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	s.latency.Wait(OpGetOrder)
	return s.orderRepo.FindByOrderID(ctx, orderID)
}

// AddOrder records a completed order for customer. The items are snapshotted
// and total is stored as given; it is never recomputed.
func (s *catalogServiceImpl) AddOrder(ctx context.Context, items []model.LineItem, total decimal.Decimal, customer model.User) (*model.Order, error) {
	s.latency.Wait(OpAddOrder)

	if len(items) == 0 {
		return nil, fmt.Errorf("add order: %w", model.ErrEmptyCart)
	}

	order := &model.Order{
		Items:         model.CloneLineItems(items),
		Total:         total,
		Status:        model.OrderStatusCompleted,
		CustomerID:    customer.ID,
		CustomerEmail: customer.Email,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	s.log.Infow("order added", "orderID", order.ID, "userID", customer.ID, "total", total.String())
	return order, nil
}

// UpdateOrderStatus allows any transition between the three statuses.
func (s *catalogServiceImpl) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	s.latency.Wait(OpUpdateOrderStatus)

	if !status.Valid() {
		return nil, fmt.Errorf("order status %q: %w", status, model.ErrValidation)
	}

	order, err := s.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.log.Infow("order status updated", "orderID", orderID, "status", status)
	return order, nil
}

// -------- users --------

func (s *catalogServiceImpl) ListUsers(ctx context.Context) ([]model.User, error) {
	s.latency.Wait(OpListUsers)
	return s.userRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) GetUser(ctx context.Context, userID string) (*model.User, error) {
	s.latency.Wait(OpGetUser)
	return s.userRepo.FindByID(ctx, userID)
}

func (s *catalogServiceImpl) UpdateUserRole(ctx context.Context, userID string, role model.Role) (*model.User, error) {
	s.latency.Wait(OpUpdateUserRole)

	if !role.Valid() {
		return nil, fmt.Errorf("role %q: %w", role, model.ErrValidation)
	}

	user, err := s.userRepo.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("update user role: %w", err)
	}

	s.log.Infow("user role updated", "userID", userID, "role", role)
	return user, nil
}

func (s *catalogServiceImpl) DeleteUser(ctx context.Context, userID string) (*model.User, error) {
	s.latency.Wait(OpDeleteUser)

	user, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	s.log.Infow("user deleted", "userID", userID)
	return user, nil
}
