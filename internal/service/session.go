package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"game-marketplace/internal/dto"
	"game-marketplace/internal/fixture"
	"game-marketplace/internal/model"
	"game-marketplace/internal/repository"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SessionService holds the state of the person using the storefront: who they
// are, their wallet, order history, wishlist and cart. Profile, orders and
// wishlist are mirrored to storage after each change when storage is set.
type SessionService interface {
	User() model.User
	IsAdmin() bool
	UpdateProfile(ctx context.Context, update dto.ProfileUpdate) model.User

	AddToWallet(ctx context.Context, amount decimal.Decimal) (model.User, error)
	DeductFromWallet(ctx context.Context, amount decimal.Decimal) (model.User, error)

	Cart() []model.LineItem
	CartSummary() CartSummary
	AddToCart(game model.Game) model.LineItem
	RemoveFromCart(gameID int)
	UpdateQuantity(gameID int, quantity int)
	ClearCart()

	Wishlist() []model.Game
	AddToWishlist(ctx context.Context, game model.Game)
	RemoveFromWishlist(ctx context.Context, gameID int)
	IsInWishlist(gameID int) bool

	Orders() []model.Order
	GetOrder(orderID string) (*model.Order, error)
	Checkout(ctx context.Context) (*model.Order, error)

	LoginAsAdmin(ctx context.Context)
	LoginAsUser(ctx context.Context)
	Logout(ctx context.Context)
}

type CartSummary struct {
	Items      int             `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	ServiceFee decimal.Decimal `json:"serviceFee"`
	Total      decimal.Decimal `json:"total"`
}

type sessionServiceImpl struct {
	mu       sync.Mutex
	user     model.User
	orders   []model.Order
	wishlist []model.Game
	cart     []model.LineItem

	catalog  CatalogService
	storage  repository.StorageRepository
	notifier Notifier
	feeRate  decimal.Decimal
	log      *zap.SugaredLogger
}

// NewSessionService starts a session as the default user, then restores any
// profile, orders and wishlist found in storage. storage may be nil.
func NewSessionService(
	ctx context.Context,
	catalog CatalogService,
	storage repository.StorageRepository,
	notifier Notifier,
	feeRate decimal.Decimal,
	log *zap.SugaredLogger,
) SessionService {
	s := &sessionServiceImpl{
		user:     fixture.DefaultUser(),
		catalog:  catalog,
		storage:  storage,
		notifier: notifier,
		feeRate:  feeRate,
		log:      log,
	}

	restore(ctx, s, repository.KeyUserProfile, &s.user)
	restore(ctx, s, repository.KeyUserOrders, &s.orders)
	restore(ctx, s, repository.KeyUserWishlist, &s.wishlist)

	return s
}

// -------- user & wallet --------

func (s *sessionServiceImpl) User() model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

func (s *sessionServiceImpl) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.IsAdmin()
}

func (s *sessionServiceImpl) UpdateProfile(ctx context.Context, update dto.ProfileUpdate) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = update.Apply(s.user)
	s.persist(ctx, repository.KeyUserProfile, s.user)
	s.notify(LevelSuccess, "Profile updated successfully!")

	return s.user.Clone()
}

func (s *sessionServiceImpl) AddToWallet(ctx context.Context, amount decimal.Decimal) (model.User, error) {
	if !amount.IsPositive() {
		return s.User(), fmt.Errorf("wallet top-up of %s: %w", amount, model.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user.WalletBalance = s.user.WalletBalance.Add(amount)
	s.persist(ctx, repository.KeyUserProfile, s.user)
	s.notify(LevelSuccess, fmt.Sprintf("$%s added to your wallet!", amount.StringFixed(2)))

	return s.user.Clone(), nil
}

// DeductFromWallet debits amount, or fails with model.ErrInsufficientFunds and
// leaves the balance as it was.
func (s *sessionServiceImpl) DeductFromWallet(ctx context.Context, amount decimal.Decimal) (model.User, error) {
	if !amount.IsPositive() {
		return s.User(), fmt.Errorf("wallet debit of %s: %w", amount, model.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.debit(amount); err != nil {
		return s.user.Clone(), err
	}
	s.persist(ctx, repository.KeyUserProfile, s.user)

	return s.user.Clone(), nil
}

func (s *sessionServiceImpl) debit(amount decimal.Decimal) error {
	if amount.GreaterThan(s.user.WalletBalance) {
		s.notify(LevelError, "Insufficient funds in wallet")
		return fmt.Errorf("debit %s from balance %s: %w", amount, s.user.WalletBalance, model.ErrInsufficientFunds)
	}
	s.user.WalletBalance = s.user.WalletBalance.Sub(amount)
	return nil
}

// -------- cart --------

func (s *sessionServiceImpl) Cart() []model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneLineItems(s.cart)
}

func (s *sessionServiceImpl) CartSummary() CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary()
}

func (s *sessionServiceImpl) summary() CartSummary {
	sum := CartSummary{Subtotal: decimal.Zero}
	for _, it := range s.cart {
		sum.Items += it.Quantity
		sum.Subtotal = sum.Subtotal.Add(it.Subtotal())
	}
	sum.ServiceFee = sum.Subtotal.Mul(s.feeRate)
	sum.Total = sum.Subtotal.Add(sum.ServiceFee)
	return sum
}

// AddToCart bumps the quantity when the game is already in the cart, otherwise
// appends it with quantity 1. It returns the resulting entry.
func (s *sessionServiceImpl) AddToCart(game model.Game) model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var item model.LineItem
	if i := s.cartIndex(game.ID); i >= 0 {
		s.cart[i].Quantity++
		item = s.cart[i].Clone()
	} else {
		item = model.LineItem{Game: game.Clone(), Quantity: 1}
		s.cart = append(s.cart, item.Clone())
	}

	msg := fmt.Sprintf("%s added to cart", game.Title)
	if item.Quantity > 1 {
		msg += fmt.Sprintf(" (x%d)", item.Quantity)
	}
	s.notify(LevelSuccess, msg)

	return item
}

func (s *sessionServiceImpl) RemoveFromCart(gameID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromCart(gameID)
}

func (s *sessionServiceImpl) removeFromCart(gameID int) {
	s.cart = slices.DeleteFunc(s.cart, func(it model.LineItem) bool {
		return it.ID == gameID
	})
}

// UpdateQuantity sets the quantity of a cart entry. Anything below 1 removes it.
func (s *sessionServiceImpl) UpdateQuantity(gameID int, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		s.removeFromCart(gameID)
		return
	}
	if i := s.cartIndex(gameID); i >= 0 {
		s.cart[i].Quantity = quantity
	}
}

func (s *sessionServiceImpl) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

func (s *sessionServiceImpl) cartIndex(gameID int) int {
	return slices.IndexFunc(s.cart, func(it model.LineItem) bool {
		return it.ID == gameID
	})
}

// -------- wishlist --------

func (s *sessionServiceImpl) Wishlist() []model.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneGames(s.wishlist)
}

func (s *sessionServiceImpl) AddToWishlist(ctx context.Context, game model.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wishlistIndex(game.ID) >= 0 {
		s.notify(LevelInfo, fmt.Sprintf("%s is already in your wishlist", game.Title))
		return
	}

	s.wishlist = append(s.wishlist, game.Clone())
	s.persist(ctx, repository.KeyUserWishlist, s.wishlist)
	s.notify(LevelSuccess, fmt.Sprintf("%s added to wishlist", game.Title))
}

func (s *sessionServiceImpl) RemoveFromWishlist(ctx context.Context, gameID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.wishlistIndex(gameID)
	if i < 0 {
		return
	}

	title := s.wishlist[i].Title
	s.wishlist = slices.Delete(s.wishlist, i, i+1)
	s.persist(ctx, repository.KeyUserWishlist, s.wishlist)
	s.notify(LevelSuccess, fmt.Sprintf("%s removed from wishlist", title))
}

func (s *sessionServiceImpl) IsInWishlist(gameID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlistIndex(gameID) >= 0
}

func (s *sessionServiceImpl) wishlistIndex(gameID int) int {
	return slices.IndexFunc(s.wishlist, func(g model.Game) bool {
		return g.ID == gameID
	})
}

// -------- orders & checkout --------

// Orders returns the session's order history, newest first.
func (s *sessionServiceImpl) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneOrders(s.orders)
}

func (s *sessionServiceImpl) GetOrder(orderID string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			order := o.Clone()
			return &order, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", orderID, model.ErrNotFound)
}

// Checkout pays for the cart from the wallet. The total is the cart subtotal
// plus the service fee. When the wallet cannot cover it nothing changes and the
// error wraps model.ErrInsufficientFunds. On success the order is recorded in
// the catalog and in the session history, the user's counters move, and the
// cart is emptied.
func (s *sessionServiceImpl) Checkout(ctx context.Context) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return nil, fmt.Errorf("checkout: %w", model.ErrEmptyCart)
	}

	total := s.summary().Total
	if total.GreaterThan(s.user.WalletBalance) {
		s.notify(LevelError, "Insufficient funds in wallet")
		return nil, fmt.Errorf("checkout total %s exceeds balance %s: %w", total, s.user.WalletBalance, model.ErrInsufficientFunds)
	}

	// s.mu stays held across the AddOrder wait so the cart and wallet that
	// were priced are the ones that get charged and cleared.
	order, err := s.catalog.AddOrder(ctx, s.cart, total, s.user)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	if err := s.debit(total); err != nil {
		return nil, err
	}
	s.user.TotalGamesOwned += len(s.cart)
	s.user.TotalSpent = s.user.TotalSpent.Add(total)
	s.orders = slices.Insert(s.orders, 0, order.Clone())
	s.cart = nil

	s.persist(ctx, repository.KeyUserProfile, s.user)
	s.persist(ctx, repository.KeyUserOrders, s.orders)
	s.notify(LevelSuccess, fmt.Sprintf("Purchase completed! Order %s", order.ID))

	return order, nil
}

// -------- identity --------

func (s *sessionServiceImpl) LoginAsAdmin(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = fixture.AdminUser()
	s.persist(ctx, repository.KeyUserProfile, s.user)
	s.notify(LevelSuccess, "Logged in as Administrator!")
}

func (s *sessionServiceImpl) LoginAsUser(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = fixture.DefaultUser()
	s.persist(ctx, repository.KeyUserProfile, s.user)
	s.notify(LevelSuccess, "Logged in as User!")
}

// Logout returns to the default user and forgets orders, wishlist and cart.
func (s *sessionServiceImpl) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = fixture.DefaultUser()
	s.orders = nil
	s.wishlist = nil
	s.cart = nil

	s.persist(ctx, repository.KeyUserProfile, s.user)
	s.forget(ctx, repository.KeyUserOrders)
	s.forget(ctx, repository.KeyUserWishlist)
	s.notify(LevelSuccess, "Logged out successfully!")
}

// -------- storage mirror --------

// persist writes v under key. Failures are logged and otherwise ignored: the
// in-memory state stays authoritative.
func (s *sessionServiceImpl) persist(ctx context.Context, key string, v any) {
	if s.storage == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warnw("encode session state", "key", key, "error", err)
		return
	}
	if err := s.storage.Put(ctx, key, data); err != nil {
		s.log.Warnw("persist session state", "key", key, "error", err)
	}
}

func (s *sessionServiceImpl) forget(ctx context.Context, key string) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.log.Warnw("drop session state", "key", key, "error", err)
	}
}

// restore decodes the value stored under key into dst. dst is left untouched
// when the key is missing or does not decode.
func restore[T any](ctx context.Context, s *sessionServiceImpl, key string, dst *T) {
	if s.storage == nil {
		return
	}

	data, err := s.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.log.Warnw("load session state", "key", key, "error", err)
		}
		return
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.Warnw("decode session state", "key", key, "error", err)
		return
	}
	*dst = v
}

func (s *sessionServiceImpl) notify(level Level, msg string) {
	if s.notifier != nil {
		s.notifier.Notify(Notification{Level: level, Message: msg})
	}
}
