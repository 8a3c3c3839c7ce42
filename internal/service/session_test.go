package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-marketplace/internal/client"
	"game-marketplace/internal/dto"
	"game-marketplace/internal/fixture"
	"game-marketplace/internal/logger"
	"game-marketplace/internal/model"
	"game-marketplace/internal/repository"
)

type notificationLog struct {
	mu   sync.Mutex
	msgs []Notification
}

func (l *notificationLog) Notify(n Notification) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, n)
}

func (l *notificationLog) last() Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.msgs[len(l.msgs)-1]
}

type sessionFixture struct {
	catalog CatalogService
	session SessionService
	notes   *notificationLog
}

func newTestSession(t *testing.T, storage repository.StorageRepository) sessionFixture {
	t.Helper()

	catalog := newTestCatalog(t)
	notes := &notificationLog{}
	session := NewSessionService(context.Background(), catalog, storage, notes, fixture.ServiceFeeRate, logger.Nop())

	return sessionFixture{catalog: catalog, session: session, notes: notes}
}

func sqliteStorage(t *testing.T, path string) repository.StorageRepository {
	t.Helper()

	db, err := client.InitStorageDB("sqlite", path)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return repository.NewStorageRepository(db)
}

func game(t *testing.T, catalog CatalogService, id int) model.Game {
	t.Helper()
	g, err := catalog.GetGame(context.Background(), id)
	require.NoError(t, err)
	return *g
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSession_StartsAsDefaultUser(t *testing.T) {
	t.Parallel()
	f := newTestSession(t, nil)

	u := f.session.User()
	assert.Equal(t, fixture.DefaultUserID, u.ID)
	assert.True(t, u.WalletBalance.Equal(money("10")))
	assert.False(t, f.session.IsAdmin())
	assert.Empty(t, f.session.Cart())
	assert.Empty(t, f.session.Orders())
	assert.Empty(t, f.session.Wishlist())
}

func TestSession_AddToCartTwice(t *testing.T) {
	t.Parallel()
	f := newTestSession(t, nil)
	cyberpunk := game(t, f.catalog, 1)

	first := f.session.AddToCart(cyberpunk)
	assert.Equal(t, 1, first.Quantity)
	assert.Equal(t, "Cyberpunk 2077 added to cart", f.notes.last().Message)

	second := f.session.AddToCart(cyberpunk)
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, Notification{Level: LevelSuccess, Message: "Cyberpunk 2077 added to cart (x2)"}, f.notes.last())

	cart := f.session.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestSession_UpdateQuantity(t *testing.T) {
	t.Parallel()
	f := newTestSession(t, nil)
	f.session.AddToCart(game(t, f.catalog, 2))
	f.session.AddToCart(game(t, f.catalog, 4))

	f.session.UpdateQuantity(2, 3)
	assert.Equal(t, 3, f.session.Cart()[0].Quantity)

	f.session.UpdateQuantity(2, 0)
	cart := f.session.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 4, cart[0].ID)

	f.session.UpdateQuantity(99, 5)
	f.session.RemoveFromCart(4)
	assert.Empty(t, f.session.Cart())
}

func TestSession_CartSummary(t *testing.T) {
	t.Parallel()
	f := newTestSession(t, nil)
	f.session.AddToCart(game(t, f.catalog, 2)) // 29.99
	f.session.AddToCart(game(t, f.catalog, 2))
	f.session.AddToCart(game(t, f.catalog, 6)) // free

	sum := f.session.CartSummary()
	assert.Equal(t, 3, sum.Items)
	assert.True(t, sum.Subtotal.Equal(money("59.98")))
	assert.True(t, sum.ServiceFee.Equal(money("2.999")))
	assert.True(t, sum.Total.Equal(money("62.979")))

	f.session.ClearCart()
	assert.True(t, f.session.CartSummary().Total.IsZero())
}

func TestSession_Wallet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestSession(t, nil)

	u, err := f.session.AddToWallet(ctx, money("15.50"))
	require.NoError(t, err)
	assert.True(t, u.WalletBalance.Equal(money("25.50")))

	_, err = f.session.DeductFromWallet(ctx, money("30"))
	require.True(t, errors.Is(err, model.ErrInsufficientFunds))
	assert.True(t, f.session.User().WalletBalance.Equal(money("25.50")))
	assert.Equal(t, LevelError, f.notes.last().Level)

	u, err = f.session.DeductFromWallet(ctx, money("25.50"))
	require.NoError(t, err)
	assert.True(t, u.WalletBalance.IsZero())

	_, err = f.session.AddToWallet(ctx, money("-5"))
	assert.True(t, errors.Is(err, model.ErrValidation))
	_, err = f.session.DeductFromWallet(ctx, decimal.Zero)
	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestSession_Checkout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestSession(t, nil)

	_, err := f.session.AddToWallet(ctx, money("90"))
	require.NoError(t, err)
	f.session.AddToCart(game(t, f.catalog, 1))

	ordersBefore, err := f.catalog.ListOrders(ctx)
	require.NoError(t, err)

	order, err := f.session.Checkout(ctx)
	require.NoError(t, err)

	assert.True(t, order.Total.Equal(money("62.9895")), order.Total.String())
	assert.Equal(t, model.OrderStatusCompleted, order.Status)
	assert.Equal(t, fixture.DefaultUserID, order.CustomerID)

	u := f.session.User()
	assert.True(t, u.WalletBalance.Equal(money("37.0105")))
	assert.Equal(t, fixture.DefaultUser().TotalGamesOwned+1, u.TotalGamesOwned)
	assert.True(t, u.TotalSpent.Equal(fixture.DefaultUser().TotalSpent.Add(money("62.9895"))))
	assert.Empty(t, f.session.Cart())

	history := f.session.Orders()
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)

	fromSession, err := f.session.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fromSession.ID)

	stored, err := f.catalog.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(order.Total))

	ordersAfter, err := f.catalog.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, ordersAfter, len(ordersBefore)+1)
}

func TestSession_CheckoutInsufficientFundsChangesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestSession(t, nil)
	f.session.AddToCart(game(t, f.catalog, 1))

	ordersBefore, err := f.catalog.ListOrders(ctx)
	require.NoError(t, err)

	_, err = f.session.Checkout(ctx)
	require.True(t, errors.Is(err, model.ErrInsufficientFunds))

	assert.True(t, f.session.User().WalletBalance.Equal(money("10")))
	assert.Len(t, f.session.Cart(), 1)
	assert.Empty(t, f.session.Orders())

	ordersAfter, err := f.catalog.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, ordersAfter, len(ordersBefore))
}

func TestSession_CheckoutEmptyCart(t *testing.T) {
	t.Parallel()
	f := newTestSession(t, nil)

	_, err := f.session.Checkout(context.Background())
	assert.True(t, errors.Is(err, model.ErrEmptyCart))

	_, err = f.session.GetOrder("ORD-2024-1000")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestSession_CartChangesWaitForCheckout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var (
		session SessionService
		extra   model.Game
		wg      sync.WaitGroup
	)
	addOrderWait := ReferenceDelays[OpAddOrder]
	latency := NewLatencyWithSleeper(1, func(d time.Duration) {
		if d != addOrderWait || session == nil {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			session.AddToCart(extra)
		}()
		time.Sleep(20 * time.Millisecond)
	})

	catalog := newTestCatalogWithLatency(t, latency)
	extra = game(t, catalog, 2)
	session = NewSessionService(ctx, catalog, nil, &notificationLog{}, fixture.ServiceFeeRate, logger.Nop())

	_, err := session.AddToWallet(ctx, money("90"))
	require.NoError(t, err)
	session.AddToCart(game(t, catalog, 1))

	order, err := session.Checkout(ctx)
	require.NoError(t, err)
	wg.Wait()

	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].ID)
	assert.True(t, order.Total.Equal(money("62.9895")))

	cart := session.Cart()
	require.Len(t, cart, 1, "the concurrent add lands after checkout")
	assert.Equal(t, 2, cart[0].ID)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestSession_Wishlist(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestSession(t, nil)
	elden := game(t, f.catalog, 13)

	f.session.AddToWishlist(ctx, elden)
	f.session.AddToWishlist(ctx, elden)

	assert.Len(t, f.session.Wishlist(), 1)
	assert.True(t, f.session.IsInWishlist(13))
	assert.Equal(t, LevelInfo, f.notes.last().Level)

	notesBefore := len(f.notes.msgs)
	f.session.RemoveFromWishlist(ctx, 99)
	assert.Len(t, f.notes.msgs, notesBefore, "removing an absent game is silent")

	f.session.RemoveFromWishlist(ctx, 13)
	assert.False(t, f.session.IsInWishlist(13))
	assert.Empty(t, f.session.Wishlist())
}

func TestSession_LoginAndLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestSession(t, nil)

	f.session.LoginAsAdmin(ctx)
	assert.True(t, f.session.IsAdmin())
	assert.Equal(t, fixture.AdminUserID, f.session.User().ID)

	f.session.LoginAsUser(ctx)
	assert.False(t, f.session.IsAdmin())

	f.session.AddToCart(game(t, f.catalog, 3))
	f.session.AddToWishlist(ctx, game(t, f.catalog, 3))
	_, err := f.session.AddToWallet(ctx, money("100"))
	require.NoError(t, err)
	_, err = f.session.Checkout(ctx)
	require.NoError(t, err)
	f.session.AddToCart(game(t, f.catalog, 4))

	f.session.Logout(ctx)

	assert.Equal(t, fixture.DefaultUserID, f.session.User().ID)
	assert.True(t, f.session.User().WalletBalance.Equal(money("10")))
	assert.Empty(t, f.session.Orders())
	assert.Empty(t, f.session.Wishlist())
	assert.Empty(t, f.session.Cart())
}

func TestSession_UpdateProfile(t *testing.T) {
	t.Parallel()
	f := newTestSession(t, nil)

	name := "NightOwl"
	u := f.session.UpdateProfile(context.Background(), dto.ProfileUpdate{DisplayName: &name})

	assert.Equal(t, "NightOwl", u.DisplayName)
	assert.Equal(t, fixture.DefaultUser().Email, u.Email)
	assert.Equal(t, "NightOwl", f.session.User().DisplayName)
}

func encode(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestSession_RestoresFromStorage(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	first := newTestSession(t, sqliteStorage(t, path))
	_, err := first.session.AddToWallet(ctx, money("100"))
	require.NoError(t, err)
	first.session.AddToCart(game(t, first.catalog, 1))
	first.session.AddToWishlist(ctx, game(t, first.catalog, 14))
	_, err = first.session.Checkout(ctx)
	require.NoError(t, err)

	second := newTestSession(t, sqliteStorage(t, path))

	want, got := first.session.Orders(), second.session.Orders()
	require.Len(t, got, 1)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.True(t, got[0].Date.Equal(want[0].Date), "%s != %s", got[0].Date, want[0].Date)
	assert.True(t, got[0].Total.Equal(money("62.9895")), got[0].Total.String())
	assert.True(t, second.session.User().WalletBalance.Equal(money("47.0105")))
	assert.True(t, second.session.User().TotalSpent.Equal(first.session.User().TotalSpent))

	assert.Equal(t, encode(t, first.session.User()), encode(t, second.session.User()))
	assert.Equal(t, encode(t, first.session.Orders()), encode(t, second.session.Orders()))
	assert.Equal(t, encode(t, first.session.Wishlist()), encode(t, second.session.Wishlist()))
	assert.Empty(t, second.session.Cart(), "the cart is not mirrored")

	second.session.Logout(ctx)

	third := newTestSession(t, sqliteStorage(t, path))
	assert.Equal(t, fixture.DefaultUserID, third.session.User().ID)
	assert.True(t, third.session.User().WalletBalance.Equal(money("10")))
	assert.Empty(t, third.session.Orders())
	assert.Empty(t, third.session.Wishlist())
}

type brokenStorage struct {
	values map[string][]byte
}

func (s *brokenStorage) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, model.ErrNotFound
	}
	return v, nil
}

func (s *brokenStorage) Put(ctx context.Context, key string, value []byte) error {
	return errors.New("disk full")
}

func (s *brokenStorage) Delete(ctx context.Context, key string) error {
	return errors.New("disk full")
}

func TestSession_StorageFailuresAreNotFatal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	storage := &brokenStorage{values: map[string][]byte{
		repository.KeyUserProfile:  []byte(`not json`),
		repository.KeyUserWishlist: []byte(`[{"id":13,"title":"Elden Ring","price":"59.99"}]`),
	}}
	f := newTestSession(t, storage)

	assert.Equal(t, fixture.DefaultUserID, f.session.User().ID, "undecodable profile is ignored")
	require.Len(t, f.session.Wishlist(), 1)
	assert.Equal(t, "Elden Ring", f.session.Wishlist()[0].Title)

	u, err := f.session.AddToWallet(ctx, money("5"))
	require.NoError(t, err)
	assert.True(t, u.WalletBalance.Equal(money("15")))

	f.session.Logout(ctx)
	assert.Empty(t, f.session.Wishlist())
}
