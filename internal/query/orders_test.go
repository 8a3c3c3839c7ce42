package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-marketplace/internal/fixture"
	"game-marketplace/internal/model"
)

func orderIDs(orders []model.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func userIDs(users []model.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestSortOrdersByDate_NewestFirst(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	orders := fixture.Orders(now)

	// reverse so the input is oldest first
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}

	sorted := SortOrdersByDate(orders)
	assert.Equal(t, []string{
		"ORD-2024-1000", "ORD-2024-1001", "ORD-2024-1002", "ORD-2024-1003", "ORD-2024-1004",
	}, orderIDs(sorted))
	assert.Equal(t, "ORD-2024-1004", orders[0].ID, "input is left alone")
}

func TestSortOrdersByDate_TiesKeepInsertionOrder(t *testing.T) {
	same := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	orders := []model.Order{
		{ID: "a", Date: same},
		{ID: "newest", Date: same.Add(time.Hour)},
		{ID: "b", Date: same},
		{ID: "c", Date: same},
		{ID: "oldest", Date: same.Add(-time.Hour)},
	}

	assert.Equal(t, []string{"newest", "a", "b", "c", "oldest"}, orderIDs(SortOrdersByDate(orders)))
}

func TestFilterOrdersByStatus(t *testing.T) {
	orders := fixture.Orders(time.Now())
	orders[1].Status = model.OrderStatusCancelled
	orders[3].Status = model.OrderStatusCancelled

	assert.Equal(t, []string{"ORD-2024-1001", "ORD-2024-1003"}, orderIDs(FilterOrdersByStatus(orders, model.OrderStatusCancelled)))
	assert.Len(t, FilterOrdersByStatus(orders, model.OrderStatusCompleted), 3)
	assert.Empty(t, FilterOrdersByStatus(orders, model.OrderStatusPending))
}

func TestSearchOrders(t *testing.T) {
	orders := fixture.Orders(time.Now())

	assert.Equal(t, []string{"ORD-2024-1002"}, orderIDs(SearchOrders(orders, "ALICE@")))
	assert.Equal(t, []string{"ORD-2024-1003"}, orderIDs(SearchOrders(orders, "1003")))
	assert.Len(t, SearchOrders(orders, "ord-2024"), len(orders))
	assert.Len(t, SearchOrders(orders, " "), len(orders))
	assert.Empty(t, SearchOrders(orders, "nobody@nowhere"))
}

func TestOrderHelpers_DoNotAlias(t *testing.T) {
	orders := fixture.Orders(time.Now())

	for _, out := range [][]model.Order{
		SortOrdersByDate(orders),
		SearchOrders(orders, ""),
		FilterOrdersByStatus(orders, model.OrderStatusCompleted),
	} {
		require.NotEmpty(t, out)
		out[0].Items[0].Quantity = 42
		out[0].Items[0].Tags[0] = "mutated"
	}

	assert.Equal(t, 1, orders[0].Items[0].Quantity)
	assert.Equal(t, "open world", orders[0].Items[0].Tags[0])
}

func TestFilterUsersByRole(t *testing.T) {
	users := fixture.Users()

	assert.Equal(t, []string{fixture.AdminUserID}, userIDs(FilterUsersByRole(users, model.RoleAdmin)))
	assert.Len(t, FilterUsersByRole(users, model.RoleUser), len(users)-1)
	assert.Empty(t, FilterUsersByRole(users, "root"))
}

func TestSearchUsers(t *testing.T) {
	users := fixture.Users()

	// display name GamerPro123, display name ProPlayer99 and email pro@example.com
	assert.Equal(t, []string{"user_001", "user_004"}, userIDs(SearchUsers(users, "PRO")))
	assert.Equal(t, []string{"user_003"}, userIDs(SearchUsers(users, "alice@example")))
	assert.Equal(t, []string{fixture.AdminUserID}, userIDs(SearchUsers(users, "admin_0")))
	assert.Len(t, SearchUsers(users, ""), len(users))
	assert.Empty(t, SearchUsers(users, "zzz"))
}
