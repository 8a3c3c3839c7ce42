package fixture

import (
	"game-marketplace/internal/model"

	"github.com/shopspring/decimal"
)

const (
	DefaultUserID = "user_001"
	AdminUserID   = "admin_001"
)

// DefaultUser is the identity a session starts with and returns to on logout.
func DefaultUser() model.User {
	return model.User{
		ID:            DefaultUserID,
		DisplayName:   "GamerPro123",
		Email:         "gamer@example.com",
		AvatarURL:     "https://placehold.co/150x150/lime/white?text=GP",
		Bio:           "Passionate gamer who loves RPGs and open-world adventures. Always looking for the next great game to explore!",
		JoinDate:      "2024-01-15",
		Location:      "United States",
		TotalSpent:    decimal.Zero,
		WalletBalance: price("10.00"),
		Role:          model.RoleUser,
	}
}

func AdminUser() model.User {
	return model.User{
		ID:            AdminUserID,
		DisplayName:   "Admin",
		Email:         "admin@gamestore.com",
		AvatarURL:     "https://placehold.co/150x150/10b981/white?text=A",
		Bio:           "Game Store Administrator",
		JoinDate:      "2024-01-01",
		Location:      "Admin Office",
		TotalSpent:    decimal.Zero,
		WalletBalance: decimal.Zero,
		Role:          model.RoleAdmin,
	}
}

func Users() []model.User {
	return []model.User{
		DefaultUser(),
		AdminUser(),
		{
			ID:              "user_002",
			DisplayName:     "JohnDoe",
			Email:           "john@example.com",
			AvatarURL:       "https://placehold.co/150x150/3b82f6/white?text=JD",
			Bio:             "Casual gamer",
			JoinDate:        "2024-02-15",
			Location:        "Canada",
			TotalGamesOwned: 5,
			TotalSpent:      price("299.95"),
			WalletBalance:   price("50.00"),
			Role:            model.RoleUser,
		},
		{
			ID:              "user_003",
			DisplayName:     "AliceGamer",
			Email:           "alice@example.com",
			AvatarURL:       "https://placehold.co/150x150/ec4899/white?text=AG",
			Bio:             "RPG enthusiast",
			JoinDate:        "2024-03-01",
			Location:        "United Kingdom",
			TotalGamesOwned: 12,
			TotalSpent:      price("599.88"),
			WalletBalance:   price("100.00"),
			Role:            model.RoleUser,
		},
		{
			ID:              "user_004",
			DisplayName:     "ProPlayer99",
			Email:           "pro@example.com",
			AvatarURL:       "https://placehold.co/150x150/f59e0b/white?text=PP",
			Bio:             "Competitive player",
			JoinDate:        "2024-01-20",
			Location:        "Germany",
			TotalGamesOwned: 8,
			TotalSpent:      price("449.92"),
			WalletBalance:   price("25.00"),
			Role:            model.RoleUser,
		},
		{
			ID:              "user_005",
			DisplayName:     "SarahPlays",
			Email:           "sarah@example.com",
			AvatarURL:       "https://placehold.co/150x150/8b5cf6/white?text=SP",
			Bio:             "Strategy game lover",
			JoinDate:        "2024-04-10",
			Location:        "Australia",
			TotalGamesOwned: 3,
			TotalSpent:      price("179.97"),
			WalletBalance:   price("75.00"),
			Role:            model.RoleUser,
		},
	}
}
