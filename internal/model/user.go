package model

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID              string          `json:"id"`
	DisplayName     string          `json:"displayName"`
	Email           string          `json:"email"`
	AvatarURL       string          `json:"avatarUrl"`
	Bio             string          `json:"bio"`
	JoinDate        string          `json:"joinDate"`
	Location        string          `json:"location"`
	TotalGamesOwned int             `json:"totalGamesOwned"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	WalletBalance   decimal.Decimal `json:"walletBalance"`
	Role            Role            `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// User has no reference fields; Clone exists so call sites read the same as
// for games and orders.
func (u User) Clone() User {
	return u
}

func CloneUsers(users []User) []User {
	return slices.Clone(users)
}
