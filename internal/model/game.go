package model

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryAction   Category = "action"
	CategoryRPG      Category = "rpg"
	CategoryRacing   Category = "racing"
	CategorySports   Category = "sports"
	CategoryStrategy Category = "strategy"
	CategoryShooting Category = "shooting"
)

var Categories = []Category{
	CategoryAction,
	CategoryRPG,
	CategoryRacing,
	CategorySports,
	CategoryStrategy,
	CategoryShooting,
}

func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

type Game struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"` // 0..5
	ImageURL    string          `json:"imageUrl"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Developer   string          `json:"developer"`
	Publisher   string          `json:"publisher"`
	ReleaseDate string          `json:"releaseDate"` // YYYY-MM-DD
	IsFree      bool            `json:"isFree"`
}

// EffectivePrice is what the game costs at checkout.
func (g Game) EffectivePrice() decimal.Decimal {
	if g.IsFree {
		return decimal.Zero
	}
	return g.Price
}

func (g Game) Clone() Game {
	g.Tags = slices.Clone(g.Tags)
	return g
}

func CloneGames(games []Game) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = g.Clone()
	}
	return out
}
