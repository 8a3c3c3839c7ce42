// Package query filters, searches and sorts collections already fetched from
// the store. Nothing here mutates its input: every function returns a new slice
// of copied records.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"game-marketplace/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortField string

const (
	SortByRating      SortField = "rating"
	SortByPrice       SortField = "price"
	SortByTitle       SortField = "title"
	SortByReleaseDate SortField = "releaseDate"
	SortByID          SortField = "id"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseSort reads the "field-direction" form used by the ratings page, e.g.
// "rating-desc" or "name-asc". "name" is accepted for title.
func ParseSort(s string) (SortField, Direction, error) {
	field, dir, ok := strings.Cut(s, "-")
	if !ok {
		dir = string(Asc)
	}
	if field == "name" {
		field = string(SortByTitle)
	}

	f := SortField(field)
	switch f {
	case SortByRating, SortByPrice, SortByTitle, SortByReleaseDate, SortByID:
	default:
		return "", "", fmt.Errorf("sort field %q: %w", field, model.ErrValidation)
	}

	d := Direction(dir)
	if d != Asc && d != Desc {
		return "", "", fmt.Errorf("sort direction %q: %w", dir, model.ErrValidation)
	}

	return f, d, nil
}

// FilterByCategory keeps games whose category is exactly category. The match is
// case-sensitive and an unknown category simply matches nothing.
func FilterByCategory(games []model.Game, category model.Category) []model.Game {
	return filter(games, func(g model.Game) bool {
		return g.Category == category
	})
}

// SearchGames matches q case-insensitively against title, description and tags.
// A blank query returns every game.
func SearchGames(games []model.Game, q string) []model.Game {
	q = strings.TrimSpace(q)
	if q == "" {
		return model.CloneGames(games)
	}

	fold := cases.Fold()
	needle := fold.String(q)
	contains := func(s string) bool {
		return strings.Contains(fold.String(s), needle)
	}

	return filter(games, func(g model.Game) bool {
		return contains(g.Title) || contains(g.Description) || slices.ContainsFunc(g.Tags, contains)
	})
}

// SortGames orders a copy of games by field. The sort is stable: games that
// compare equal keep their relative order.
func SortGames(games []model.Game, field SortField, dir Direction) ([]model.Game, error) {
	var compare func(a, b model.Game) int
	switch field {
	case SortByRating:
		compare = func(a, b model.Game) int { return cmp.Compare(a.Rating, b.Rating) }
	case SortByPrice:
		compare = func(a, b model.Game) int { return a.EffectivePrice().Cmp(b.EffectivePrice()) }
	case SortByTitle:
		coll := collate.New(language.English)
		compare = func(a, b model.Game) int { return coll.CompareString(a.Title, b.Title) }
	case SortByReleaseDate:
		compare = func(a, b model.Game) int { return cmp.Compare(a.ReleaseDate, b.ReleaseDate) }
	case SortByID:
		compare = func(a, b model.Game) int { return cmp.Compare(a.ID, b.ID) }
	default:
		return nil, fmt.Errorf("sort field %q: %w", field, model.ErrValidation)
	}

	out := model.CloneGames(games)
	if dir == Desc {
		slices.SortStableFunc(out, func(a, b model.Game) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(out, compare)
	}

	return out, nil
}

// FilterByPriceRange keeps games whose effective price lies in [lo, hi]. A nil
// bound is open.
func FilterByPriceRange(games []model.Game, lo, hi *decimal.Decimal) []model.Game {
	return filter(games, func(g model.Game) bool {
		p := g.EffectivePrice()
		if lo != nil && p.LessThan(*lo) {
			return false
		}
		if hi != nil && p.GreaterThan(*hi) {
			return false
		}
		return true
	})
}

func FilterByMinRating(games []model.Game, minRating float64) []model.Game {
	return filter(games, func(g model.Game) bool {
		return g.Rating >= minRating
	})
}

func FilterFree(games []model.Game) []model.Game {
	return filter(games, func(g model.Game) bool {
		return g.IsFree
	})
}

// TopRated returns the n highest rated games; ties keep catalog order.
func TopRated(games []model.Game, n int) []model.Game {
	out, _ := SortGames(games, SortByRating, Desc)
	return out[:min(n, len(out))]
}

// Categories lists the distinct categories present, sorted.
func Categories(games []model.Game) []model.Category {
	var cats []model.Category
	for _, g := range games {
		if !slices.Contains(cats, g.Category) {
			cats = append(cats, g.Category)
		}
	}
	slices.Sort(cats)
	return cats
}

// GameQuery combines the storefront filters. Zero fields are ignored. Filters
// apply in the order search, category, price, rating, free, then sort.
type GameQuery struct {
	Search    string
	Category  model.Category
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	MinRating float64
	FreeOnly  bool
	SortField SortField
	SortDir   Direction
}

func (q GameQuery) Apply(games []model.Game) ([]model.Game, error) {
	out := SearchGames(games, q.Search)
	if q.Category != "" {
		out = FilterByCategory(out, q.Category)
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		out = FilterByPriceRange(out, q.MinPrice, q.MaxPrice)
	}
	if q.MinRating > 0 {
		out = FilterByMinRating(out, q.MinRating)
	}
	if q.FreeOnly {
		out = FilterFree(out)
	}
	if q.SortField != "" {
		return SortGames(out, q.SortField, q.SortDir)
	}
	return out, nil
}

func filter(games []model.Game, keep func(model.Game) bool) []model.Game {
	out := make([]model.Game, 0, len(games))
	for _, g := range games {
		if keep(g) {
			out = append(out, g.Clone())
		}
	}
	return out
}
