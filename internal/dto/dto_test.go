package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-marketplace/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestCoercePrice(t *testing.T) {
	fallback := decimal.RequireFromString("12.50")

	cases := map[string]string{
		"29.99":   "29.99",
		" 5 ":     "5",
		"0":       "0",
		"-3":      "0",
		"abc":     "12.5",
		"":        "12.5",
		"19.9900": "19.99",
	}
	for in, want := range cases {
		got := CoercePrice(in, fallback)
		assert.Truef(t, got.Equal(decimal.RequireFromString(want)), "CoercePrice(%q) = %s, want %s", in, got, want)
	}
}

func TestCoerceRating(t *testing.T) {
	assert.Equal(t, 4.5, CoerceRating("4.5", 1))
	assert.Equal(t, 5.0, CoerceRating("7", 1))
	assert.Equal(t, 0.0, CoerceRating("-1", 1))
	assert.Equal(t, 0.0, CoerceRating("0", 3))
	assert.Equal(t, 3.0, CoerceRating("great", 3))
	assert.Equal(t, 3.0, CoerceRating("NaN", 3))
	assert.Equal(t, 2.0, CoerceRating(" nan ", 2))
	assert.Equal(t, 5.0, CoerceRating("+Inf", 1))
	assert.Equal(t, 0.0, CoerceRating("-Inf", 1))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"open world", "rpg"}, SplitTags(" open world, ,rpg ,"))
	assert.Empty(t, SplitTags(""))
}

func TestGameInput_NewGame(t *testing.T) {
	in := GameInput{
		Title:    ptr("Hades"),
		Category: ptr("action"),
		Price:    ptr("not a price"),
		Rating:   ptr("9"),
		Tags:     ptr("roguelike, indie"),
	}

	g := in.NewGame(42)

	assert.Equal(t, 42, g.ID)
	assert.Equal(t, "Hades", g.Title)
	assert.Equal(t, model.CategoryAction, g.Category)
	assert.True(t, g.Price.IsZero())
	assert.Equal(t, 5.0, g.Rating)
	assert.Equal(t, []string{"roguelike", "indie"}, g.Tags)
}

func TestGameInput_NewGameWithoutTags(t *testing.T) {
	g := GameInput{Title: ptr("Tetris")}.NewGame(1)
	require.NotNil(t, g.Tags)
	assert.Empty(t, g.Tags)
}

func TestGameInput_MergeOnlyProvidedFields(t *testing.T) {
	existing := model.Game{
		ID:          7,
		Title:       "Forza Horizon 5",
		Category:    model.CategoryRacing,
		Price:       decimal.RequireFromString("59.99"),
		Rating:      4.7,
		Description: "Open world racing.",
		Tags:        []string{"driving"},
		Developer:   "Playground Games",
	}

	merged := GameInput{
		Title:  ptr("Forza Horizon 5 Premium"),
		Price:  ptr("oops"),
		Rating: ptr("0"),
		IsFree: ptr(true),
	}.Merge(existing)

	assert.Equal(t, 7, merged.ID)
	assert.Equal(t, "Forza Horizon 5 Premium", merged.Title)
	assert.True(t, merged.Price.Equal(existing.Price), "unparsable price keeps the old one")
	assert.Equal(t, 0.0, merged.Rating, "a parsed zero is a real value")
	assert.True(t, merged.IsFree)
	assert.Equal(t, "Open world racing.", merged.Description)
	assert.Equal(t, "Playground Games", merged.Developer)
	assert.Equal(t, []string{"driving"}, merged.Tags)
}

func TestGameInput_MergeDoesNotAliasTags(t *testing.T) {
	existing := model.Game{ID: 1, Tags: []string{"a", "b"}}

	merged := GameInput{}.Merge(existing)
	merged.Tags[0] = "changed"

	assert.Equal(t, "a", existing.Tags[0])
}

func TestGameInput_TagListWins(t *testing.T) {
	merged := GameInput{
		Tags:    ptr("x, y"),
		TagList: []string{" co-op ", ""},
	}.Merge(model.Game{})

	assert.Equal(t, []string{"co-op"}, merged.Tags)
}

func TestProfileUpdate_Apply(t *testing.T) {
	u := model.User{
		ID:            "user_001",
		DisplayName:   "GamerPro",
		Email:         "gamer@example.com",
		WalletBalance: decimal.NewFromInt(10),
		Role:          model.RoleUser,
	}

	upd := ProfileUpdate{DisplayName: ptr("NightOwl"), Location: ptr("Lisbon")}
	require.False(t, upd.Empty())

	got := upd.Apply(u)

	assert.Equal(t, "NightOwl", got.DisplayName)
	assert.Equal(t, "Lisbon", got.Location)
	assert.Equal(t, "gamer@example.com", got.Email)
	assert.Equal(t, model.RoleUser, got.Role)
	assert.True(t, got.WalletBalance.Equal(u.WalletBalance))
	assert.True(t, ProfileUpdate{}.Empty())
}
