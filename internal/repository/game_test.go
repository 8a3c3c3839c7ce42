package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-marketplace/internal/fixture"
	"game-marketplace/internal/model"
)

func seededGames(t *testing.T) GameRepository {
	t.Helper()
	repo := NewGameRepository()
	require.NoError(t, repo.Seed(context.Background()))
	return repo
}

func TestGameRepository_SeedIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := seededGames(t)

	require.NoError(t, repo.Seed(ctx))

	games, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, games, len(fixture.Games()))
}

func TestGameRepository_FindByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := seededGames(t)

	g, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Cyberpunk 2077", g.Title)
	assert.True(t, g.Price.Equal(decimal.RequireFromString("59.99")))

	_, err = repo.FindByID(ctx, 999)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestGameRepository_ReadsDoNotAlias(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := seededGames(t)

	games, err := repo.FindAll(ctx)
	require.NoError(t, err)
	games[0].Title = "mutated"
	games[0].Tags[0] = "mutated"

	g, err := repo.FindByID(ctx, games[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Cyberpunk 2077", g.Title)
	assert.Equal(t, "open world", g.Tags[0])
	assert.Equal(t, "open world", fixture.Games()[0].Tags[0])
}

func TestGameRepository_CreateAssignsFreshIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := seededGames(t)

	first := &model.Game{Title: "Hades", Tags: []string{"roguelike"}}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, 17, first.ID)

	_, err := repo.Delete(ctx, first.ID)
	require.NoError(t, err)

	second := &model.Game{Title: "Celeste"}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, 18, second.ID, "deleted ids are not reused")

	second.Title = "mutated"
	stored, err := repo.FindByID(ctx, 18)
	require.NoError(t, err)
	assert.Equal(t, "Celeste", stored.Title)
}

func TestGameRepository_UpdateKeepsID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := seededGames(t)

	updated, err := repo.Update(ctx, 2, func(g model.Game) model.Game {
		g.ID = 100
		g.Title = "GTA V Enhanced"
		return g
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ID)

	g, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "GTA V Enhanced", g.Title)

	_, err = repo.Update(ctx, 999, func(g model.Game) model.Game { return g })
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestGameRepository_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := seededGames(t)

	removed, err := repo.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Far Cry 6", removed.Title)

	_, err = repo.FindByID(ctx, 3)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	_, err = repo.Delete(ctx, 3)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	games, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, games, len(fixture.Games())-1)
}
