package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"game-marketplace/internal/fixture"
	"game-marketplace/internal/model"
)

type GameRepository interface {
	Seed(ctx context.Context) error
	FindAll(ctx context.Context) ([]model.Game, error)
	FindByID(ctx context.Context, id int) (*model.Game, error)
	Create(ctx context.Context, game *model.Game) error
	Update(ctx context.Context, id int, merge func(model.Game) model.Game) (*model.Game, error)
	Delete(ctx context.Context, id int) (*model.Game, error)
}

type gameRepoImpl struct {
	mu     sync.RWMutex
	games  []model.Game
	seeded bool
	nextID int
}

func NewGameRepository() GameRepository {
	return &gameRepoImpl{
		nextID: 1,
	}
}

func (r *gameRepoImpl) Seed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seeded {
		return nil
	}

	for _, g := range fixture.Games() {
		r.games = append(r.games, g.Clone())
		r.nextID = max(r.nextID, g.ID+1)
	}
	r.seeded = true

	return nil
}

func (r *gameRepoImpl) FindAll(ctx context.Context) ([]model.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return model.CloneGames(r.games), nil
}

func (r *gameRepoImpl) FindByID(ctx context.Context, id int) (*model.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("game %d: %w", id, model.ErrNotFound)
	}

	game := r.games[i].Clone()
	return &game, nil
}

// Create assigns the next id to game and stores a copy of it. Ids only grow,
// so an id freed by Delete is never handed out again.
func (r *gameRepoImpl) Create(ctx context.Context, game *model.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	game.ID = r.nextID
	r.nextID++
	r.games = append(r.games, game.Clone())

	return nil
}

func (r *gameRepoImpl) Update(ctx context.Context, id int, merge func(model.Game) model.Game) (*model.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("game %d: %w", id, model.ErrNotFound)
	}

	updated := merge(r.games[i].Clone())
	updated.ID = id
	r.games[i] = updated.Clone()

	return &updated, nil
}

func (r *gameRepoImpl) Delete(ctx context.Context, id int) (*model.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("game %d: %w", id, model.ErrNotFound)
	}

	removed := r.games[i]
	r.games = slices.Delete(r.games, i, i+1)

	return &removed, nil
}

func (r *gameRepoImpl) indexOf(id int) int {
	return slices.IndexFunc(r.games, func(g model.Game) bool {
		return g.ID == id
	})
}
