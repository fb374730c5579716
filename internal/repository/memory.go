package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/zoo-mahjong/internal/entity"
)

type memoryEntry struct {
	gameJSON  []byte
	expiresAt time.Time
}

func (that memoryEntry) expired(now time.Time) bool {
	return !that.expiresAt.IsZero() && !now.Before(that.expiresAt)
}

// memoryGame keeps JSON snapshots so callers never share state with the store,
// the same as the redis repository. Expiration follows redis: SET clears it.
type memoryGame struct {
	mu    sync.RWMutex
	games map[string]memoryEntry
	now   func() time.Time
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	that.mu.Lock()
	that.games[game.ID] = memoryEntry{gameJSON: gameJSON}
	that.mu.Unlock()

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	entry, ok := that.games[id]
	that.mu.RUnlock()

	if !ok || entry.expired(that.now()) {
		return nil, ErrGameNotFound
	}

	var existingGame entity.Game
	if err := json.Unmarshal(entry.gameJSON, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.games[id]
	if !ok || entry.expired(that.now()) {
		return ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

func (that *memoryGame) Expire(_ context.Context, id string, ttl time.Duration) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := that.now()

	entry, ok := that.games[id]
	if !ok || entry.expired(now) {
		delete(that.games, id)
		return ErrGameNotFound
	}

	entry.expiresAt = now.Add(ttl)
	that.games[id] = entry

	return nil
}
