package room

import (
	"errors"
	"sync"

	"liarsdice-server/internal/metrics"
	"liarsdice-server/pkg/playable"
)

// ErrGameNotFound is returned when no game has started for a room
var ErrGameNotFound = errors.New("no game has started for that room")

// GameRegistry enforces at most one active game per session identifier.
// Like the room registry, it is created at service start and injected
// into the coordinator.
type GameRegistry struct {
	mu    sync.RWMutex
	games map[string]playable.Playable
}

// NewGameRegistry returns an empty game registry
func NewGameRegistry() *GameRegistry {
	return &GameRegistry{
		games: make(map[string]playable.Playable),
	}
}

// Start registers the game for the room. A start request for a room that
// already has a game is a no-op, e.g. a double-click; false is returned.
func (g *GameRegistry) Start(roomID string, game playable.Playable) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, found := g.games[roomID]; found {
		return false
	}

	g.games[roomID] = game
	metrics.ActiveGames.Set(float64(len(g.games)))
	return true
}

// Get returns the game running for the room
func (g *GameRegistry) Get(roomID string) (playable.Playable, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	game, found := g.games[roomID]
	if !found {
		return nil, ErrGameNotFound
	}

	return game, nil
}

// Exists returns true if a game is running for the room
func (g *GameRegistry) Exists(roomID string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, found := g.games[roomID]
	return found
}

// End removes the game for the room. It's called when the game reaches a
// terminal state or when the room itself is destroyed.
func (g *GameRegistry) End(roomID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.games, roomID)
	metrics.ActiveGames.Set(float64(len(g.games)))
}

// ActiveGames returns the name of the running game per session identifier
func (g *GameRegistry) ActiveGames() map[string]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	games := make(map[string]string, len(g.games))
	for roomID, game := range g.games {
		games[roomID] = game.Name()
	}

	return games
}
