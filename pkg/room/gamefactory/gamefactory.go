package gamefactory

import (
	"fmt"

	"liarsdice-server/pkg/playable"
)

// GameFactory creates a new game instance for a room's participants
type GameFactory interface {
	CreateGame(playerNames []string, additionalData playable.AdditionalData) (playable.Playable, error)
}

var factories = map[string]GameFactory{
	"liars-dice": liarsDiceFactory{},
}

// Get returns the factory for the named game variant
func Get(name string) (GameFactory, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown game: %s", name)
	}

	return factory, nil
}
