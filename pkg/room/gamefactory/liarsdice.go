package gamefactory

import (
	"liarsdice-server/internal/config"
	"liarsdice-server/pkg/playable"
	"liarsdice-server/pkg/playable/liarsdice"
)

type liarsDiceFactory struct{}

// CreateGame creates a liar's dice game. The server defaults can be
// overridden per game with the numberOfDice and numberOfSides keys.
func (l liarsDiceFactory) CreateGame(playerNames []string, additionalData playable.AdditionalData) (playable.Playable, error) {
	cfg := config.Instance()

	options := liarsdice.Options{
		NumberOfDice:  cfg.Game.NumberOfDice,
		NumberOfSides: cfg.Game.NumberOfSides,
	}

	if numberOfDice, ok := additionalData.GetInt("numberOfDice"); ok {
		options.NumberOfDice = numberOfDice
	}

	if numberOfSides, ok := additionalData.GetInt("numberOfSides"); ok {
		options.NumberOfSides = numberOfSides
	}

	return liarsdice.NewGame(playerNames, options)
}
