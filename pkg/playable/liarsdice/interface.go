package liarsdice

import (
	"fmt"

	"liarsdice-server/pkg/playable"
)

// gameName is the display name reported to clients
const gameName = "Liar's Dice"

// Action is called when a client performs an action
// Part of the playable.Playable interface
func (g *Game) Action(playerName string, message *playable.PayloadIn) (*playable.Response, bool, error) {
	switch message.Action {
	case ActionBet:
		dieValue, hasValue := message.AdditionalData.GetInt("dieValue")
		count, hasCount := message.AdditionalData.GetInt("count")
		if !hasValue || !hasCount {
			return nil, false, ErrMissingBet
		}

		if err := g.Bet(Bet{DieValue: dieValue, Count: count}); err != nil {
			return nil, false, err
		}
	case ActionChallenge:
		if err := g.Challenge(); err != nil {
			return nil, false, err
		}
	default:
		return nil, false, fmt.Errorf("%w: unknown action: %s", ErrInvalidAction, message.Action)
	}

	return playable.OK(message.Context), true, nil
}

// GetPlayerState returns the game state as the named player may see it
// Part of the playable.Playable interface
func (g *Game) GetPlayerState(playerName string) (*playable.Response, error) {
	return &playable.Response{
		Key:   "game",
		Value: gameName,
		Data:  g.getParticipantState(playerName),
	}, nil
}

// GetEndOfGameDetails returns the final results once the game is over
// Part of the playable.Playable interface
func (g *Game) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	if !g.done {
		return nil, false
	}

	return &playable.GameOverDetails{
		Winner:     g.winner,
		FinalState: g.getGameState(),
	}, true
}

// Name returns the name of the game
// Part of the playable.Playable interface
func (g *Game) Name() string {
	return gameName
}

// LogChan returns a channel where log messages will be sent
// Part of the playable.Playable interface
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}
