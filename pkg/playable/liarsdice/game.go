package liarsdice

import (
	"errors"
	"fmt"

	"liarsdice-server/internal/rng"
	"liarsdice-server/pkg/dice"
	"liarsdice-server/pkg/playable"
)

// action names accepted by the game
const (
	ActionBet       = "bet"
	ActionChallenge = "challenge"
)

// Game is a single game of Liar's Dice
// All methods must be called from a single goroutine; the room session
// serializes actions per game.
type Game struct {
	options Options
	rng     rng.Generator

	nameToParticipant map[string]*Participant

	// turnOrder holds the names of the players still in the game,
	// in turn order. turnIndex always points at a valid entry.
	turnOrder []string
	turnIndex int

	// roundTurnCount is the number of bets since the last challenge
	roundTurnCount int
	currentBet     Bet

	done    bool
	winner  string
	logChan chan []*playable.LogMessage
}

// NewGame returns a new game with every player holding freshly rolled dice
func NewGame(playerNames []string, options Options) (*Game, error) {
	if len(playerNames) < 2 {
		return nil, errors.New("game requires at least two players")
	}

	if options.NumberOfDice <= 0 {
		return nil, errors.New("number of dice must be greater than 0")
	}

	if options.NumberOfSides < 2 {
		return nil, errors.New("dice must have at least two sides")
	}

	g := &Game{
		options:           options,
		rng:               rng.Crypto{},
		nameToParticipant: make(map[string]*Participant),
		turnOrder:         make([]string, 0, len(playerNames)),
		currentBet:        initialBet,
		logChan:           make(chan []*playable.LogMessage, 256),
	}

	for _, name := range playerNames {
		if _, found := g.nameToParticipant[name]; found {
			return nil, fmt.Errorf("duplicate player name: %s", name)
		}

		g.nameToParticipant[name] = &Participant{
			Name: name,
			dice: dice.Roll(g.rng, options.NumberOfDice, options.NumberOfSides),
		}
		g.turnOrder = append(g.turnOrder, name)
	}

	return g, nil
}

// CurrentTurn returns the name of the player whose turn it is
func (g *Game) CurrentTurn() string {
	return g.turnOrder[g.turnIndex]
}

func (g *Game) currentParticipant() *Participant {
	return g.nameToParticipant[g.CurrentTurn()]
}

// previousParticipant returns the player who issued the current bet,
// i.e. the player immediately before the current turn holder, with wraparound
func (g *Game) previousParticipant() *Participant {
	index := g.turnIndex - 1
	if index < 0 {
		index = len(g.turnOrder) - 1
	}

	return g.nameToParticipant[g.turnOrder[index]]
}

// Bet places newBet for the current turn holder and advances the turn
// An invalid bet is rejected without mutating any state.
func (g *Game) Bet(newBet Bet) error {
	if g.done {
		return ErrGameOver
	}

	if newBet.DieValue < 1 || newBet.DieValue > g.options.NumberOfSides {
		return ErrBetOutOfRange
	}

	if !newBet.Raises(g.currentBet) {
		return ErrBetTooLow
	}

	bettor := g.CurrentTurn()
	g.currentBet = newBet
	g.turnIndex = (g.turnIndex + 1) % len(g.turnOrder)
	g.roundTurnCount++

	g.sendLogMessages(playable.SimpleLogMessageSlice(bettor, "%s bet that there are at least %d %ds", bettor, newBet.Count, newBet.DieValue))
	return nil
}

// Challenge resolves the current bet and starts the next round
// The table's dice are tallied for the bet's die value, wilds included.
// If the tally covers the bet, the bettor loses a die; otherwise the
// challenger (the current turn holder) loses one.
func (g *Game) Challenge() error {
	if g.done {
		return ErrGameOver
	}

	if g.roundTurnCount == 0 {
		return ErrNothingToChallenge
	}

	challenger := g.currentParticipant()
	bettor := g.previousParticipant()

	matching := g.countMatchingDice(g.currentBet.DieValue)

	loser := bettor
	if matching < g.currentBet.Count {
		loser = challenger
	}

	g.sendLogMessages(playable.SimpleLogMessageSlice(challenger.Name,
		"%s challenged the bet of %d %ds; %d matched, so %s loses a die",
		challenger.Name, g.currentBet.Count, g.currentBet.DieValue, matching, loser.Name))

	loser.loseDie()
	g.nextRound()
	return nil
}

// countMatchingDice tallies every remaining player's dice showing target
// or the wild face. The full dice set is always scanned.
func (g *Game) countMatchingDice(target int) int {
	count := 0
	for _, name := range g.turnOrder {
		count += dice.CountMatching(g.nameToParticipant[name].dice, target)
	}

	return count
}

// nextRound runs the round boundary: drop the busted player (at most one
// per round), point the turn at the next player with dice, re-roll
// everyone, and reset the bet
func (g *Game) nextRound() {
	next := g.nextPlayerWithDice()

	order := make([]string, 0, len(g.turnOrder))
	for _, name := range g.turnOrder {
		if g.nameToParticipant[name].isEliminated() {
			g.sendLogMessages(playable.SimpleLogMessageSlice(name, "%s is out of dice and eliminated", name))
			continue
		}

		order = append(order, name)
	}

	g.turnOrder = order
	g.turnIndex = g.indexOf(next)
	g.currentBet = initialBet
	g.roundTurnCount = 0

	for _, name := range g.turnOrder {
		g.nameToParticipant[name].roll(g.rng, g.options.NumberOfSides)
	}

	if len(g.turnOrder) == 1 {
		g.done = true
		g.winner = g.turnOrder[0]
		g.sendLogMessages(playable.SimpleLogMessageSlice(g.winner, "%s won the game", g.winner))
	}
}

// nextPlayerWithDice returns the name of the first player after the
// current turn holder, with wraparound, who still holds dice. At most one
// player can be out of dice at a round boundary, so this always finds one.
func (g *Game) nextPlayerWithDice() string {
	n := len(g.turnOrder)
	for i := 1; i <= n; i++ {
		name := g.turnOrder[(g.turnIndex+i)%n]
		if !g.nameToParticipant[name].isEliminated() {
			return name
		}
	}

	return g.CurrentTurn()
}

func (g *Game) indexOf(name string) int {
	for i, n := range g.turnOrder {
		if n == name {
			return i
		}
	}

	return 0
}

// totalDiceCount is the number of dice still on the table
func (g *Game) totalDiceCount() int {
	count := 0
	for _, name := range g.turnOrder {
		count += g.nameToParticipant[name].diceCount()
	}

	return count
}

func (g *Game) sendLogMessages(messages []*playable.LogMessage) {
	select {
	case g.logChan <- messages:
	default:
	}
}
