package liarsdice

import (
	"liarsdice-server/internal/rng"
	"liarsdice-server/pkg/dice"
)

// Participant is an individual player in the game
// Participants are addressed by display name; the game keeps eliminated
// participants around for the final state, but only active names appear
// in the turn order.
type Participant struct {
	// Name is the display name the player joined the room with
	Name string

	// the dice the player currently holds
	dice []int
}

// roll re-rolls all of the participant's dice
func (p *Participant) roll(r rng.Generator, sides int) {
	dice.Reroll(r, p.dice, sides)
}

// loseDie removes one die
func (p *Participant) loseDie() {
	if len(p.dice) > 0 {
		p.dice = p.dice[:len(p.dice)-1]
	}
}

func (p *Participant) diceCount() int {
	return len(p.dice)
}

func (p *Participant) isEliminated() bool {
	return len(p.dice) == 0
}
