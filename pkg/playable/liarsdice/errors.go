package liarsdice

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is the base error for bets and challenges that are
// semantically invalid in the current state. The state is never mutated.
var ErrIllegalMove = errors.New("illegal move")

// ErrInvalidAction is the base error for malformed action payloads
var ErrInvalidAction = errors.New("invalid action")

// ErrGameOver is returned when an action is attempted on an ended game
var ErrGameOver = fmt.Errorf("%w: the game is over", ErrIllegalMove)

// ErrBetTooLow is returned when a bet does not raise the current bet
var ErrBetTooLow = fmt.Errorf("%w: bet must raise the current bet", ErrIllegalMove)

// ErrBetOutOfRange is returned when a bet names a die value the dice cannot show
var ErrBetOutOfRange = fmt.Errorf("%w: die value is out of range", ErrIllegalMove)

// ErrNothingToChallenge is returned when a challenge arrives before any bet this round
var ErrNothingToChallenge = fmt.Errorf("%w: there is no bet to challenge", ErrIllegalMove)

// ErrMissingBet is returned when a bet action arrives without dieValue and count
var ErrMissingBet = fmt.Errorf("%w: bet requires dieValue and count", ErrInvalidAction)
