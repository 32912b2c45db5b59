package liarsdice

// Options configures a game of Liar's Dice
type Options struct {
	// NumberOfDice is how many dice each player starts with
	NumberOfDice int

	// NumberOfSides is the number of faces on each die
	NumberOfSides int
}

// DefaultOptions returns the standard five-dice, six-sided setup
func DefaultOptions() Options {
	return Options{
		NumberOfDice:  5,
		NumberOfSides: 6,
	}
}
