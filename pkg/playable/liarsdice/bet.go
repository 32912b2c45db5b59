package liarsdice

// Bet is a claim that at least Count dice across all players show
// DieValue or the wild face
type Bet struct {
	DieValue int `json:"dieValue"`
	Count    int `json:"count"`
}

// initialBet is the reserved "no bet yet" opening bet. Die value 2 is the
// lowest legal non-wild opening value.
var initialBet = Bet{DieValue: 2, Count: 0}

// Raises reports whether b outbids prev. A bet raises by naming a higher
// die value, or a higher count of the same die value.
func (b Bet) Raises(prev Bet) bool {
	if b.Count <= 0 {
		return false
	}

	if b.DieValue != prev.DieValue {
		return b.DieValue > prev.DieValue
	}

	return b.Count > prev.Count
}

// NextValid returns the smallest bet that would raise b, or nil when no
// raise remains with totalDice dice on the table
func (b Bet) NextValid(totalDice, numberOfSides int) *Bet {
	if b.Count+1 <= totalDice {
		return &Bet{DieValue: b.DieValue, Count: b.Count + 1}
	}

	if b.DieValue+1 <= numberOfSides {
		return &Bet{DieValue: b.DieValue + 1, Count: 1}
	}

	return nil
}
