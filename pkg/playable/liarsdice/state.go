package liarsdice

// playerJSON is the public view of a participant. Dice values are only
// filled in once the game is over; until then other players may only see
// the count.
type playerJSON struct {
	Name      string `json:"name"`
	DiceCount int    `json:"diceCount"`
	Dice      []int  `json:"dice,omitempty"`
}

// GameState is the shared, redacted state of the game
type GameState struct {
	Players        []*playerJSON `json:"players"`
	CurrentTurn    string        `json:"currentTurn"`
	CurrentBet     Bet           `json:"currentBet"`
	RoundTurnCount int           `json:"roundTurnCount"`
	NumberOfDice   int           `json:"numberOfDice"`
	NumberOfSides  int           `json:"numberOfSides"`
	TotalDice      int           `json:"totalDice"`
	GameOver       bool          `json:"gameOver"`
	Winner         string        `json:"winner,omitempty"`
}

// ParticipantState is the state of the game as one player sees it:
// the shared state plus their own dice
type ParticipantState struct {
	*GameState
	Dice         []int `json:"dice,omitempty"`
	NextValidBet *Bet  `json:"nextValidBet,omitempty"`
}

func (g *Game) getGameState() *GameState {
	players := make([]*playerJSON, len(g.turnOrder))
	for i, name := range g.turnOrder {
		p := g.nameToParticipant[name]
		pj := &playerJSON{
			Name:      name,
			DiceCount: p.diceCount(),
		}

		if g.done {
			pj.Dice = append([]int(nil), p.dice...)
		}

		players[i] = pj
	}

	return &GameState{
		Players:        players,
		CurrentTurn:    g.CurrentTurn(),
		CurrentBet:     g.currentBet,
		RoundTurnCount: g.roundTurnCount,
		NumberOfDice:   g.options.NumberOfDice,
		NumberOfSides:  g.options.NumberOfSides,
		TotalDice:      g.totalDiceCount(),
		GameOver:       g.done,
		Winner:         g.winner,
	}
}

// getParticipantState builds the view for playerName. A name that never
// played (a spectator) gets the shared state with no dice of their own.
func (g *Game) getParticipantState(playerName string) *ParticipantState {
	state := g.getGameState()

	ps := &ParticipantState{GameState: state}
	if p, ok := g.nameToParticipant[playerName]; ok {
		ps.Dice = append([]int(nil), p.dice...)
	}

	if !g.done {
		ps.NextValidBet = g.currentBet.NextValid(state.TotalDice, g.options.NumberOfSides)
	}

	return ps
}
