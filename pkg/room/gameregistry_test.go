package room

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"liarsdice-server/pkg/playable/liarsdice"
)

func newTestGame(t *testing.T) *liarsdice.Game {
	t.Helper()
	game, err := liarsdice.NewGame([]string{"alice", "bob"}, liarsdice.DefaultOptions())
	assert.NoError(t, err)
	return game
}

func TestGameRegistry_Start(t *testing.T) {
	reg := NewGameRegistry()
	assert.False(t, reg.Exists("lobby"))

	game := newTestGame(t)
	assert.True(t, reg.Start("lobby", game))
	assert.True(t, reg.Exists("lobby"))

	// second start for the same room is a no-op
	assert.False(t, reg.Start("lobby", newTestGame(t)))

	got, err := reg.Get("lobby")
	assert.NoError(t, err)
	assert.Equal(t, game, got)
}

func TestGameRegistry_End(t *testing.T) {
	reg := NewGameRegistry()
	reg.Start("lobby", newTestGame(t))

	reg.End("lobby")
	assert.False(t, reg.Exists("lobby"))

	got, err := reg.Get("lobby")
	assert.Equal(t, ErrGameNotFound, err)
	assert.Nil(t, got)

	// ending a room with no game is fine
	reg.End("lobby")
}

func TestGameRegistry_ActiveGames(t *testing.T) {
	reg := NewGameRegistry()
	assert.Empty(t, reg.ActiveGames())

	reg.Start("lobby", newTestGame(t))
	reg.Start("den", newTestGame(t))

	assert.Equal(t, map[string]string{
		"lobby": "Liar's Dice",
		"den":   "Liar's Dice",
	}, reg.ActiveGames())
}
