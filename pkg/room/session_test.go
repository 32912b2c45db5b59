package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"liarsdice-server/pkg/playable"
)

func setupCoordinator(t *testing.T, maxParticipants int) (*Coordinator, *Registry, *GameRegistry) {
	t.Helper()

	rooms := NewRegistry(maxParticipants)
	games := NewGameRegistry()
	coordinator := NewCoordinator(rooms, games)
	coordinator.StartShift()

	return coordinator, rooms, games
}

// waitForResponse reads from the client's send channel until a response
// with the wanted key arrives, discarding everything else
func waitForResponse(t *testing.T, c *Client, key string) *playable.Response {
	t.Helper()

	timeout := time.After(time.Second)
	for {
		select {
		case msg := <-c.Send:
			response, ok := msg.(*playable.Response)
			if !ok {
				t.Fatalf("unexpected message type: %T", msg)
			}

			if response.Key == key {
				return response
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %q response", key)
		}
	}
}

func TestCoordinator_sessionLifecycle(t *testing.T) {
	coordinator, rooms, _ := setupCoordinator(t, 10)

	alice := NewClient(nil, "lobby", "conn-1", "alice")
	bob := NewClient(nil, "lobby", "conn-2", "bob")

	coordinator.ClientConnected(alice)
	coordinator.ClientConnected(bob)

	response := waitForResponse(t, alice, "room")
	data, ok := response.Data.(*roomState)
	assert.True(t, ok)
	assert.Nil(t, data.Game)
	waitForResponse(t, bob, "room")

	assert.Eventually(t, func() bool {
		room, err := rooms.Get("lobby")
		return err == nil && room.Len() == 2
	}, time.Second, 10*time.Millisecond)

	coordinator.ClientDisconnected(alice)
	coordinator.ClientDisconnected(bob)

	assert.Eventually(t, func() bool {
		return !rooms.Exists("lobby")
	}, time.Second, 10*time.Millisecond)
}

func TestCoordinator_spectatorWhenRoomIsFull(t *testing.T) {
	coordinator, rooms, _ := setupCoordinator(t, 1)

	alice := NewClient(nil, "lobby", "conn-1", "alice")
	bob := NewClient(nil, "lobby", "conn-2", "bob")

	coordinator.ClientConnected(alice)
	coordinator.ClientConnected(bob)

	waitForResponse(t, alice, "room")

	// bob still gets room updates, but is not a participant
	waitForResponse(t, bob, "room")

	room, err := rooms.Get("lobby")
	assert.NoError(t, err)
	assert.Equal(t, []string{"alice"}, room.DisplayNames())
}

func TestSession_startGame(t *testing.T) {
	coordinator, _, games := setupCoordinator(t, 10)

	alice := NewClient(nil, "lobby", "conn-1", "alice")
	bob := NewClient(nil, "lobby", "conn-2", "bob")

	coordinator.ClientConnected(alice)
	coordinator.ClientConnected(bob)
	waitForResponse(t, alice, "room")
	waitForResponse(t, bob, "room")

	alice.ReceivedMessage(&playable.PayloadIn{Action: "startGame", Subject: "liars-dice", Context: "ctx-1"})

	response := waitForResponse(t, alice, "status")
	assert.Equal(t, "OK", response.Value)
	assert.Equal(t, "ctx-1", response.Context)

	waitForResponse(t, alice, "game")
	waitForResponse(t, bob, "game")
	assert.True(t, games.Exists("lobby"))

	// a second start request is silently accepted and changes nothing
	game, _ := games.Get("lobby")
	bob.ReceivedMessage(&playable.PayloadIn{Action: "startGame", Subject: "liars-dice", Context: "ctx-2"})
	response = waitForResponse(t, bob, "status")
	assert.Equal(t, "OK", response.Value)

	current, _ := games.Get("lobby")
	assert.Equal(t, game, current)
}

func TestSession_startGame_unknownVariant(t *testing.T) {
	coordinator, _, games := setupCoordinator(t, 10)

	alice := NewClient(nil, "lobby", "conn-1", "alice")
	coordinator.ClientConnected(alice)
	waitForResponse(t, alice, "room")

	alice.ReceivedMessage(&playable.PayloadIn{Action: "startGame", Subject: "go-fish", Context: "ctx-1"})

	response := waitForResponse(t, alice, "error")
	assert.Equal(t, "unknown game: go-fish", response.Value)
	assert.Equal(t, "ctx-1", response.Context)
	assert.False(t, games.Exists("lobby"))
}

func TestSession_playerAction(t *testing.T) {
	coordinator, _, _ := setupCoordinator(t, 10)

	alice := NewClient(nil, "lobby", "conn-1", "alice")
	bob := NewClient(nil, "lobby", "conn-2", "bob")

	coordinator.ClientConnected(alice)
	coordinator.ClientConnected(bob)
	waitForResponse(t, alice, "room")
	waitForResponse(t, bob, "room")

	alice.ReceivedMessage(&playable.PayloadIn{Action: "startGame", Subject: "liars-dice"})
	waitForResponse(t, alice, "game")
	waitForResponse(t, bob, "game")

	alice.ReceivedMessage(&playable.PayloadIn{
		Action:         "bet",
		Context:        "ctx-bet",
		AdditionalData: playable.AdditionalData{"dieValue": float64(3), "count": float64(2)},
	})

	response := waitForResponse(t, alice, "status")
	assert.Equal(t, "ctx-bet", response.Context)
	waitForResponse(t, alice, "game")
	waitForResponse(t, bob, "game")

	// bet doesn't raise; only bob hears about it
	bob.ReceivedMessage(&playable.PayloadIn{
		Action:         "bet",
		Context:        "ctx-low",
		AdditionalData: playable.AdditionalData{"dieValue": float64(2), "count": float64(1)},
	})

	response = waitForResponse(t, bob, "error")
	assert.Equal(t, "ctx-low", response.Context)
	assert.Contains(t, response.Value, "illegal move")
}

func TestSession_playerAction_noGame(t *testing.T) {
	coordinator, _, _ := setupCoordinator(t, 10)

	alice := NewClient(nil, "lobby", "conn-1", "alice")
	coordinator.ClientConnected(alice)
	waitForResponse(t, alice, "room")

	alice.ReceivedMessage(&playable.PayloadIn{Action: "challenge", Context: "ctx-1"})

	response := waitForResponse(t, alice, "error")
	assert.Equal(t, "no game has started for that room", response.Value)
	assert.Equal(t, "ctx-1", response.Context)
}

func TestSession_gameOver(t *testing.T) {
	coordinator, _, games := setupCoordinator(t, 10)

	alice := NewClient(nil, "lobby", "conn-1", "alice")
	bob := NewClient(nil, "lobby", "conn-2", "bob")

	coordinator.ClientConnected(alice)
	coordinator.ClientConnected(bob)
	waitForResponse(t, alice, "room")
	waitForResponse(t, bob, "room")

	// one die each, so the first challenge ends the game
	alice.ReceivedMessage(&playable.PayloadIn{
		Action:         "startGame",
		Subject:        "liars-dice",
		AdditionalData: playable.AdditionalData{"numberOfDice": float64(1)},
	})
	waitForResponse(t, alice, "game")
	waitForResponse(t, bob, "game")

	// three of anything can't be covered by two dice, so the challenger
	// always comes up short and loses their last die
	alice.ReceivedMessage(&playable.PayloadIn{
		Action:         "bet",
		AdditionalData: playable.AdditionalData{"dieValue": float64(6), "count": float64(3)},
	})
	waitForResponse(t, bob, "game")

	bob.ReceivedMessage(&playable.PayloadIn{Action: "challenge"})

	response := waitForResponse(t, alice, "gameOver")
	details, ok := response.Data.(*playable.GameOverDetails)
	assert.True(t, ok)
	assert.Equal(t, "alice", details.Winner)
	waitForResponse(t, bob, "gameOver")

	assert.Eventually(t, func() bool {
		return !games.Exists("lobby")
	}, time.Second, 10*time.Millisecond)
}
