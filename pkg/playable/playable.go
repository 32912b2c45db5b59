package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Playable is a game that can be played in a room
// A variant is selected once at game start and never switched for the
// lifetime of the session.
type Playable interface {
	// Action performs an action from the named player
	// If playerResponse is not nil, that's the response sent directly to the client
	// If updateState is true, it will trigger a state update for all connected clients
	Action(playerName string, message *PayloadIn) (playerResponse *Response, updateState bool, err error)

	// GetPlayerState returns the current state of the game as the named player may see it
	GetPlayerState(playerName string) (*Response, error)

	// GetEndOfGameDetails returns the details after a game is over
	// If the game is still in progress, nil will be returned and the second param will be false
	GetEndOfGameDetails() (gameOverDetails *GameOverDetails, isGameOver bool)

	// Name returns the name of the game
	Name() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage
}

// LogMessage is the format a game should send log messages in
// If PlayerNames is empty, assume it's a general statement
type LogMessage struct {
	UUID        string    `json:"uuid"`
	PlayerNames []string  `json:"playerNames"`
	Message     string    `json:"message"`
	Time        time.Time `json:"time"`
}

// Response is a container to determine who gets the specified message
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action         string         `json:"action"`
	Subject        string         `json:"subject"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// GameOverDetails provides details on how the game ended
type GameOverDetails struct {
	Winner     string      `json:"winner"`
	FinalState interface{} `json:"finalState"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	floatVal, ok := a[key].(float64)
	if !ok {
		return 0, false
	}

	return int(floatVal), true
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerName string, format string, a ...interface{}) *LogMessage {
	var playerNames []string
	if playerName != "" {
		playerNames = []string{playerName}
	}

	return &LogMessage{
		UUID:        uuid.New().String(),
		PlayerNames: playerNames,
		Message:     fmt.Sprintf(format, a...),
		Time:        time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(playerName string, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(playerName, format, a...)}
}
