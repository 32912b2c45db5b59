package room

import (
	"liarsdice-server/pkg/playable"
)

// roomState is what every participant receives when room membership
// changes: the room itself plus the running game's state, if any
type roomState struct {
	Room *Room       `json:"room"`
	Game interface{} `json:"game"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
