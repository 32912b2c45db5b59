package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"liarsdice-server/pkg/room"
)

func (m *Mux) getRooms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.rooms.Rooms())
	}
}

func (m *Mux) getGames() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.games.ActiveGames())
	}
}

type getRoomIDResponse struct {
	Room *room.Room  `json:"room"`
	Game interface{} `json:"game"`
}

// getRoomID returns the room and a spectator's view of its game, if one
// is running
func (m *Mux) getRoomID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		roomID := gmux.Vars(r)["id"]

		rm, err := m.rooms.Get(roomID)
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		response := getRoomIDResponse{Room: rm}
		if game, err := m.games.Get(roomID); err == nil {
			if state, err := game.GetPlayerState(""); err == nil {
				response.Game = state.Data
			}
		}

		writeJSON(w, http.StatusOK, response)
	})
}
