package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"liarsdice-server/internal/config"
	"liarsdice-server/internal/metrics"
	"liarsdice-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version     string
	rooms       *room.Registry
	games       *room.GameRegistry
	coordinator *room.Coordinator
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	rooms := room.NewRegistry(config.Instance().MaxPlayersPerRoom)
	games := room.NewGameRegistry()

	coordinator := room.NewCoordinator(rooms, games)
	coordinator.StartShift()

	this := &Mux{
		Router:      gmux.NewRouter(),
		version:     version,
		rooms:       rooms,
		games:       games,
		coordinator: coordinator,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/metrics").Handler(metrics.Handler())
	r.Methods(http.MethodGet).Path("/rooms").Handler(this.getRooms())
	r.Methods(http.MethodGet).Path("/games").Handler(this.getGames())

	rr := r.PathPrefix("/room/{id:[A-Za-z0-9_-]+}").Subrouter()
	rr.Methods(http.MethodGet).Path("").Handler(this.getRoomID())
	rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomIDWS())

	return this
}
