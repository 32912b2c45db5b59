package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "liarsdice"

// ConnectedClients is the number of websocket clients currently connected
var ConnectedClients = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "connected_clients",
	Help:      "Number of connected websocket clients",
})

// ActiveRooms is the number of rooms with at least one participant
var ActiveRooms = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "active_rooms",
	Help:      "Number of active rooms",
})

// ActiveGames is the number of games currently in progress
var ActiveGames = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "active_games",
	Help:      "Number of games in progress",
})

// ActionsReceived counts player actions routed to a game engine
var ActionsReceived = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "actions_received_total",
	Help:      "Total number of player actions received",
})

// ActionErrors counts player actions rejected by a game engine
var ActionErrors = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "action_errors_total",
	Help:      "Total number of rejected player actions",
})

// Handler returns the HTTP handler that serves the metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
