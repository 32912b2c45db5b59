package room

import (
	"github.com/sirupsen/logrus"

	"liarsdice-server/internal/metrics"
)

// Coordinator dispatches connected clients to their room's session,
// creating and tearing down sessions as participants come and go. It
// holds the registries for the lifetime of the process.
type Coordinator struct {
	rooms *Registry
	games *GameRegistry

	sessions   map[string]*Session
	connect    chan *Client
	disconnect chan *Client
}

// NewCoordinator returns a new coordinator backed by the given registries
func NewCoordinator(rooms *Registry, games *GameRegistry) *Coordinator {
	return &Coordinator{
		rooms:      rooms,
		games:      games,
		sessions:   make(map[string]*Session),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the coordinator run loop
func (c *Coordinator) StartShift() {
	go c.runLoop()
}

func (c *Coordinator) runLoop() {
	for {
		select {
		case client := <-c.connect:
			logrus.WithField("client", client.String()).Debug("client connected")
			metrics.ConnectedClients.Inc()

			session, found := c.sessions[client.roomID]
			if !found {
				session = NewSession(c, client.roomID, c.rooms, c.games)
				session.StartShift()
				c.sessions[client.roomID] = session
			}

			session.AddClient(client)
		case client := <-c.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")
			metrics.ConnectedClients.Dec()

			session, found := c.sessions[client.roomID]
			if !found {
				logrus.WithField("room", client.roomID).Error("session not found")
				continue
			}

			if session.RemoveClient(client) {
				session.EndShift()
				delete(c.sessions, client.roomID)
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (c *Coordinator) ClientConnected(client *Client) {
	c.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (c *Coordinator) ClientDisconnected(client *Client) {
	c.disconnect <- client
}
