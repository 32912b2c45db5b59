package room

import (
	"sync"

	"github.com/sirupsen/logrus"

	"liarsdice-server/internal/metrics"
	"liarsdice-server/pkg/playable"
	"liarsdice-server/pkg/room/gamefactory"
)

type state int

const (
	stateRoomEvent state = iota
	stateGameEvent
)

// Session owns every state transition for one session identifier. All
// room and game mutations for that identifier happen on its run loop, so
// concurrent actions from different participants are serialized; separate
// sessions run on separate loops.
type Session struct {
	coordinator *Coordinator
	roomID      string
	rooms       *Registry
	games       *GameRegistry

	clients map[*Client]bool
	lock    sync.RWMutex

	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
}

// NewSession creates a new session for the room
// This is called from a blocking state, so it needs to return quickly
func NewSession(coordinator *Coordinator, roomID string, rooms *Registry, games *GameRegistry) *Session {
	return &Session{
		coordinator:   coordinator,
		roomID:        roomID,
		rooms:         rooms,
		games:         games,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (s *Session) Clients() []*Client {
	s.lock.RLock()
	defer s.lock.RUnlock()

	clients := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (s *Session) StartShift() {
	go s.runLoop()
}

func (s *Session) runLoop() {
	log := logrus.WithField("room", s.roomID)

	log.Debug("creating session run loop")
	for {
		select {
		case st := <-s.stateChanged:
			switch st {
			case stateRoomEvent:
				s.sendRoomData()
			case stateGameEvent:
				s.sendGameData()
			}
		case fn := <-s.execInRunLoop:
			fn()
		case <-s.close:
			log.Debug("terminating session run loop")
			return
		}
	}
}

// AddClient adds a client and registers them with the room
// This method must return quickly
func (s *Session) AddClient(client *Client) {
	s.lock.Lock()
	client.session = s
	s.clients[client] = true
	s.lock.Unlock()

	s.execInRunLoop <- func() {
		if _, joined := s.rooms.Join(s.roomID, client.connectionID, client.displayName); !joined {
			logrus.WithField("client", client.String()).Debug("room is full, client is spectating")
		}

		s.sendRoomData()

		if len(s.logMessages) > 0 {
			client.Send <- &playable.Response{Key: "logs", Data: s.logMessages}
		}
	}
}

// RemoveClient removes a client and their room membership
// This method must return quickly
func (s *Session) RemoveClient(client *Client) (lastClient bool) {
	s.lock.Lock()
	delete(s.clients, client)
	nClients := len(s.clients)
	s.lock.Unlock()

	if nClients == 0 {
		// last one out: the run loop is about to stop, so tear down the
		// room and any game synchronously. A game must not outlive its room.
		if destroyed, err := s.rooms.Leave(s.roomID, client.connectionID); err == nil && destroyed {
			s.games.End(s.roomID)
		}

		return true
	}

	s.execInRunLoop <- func() {
		if destroyed, err := s.rooms.Leave(s.roomID, client.connectionID); err == nil && destroyed {
			s.games.End(s.roomID)
		}

		s.sendRoomData()
	}

	return false
}

// EndShift is called when the session is no longer needed
func (s *Session) EndShift() {
	close(s.close)
}

// ReceivedMessage is called when a client sends a message to the server.
// The message is handed to the run loop; nothing is mutated on the
// caller's goroutine.
func (s *Session) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	switch msg.Action {
	case "startGame":
		s.execInRunLoop <- func() {
			if err := s.startGame(msg); err != nil {
				c.Send <- newErrorResponse(msg.Context, err)
				return
			}

			c.Send <- playable.OK(msg.Context)
		}
	default:
		s.execInRunLoop <- func() {
			s.playerAction(c, msg)
		}
	}
}

// startGame creates the requested game variant for the room's current
// participants, in join order
// Note: this must only be called from within the run loop
func (s *Session) startGame(msg *playable.PayloadIn) error {
	if s.games.Exists(s.roomID) {
		// duplicate start request, e.g. a double-click
		return nil
	}

	room, err := s.rooms.Get(s.roomID)
	if err != nil {
		return err
	}

	factory, err := gamefactory.Get(msg.Subject)
	if err != nil {
		return err
	}

	game, err := factory.CreateGame(room.DisplayNames(), msg.AdditionalData)
	if err != nil {
		return err
	}

	s.games.Start(s.roomID, game)
	go s.forwardLogs(game)

	logrus.WithFields(logrus.Fields{
		"room": s.roomID,
		"game": game.Name(),
	}).Info("game started")

	s.stateChanged <- stateGameEvent
	return nil
}

// playerAction routes a bet or challenge to the game engine and
// broadcasts the outcome
// Note: this must only be called from within the run loop
func (s *Session) playerAction(c *Client, msg *playable.PayloadIn) {
	game, err := s.games.Get(s.roomID)
	if err != nil {
		c.Send <- newErrorResponse(msg.Context, err)
		return
	}

	metrics.ActionsReceived.Inc()

	response, updateState, err := game.Action(c.displayName, msg)
	if err != nil {
		metrics.ActionErrors.Inc()
		logrus.WithError(err).WithField("client", c.String()).Debug("action rejected")
		c.Send <- newErrorResponse(msg.Context, err)
		return
	}

	if response != nil {
		response.Context = msg.Context
		c.Send <- response
	}

	if details, isOver := game.GetEndOfGameDetails(); isOver {
		s.games.End(s.roomID)
		s.sendGameOver(details)
		return
	}

	if updateState {
		s.stateChanged <- stateGameEvent
	}
}

// forwardLogs relays a game's log messages to the run loop for buffering
// and broadcast
func (s *Session) forwardLogs(game playable.Playable) {
	for {
		select {
		case messages := <-game.LogChan():
			s.execInRunLoop <- func() {
				s.addLogMessages(messages)
				s.broadcast(&playable.Response{Key: "logs", Data: messages})
			}
		case <-s.close:
			return
		}
	}
}

// Note: must only be called from the run loop
func (s *Session) sendRoomData() {
	room, err := s.rooms.Get(s.roomID)
	if err != nil {
		// the room is already gone; nothing to report
		return
	}

	game, _ := s.games.Get(s.roomID)

	for _, client := range s.Clients() {
		data := &roomState{Room: room}
		if game != nil {
			if gs, err := game.GetPlayerState(client.displayName); err == nil {
				data.Game = gs.Data
			}
		}

		client.Send <- &playable.Response{Key: "room", Data: data}
	}
}

// Note: must only be called from the run loop
func (s *Session) sendGameData() {
	game, err := s.games.Get(s.roomID)
	if err != nil {
		logrus.WithField("room", s.roomID).Error("game state changed, but there's no active game")
		return
	}

	for _, client := range s.Clients() {
		data, err := game.GetPlayerState(client.displayName)
		if err != nil {
			logrus.WithError(err).Error("could not get player state")
			continue
		}

		client.Send <- data
	}
}

// Note: must only be called from the run loop
func (s *Session) sendGameOver(details *playable.GameOverDetails) {
	s.broadcast(&playable.Response{
		Key:  "gameOver",
		Data: details,
	})
}

// Note: must only be called from the run loop
func (s *Session) broadcast(response *playable.Response) {
	for _, client := range s.Clients() {
		client.Send <- response
	}
}
