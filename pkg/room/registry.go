package room

import (
	"errors"
	"sort"
	"sync"

	"liarsdice-server/internal/metrics"
)

// ErrRoomNotFound is returned when a session identifier has no room
var ErrRoomNotFound = errors.New("room not found")

// Registry tracks which participants are in which room. It is created at
// service start and injected into the coordinator; rooms come and go with
// their participants.
type Registry struct {
	maxParticipants int

	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRegistry returns an empty room registry
func NewRegistry(maxParticipants int) *Registry {
	return &Registry{
		maxParticipants: maxParticipants,
		rooms:           make(map[string]*Room),
	}
}

// Join adds the participant to the room, creating the room on the first
// join to an unknown session identifier. The second return value is false
// when the room was full and the participant was not added.
func (r *Registry) Join(roomID, connectionID, displayName string) (*Room, bool) {
	r.mu.Lock()
	room, found := r.rooms[roomID]
	if !found {
		room = newRoom(roomID, r.maxParticipants)
		r.rooms[roomID] = room
		metrics.ActiveRooms.Set(float64(len(r.rooms)))
	}
	r.mu.Unlock()

	return room, room.AddParticipant(connectionID, displayName)
}

// Leave removes the connection from the room. An emptied room is
// destroyed; the first return value reports whether that happened.
func (r *Registry) Leave(roomID, connectionID string) (bool, error) {
	room, err := r.Get(roomID)
	if err != nil {
		return false, err
	}

	room.RemoveParticipant(connectionID)
	if !room.IsEmpty() {
		return false, nil
	}

	r.mu.Lock()
	delete(r.rooms, roomID)
	metrics.ActiveRooms.Set(float64(len(r.rooms)))
	r.mu.Unlock()

	return true, nil
}

// Get returns the room for the session identifier
func (r *Registry) Get(roomID string) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, found := r.rooms[roomID]
	if !found {
		return nil, ErrRoomNotFound
	}

	return room, nil
}

// Exists returns true if the session identifier has a room
func (r *Registry) Exists(roomID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, found := r.rooms[roomID]
	return found
}

// Rooms returns every room, ordered by session identifier
func (r *Registry) Rooms() []*Room {
	r.mu.RLock()
	rooms := make([]*Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	r.mu.RUnlock()

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].id < rooms[j].id
	})

	return rooms
}
