package room

import (
	"encoding/json"
	"sync"
)

// Participant is a member of a room. ConnectionID changes across
// reconnects; DisplayName is the stable game-facing identity.
type Participant struct {
	ConnectionID string `json:"connectionId"`
	DisplayName  string `json:"displayName"`
}

// Room tracks the participants for one session identifier, in join order
type Room struct {
	id              string
	maxParticipants int

	mu           sync.RWMutex
	participants []*Participant
}

func newRoom(id string, maxParticipants int) *Room {
	return &Room{
		id:              id,
		maxParticipants: maxParticipants,
	}
}

// ID returns the session identifier the room was created for
func (r *Room) ID() string {
	return r.id
}

// AddParticipant adds a participant, or updates the connection identity
// in place when the display name is already present (a reconnect).
// A full room is left untouched and false is returned.
func (r *Room) AddParticipant(connectionID, displayName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.participants) >= r.maxParticipants {
		return false
	}

	for _, p := range r.participants {
		if p.DisplayName == displayName {
			p.ConnectionID = connectionID
			return true
		}
	}

	r.participants = append(r.participants, &Participant{
		ConnectionID: connectionID,
		DisplayName:  displayName,
	})

	return true
}

// RemoveParticipant removes the participant with the connection identity
func (r *Room) RemoveParticipant(connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.participants {
		if p.ConnectionID == connectionID {
			r.participants = append(r.participants[:i], r.participants[i+1:]...)
			return
		}
	}
}

// IsEmpty returns true if nobody is in the room
func (r *Room) IsEmpty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.participants) == 0
}

// Len returns the number of participants
func (r *Room) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.participants)
}

// Participants returns the participants in join order
func (r *Room) Participants() []*Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	participants := make([]*Participant, len(r.participants))
	copy(participants, r.participants)
	return participants
}

// DisplayNames returns the participants' display names in join order
func (r *Room) DisplayNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.participants))
	for i, p := range r.participants {
		names[i] = p.DisplayName
	}

	return names
}

// MarshalJSON encodes the room for the HTTP views
func (r *Room) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID              string         `json:"id"`
		MaxParticipants int            `json:"maxParticipants"`
		Participants    []*Participant `json:"participants"`
	}{
		ID:              r.id,
		MaxParticipants: r.maxParticipants,
		Participants:    r.Participants(),
	})
}
