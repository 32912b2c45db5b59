package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Join(t *testing.T) {
	reg := NewRegistry(2)
	assert.False(t, reg.Exists("lobby"))

	room, joined := reg.Join("lobby", "conn-1", "alice")
	assert.True(t, joined)
	assert.True(t, reg.Exists("lobby"))
	assert.Equal(t, "lobby", room.ID())

	room2, joined := reg.Join("lobby", "conn-2", "bob")
	assert.True(t, joined)
	assert.Equal(t, room, room2)

	// full room: joiner becomes a spectator, membership unchanged
	room3, joined := reg.Join("lobby", "conn-3", "carl")
	assert.False(t, joined)
	assert.Equal(t, room, room3)
	assert.Equal(t, []string{"alice", "bob"}, room.DisplayNames())
}

func TestRegistry_Leave(t *testing.T) {
	reg := NewRegistry(5)
	reg.Join("lobby", "conn-1", "alice")
	reg.Join("lobby", "conn-2", "bob")

	destroyed, err := reg.Leave("lobby", "conn-1")
	assert.NoError(t, err)
	assert.False(t, destroyed)

	destroyed, err = reg.Leave("lobby", "conn-2")
	assert.NoError(t, err)
	assert.True(t, destroyed)
	assert.False(t, reg.Exists("lobby"))

	destroyed, err = reg.Leave("lobby", "conn-2")
	assert.Equal(t, ErrRoomNotFound, err)
	assert.False(t, destroyed)
}

func TestRegistry_Get(t *testing.T) {
	reg := NewRegistry(5)

	room, err := reg.Get("lobby")
	assert.Equal(t, ErrRoomNotFound, err)
	assert.Nil(t, room)

	reg.Join("lobby", "conn-1", "alice")
	room, err = reg.Get("lobby")
	assert.NoError(t, err)
	assert.Equal(t, "lobby", room.ID())
}

func TestRegistry_Rooms(t *testing.T) {
	reg := NewRegistry(5)
	assert.Empty(t, reg.Rooms())

	reg.Join("zebra", "conn-1", "alice")
	reg.Join("apple", "conn-2", "bob")
	reg.Join("mango", "conn-3", "carl")

	rooms := reg.Rooms()
	assert.Equal(t, 3, len(rooms))
	assert.Equal(t, "apple", rooms[0].ID())
	assert.Equal(t, "mango", rooms[1].ID())
	assert.Equal(t, "zebra", rooms[2].ID())
}
