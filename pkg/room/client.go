package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"liarsdice-server/pkg/playable"
)

// Client is a participant connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Send is a channel for sending messages to the client
	Send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	session *Session

	roomID       string
	connectionID string
	displayName  string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, roomID, connectionID, displayName string) *Client {
	return &Client{
		Conn:         conn,
		Send:         make(chan interface{}, 256),
		Close:        make(chan string),
		roomID:       roomID,
		connectionID: connectionID,
		displayName:  displayName,
	}
}

// RoomID returns the session identifier the client connected to
func (c *Client) RoomID() string {
	return c.roomID
}

// ConnectionID returns the client's connection identity
func (c *Client) ConnectionID() string {
	return c.connectionID
}

// DisplayName returns the client's display name
func (c *Client) DisplayName() string {
	return c.displayName
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.displayName, c.roomID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.session == nil {
		logrus.WithField("msg", msg).Warn("received message, but session not found")
		return
	}

	c.session.ReceivedMessage(c, msg)
}
