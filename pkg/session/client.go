package session

import (
	"doublelife-server/pkg/model"
	"doublelife-server/pkg/playable"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a player connected to a session via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	send chan interface{}

	session *Session
	player  *model.Player
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, player *model.Player, session *Session) *Client {
	return &Client{
		Conn:    conn,
		Close:   make(chan string),
		send:    make(chan interface{}, 256),
		session: session,
		player:  player,
	}
}

// Send queues a message for the web client
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outgoing messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and session
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.player.Email, c.session.UUID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.session == nil {
		logrus.WithField("msg", msg).Warn("received message, but session not found")
		return
	}

	c.session.ReceivedMessage(c, msg)
}
