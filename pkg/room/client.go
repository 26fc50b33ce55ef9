package room

import (
	"fmt"
	"pokerrooms-server/pkg/playable"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// PlayerID identifies the seat the client plays
	PlayerID string

	// Name is shown to the other players
	Name string

	dealer *Dealer
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, playerID, name string) *Client {
	return &Client{
		send:     make(chan interface{}, 256),
		Close:    make(chan string, 1),
		Conn:     conn,
		PlayerID: playerID,
		Name:     name,
	}
}

// Send send a message to the web client
// If the client is not keeping up, the message is dropped and false is returned
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("send buffer is full, dropping message")
		return false
	}
}

// close asks the connection to shut down with the reason
func (c *Client) close(reason string) {
	select {
	case c.Close <- reason:
	default:
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and room
func (c *Client) String() string {
	room := ""
	if c.dealer != nil {
		room = c.dealer.id
	}

	return fmt.Sprintf("%s:%s:%s", c.Name, c.PlayerID, room)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
