package room

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"pokerrooms-server/pkg/playable"
	"pokerrooms-server/pkg/playable/poker/texasholdem"
	"sync"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
)

// Dealer runs a single room
// Every call into the game happens on the dealer's run loop.
type Dealer struct {
	id          string
	logger      logrus.FieldLogger
	game        *texasholdem.Game
	scheduler   *timerScheduler
	clients     map[*Client]bool
	lock        sync.RWMutex
	logMessages []*playable.LogMessage
	botCount    int

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
func NewDealer(id string, logger logrus.FieldLogger, opts texasholdem.Options) (*Dealer, error) {
	d := &Dealer{
		id:            id,
		logger:        logger.WithField("room", id),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}

	d.scheduler = newTimerScheduler(d)

	game, err := texasholdem.NewGame(d.logger, d.scheduler, opts)
	if err != nil {
		return nil, err
	}

	d.game = game
	return d, nil
}

// ID returns the room ID
func (d *Dealer) ID() string {
	return d.id
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift is called when the dealer is no longer needed
// Any pending timer is cancelled.
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent, stateGameEvent:
				d.sendGameData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case messages := <-d.game.LogChan():
			d.addLogMessages(messages)
			d.broadcast(logResponse(messages))
		case <-d.close:
			d.scheduler.Cancel()
			for _, client := range d.Clients() {
				client.close("room closed")
			}

			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// post queues fn on the run loop, it is dropped if the room has closed
func (d *Dealer) post(fn func()) {
	select {
	case d.execInRunLoop <- fn:
	case <-d.close:
	}
}

// exec runs fn on the run loop and waits for it to finish
func (d *Dealer) exec(fn func() error) error {
	errCh := make(chan error, 1)

	select {
	case d.execInRunLoop <- func() { errCh <- fn() }:
	case <-d.close:
		return ErrRoomClosed
	}

	select {
	case err := <-errCh:
		return err
	case <-d.close:
		return ErrRoomClosed
	}
}

// notify asks the run loop to push state to the clients
// A full queue already holds a pending refresh, so the event is dropped.
func (d *Dealer) notify(s state) {
	select {
	case d.stateChanged <- s:
	default:
	}
}

// AddClient seats the client's player
func (d *Dealer) AddClient(client *Client) error {
	return d.exec(func() error {
		if _, err := d.game.AddSeat(client.PlayerID, client.Name, false); err != nil {
			if errors.Is(err, texasholdem.ErrTableFull) {
				return ErrRoomFull
			}

			return err
		}

		d.lock.Lock()
		client.dealer = d
		d.clients[client] = true
		d.lock.Unlock()

		if len(d.logMessages) > 0 {
			client.Send(logResponse(d.logMessages))
		}

		d.notify(stateClientEvent)
		return nil
	})
}

// AddBot seats an automated player
func (d *Dealer) AddBot() error {
	return d.exec(d.addBot)
}

// NOTE: must only be called from the run loop
func (d *Dealer) addBot() error {
	d.botCount++
	id := "bot-" + uuid.New().String()
	if _, err := d.game.AddSeat(id, fmt.Sprintf("Bot %d", d.botCount), true); err != nil {
		d.botCount--
		if errors.Is(err, texasholdem.ErrTableFull) {
			return ErrRoomFull
		}

		return err
	}

	d.notify(stateGameEvent)
	return nil
}

// RemovePlayer removes the player's seat and connection
// The number of connected clients left is returned.
func (d *Dealer) RemovePlayer(playerID string) (int, error) {
	remaining := 0
	err := d.exec(func() error {
		err := d.game.RemoveSeat(playerID)

		d.lock.Lock()
		for client := range d.clients {
			if client.PlayerID == playerID {
				delete(d.clients, client)
			}
		}
		remaining = len(d.clients)
		d.lock.Unlock()

		d.notify(stateClientEvent)
		return err
	})

	return remaining, err
}

// Summary describes the room for the lobby
func (d *Dealer) Summary() (*Summary, error) {
	var summary *Summary
	err := d.exec(func() error {
		summary = d.summary()
		return nil
	})

	return summary, err
}

// NOTE: must only be called from the run loop
func (d *Dealer) summary() *Summary {
	return &Summary{
		ID:         d.id,
		SeatCount:  d.game.SeatCount(),
		MaxSeats:   d.game.MaxSeats(),
		Phase:      d.game.Phase(),
		Active:     d.game.IsActive(),
		HandNumber: d.game.HandNumber(),
		Pot:        d.game.Pot(),
	}
}

// StateFor returns the room as the player is allowed to see it
func (d *Dealer) StateFor(playerID string) (*texasholdem.GameState, error) {
	var gs *texasholdem.GameState
	err := d.exec(func() error {
		gs = d.game.StateView(playerID)
		return nil
	})

	return gs, err
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	for _, client := range d.Clients() {
		client.Send(d.game.GetPlayerState(client.PlayerID))
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(msg interface{}) {
	for _, client := range d.Clients() {
		client.Send(msg)
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	d.post(func() {
		switch msg.Action {
		case "startNewHand":
			d.game.StartNewHand()
			c.Send(playable.OK(msg.Context))
			d.notify(stateGameEvent)
		case "addBot":
			if err := d.addBot(); err != nil {
				c.Send(playable.ErrorResponse(msg.Context, err))
				return
			}

			c.Send(playable.OK(msg.Context))
		default:
			resp, updateState, err := d.game.Action(c.PlayerID, msg)
			if err != nil {
				d.logger.WithError(err).WithField("client", c.String()).Info("could not perform action")
				c.Send(playable.ErrorResponse(msg.Context, err))
				return
			}

			c.Send(resp)
			if updateState {
				d.notify(stateGameEvent)
			}
		}
	})
}
