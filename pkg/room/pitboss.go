package room

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"math/rand"
	"pokerrooms-server/internal/rng"
	"pokerrooms-server/internal/util"
	"pokerrooms-server/pkg/deck"
	"pokerrooms-server/pkg/playable/poker/texasholdem"
	"sort"
	"sync"
	"time"
)

const maxNameAttempts = 50

// PitBoss is responsible for dispatching players to rooms
// All registry operations are serialized.
type PitBoss struct {
	mu         sync.Mutex
	dealers    map[string]*Dealer
	playerRoom map[string]string

	logger  logrus.FieldLogger
	options texasholdem.Options
	newRNG  func() deck.Intn
	names   rng.Generator
}

// NewPitBoss returns a new dispatch object
// newRNG supplies each new room with its shuffle source, rooms use a time-seeded source if it is nil.
func NewPitBoss(logger logrus.FieldLogger, opts texasholdem.Options, newRNG func() deck.Intn) *PitBoss {
	return &PitBoss{
		dealers:    make(map[string]*Dealer),
		playerRoom: make(map[string]string),
		logger:     logger,
		options:    opts,
		newRNG:     newRNG,
		names:      rand.New(rand.NewSource(time.Now().UnixNano())), // nolint:gosec
	}
}

// CreateRoom opens a new room with a friendly name
// If maxSeats is zero, the default is used.
func (p *PitBoss) CreateRoom(maxSeats int) (*Dealer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	opts := p.options
	if maxSeats > 0 {
		opts.MaxSeats = maxSeats
	}

	if p.newRNG != nil {
		opts.RNG = p.newRNG()
	}

	id := p.uniqueRoomName()
	dealer, err := NewDealer(id, p.logger, opts)
	if err != nil {
		return nil, err
	}

	dealer.StartShift()
	p.dealers[id] = dealer

	p.logger.WithFields(logrus.Fields{
		"room":     id,
		"maxSeats": opts.MaxSeats,
	}).Info("room created")

	return dealer, nil
}

// NOTE: p.mu must be held
func (p *PitBoss) uniqueRoomName() string {
	for i := 0; i < maxNameAttempts; i++ {
		name := util.GetRandomRoomName(p.names)
		if _, found := p.dealers[name]; !found {
			return name
		}
	}

	return uuid.New().String()
}

// JoinRoom seats the client in the room
// A player already sitting in another room leaves it first.
func (p *PitBoss) JoinRoom(roomID string, client *Client) (*Dealer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	dealer, found := p.dealers[roomID]
	if !found {
		return nil, ErrRoomNotFound
	}

	summary, err := dealer.Summary()
	if err != nil {
		return nil, err
	}

	if summary.IsFull() {
		return nil, ErrRoomFull
	}

	if prev, found := p.playerRoom[client.PlayerID]; found && prev != roomID {
		p.removePlayer(client.PlayerID)
	}

	if err := dealer.AddClient(client); err != nil {
		return nil, err
	}

	p.playerRoom[client.PlayerID] = roomID
	p.logger.WithFields(logrus.Fields{
		"room":   roomID,
		"player": client.String(),
	}).Info("player joined")

	return dealer, nil
}

// RemovePlayer removes the player from their room
// The room is closed once nobody is connected to it.
func (p *PitBoss) RemovePlayer(playerID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.removePlayer(playerID)
}

// NOTE: p.mu must be held
func (p *PitBoss) removePlayer(playerID string) {
	roomID, found := p.playerRoom[playerID]
	if !found {
		return
	}

	delete(p.playerRoom, playerID)

	dealer, found := p.dealers[roomID]
	if !found {
		return
	}

	remaining, err := dealer.RemovePlayer(playerID)
	if err != nil {
		p.logger.WithError(err).WithField("room", roomID).Warn("could not remove player")
	}

	if remaining > 0 {
		return
	}

	dealer.EndShift()
	delete(p.dealers, roomID)
	for id, room := range p.playerRoom {
		if room == roomID {
			delete(p.playerRoom, id)
		}
	}

	p.logger.WithField("room", roomID).Info("room closed")
}

// Room returns the room with the given ID
func (p *PitBoss) Room(id string) (*Dealer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	dealer, found := p.dealers[id]
	if !found {
		return nil, ErrRoomNotFound
	}

	return dealer, nil
}

// PlayerRoom returns the ID of the room the player sits in
func (p *PitBoss) PlayerRoom(playerID string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	roomID, found := p.playerRoom[playerID]
	return roomID, found
}

// AvailableRooms returns every room that still has an open seat
func (p *PitBoss) AvailableRooms() []*Summary {
	available := make([]*Summary, 0)
	for _, summary := range p.summaries() {
		if !summary.IsFull() {
			available = append(available, summary)
		}
	}

	return available
}

// Stats returns the totals used for health checks
func (p *PitBoss) Stats() *Stats {
	summaries := p.summaries()
	players := 0
	for _, summary := range summaries {
		players += summary.SeatCount
	}

	return &Stats{
		Rooms:   len(summaries),
		Players: players,
		Details: summaries,
	}
}

func (p *PitBoss) summaries() []*Summary {
	p.mu.Lock()
	defer p.mu.Unlock()

	summaries := make([]*Summary, 0, len(p.dealers))
	for _, dealer := range p.dealers {
		summary, err := dealer.Summary()
		if err != nil {
			continue
		}

		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})

	return summaries
}

// Shutdown closes every room
func (p *PitBoss) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, dealer := range p.dealers {
		dealer.EndShift()
		delete(p.dealers, id)
	}

	p.playerRoom = make(map[string]string)
}
