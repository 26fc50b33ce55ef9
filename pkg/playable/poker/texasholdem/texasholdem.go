package texasholdem

import (
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"pokerrooms-server/pkg/deck"
	"pokerrooms-server/pkg/playable"
	"pokerrooms-server/pkg/playable/poker/action"
	"time"
)

// MaxSeatLimit is the largest table that can be dealt from a single deck with room to spare
const MaxSeatLimit = 10

const holeCardsPerHand = 2

const (
	msgWaiting = "Waiting for more players..."
	msgNewHand = "New hand started! Place your bets."
	msgFlop    = "Flop dealt!"
	msgTurn    = "Turn dealt!"
	msgRiver   = "River dealt!"
)

// Game is a room of no-limit Texas Hold'em played with a single pot
// Game is not safe for concurrent use. The caller must serialize every call,
// including the callbacks handed to the Scheduler.
type Game struct {
	options   Options
	logger    logrus.FieldLogger
	scheduler Scheduler

	deck       *deck.Deck
	seats      []*Seat
	phase      Phase
	community  deck.Hand
	pot        int
	currentBet int
	activeSeat int
	dealerSeat int
	winner     string
	message    string
	revealAll  bool
	handNumber int

	logChan chan []*playable.LogMessage
}

// Options configures a room
type Options struct {
	StartingChips  int
	MaxSeats       int
	BotActionDelay time.Duration
	NextHandDelay  time.Duration

	// RNG shuffles the deck, a time-seeded source is used if nil
	RNG deck.Intn
}

// DefaultOptions returns the default options for a room
func DefaultOptions() Options {
	return Options{
		StartingChips:  1000,
		MaxSeats:       6,
		BotActionDelay: 1500 * time.Millisecond,
		NextHandDelay:  5 * time.Second,
	}
}

func validateOptions(opts Options) error {
	if opts.StartingChips <= 0 {
		return errors.New("starting chips must be greater than zero")
	}

	if opts.MaxSeats < 2 || opts.MaxSeats > MaxSeatLimit {
		return fmt.Errorf("max seats must be between 2 and %d", MaxSeatLimit)
	}

	if opts.BotActionDelay < 0 || opts.NextHandDelay < 0 {
		return errors.New("delays cannot be negative")
	}

	return nil
}

// NewGame returns an empty room waiting for players
func NewGame(logger logrus.FieldLogger, scheduler Scheduler, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if scheduler == nil {
		return nil, errors.New("a scheduler is required")
	}

	if opts.RNG == nil {
		opts.RNG = deck.NewRand(0)
	}

	return &Game{
		options:   opts,
		logger:    logger,
		scheduler: scheduler,
		deck:      deck.New(),
		seats:     make([]*Seat, 0, opts.MaxSeats),
		phase:     PhaseWaiting,
		community: make(deck.Hand, 0, 5),
		message:   msgWaiting,
		logChan:   make(chan []*playable.LogMessage, 256),
	}, nil
}

// LogChan returns a channel the dealer reads log messages from
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

func (g *Game) sendLog(msgs []*playable.LogMessage) {
	select {
	case g.logChan <- msgs:
	default:
		g.logger.WithField("message", msgs[0].Message).Warn("log channel is full, dropping message")
	}
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// IsActive returns true while a hand is being bet on
func (g *Game) IsActive() bool {
	return g.phase.IsBettingRound()
}

// SeatCount returns how many seats are occupied
func (g *Game) SeatCount() int {
	return len(g.seats)
}

// MaxSeats returns how many seats the room has
func (g *Game) MaxSeats() int {
	return g.options.MaxSeats
}

// Pot returns the chips in the pot
func (g *Game) Pot() int {
	return g.pot
}

// CurrentBet returns the highest bet this betting round
func (g *Game) CurrentBet() int {
	return g.currentBet
}

// Message returns the latest status message
func (g *Game) Message() string {
	return g.message
}

// HandNumber returns how many hands have been dealt in this room
func (g *Game) HandNumber() int {
	return g.handNumber
}

// Seat returns the seat with the given ID
func (g *Game) Seat(id string) (*Seat, error) {
	for _, seat := range g.seats {
		if seat.ID == id {
			return seat, nil
		}
	}

	return nil, ErrSeatNotFound
}

// ActiveSeat returns the seat on the clock, or nil if the room is empty
func (g *Game) ActiveSeat() *Seat {
	if g.activeSeat < 0 || g.activeSeat >= len(g.seats) {
		return nil
	}

	return g.seats[g.activeSeat]
}

// AddSeat seats a player
// If a hand is in progress, the seat sits out until the next hand.
// When the second seat is taken in a waiting room, a hand is dealt immediately.
func (g *Game) AddSeat(id, name string, bot bool) (*Seat, error) {
	if _, err := g.Seat(id); err == nil {
		return nil, ErrSeatTaken
	}

	if len(g.seats) >= g.options.MaxSeats {
		return nil, ErrTableFull
	}

	seat := newSeat(id, name, bot, g.options.StartingChips, len(g.seats))
	if g.phase != PhaseWaiting {
		seat.folded = true
		seat.result = resultFolded
	}

	g.seats = append(g.seats, seat)
	g.sendLog(playable.SimpleLogMessageSlice(id, "%s took seat %d", name, seat.index+1))

	if g.phase == PhaseWaiting && g.connectedCount() >= 2 {
		g.StartNewHand()
	}

	return seat, nil
}

// RemoveSeat removes a seat from the room
// A seat removed mid-hand forfeits whatever it committed to the pot.
func (g *Game) RemoveSeat(id string) error {
	seat, err := g.Seat(id)
	if err != nil {
		return err
	}

	inHand := g.phase.IsBettingRound()
	wasActive := seat.index == g.activeSeat
	index := seat.index

	if inHand && !seat.folded {
		seat.lastAction = action.Disconnect
		g.logger.WithFields(logrus.Fields{
			"hand": g.handNumber,
			"seat": seat.ID,
		}).Info("seat folded on disconnect")
	}

	seat.folded = true
	seat.connected = false

	g.seats = append(g.seats[:index], g.seats[index+1:]...)
	for i, s := range g.seats {
		s.index = i
	}

	n := len(g.seats)
	switch {
	case n == 0:
		g.activeSeat = 0
	case index < g.activeSeat:
		g.activeSeat--
	case wasActive:
		// the seat after the removed one now sits at index
		g.activeSeat = (index - 1 + n) % n
	}

	g.sendLog(playable.SimpleLogMessageSlice(id, "%s left the table", seat.Name))

	if !inHand {
		if n < 2 && g.phase == PhaseWaiting {
			g.message = msgWaiting
		}

		return nil
	}

	if g.activeCount() <= 1 {
		g.showdown()
		return nil
	}

	if g.isBettingComplete() {
		g.advancePhase()
	} else if wasActive {
		g.nextTurn()
		g.armTurn()
	}

	return nil
}

// StartNewHand shuffles a fresh deck and deals two cards to every seat
// Chips committed to a hand that is still being bet on are returned first.
func (g *Game) StartNewHand() {
	if g.connectedCount() < 2 {
		g.message = msgWaiting
		return
	}

	if g.phase.IsBettingRound() {
		for _, seat := range g.seats {
			seat.chips += seat.committed
		}
	}

	g.scheduler.Cancel()

	d := deck.New().Shuffle(g.options.RNG)
	g.handNumber++
	g.logger.WithFields(logrus.Fields{
		"hand":     g.handNumber,
		"seats":    len(g.seats),
		"deckHash": d.HashCode(),
	}).Info("dealing new hand")

	for _, seat := range g.seats {
		cards, rest, err := d.Deal(holeCardsPerHand)
		if err != nil {
			// a single deck always covers MaxSeatLimit seats
			panic(err)
		}

		d = rest
		seat.resetForHand(cards)
	}

	g.deck = d
	g.community = make(deck.Hand, 0, 5)
	g.pot = 0
	g.currentBet = 0
	g.phase = PhasePreFlop
	g.activeSeat = g.dealerSeat
	g.winner = ""
	g.message = msgNewHand
	g.revealAll = false

	g.sendLog(playable.SimpleLogMessageSlice("", "Hand #%d started", g.handNumber))
	g.armTurn()
}

// connectedCount returns how many seats are still at the table
func (g *Game) connectedCount() int {
	count := 0
	for _, seat := range g.seats {
		if seat.connected {
			count++
		}
	}

	return count
}

// activeCount returns how many seats can still win the pot
func (g *Game) activeCount() int {
	return len(g.activeSeats())
}

func (g *Game) activeSeats() []*Seat {
	active := make([]*Seat, 0, len(g.seats))
	for _, seat := range g.seats {
		if seat.canAct() {
			active = append(active, seat)
		}
	}

	return active
}
