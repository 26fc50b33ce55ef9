package texasholdem

import (
	"github.com/sirupsen/logrus"
	"pokerrooms-server/pkg/deck"
	"testing"
	"time"
)

// manualScheduler holds the pending callback until the test fires it
type manualScheduler struct {
	kind    TimerKind
	delay   time.Duration
	pending func()
}

func (m *manualScheduler) Schedule(kind TimerKind, delay time.Duration, fn func()) {
	m.kind = kind
	m.delay = delay
	m.pending = fn
}

func (m *manualScheduler) Cancel() {
	m.pending = nil
}

func (m *manualScheduler) fire() bool {
	fn := m.pending
	if fn == nil {
		return false
	}

	m.pending = nil
	fn()
	return true
}

func (m *manualScheduler) armed(kind TimerKind) bool {
	return m.pending != nil && m.kind == kind
}

// setupGame returns a room with the named human seats
// A hand is dealt if there are two or more, and every seat is dealt in.
func setupGame(t *testing.T, names ...string) (*Game, *manualScheduler) {
	t.Helper()

	sched := &manualScheduler{}
	opts := DefaultOptions()
	opts.RNG = deck.NewRand(1)

	g, err := NewGame(logrus.StandardLogger(), sched, opts)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range names {
		if _, err := g.AddSeat(name, name, false); err != nil {
			t.Fatal(err)
		}
	}

	// seats after the second joined mid-hand
	if len(names) > 2 {
		g.StartNewHand()
	}

	return g, sched
}

// stackHand replaces the hole cards and the undealt deck so the rest of the hand is known
func stackHand(g *Game, board string, holes ...string) {
	for i, hole := range holes {
		g.seats[i].cards = deck.CardsFromString(hole)
	}

	g.deck = &deck.Deck{Cards: deck.CardsFromString(board)}
}

// totalChips is every chip in the room, including the pot
func totalChips(g *Game) int {
	total := g.pot
	for _, seat := range g.seats {
		total += seat.chips
	}

	return total
}
