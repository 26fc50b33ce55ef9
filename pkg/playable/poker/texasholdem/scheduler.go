package texasholdem

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"pokerrooms-server/pkg/playable/poker/action"
	"time"
)

// TimerKind identifies what a scheduled callback is for
type TimerKind int

// constants for TimerKind
const (
	TimerBotAction TimerKind = iota
	TimerNextHand
)

func (t TimerKind) String() string {
	switch t {
	case TimerBotAction:
		return "bot-action"
	case TimerNextHand:
		return "next-hand"
	}

	panic(fmt.Sprintf("unknown timer kind: %d", t))
}

// Scheduler runs deferred work for a room
// A room has at most one pending timer. Schedule must cancel whatever is pending
// before arming the new callback, and a cancelled callback must never run.
// Callbacks must be run with the same exclusion as every other call into the Game.
type Scheduler interface {
	Schedule(kind TimerKind, delay time.Duration, fn func())
	Cancel()
}

// armTurn arms the bot timer if the seat on the clock is automated
func (g *Game) armTurn() {
	seat := g.ActiveSeat()
	if seat == nil || !seat.Bot || !seat.canAct() || !g.phase.IsBettingRound() {
		g.scheduler.Cancel()
		return
	}

	handNumber := g.handNumber
	phase := g.phase
	seatID := seat.ID

	g.scheduler.Schedule(TimerBotAction, g.options.BotActionDelay, func() {
		g.runBotTurn(handNumber, phase, seatID)
	})
}

// armNextHand arms the timer that deals the next hand after a showdown
func (g *Game) armNextHand() {
	handNumber := g.handNumber
	g.scheduler.Schedule(TimerNextHand, g.options.NextHandDelay, func() {
		g.nextHand(handNumber)
	})
}

func (g *Game) runBotTurn(handNumber int, phase Phase, seatID string) {
	if g.handNumber != handNumber || g.phase != phase {
		return
	}

	seat := g.ActiveSeat()
	if seat == nil || seat.ID != seatID || !seat.canAct() {
		return
	}

	decision := g.decide(seat)
	g.logger.WithFields(logrus.Fields{
		"seat":   seat.Name,
		"action": decision.Action.ID(),
		"amount": decision.Amount,
	}).Debug("bot decision")

	if err := g.ApplyAction(seat.ID, decision.Action, decision.Amount); err != nil {
		g.logger.WithError(err).WithField("seat", seat.Name).Warn("bot action rejected, folding")
		if err := g.ApplyAction(seat.ID, action.Fold, 0); err != nil {
			g.logger.WithError(err).WithField("seat", seat.Name).Error("could not fold bot")
		}
	}
}

func (g *Game) nextHand(handNumber int) {
	if g.handNumber != handNumber || g.phase != PhaseShowdown {
		return
	}

	if g.connectedCount() >= 2 {
		g.StartNewHand()
		return
	}

	g.phase = PhaseWaiting
	g.message = msgWaiting
}
