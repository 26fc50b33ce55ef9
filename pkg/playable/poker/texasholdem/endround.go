package texasholdem

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"pokerrooms-server/pkg/playable"
	"pokerrooms-server/pkg/playable/poker/action"
	"pokerrooms-server/pkg/poker"
	"strings"
)

// advancePhase deals the next street, or goes to the showdown after the river
func (g *Game) advancePhase() {
	for _, seat := range g.seats {
		seat.lastAction = action.None
	}

	switch g.phase {
	case PhasePreFlop:
		g.dealCommunity(3, PhaseFlop, msgFlop)
	case PhaseFlop:
		g.dealCommunity(1, PhaseTurn, msgTurn)
	case PhaseTurn:
		g.dealCommunity(1, PhaseRiver, msgRiver)
	case PhaseRiver:
		g.showdown()
	}
}

func (g *Game) dealCommunity(n int, next Phase, message string) {
	cards, rest, err := g.deck.Deal(n)
	if err != nil {
		// the hole cards and five community cards always fit in one deck
		panic(err)
	}

	g.deck = rest
	g.community = append(g.community, cards...)
	g.phase = next
	g.currentBet = 0
	for _, seat := range g.seats {
		if seat.connected {
			seat.bet = 0
		}
	}

	g.message = message
	g.activeSeat = g.firstToActFrom(g.dealerSeat)

	log := playable.SimpleLogMessage("", "%s", message)
	log.Cards = cards
	g.sendLog([]*playable.LogMessage{log})

	g.armTurn()
}

// showdown reveals every hand and pays the pot
// The pot is split evenly between tied winners, any remainder is not paid out.
func (g *Game) showdown() {
	g.phase = PhaseShowdown
	g.revealAll = true
	g.currentBet = 0

	active := g.activeSeats()
	for _, seat := range g.seats {
		if !seat.canAct() {
			seat.result = resultFolded
		}
	}

	switch len(active) {
	case 0:
		g.winner = ""
		g.message = "Nobody is left in the hand"
	case 1:
		winner := active[0]
		g.payout([]*Seat{winner}, g.pot)
		g.message = fmt.Sprintf("%s wins by elimination! (+$%d)", winner.Name, winner.winnings)
	default:
		winners, best := g.bestSeats(active)
		for _, seat := range active {
			seat.result = resultLost
		}

		share := g.pot / len(winners)
		g.payout(winners, share)

		if len(winners) == 1 {
			g.message = fmt.Sprintf("%s wins with %s! (+$%d)", winners[0].Name, best.Description(), share)
		} else {
			g.message = fmt.Sprintf("Tie between %s! Each wins $%d", joinNames(winners), share)
		}
	}

	g.logger.WithFields(logrus.Fields{
		"hand":   g.handNumber,
		"pot":    g.pot,
		"winner": g.winner,
	}).Info("hand finished")

	g.sendLog(playable.SimpleLogMessageSlice("", "%s", g.message))

	g.pot = 0
	for _, seat := range g.seats {
		seat.bet = 0
		seat.committed = 0
	}

	g.armNextHand()
}

// bestSeats returns every seat holding the strongest hand
func (g *Game) bestSeats(active []*Seat) ([]*Seat, *poker.Evaluation) {
	var best *poker.Evaluation
	var winners []*Seat

	for _, seat := range active {
		eval := g.handFor(seat)
		if best == nil {
			best = eval
			winners = []*Seat{seat}
			continue
		}

		switch poker.Compare(eval, best) {
		case 1:
			best = eval
			winners = []*Seat{seat}
		case 0:
			winners = append(winners, seat)
		}
	}

	return winners, best
}

func (g *Game) payout(winners []*Seat, each int) {
	for _, seat := range winners {
		seat.chips += each
		seat.winnings = each
		seat.result = resultWon
	}

	g.winner = joinNames(winners)
}

func joinNames(seats []*Seat) string {
	names := make([]string, len(seats))
	for i, seat := range seats {
		names[i] = seat.Name
	}

	return strings.Join(names, ", ")
}

// handFor returns the best hand a seat can make with the cards on the board
func (g *Game) handFor(seat *Seat) *poker.Evaluation {
	return poker.BestOf(seat.cards, g.community)
}
