package texasholdem

import (
	"pokerrooms-server/pkg/playable/poker/action"
	"pokerrooms-server/pkg/poker"
)

// Decision is what an automated seat wants to do
type Decision struct {
	Action action.Action `json:"action"`
	Amount int           `json:"amount"`
}

// Decide returns a bot's move for the strength of its hand
// Full house or better raises twice the call, trips or a straight or flush calls,
// a pair calls only when the call is at most 30% of the pot. Everything else checks or folds.
func Decide(hand poker.Hand, toCall, chips, pot int) Decision {
	switch {
	case hand >= poker.FullHouse:
		amount := toCall * 2
		if amount > chips {
			amount = chips
		}

		return Decision{Action: action.Raise, Amount: amount}
	case hand >= poker.ThreeOfAKind:
		return Decision{Action: action.Call, Amount: toCall}
	case hand >= poker.OnePair:
		if toCall*10 <= pot*3 {
			return Decision{Action: action.Call, Amount: toCall}
		}

		return Decision{Action: action.Fold}
	}

	if toCall <= 0 {
		return Decision{Action: action.Check}
	}

	return Decision{Action: action.Fold}
}

// decide turns the heuristic into something the room will accept
func (g *Game) decide(seat *Seat) Decision {
	toCall := g.amountToCall(seat)
	d := Decide(g.handFor(seat).Hand, toCall, seat.chips, g.pot)

	// a raise of nothing is a check or a call
	if d.Action == action.Raise && d.Amount <= 0 {
		if toCall == 0 {
			d = Decision{Action: action.Check}
		} else {
			d = Decision{Action: action.Call, Amount: toCall}
		}
	}

	if d.Action == action.Call && toCall > seat.chips {
		d = Decision{Action: action.Fold}
	}

	return d
}
