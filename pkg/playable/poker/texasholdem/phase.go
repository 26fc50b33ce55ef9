package texasholdem

import (
	"encoding/json"
	"fmt"
)

// Phase represents where the room is within a hand
type Phase int

// constants for Phase
const (
	PhaseWaiting Phase = iota
	PhasePreFlop
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePreFlop:
		return "pre-flop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseShowdown:
		return "showdown"
	}

	panic(fmt.Sprintf("unknown phase: %d", p))
}

// IsBettingRound returns true if seats can act in this phase
func (p Phase) IsBettingRound() bool {
	return p >= PhasePreFlop && p <= PhaseRiver
}

// MarshalJSON encodes the phase as its name
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}
