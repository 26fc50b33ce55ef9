package action

import (
	"encoding/json"
	"fmt"
)

// Action represents an action a player can take, or the last thing a seat did
// The zero value is None.
type Action int

// action constants
const (
	None Action = iota
	Fold
	Check
	Call
	Bet
	Raise
	Disconnect
)

// playerActions are the only actions a player can submit
var playerActions = map[string]Action{
	"fold":  Fold,
	"check": Check,
	"call":  Call,
	"bet":   Bet,
	"raise": Raise,
}

// FromString returns an action for the given string
// Only fold, check, call, bet and raise are accepted
func FromString(s string) (Action, error) {
	if a, ok := playerActions[s]; ok {
		return a, nil
	}

	return None, fmt.Errorf("unknown action for identifier: %s", s)
}

// ID returns the identifier used on the wire, i.e., "raise"
func (a Action) ID() string {
	switch a {
	case None:
		return ""
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case Disconnect:
		return "disconnect"
	}

	panic(fmt.Sprintf("unknown action: %d", a))
}

func (a Action) String() string {
	switch a {
	case None:
		return "None"
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Bet:
		return "Bet"
	case Raise:
		return "Raise"
	case Disconnect:
		return "Disconnect"
	}

	panic(fmt.Sprintf("unknown action: %d", a))
}

// MarshalJSON encodes the action into JSON
// None is encoded as null
func (a Action) MarshalJSON() ([]byte, error) {
	if a == None {
		return []byte("null"), nil
	}

	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   a.ID(),
		Name: a.String(),
	})
}

// IsPlayerAction returns true if a player can submit the action
func (a Action) IsPlayerAction() bool {
	_, ok := playerActions[a.ID()]
	return ok
}

// LogMessage returns a message formatted for the log
// For a raise, amount is the seat's new total bet
func (a Action) LogMessage(amount int) string {
	switch a {
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called $%d", amount)
	case Bet:
		return fmt.Sprintf("bet $%d", amount)
	case Raise:
		return fmt.Sprintf("raised to $%d", amount)
	case Disconnect:
		return "disconnected"
	}

	return ""
}
