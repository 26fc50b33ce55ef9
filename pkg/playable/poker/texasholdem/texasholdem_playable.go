package texasholdem

import (
	"fmt"
	"pokerrooms-server/pkg/playable"
	"pokerrooms-server/pkg/playable/poker/action"
)

// Action performs a player action from a client payload
func (g *Game) Action(playerID string, message *playable.PayloadIn) (*playable.Response, bool, error) {
	anAction, err := action.FromString(message.Action)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrInvalidAction, message.Action)
	}

	amount, _ := message.AdditionalData.GetInt("amount")
	if err := g.ApplyAction(playerID, anAction, amount); err != nil {
		return nil, false, err
	}

	return playable.OK(message.Context), true, nil
}

// GetPlayerState returns the room as the player is allowed to see it
func (g *Game) GetPlayerState(playerID string) *playable.Response {
	return &playable.Response{
		Key:   "game",
		Value: g.Key(),
		Data:  g.StateView(playerID),
	}
}

// Name returns the name
func (g *Game) Name() string {
	return "No-Limit Texas Hold'em"
}

// Key returns the key
func (g *Game) Key() string {
	return "texas-hold-em"
}
