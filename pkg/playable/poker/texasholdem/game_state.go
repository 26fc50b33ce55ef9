package texasholdem

import (
	"pokerrooms-server/pkg/deck"
	"pokerrooms-server/pkg/playable/poker/action"
)

// SeatState is a seat as seen by one viewer
type SeatState struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Bot        bool          `json:"bot"`
	Index      int           `json:"index"`
	Chips      int           `json:"chips"`
	Bet        int           `json:"currentBet"`
	Folded     bool          `json:"folded"`
	Connected  bool          `json:"connected"`
	LastAction action.Action `json:"lastAction"`
	Cards      deck.Hand     `json:"cards"`
	Hand       string        `json:"hand,omitempty"`
	Result     result        `json:"result"`
	Winnings   int           `json:"winnings"`
}

// GameState is the room as seen by one viewer
type GameState struct {
	Name       string          `json:"name"`
	HandNumber int             `json:"handNumber"`
	Phase      Phase           `json:"phase"`
	Seats      []*SeatState    `json:"seats"`
	MaxSeats   int             `json:"maxSeats"`
	Community  deck.Hand       `json:"community"`
	Pot        int             `json:"pot"`
	CurrentBet int             `json:"currentBet"`
	ActiveSeat int             `json:"activeSeat"`
	DealerSeat int             `json:"dealerSeat"`
	Winner     string          `json:"winner"`
	Message    string          `json:"message"`
	RevealAll  bool            `json:"revealAll"`
	Actions    []action.Action `json:"actions"`
}

// StateView returns the room as the viewer is allowed to see it
// Hole cards belonging to other seats are replaced with hidden placeholders until the showdown.
func (g *Game) StateView(viewerID string) *GameState {
	seats := make([]*SeatState, len(g.seats))
	for i, seat := range g.seats {
		seats[i] = g.seatState(seat, g.revealAll || seat.ID == viewerID)
	}

	community := make(deck.Hand, len(g.community))
	copy(community, g.community)

	return &GameState{
		Name:       g.Name(),
		HandNumber: g.handNumber,
		Phase:      g.phase,
		Seats:      seats,
		MaxSeats:   g.options.MaxSeats,
		Community:  community,
		Pot:        g.pot,
		CurrentBet: g.currentBet,
		ActiveSeat: g.activeSeat,
		DealerSeat: g.dealerSeat,
		Winner:     g.winner,
		Message:    g.message,
		RevealAll:  g.revealAll,
		Actions:    g.ActionsForSeat(viewerID),
	}
}

func (g *Game) seatState(seat *Seat, reveal bool) *SeatState {
	state := &SeatState{
		ID:         seat.ID,
		Name:       seat.Name,
		Bot:        seat.Bot,
		Index:      seat.index,
		Chips:      seat.chips,
		Bet:        seat.bet,
		Folded:     seat.folded,
		Connected:  seat.connected,
		LastAction: seat.lastAction,
		Result:     seat.result,
		Winnings:   seat.winnings,
	}

	if !reveal {
		state.Cards = seat.cards.Hidden()
		return state
	}

	state.Cards = seat.cards.Clone()
	if len(seat.cards) > 0 {
		state.Hand = g.handFor(seat).Description()
	}

	return state
}

// ActionsForSeat returns the actions the seat could submit right now
func (g *Game) ActionsForSeat(id string) []action.Action {
	seat, err := g.Seat(id)
	if err != nil || !seat.canAct() || !g.phase.IsBettingRound() {
		return nil
	}

	toCall := g.amountToCall(seat)
	actions := []action.Action{action.Fold}
	if toCall == 0 {
		actions = append(actions, action.Check)
	} else if toCall <= seat.chips {
		actions = append(actions, action.Call)
	}

	if seat.chips > 0 {
		if g.currentBet == 0 {
			actions = append(actions, action.Bet)
		} else {
			actions = append(actions, action.Raise)
		}
	}

	return actions
}
