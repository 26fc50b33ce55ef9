package texasholdem

import (
	"pokerrooms-server/pkg/deck"
	"pokerrooms-server/pkg/playable/poker/action"
)

type result string

const (
	resultPending result = ""
	resultFolded  result = "folded"
	resultLost    result = "lost"
	resultWon     result = "won"
)

// Seat is a participant at the table, either a person or a bot
type Seat struct {
	ID   string
	Name string
	Bot  bool

	cards      deck.Hand
	chips      int
	bet        int
	committed  int
	folded     bool
	lastAction action.Action
	index      int
	connected  bool

	result   result
	winnings int
}

func newSeat(id, name string, bot bool, chips, index int) *Seat {
	return &Seat{
		ID:         id,
		Name:       name,
		Bot:        bot,
		cards:      make(deck.Hand, 0, 2),
		chips:      chips,
		lastAction: action.None,
		index:      index,
		connected:  true,
		result:     resultPending,
	}
}

// Chips returns how many chips the seat has behind
func (s *Seat) Chips() int {
	return s.chips
}

// Bet returns what the seat has put in during the current betting round
func (s *Seat) Bet() int {
	return s.bet
}

// Folded returns true if the seat is out of the current hand
func (s *Seat) Folded() bool {
	return s.folded
}

// LastAction returns the last action this betting round
func (s *Seat) LastAction() action.Action {
	return s.lastAction
}

// Index returns the position at the table
func (s *Seat) Index() int {
	return s.index
}

// Cards returns the hole cards
func (s *Seat) Cards() deck.Hand {
	return s.cards.Clone()
}

// canAct returns true if the seat is still able to make decisions this hand
func (s *Seat) canAct() bool {
	return s.connected && !s.folded
}

// moveToPot takes chips from the seat and returns the amount taken
func (s *Seat) moveToPot(amount int) int {
	s.chips -= amount
	s.bet += amount
	s.committed += amount

	return amount
}

func (s *Seat) resetForHand(cards deck.Hand) {
	s.cards = cards
	s.bet = 0
	s.committed = 0
	s.folded = false
	s.lastAction = action.None
	s.result = resultPending
	s.winnings = 0
}
