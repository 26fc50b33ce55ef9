package room

import (
	"pokerrooms-server/pkg/playable/poker/texasholdem"
)

// Summary describes a room for the lobby
type Summary struct {
	ID         string            `json:"id"`
	SeatCount  int               `json:"seatCount"`
	MaxSeats   int               `json:"maxSeats"`
	Phase      texasholdem.Phase `json:"phase"`
	Active     bool              `json:"active"`
	HandNumber int               `json:"handNumber"`
	Pot        int               `json:"pot"`
}

// IsFull returns true if no more players can sit down
func (s *Summary) IsFull() bool {
	return s.SeatCount >= s.MaxSeats
}

// Stats are totals across every room
type Stats struct {
	Rooms   int        `json:"rooms"`
	Players int        `json:"players"`
	Details []*Summary `json:"details"`
}
