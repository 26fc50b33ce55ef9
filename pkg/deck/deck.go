package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInsufficientCards is returned when more cards are dealt than the deck holds
var ErrInsufficientCards = errors.New("insufficient cards in deck")

// Intn is a source of random integers in [0, n)
// *rand.Rand satisfies this interface
type Intn interface {
	Intn(n int) int
}

// Deck represents a playing deck
// Cards are consumed front-to-back
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to get a shuffled copy
func New() *Deck {
	return &Deck{Cards: buildCards()}
}

func buildCards() []*Card {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// NewRand returns a math/rand source seeded with seed
// If seed is 0, the current time is used
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) // nolint:gosec
}

// Shuffle returns a shuffled copy of the deck, the receiver is left untouched
// If rng is nil, a time-seeded source is used
func (d *Deck) Shuffle(rng Intn) *Deck {
	if rng == nil {
		rng = NewRand(0)
	}

	cards := make([]*Card, len(d.Cards))
	copy(cards, d.Cards)

	for j := len(cards) - 1; j > 0; j-- {
		i := rng.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}

	return &Deck{Cards: cards}
}

// Deal returns the first n cards and the remaining deck
// The receiver is left untouched. ErrInsufficientCards is returned if n exceeds the cards left.
func (d *Deck) Deal(n int) (Hand, *Deck, error) {
	if n < 0 {
		return nil, d, fmt.Errorf("cannot deal %d cards", n)
	}

	if !d.CanDraw(n) {
		return nil, d, ErrInsufficientCards
	}

	cards := make(Hand, n)
	copy(cards, d.Cards[:n])

	remaining := make([]*Card, len(d.Cards)-n)
	copy(remaining, d.Cards[n:])

	return cards, &Deck{Cards: remaining}, nil
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
