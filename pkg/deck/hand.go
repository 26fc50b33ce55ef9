package deck

// Hand represents a collection of cards
type Hand []*Card

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// Hidden returns a hand of the same size made up of placeholders
func (h Hand) Hidden() Hand {
	hidden := make(Hand, len(h))
	for i := range h {
		hidden[i] = HiddenCard()
	}

	return hidden
}
