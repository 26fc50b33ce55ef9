package poker

import (
	"fmt"
	"pokerrooms-server/pkg/deck"
	"sort"
)

const handSize = 5

// Evaluation is the result of analyzing a set of cards
type Evaluation struct {
	Hand  Hand      `json:"hand"`
	Cards deck.Hand `json:"cards"`

	// ranks sorted high-to-low, used only to break ties between equal hands
	ranks []int
}

// handAnalyzer keeps track of the rank groupings of up to five cards
type handAnalyzer struct {
	cards       []*deck.Card
	ranks       []int
	uniqueRanks []int
	counts      []int
	flush       bool
	straight    bool
}

// EvaluateFive will analyze five cards
// Fewer cards can be passed in, but they can never make a straight or a flush
func EvaluateFive(cards []*deck.Card) *Evaluation {
	newCards := make([]*deck.Card, len(cards))
	copy(newCards, cards)

	sort.SliceStable(newCards, func(i, j int) bool {
		return newCards[i].Rank > newCards[j].Rank
	})

	h := &handAnalyzer{
		cards: newCards,
	}

	// the method order here is required
	h.analyzeHand()

	return &Evaluation{
		Hand:  h.calculateHand(),
		Cards: newCards,
		ranks: h.ranks,
	}
}

// BestOf returns the best five-card hand that can be made from the hole and community cards
// If there are fewer than five cards, the cards are evaluated as-is
func BestOf(hole, community []*deck.Card) *Evaluation {
	all := make([]*deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)

	if len(all) < handSize {
		return EvaluateFive(all)
	}

	var best *Evaluation
	combo := make([]*deck.Card, handSize)
	for _, indexes := range Combinations(len(all), handSize) {
		for i, index := range indexes {
			combo[i] = all[index]
		}

		if eval := EvaluateFive(combo); best == nil || Compare(eval, best) > 0 {
			best = eval
		}
	}

	return best
}

// Compare returns 1 if a beats b, -1 if b beats a, and 0 if they tie
// The hand category is compared first, then the ranks high-to-low
func Compare(a, b *Evaluation) int {
	if a.Hand > b.Hand {
		return 1
	} else if a.Hand < b.Hand {
		return -1
	}

	for i := 0; i < len(a.ranks) && i < len(b.ranks); i++ {
		if a.ranks[i] > b.ranks[i] {
			return 1
		} else if a.ranks[i] < b.ranks[i] {
			return -1
		}
	}

	return 0
}

// HighCard returns the highest card of the hand, or nil if there are no cards
func (e *Evaluation) HighCard() *deck.Card {
	return e.Cards.FirstCard()
}

// Description returns a description such as "Flush (Ace high)"
func (e *Evaluation) Description() string {
	high := e.HighCard()
	if high == nil {
		return "No hand"
	}

	return fmt.Sprintf("%s (%s high)", e.Hand, deck.RankName(high.Rank))
}

func (e *Evaluation) String() string {
	return fmt.Sprintf("%s [%s]", e.Hand, e.Cards)
}

// analyzeHand will loop through the (sorted) cards and group them by rank and suit
// This is required to be called before calculateHand()
func (h *handAnalyzer) analyzeHand() {
	n := len(h.cards)
	h.ranks = make([]int, n)
	h.uniqueRanks = make([]int, 0, n)
	h.counts = make([]int, 0, n)

	countByRank := make(map[int]int)
	for i, card := range h.cards {
		h.ranks[i] = card.Rank
		if countByRank[card.Rank] == 0 {
			h.uniqueRanks = append(h.uniqueRanks, card.Rank)
		}

		countByRank[card.Rank]++
	}

	for _, rank := range h.uniqueRanks {
		h.counts = append(h.counts, countByRank[rank])
	}

	sort.Sort(sort.Reverse(sort.IntSlice(h.counts)))

	h.flush = n >= handSize
	for _, card := range h.cards {
		if card.Suit != h.cards[0].Suit {
			h.flush = false
			break
		}
	}

	h.straight = isStraight(h.uniqueRanks)
}

func (h *handAnalyzer) count(i int) int {
	if i < len(h.counts) {
		return h.counts[i]
	}

	return 0
}

// calculateHand walks the ladder from the strongest hand down
func (h *handAnalyzer) calculateHand() Hand {
	switch {
	case h.flush && h.straight && h.uniqueRanks[0] == deck.Ace && h.uniqueRanks[4] == 10:
		return RoyalFlush
	case h.flush && h.straight:
		return StraightFlush
	case h.count(0) == 4:
		return FourOfAKind
	case h.count(0) == 3 && h.count(1) == 2:
		return FullHouse
	case h.flush:
		return Flush
	case h.straight:
		return Straight
	case h.count(0) == 3:
		return ThreeOfAKind
	case h.count(0) == 2 && h.count(1) == 2:
		return TwoPair
	case h.count(0) == 2:
		return OnePair
	}

	return HighCard
}
