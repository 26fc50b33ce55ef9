package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2♡", card.String())

	card = Card{
		Rank: 11,
		Suit: Clubs,
	}

	assert.Equal(t, "J♣", card.String())

	card = Card{
		Rank: 12,
		Suit: Diamonds,
	}

	assert.Equal(t, "Q♢", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "A♠", card.String())
	assert.Equal(t, "??", HiddenCard().String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(&Card{Rank: 14, Suit: Spades}, CardFromString("14s"))
	a.Equal(&Card{Rank: 14, Suit: Hearts}, CardFromString("1h"), "a low ace is stored high")
	a.Equal(&Card{Rank: 10, Suit: Diamonds}, CardFromString("10d"))
	a.Nil(CardFromString(""))
	a.Panics(func() {
		CardFromString("15c")
	})
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,13d,14h")
	assert.Equal(t, "2c,13d,14h", CardsToString(cards))
	assert.Equal(t, "?", CardToString(HiddenCard()))
}

func TestRankName(t *testing.T) {
	assert.Equal(t, "Ace", RankName(Ace))
	assert.Equal(t, "King", RankName(King))
	assert.Equal(t, "7", RankName(7))
}
