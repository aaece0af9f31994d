package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	a := assert.New(t)

	cards := Canonical()
	a.Equal(Card{Suit: Baozi, Rank: 10, DisplayOrder: 33}, cards[0])
	a.Equal(Card{Suit: Baozi, Rank: 10, DisplayOrder: 32}, cards[1])
	a.Equal(Card{Suit: Ghost, Rank: 10, DisplayOrder: 31}, cards[2])
	a.Equal(Card{Suit: Baozi, Rank: 9, DisplayOrder: 30}, cards[3])
	a.Equal(Card{Suit: Baozi, Rank: 0, DisplayOrder: 21}, cards[12])
	a.Equal(Card{Suit: Youtiao, Rank: 9, DisplayOrder: 20}, cards[13])
	a.Equal(Card{Suit: Xiang, Rank: 9, DisplayOrder: 10}, cards[23])
	a.Equal(Card{Suit: Xiang, Rank: 0, DisplayOrder: 1}, cards[32])

	ghosts := 0
	for i, card := range cards {
		a.Equal(Size-i, card.DisplayOrder)
		a.False(card.IsPlayed())
		a.False(card.Playable)
		if card.IsGhost() {
			ghosts++
		}
	}
	a.Equal(1, ghosts)

	a.Equal("3331e4fb7711995262a7bf3b538110bf436d9f61", New().HashCode())
}

func TestCanonical_IsACopy(t *testing.T) {
	cards := Canonical()
	cards[0].PlayedInRound = 5

	hand := New()
	hand[1].Playable = true

	fresh := Canonical()
	assert.Equal(t, 0, fresh[0].PlayedInRound)
	assert.False(t, fresh[1].Playable)
}

func TestDealPool(t *testing.T) {
	a := assert.New(t)

	pool, excluded := DealPool(3)
	a.Equal(33, len(pool))
	a.Equal(0, len(excluded))

	pool, excluded = DealPool(4)
	a.Equal(32, len(pool))
	a.Equal("10b", CardsToString(excluded))
	a.Equal(33, excluded[0].DisplayOrder)
	a.Equal(32, pool[0].DisplayOrder)
	a.True(pool[1].IsGhost())
}
