package kusokurae

import (
	"github.com/chinese-slacking-party/go-kusokurae/pkg/deck"
)

// trickScore adds up the suit values of the cards in a trick, doubled once for every
// ghost among them. Empty slots are skipped.
func trickScore(cards []deck.Card) (score int, ghosts int) {
	for _, card := range cards {
		if card.IsEmpty() {
			continue
		}

		if card.IsGhost() {
			ghosts++
			continue
		}

		score += card.Value()
	}

	return score << ghosts, ghosts
}
