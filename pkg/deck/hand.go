package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
)

// Hand represents a collection of cards
type Hand []Card

// IndexOf returns the index of the first unplayed card matching suit and rank, or -1
func (h Hand) IndexOf(card Card) int {
	for i, c := range h {
		if !c.IsPlayed() && c.Equal(card) {
			return i
		}
	}

	return -1
}

// Unplayed returns the cards still in hand
func (h Hand) Unplayed() Hand {
	cards := make(Hand, 0, len(h))
	for _, c := range h {
		if !c.IsPlayed() {
			cards = append(cards, c)
		}
	}

	return cards
}

// Playable returns the unplayed cards flagged as playable
func (h Hand) Playable() Hand {
	cards := make(Hand, 0, len(h))
	for _, c := range h {
		if !c.IsPlayed() && c.Playable {
			cards = append(cards, c)
		}
	}

	return cards
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

// HashCode returns a SHA1 hash code of the cards in order
func (h Hand) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range h {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}
