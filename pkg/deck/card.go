package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Baozi   Suit = "baozi"
	Youtiao Suit = "youtiao"
	Xiang   Suit = "xiang"
	Ghost   Suit = "ghost"
)

// Value returns the points a card of this suit is worth in a trick.
// The ghost is worth nothing, it doubles the trick instead.
func (s Suit) Value() int {
	switch s {
	case Baozi:
		return 1
	case Xiang:
		return -1
	}

	return 0
}

// TopRank is the rank of the two angels and the ghost
const TopRank = 10

// Card is an individual playing card
type Card struct {
	Suit Suit `json:"suit"`
	Rank int  `json:"rank"`

	// DisplayOrder is the card's place in a new, unshuffled deck (33 is the first card).
	// 0 marks an empty slot.
	DisplayOrder int `json:"displayOrder"`

	// PlayedInRound is the 1-based trick the card was played in, 0 while in hand
	PlayedInRound int `json:"playedInRound"`

	// Playable is recomputed whenever the card's owner becomes active
	Playable bool `json:"playable"`
}

func (c Card) String() string {
	if c.IsEmpty() {
		return "-"
	}

	var suit string
	switch c.Suit {
	case Baozi:
		suit = "🥟"
	case Youtiao:
		suit = "🥖"
	case Xiang:
		suit = "💩"
	case Ghost:
		return "👻"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%d%s", c.Rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// IsEmpty returns true if the card is the "no card" sentinel
func (c Card) IsEmpty() bool {
	return c.DisplayOrder == 0
}

// IsGhost returns true for the ghost
func (c Card) IsGhost() bool {
	return c.Suit == Ghost
}

// IsPlayed returns true if the card has left the hand
func (c Card) IsPlayed() bool {
	return c.PlayedInRound > 0
}

// Value returns what the card adds to a trick's score
func (c Card) Value() int {
	return c.Suit.Value()
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]|10)([bgxy])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where suit in [bgxy], e.g. 9b, 0x, 10g.
// The display order is taken from the first matching card in the canonical deck.
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err.Error())
	}

	return card
}

// ParseCard is like CardFromString, but returns an error instead of panicking
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %s", s)
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		return Card{}, fmt.Errorf("could not parse card `%s`: %w", s, err)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "b":
		suit = Baozi
	case "g":
		suit = Ghost
	case "x":
		suit = Xiang
	case "y":
		suit = Youtiao
	}

	for _, card := range Canonical() {
		if card.Suit == suit && card.Rank == rank {
			return card, nil
		}
	}

	return Card{}, fmt.Errorf("no such card: %s", s)
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) Hand {
	if s == "" {
		return Hand{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Baozi 9) to a string (9b)
func CardToString(card Card) string {
	if card.IsEmpty() {
		return ""
	}

	var suit string
	switch card.Suit {
	case Baozi:
		suit = "b"
	case Ghost:
		suit = "g"
	case Xiang:
		suit = "x"
	case Youtiao:
		suit = "y"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 9b,0x,10g,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
