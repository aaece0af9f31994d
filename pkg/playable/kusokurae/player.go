package kusokurae

import (
	"github.com/chinese-slacking-party/go-kusokurae/pkg/deck"
)

// Player is a seat at the table
type Player struct {
	index  int
	status RoundStatus

	// cards are never removed from the hand, they are marked as played
	hand deck.Hand

	cardsTaken int
	score      int
	busted     Busted
}

// Index returns the 1-based seat number
func (p *Player) Index() int {
	return p.index
}

// Status returns the player's status in the current trick
func (p *Player) Status() RoundStatus {
	return p.status
}

// Cards returns a copy of every card dealt to the player, played or not
func (p *Player) Cards() deck.Hand {
	return p.hand.Clone()
}

// HandCards returns the cards still in hand
func (p *Player) HandCards() deck.Hand {
	return p.hand.Unplayed()
}

// PlayableCards returns the cards the player may play now
func (p *Player) PlayableCards() deck.Hand {
	return p.hand.Playable()
}

// NumCards returns the number of cards still in hand
func (p *Player) NumCards() int {
	n := 0
	for _, c := range p.hand {
		if !c.IsPlayed() {
			n++
		}
	}

	return n
}

// CardsTaken returns the number of cards won in tricks
func (p *Player) CardsTaken() int {
	return p.cardsTaken
}

// Score returns the cumulative score
func (p *Player) Score() int {
	return p.score
}

// Busted returns the player's busted flag
func (p *Player) Busted() Busted {
	return p.busted
}

// newGame resets the per-game values and takes the dealt hand
func (p *Player) newGame(hand deck.Hand) {
	p.hand = hand
	p.status = RoundWaiting
	p.cardsTaken = 0
	p.busted = BustedNone
}

func (p *Player) hasGhost() bool {
	for _, c := range p.hand {
		if c.IsGhost() {
			return true
		}
	}

	return false
}

// wonTrick credits the player with the trick's cards and score
func (p *Player) wonTrick(cards, score int) {
	p.cardsTaken += cards
	p.score += score
}
