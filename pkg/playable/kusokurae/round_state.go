package kusokurae

import (
	"github.com/chinese-slacking-party/go-kusokurae/pkg/deck"
)

// TrickResult describes a finished trick
type TrickResult struct {
	// Seq is the 1-based trick number
	Seq int `json:"seq"`

	// Winner is the 1-based index of the player who took the trick
	Winner int `json:"winner"`

	// Cards in seat order
	Cards   []deck.Card `json:"cards"`
	Score   int         `json:"score"`
	Doubled bool        `json:"doubled"`
}

// RoundState is a read-only view of the trick in progress
type RoundState struct {
	// Seq is the 1-based number of the trick being played
	Seq int `json:"seq"`

	// IsDoubled is true if the ghost has been played in this trick
	IsDoubled bool `json:"isDoubled"`

	// ScoreOnBoard is what the trick is worth so far
	ScoreOnBoard int `json:"scoreOnBoard"`

	// Winner is the 1-based index of the player with the best card so far, 0 if none
	Winner int `json:"winner"`

	// Moves are the cards played in this trick, in the order they were played
	Moves []deck.Card `json:"moves"`

	// LastTrick is the most recently finished trick, nil before the first one ends
	LastTrick *TrickResult `json:"lastTrick"`
}

// GetRoundState returns some useful info about the current trick.
// Before the first card of a trick is played, it has no moves and no score.
func (g *Game) GetRoundState() RoundState {
	if g == nil {
		return RoundState{Moves: []deck.Card{}}
	}

	rs := RoundState{
		Seq:       g.nround + 1,
		Moves:     []deck.Card{},
		LastTrick: g.lastTrick,
	}

	if g.status == StatusFinish {
		rs.Seq = g.nround
	}

	if g.status != StatusPlay || g.highRanker < 0 {
		return rs
	}

	np := g.config.NumPlayers
	score, ghosts := trickScore(g.trick[:np])
	rs.ScoreOnBoard = score
	rs.IsDoubled = ghosts > 0
	rs.Winner = g.highRanker + 1

	// walk the seats after the active player: the ones yet to play are empty,
	// then come the cards played so far, leader first
	start := 0
	if active := g.activePlayer(); active != nil {
		start = active.index
	}

	for k := 0; k < np; k++ {
		card := g.trick[(start+k)%np]
		if card.IsEmpty() {
			if len(rs.Moves) > 0 {
				break
			}
			continue
		}

		rs.Moves = append(rs.Moves, card)
	}

	return rs
}
