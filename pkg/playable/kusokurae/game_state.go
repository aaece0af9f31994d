package kusokurae

import (
	"github.com/chinese-slacking-party/go-kusokurae/pkg/deck"
)

// GameState is the overall game state, including every player's cards
type GameState struct {
	ID          string             `json:"id"`
	Status      string             `json:"status"`
	NumPlayers  int                `json:"numPlayers"`
	HandSize    int                `json:"handSize"`
	Round       int                `json:"round"`
	GhostHolder int                `json:"ghostHolder"`
	HighRanker  int                `json:"highRanker"`
	CurrentTurn int                `json:"currentTurn"`
	Trick       []deck.Card        `json:"trick"`
	LastTrick   *TrickResult       `json:"lastTrick"`
	Players     []*GameStatePlayer `json:"players"`
}

// GameStatePlayer is the state of an individual player
type GameStatePlayer struct {
	Index       int       `json:"index"`
	Status      string    `json:"status"`
	Hand        deck.Hand `json:"hand"`
	CardsInHand int       `json:"cardsInHand"`
	CardsTaken  int       `json:"cardsTaken"`
	Score       int       `json:"score"`
	Busted      Busted    `json:"busted"`
}

// State returns a snapshot of the game that hosts can serialize.
// Player and seat indexes are 1-based, 0 means none. A nil game has no state.
func (g *Game) State() *GameState {
	if g == nil {
		return nil
	}

	np := g.config.NumPlayers

	players := make([]*GameStatePlayer, np)
	for i := 0; i < np; i++ {
		player := &g.players[i]
		players[i] = &GameStatePlayer{
			Index:       player.index,
			Status:      player.status.String(),
			Hand:        player.hand.Clone(),
			CardsInHand: player.NumCards(),
			CardsTaken:  player.cardsTaken,
			Score:       player.score,
			Busted:      player.busted,
		}
	}

	var currentTurn int
	if player := g.ActivePlayer(); player != nil {
		currentTurn = player.index
	}

	trick := make([]deck.Card, np)
	copy(trick, g.trick[:np])

	return &GameState{
		ID:          g.id.String(),
		Status:      g.status.String(),
		NumPlayers:  np,
		HandSize:    g.handSize,
		Round:       g.nround,
		GhostHolder: g.ghostHolder + 1,
		HighRanker:  g.highRanker + 1,
		CurrentTurn: currentTurn,
		Trick:       trick,
		LastTrick:   g.lastTrick,
		Players:     players,
	}
}
