package kusokurae

import (
	"encoding/json"
	"testing"

	"github.com/chinese-slacking-party/go-kusokurae/pkg/deck"
	"github.com/stretchr/testify/assert"
)

func TestGame_GetRoundState(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, Options{}, "5b,9y", "7b,0x", "3x,4y")

	rs := g.GetRoundState()
	a.Equal(1, rs.Seq)
	a.Equal(0, rs.Winner)
	a.Equal(0, rs.ScoreOnBoard)
	a.Equal(0, len(rs.Moves))
	a.Nil(rs.LastTrick)

	a.NoError(g.Play(deck.CardFromString("5b")))
	rs = g.GetRoundState()
	a.Equal("5b", deck.CardsToString(rs.Moves))
	a.Equal(1, rs.ScoreOnBoard)
	a.Equal(1, rs.Winner)
	a.False(rs.IsDoubled)

	a.NoError(g.Play(deck.CardFromString("7b")))
	rs = g.GetRoundState()
	a.Equal("5b,7b", deck.CardsToString(rs.Moves))
	a.Equal(2, rs.ScoreOnBoard)
	a.Equal(2, rs.Winner)

	a.NoError(g.Play(deck.CardFromString("3x")))
	rs = g.GetRoundState()
	a.Equal(2, rs.Seq)
	a.Equal(0, len(rs.Moves))
	a.Equal(0, rs.Winner)
	if a.NotNil(rs.LastTrick) {
		a.Equal(1, rs.LastTrick.Seq)
		a.Equal(2, rs.LastTrick.Winner)
		a.Equal(1, rs.LastTrick.Score)
		a.False(rs.LastTrick.Doubled)
		a.Equal("5b,7b,3x", deck.CardsToString(rs.LastTrick.Cards))
	}

	a.NoError(g.Play(deck.CardFromString("0x")))
	rs = g.GetRoundState()
	a.Equal("0x", deck.CardsToString(rs.Moves))
	a.Equal(-1, rs.ScoreOnBoard)
	a.Equal(2, rs.Winner)

	a.NoError(g.Play(deck.CardFromString("4y")))
	a.NoError(g.Play(deck.CardFromString("9y")))
	rs = g.GetRoundState()
	a.Equal(2, rs.Seq)
	a.Equal(0, len(rs.Moves))
	a.Equal(1, rs.LastTrick.Winner)
	a.Equal(-1, rs.LastTrick.Score)
}

func TestGame_GetRoundState_MovesInPlayOrder(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, Options{}, "5b,1b", "3b,2b", "9y,3y", "4x,5x")
	a.NoError(g.Play(deck.CardFromString("5b")))
	a.NoError(g.Play(deck.CardFromString("3b")))
	a.Equal("5b,3b", deck.CardsToString(g.GetRoundState().Moves))

	a.NoError(g.Play(deck.CardFromString("9y")))
	a.NoError(g.Play(deck.CardFromString("4x")))

	// player 3 took the trick and leads the next one
	a.Equal(g.Player(2), g.ActivePlayer())
	a.Equal(4, g.Player(2).CardsTaken())
	a.Equal(1, g.Player(2).Score())

	a.NoError(g.Play(deck.CardFromString("3y")))
	a.NoError(g.Play(deck.CardFromString("5x")))
	a.Equal("3y,5x", deck.CardsToString(g.GetRoundState().Moves))

	a.NoError(g.Play(deck.CardFromString("1b")))
	rs := g.GetRoundState()
	a.Equal("3y,5x,1b", deck.CardsToString(rs.Moves))
	a.Equal(4, rs.Winner)
	a.Equal(0, rs.ScoreOnBoard)

	a.NoError(g.Play(deck.CardFromString("2b")))
	a.Equal(StatusFinish, g.Status())
	a.Equal(4, g.Player(3).CardsTaken())
	a.Equal(1, g.Player(3).Score())
}

func TestGame_State(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, Options{}, "5b,9y", "7b,0x", "3x,4y")
	a.NoError(g.Play(deck.CardFromString("5b")))

	state := g.State()
	a.Equal(g.ID().String(), state.ID)
	a.Equal("play", state.Status)
	a.Equal(3, state.NumPlayers)
	a.Equal(2, state.HandSize)
	a.Equal(0, state.Round)
	a.Equal(0, state.GhostHolder)
	a.Equal(1, state.HighRanker)
	a.Equal(2, state.CurrentTurn)
	a.Equal("5b,,", deck.CardsToString(state.Trick))
	a.Nil(state.LastTrick)

	a.Equal(3, len(state.Players))
	a.Equal("done", state.Players[0].Status)
	a.Equal("active", state.Players[1].Status)
	a.Equal(1, state.Players[0].CardsInHand)
	a.Equal(2, len(state.Players[0].Hand))

	// the state is a copy
	state.Players[0].Hand[1].Playable = false
	a.True(g.players[0].hand[1].Playable)

	_, err := json.Marshal(state)
	a.NoError(err)
}
