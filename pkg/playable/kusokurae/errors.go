package kusokurae

import (
	"errors"
	"fmt"
)

// ErrNilGame is returned when a method is called on a nil game
var ErrNilGame = errors.New("game is nil")

// ErrUninitialized is returned when a game is started before it was initialized
var ErrUninitialized = errors.New("game is not initialized")

// ErrNotInGame is returned when a card is played while no game is in progress
var ErrNotInGame = errors.New("game is not in progress")

// ErrNobodyActive means the game is in progress but no player is active.
// This is a bug in the engine.
var ErrNobodyActive = errors.New("no player is active")

// ErrCardNotFound happens when the player tries to play a card they don't have
var ErrCardNotFound = errors.New("card is not in player's hand")

// ErrForbiddenMove happens when the player has the card but may not play it now
var ErrForbiddenMove = errors.New("card cannot be played now")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d–%d players, got %d", MinPlayers, MaxPlayers, int(p))
}
