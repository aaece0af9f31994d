// Package playable holds what every game in this module shares.
package playable

import (
	"fmt"
	"time"

	"github.com/chinese-slacking-party/go-kusokurae/pkg/deck"
	"github.com/google/uuid"
)

// LogMessageLimit is how many log messages a game keeps
const LogMessageLimit = 25

// LogMessage is the format a game records log messages in
// If PlayerIndexes is empty, assume it's a general statement, otherwise the message will be shown like "{player} did X, Y, Z"
type LogMessage struct {
	UUID          string      `json:"uuid"`
	PlayerIndexes []int       `json:"playerIndexes"`
	Cards         []deck.Card `json:"cards"`
	Message       string      `json:"message"`
	Time          time.Time   `json:"time"`
}

// NewLogMessage returns a new LogMessage about a player and the cards involved.
// A player index of 0 means no player.
func NewLogMessage(playerIndex int, cards []deck.Card, format string, a ...interface{}) *LogMessage {
	var playerIndexes []int
	if playerIndex > 0 {
		playerIndexes = []int{playerIndex}
	}

	var c []deck.Card
	if len(cards) > 0 {
		c = append(c, cards...)
	}

	return &LogMessage{
		UUID:          uuid.New().String(),
		PlayerIndexes: playerIndexes,
		Cards:         c,
		Message:       fmt.Sprintf(format, a...),
		Time:          time.Now(),
	}
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerIndex int, format string, a ...interface{}) *LogMessage {
	return NewLogMessage(playerIndex, nil, format, a...)
}

// AppendLogMessages adds messages to log, keeping only the newest LogMessageLimit
func AppendLogMessages(log []*LogMessage, messages ...*LogMessage) []*LogMessage {
	m := append(log, messages...)
	count := len(m)
	if count > LogMessageLimit {
		m = m[count-LogMessageLimit:]
	}

	return m
}
