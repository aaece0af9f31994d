package kusokurae

// Status is the life-cycle of a game
type Status int

// Status values
const (
	StatusNull Status = iota
	StatusInit
	StatusPlay
	StatusFinish
)

func (s Status) String() string {
	switch s {
	case StatusNull:
		return "null"
	case StatusInit:
		return "init"
	case StatusPlay:
		return "play"
	case StatusFinish:
		return "finish"
	}

	return "unknown"
}

// RoundStatus is where a player is in the current trick
type RoundStatus int

// RoundStatus values
const (
	RoundWaiting RoundStatus = iota
	RoundActive
	RoundDone
)

func (r RoundStatus) String() string {
	switch r {
	case RoundWaiting:
		return "waiting"
	case RoundActive:
		return "active"
	case RoundDone:
		return "done"
	}

	return "unknown"
}

// Busted flags a player held back by the zero-rank lead rule.
// The flags are informational only.
type Busted int

// Busted values
const (
	BustedNone Busted = iota

	// BustedLoneZero means the only playable card is a zero
	BustedLoneZero

	// BustedForced means the leader held nothing but zeros and may play any of them
	BustedForced
)
