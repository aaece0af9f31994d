// Package kusokurae is the rules engine for Kusokurae, a trick-taking game for three or
// four players played with a 33-card deck.
//
// A Game is not safe for concurrent use. Separate games may run on separate goroutines,
// each keeps its own random state.
package kusokurae

import (
	"github.com/chinese-slacking-party/go-kusokurae/pkg/deck"
	"github.com/chinese-slacking-party/go-kusokurae/pkg/playable"
	"github.com/chinese-slacking-party/go-kusokurae/pkg/rng"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Game is a game of Kusokurae
type Game struct {
	id     uuid.UUID
	config Config
	status Status

	players  [MaxPlayers]Player
	handSize int

	// completed tricks
	nround int

	// seats (0-based) of the ghost's owner and of the best card in the trick so far.
	// highRanker is -1 until the first card of a trick is played
	ghostHolder int
	highRanker  int

	// trick[n] holds the card played by players[n]. Slots are cleared lazily, on the
	// first play of the next trick
	trick     [MaxPlayers]deck.Card
	lastTrick *TrickResult

	rngState  uint32
	generator rng.Generator
	observer  Observer

	logger      logrus.FieldLogger
	logMessages []*playable.LogMessage
}

// NewGame returns a new game with players seated, waiting for Start
func NewGame(logger logrus.FieldLogger, cfg Config, opts Options) (*Game, error) {
	g := &Game{}
	if err := g.Init(logger, cfg, opts); err != nil {
		return nil, err
	}

	return g, nil
}

// Init resets g into a new game. It lets callers keep games in storage they own.
func (g *Game) Init(logger logrus.FieldLogger, cfg Config, opts Options) error {
	if g == nil {
		return ErrNilGame
	}

	if cfg.NumPlayers < MinPlayers || cfg.NumPlayers > MaxPlayers {
		return PlayerCountError(cfg.NumPlayers)
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	gen := opts.Generator
	if gen == nil {
		gen = rng.Default()
	}

	id := uuid.New()
	*g = Game{
		id:          id,
		config:      cfg,
		status:      StatusInit,
		ghostHolder: -1,
		highRanker:  -1,
		rngState:    rng.Seed(gen, opts.Seed),
		generator:   gen,
		observer:    opts.Observer,
		logger:      logger.WithField("game", id.String()),
	}

	for i := 0; i < cfg.NumPlayers; i++ {
		g.players[i].index = i + 1
	}

	return nil
}

// Start deals cards to each player and waits for the first player to lead.
// A finished game can be started again, scores carry over.
func (g *Game) Start() error {
	if g == nil {
		return ErrNilGame
	}

	if g.config.NumPlayers == 0 {
		return ErrUninitialized
	}

	np := g.config.NumPlayers
	pool, excluded := deck.DealPool(np)
	state := g.rngState
	hands, err := deck.Deal(pool, np, g.generator, &state)
	if err != nil {
		return err
	}
	g.rngState = state

	g.ghostHolder = -1
	for i := 0; i < np; i++ {
		player := &g.players[i]
		player.newGame(hands[i])
		if player.hasGhost() {
			g.ghostHolder = i
		}
	}

	g.handSize = len(hands[0])
	g.nround = 0
	g.highRanker = -1
	g.trick = [MaxPlayers]deck.Card{}
	g.lastTrick = nil

	leader := &g.players[0]
	leader.status = RoundActive
	leader.setPlayableFlags(true)

	g.logger.WithFields(logrus.Fields{
		"players":     np,
		"handSize":    g.handSize,
		"excluded":    excluded.String(),
		"ghostHolder": g.ghostHolder + 1,
	}).Debug("cards dealt")

	g.addLogMessages(playable.SimpleLogMessage(0, "New game of Kusokurae started with %d players", np))
	g.setStatus(StatusPlay)
	return nil
}

// Play plays a card from the active player's hand.
// Cards are matched by suit and rank. On error the game is left untouched.
func (g *Game) Play(card deck.Card) error {
	if g == nil {
		return ErrNilGame
	}

	if g.status != StatusPlay {
		return ErrNotInGame
	}

	player := g.activePlayer()
	if player == nil {
		return ErrNobodyActive
	}

	i := player.hand.IndexOf(card)
	if i < 0 {
		return ErrCardNotFound
	}

	if !player.hand[i].Playable {
		return ErrForbiddenMove
	}

	player.hand[i].PlayedInRound = g.nround + 1
	player.hand[i].Playable = false
	played := player.hand[i]

	seat := player.index - 1
	if !g.trick[seat].IsEmpty() {
		// still holding the previous trick
		g.trick = [MaxPlayers]deck.Card{}
	}
	g.trick[seat] = played

	if g.highRanker < 0 || played.Rank > g.trick[g.highRanker].Rank {
		g.highRanker = seat
	}

	g.logger.WithFields(logrus.Fields{
		"player": player.index,
		"card":   deck.CardToString(played),
		"round":  g.nround + 1,
	}).Debug("play card")
	g.addLogMessages(playable.NewLogMessage(player.index, []deck.Card{played}, "{} played a card"))

	player.status = RoundDone
	next := g.nextPlayer(player)
	if next.status != RoundWaiting {
		g.concludeTrick()
		return nil
	}

	next.setPlayableFlags(false)
	next.status = RoundActive
	return nil
}

// Autoplay plays the active player's first playable card
func (g *Game) Autoplay() error {
	if g == nil {
		return ErrNilGame
	}

	if g.status != StatusPlay {
		return ErrNotInGame
	}

	player := g.activePlayer()
	if player == nil {
		return ErrNobodyActive
	}

	cards := player.hand.Playable()
	if len(cards) == 0 {
		return ErrForbiddenMove
	}

	return g.Play(cards[0])
}

// concludeTrick is called after every player has played a card in the trick
func (g *Game) concludeTrick() {
	np := g.config.NumPlayers
	winner := &g.players[g.highRanker]

	cards := make([]deck.Card, np)
	copy(cards, g.trick[:np])
	score, ghosts := trickScore(cards)
	winner.wonTrick(np, score)

	result := TrickResult{
		Seq:     g.nround + 1,
		Winner:  winner.index,
		Cards:   cards,
		Score:   score,
		Doubled: ghosts > 0,
	}
	g.lastTrick = &result

	g.logger.WithFields(logrus.Fields{
		"round":  result.Seq,
		"winner": winner.index,
		"score":  score,
	}).Debug("trick concluded")
	g.addLogMessages(playable.NewLogMessage(winner.index, cards, "{} won the trick for %d points", score))

	if g.observer != nil {
		g.observer.TrickConcluded(g, result)
	}

	for i := 0; i < np; i++ {
		g.players[i].status = RoundWaiting
	}
	g.highRanker = -1
	g.nround++

	if g.nround >= g.handSize {
		g.addLogMessages(playable.SimpleLogMessage(0, "The game ends"))
		g.setStatus(StatusFinish)
		return
	}

	winner.status = RoundActive
	winner.setPlayableFlags(true)
}

func (g *Game) setStatus(status Status) {
	if g.observer != nil {
		g.observer.StatusChanged(g, status)
	}

	g.logger.WithFields(logrus.Fields{
		"from": g.status.String(),
		"to":   status.String(),
	}).Debug("status changed")
	g.status = status
}

func (g *Game) addLogMessages(messages ...*playable.LogMessage) {
	g.logMessages = playable.AppendLogMessages(g.logMessages, messages...)
}

func (g *Game) activePlayer() *Player {
	for i := 0; i < g.config.NumPlayers; i++ {
		if g.players[i].status == RoundActive {
			return &g.players[i]
		}
	}

	return nil
}

// nextPlayer returns the player seated after p
func (g *Game) nextPlayer(p *Player) *Player {
	return &g.players[p.index%g.config.NumPlayers]
}

// ActivePlayer returns the player whose turn it is now, or nil if the game is not in progress
func (g *Game) ActivePlayer() *Player {
	if g == nil || g.status != StatusPlay {
		return nil
	}

	return g.activePlayer()
}

// Player returns the player in the 0-based seat, or nil if out of range
func (g *Game) Player(i int) *Player {
	if g == nil || i < 0 || i >= g.config.NumPlayers {
		return nil
	}

	return &g.players[i]
}

// Players returns the seated players in order
func (g *Game) Players() []*Player {
	if g == nil {
		return nil
	}

	players := make([]*Player, g.config.NumPlayers)
	for i := range players {
		players[i] = &g.players[i]
	}

	return players
}

// GhostHolder returns the player who was dealt the ghost, or nil before the deal
func (g *Game) GhostHolder() *Player {
	if g == nil || g.ghostHolder < 0 {
		return nil
	}

	return &g.players[g.ghostHolder]
}

// ID returns the game's unique id
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Config returns the table setup
func (g *Game) Config() Config {
	return g.config
}

// Status returns the game's status
func (g *Game) Status() Status {
	return g.status
}

// HandSize returns the number of cards dealt to each player
func (g *Game) HandSize() int {
	return g.handSize
}

// Round returns the number of completed tricks
func (g *Game) Round() int {
	return g.nround
}

// IsFinalRound checks if the game is in (or after) its last trick
func (g *Game) IsFinalRound() bool {
	switch g.status {
	case StatusFinish:
		return true
	case StatusPlay:
		return g.nround >= g.handSize-1
	}

	return false
}

// LogMessages returns the most recent log messages, oldest first
func (g *Game) LogMessages() []*playable.LogMessage {
	return append([]*playable.LogMessage{}, g.logMessages...)
}
