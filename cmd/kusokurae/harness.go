package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chinese-slacking-party/go-kusokurae/internal/util"
	"github.com/chinese-slacking-party/go-kusokurae/pkg/deck"
	"github.com/chinese-slacking-party/go-kusokurae/pkg/playable/kusokurae"
	"github.com/sirupsen/logrus"
)

var errQuit = errors.New("quit")

// harness runs games at a terminal. In interactive mode the first seat is played from
// the input, every other seat is autoplayed.
type harness struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	names       []string
}

func newHarness(in io.Reader, out io.Writer, interactive bool) *harness {
	return &harness{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

func (h *harness) run(numPlayers int, seed int64, games int) error {
	g, err := kusokurae.NewGame(logrus.StandardLogger(), kusokurae.Config{NumPlayers: numPlayers}, kusokurae.Options{
		Seed:     seed,
		Observer: h,
	})
	if err != nil {
		return err
	}

	h.names = make([]string, numPlayers)
	for i := range h.names {
		h.names[i] = util.GetRandomName()
	}

	if h.interactive {
		h.names[0] = "You"
	}

	for i := 0; i < games; i++ {
		if err := g.Start(); err != nil {
			return err
		}

		for g.Status() == kusokurae.StatusPlay {
			player := g.ActivePlayer()
			if h.interactive && player.Index() == 1 {
				if err := h.prompt(g, player); err != nil {
					return err
				}

				continue
			}

			if err := g.Autoplay(); err != nil {
				return err
			}
		}
	}

	h.printScores(g)
	return nil
}

// prompt asks for a card and tries to play it. Rejected cards are reported, not returned.
func (h *harness) prompt(g *kusokurae.Game, player *kusokurae.Player) error {
	rs := g.GetRoundState()
	if len(rs.Moves) > 0 {
		h.printf("Trick %d so far: %s (worth %d)\n", rs.Seq, deck.CardsToString(rs.Moves), rs.ScoreOnBoard)
	} else {
		h.printf("Trick %d, you lead\n", rs.Seq)
	}

	h.printf("Your hand: %s\n", deck.CardsToString(player.HandCards()))
	h.printf("Playable: %s\n", deck.CardsToString(player.PlayableCards()))
	h.printf("Card (q to quit): ")

	line, err := h.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return errQuit
		}

		return err
	}

	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "q") {
		return errQuit
	}

	card, err := deck.ParseCard(line)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	switch err := g.Play(card); err {
	case nil:
	case kusokurae.ErrForbiddenMove:
		h.printf("you can't lead a zero while you have other cards\n")
	default:
		h.printf("%v\n", err)
	}

	return nil
}

func (h *harness) printScores(g *kusokurae.Game) {
	h.printf("Scores:\n")
	for _, player := range g.Players() {
		h.printf("  %-20s %4d\n", h.names[player.Index()-1], player.Score())
	}
}

// StatusChanged announces new deals and finished games
func (h *harness) StatusChanged(g *kusokurae.Game, status kusokurae.Status) {
	switch status {
	case kusokurae.StatusPlay:
		h.printf("New deal: %d cards each, %s holds the ghost\n", g.HandSize(), h.names[g.GhostHolder().Index()-1])
	case kusokurae.StatusFinish:
		h.printf("Game over\n")
	}
}

// TrickConcluded announces who took the trick
func (h *harness) TrickConcluded(_ *kusokurae.Game, result kusokurae.TrickResult) {
	doubled := ""
	if result.Doubled {
		doubled = ", doubled by the ghost"
	}

	h.printf("Trick %d: %s takes %s for %d points%s\n",
		result.Seq, h.names[result.Winner-1], deck.CardsToString(result.Cards), result.Score, doubled)
}

func (h *harness) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(h.out, format, a...)
}
