package main

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/chinese-slacking-party/go-kusokurae/internal/config"
	"github.com/chinese-slacking-party/go-kusokurae/pkg/rng"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"
)

var (
	players = flag.Int("players", 0, "number of players (3 or 4), overrides the configuration")
	seed    = flag.Int64("seed", 0, "seed for the first deal, overrides the configuration")
	auto    = flag.Bool("auto", false, "let the computer play every seat")
	games   = flag.Int("games", 1, "number of games to play at the same table")

	printConfig = flag.Bool("print-config", false, "print the default configuration as YAML and exit")
)

func main() {
	flag.Parse()

	if *printConfig {
		if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
			logrus.WithError(err).Fatal("could not encode configuration")
		}

		return
	}

	cfg := config.Instance()
	setupLogger(cfg)

	if *players != 0 {
		cfg.Players = *players
	}

	if *seed != 0 {
		cfg.Seed = *seed
	}

	rng.SetDefault(generator(cfg.Generator))

	interactive := !*auto && term.IsTerminal(int(os.Stdin.Fd()))
	h := newHarness(os.Stdin, os.Stdout, interactive)
	if err := h.run(cfg.Players, cfg.Seed, *games); err != nil {
		if errors.Is(err, errQuit) {
			return
		}

		logrus.WithError(err).Fatal("could not play")
	}
}

func generator(name string) rng.Generator {
	if name == config.GeneratorCrypto {
		return rng.Crypto{}
	}

	return rng.LCG{}
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
