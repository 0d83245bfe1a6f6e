package main

import (
	"flag"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hexagon/agent"
	"hexagon/config"
	"hexagon/console"
	"hexagon/engine"
	"hexagon/experiments"
	"hexagon/game"
	"hexagon/storage"
)

func main() {
	cfg := config.Load()

	dataDir := flag.String("data", cfg.DataDir, "Directory holding saves and the ranking")
	logLevel := flag.String("log", cfg.LogLevel, "Log level")
	experiment := flag.String("experiment", "", "Run an experiment (strength or mirror) instead of playing")
	games := flag.Int("games", cfg.Games, "Number of games per matchup in experiments")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if *experiment != "" {
		dir, err := experiments.Run(*experiment, experiments.Config{
			Dir:      *dataDir,
			Games:    *games,
			Seed:     cfg.Seed,
			MaxTurns: cfg.MaxTurns,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Msgf("experiment records written to %s", dir)
		return
	}

	store, err := storage.NewFileStore(*dataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open data directory")
	}

	if err := play(cfg, store); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// play runs one interactive game on the terminal.
func play(cfg config.Config, store storage.Store) error {
	colors := isatty.IsTerminal(os.Stdout.Fd())
	ui := console.New(os.Stdin, colorable.NewColorableStdout(), store, console.WithColors(colors))

	g, err := ui.Start()
	if err != nil {
		return err
	}

	pick := func(team game.Team) agent.Agent {
		if team.Type == game.Computer {
			return agent.NewGreedy()
		}
		return ui.Human()
	}

	e := engine.New(g.Teams, g.Side, g.Board, pick,
		engine.WithRankingStore(store),
		engine.WithMaxTurns(cfg.MaxTurns),
	)
	result, err := e.Run()
	if err != nil {
		return err
	}

	ui.EndScreen(e.Board(), result.Side)
	return nil
}
