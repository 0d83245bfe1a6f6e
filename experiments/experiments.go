package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"hexagon/agent"
	"hexagon/engine"
	"hexagon/experiments/metrics"
	"hexagon/game"
)

// Config controls how many games are played and where the records go.
type Config struct {
	Dir      string
	Games    int // Per match up
	Seed     uint64
	MaxTurns int
}

// RunStrength pairs the greedy agent with the random baseline, each playing both colours.
func RunStrength(cfg Config) (string, error) {
	greedy := metrics.AgentConfig{ID: 1, Name: "greedy"}
	random := metrics.AgentConfig{ID: 2, Name: "random", Seed: cfg.Seed}
	matchUps := [][]metrics.AgentConfig{
		{greedy, random},
		{random, greedy},
	}
	return runExperiment(cfg, "strength", []metrics.AgentConfig{greedy, random}, matchUps)
}

// Run executes the named experiment and returns the directory holding its records.
func Run(name string, cfg Config) (string, error) {
	switch name {
	case "strength":
		return RunStrength(cfg)
	case "mirror":
		return RunMirror(cfg)
	}
	return "", fmt.Errorf("unknown experiment %q", name)
}

func runExperiment(cfg Config, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		red := matchup[0]
		blue := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between red=%+v and blue=%+v...", mi+1, len(matchUps), red, blue)

		for i := 0; i < cfg.Games; i++ {
			count++
			result, err := runGame(cfg, red, blue, uint64(count))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Red:        red.ID,
				Blue:       blue.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, result.Game.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.Dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays one game from the default board, Red first. Random agents are
// seeded per game so every game of a matchup differs.
func runGame(cfg Config, red, blue metrics.AgentConfig, gameID uint64) (engine.Result, error) {
	teams, err := game.NewTeams(game.Team{Side: game.RedSide, Type: game.Computer}, game.Team{Side: game.BlueSide, Type: game.Computer})
	if err != nil {
		return engine.Result{}, err
	}

	agents := map[game.Side]agent.Agent{
		game.RedSide:  createAgent(red, gameID),
		game.BlueSide: createAgent(blue, gameID),
	}
	pick := func(team game.Team) agent.Agent {
		return agents[team.Side]
	}

	e := engine.New(teams, game.RedSide, game.NewDefaultBoard(), pick,
		engine.WithMaxTurns(cfg.MaxTurns),
		engine.WithCollector(metrics.NewCollector()),
	)
	return e.Run()
}

func createAgent(config metrics.AgentConfig, gameID uint64) agent.Agent {
	if config.Name == "random" {
		return agent.NewRandom(config.Seed + gameID)
	}
	return agent.NewGreedy()
}
