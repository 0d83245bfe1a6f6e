package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hexagon/agent"
	"hexagon/experiments/metrics"
	"hexagon/game"
	"hexagon/meta"
	"hexagon/storage"
)

// Result is the state a game stopped in.
type Result struct {
	Points   game.Points
	Side     game.Side // side that would move next
	Turns    int
	Finished bool
	Game     metrics.GameMetric
	Moves    []metrics.MoveMetric
}

type Option func(e *Engine)

// WithRankingStore records finished games in the ranking kept by store.
func WithRankingStore(store storage.Store) Option {
	return func(e *Engine) {
		if store != nil {
			e.store = store
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

// Engine runs a single game session. pick chooses the agent playing a team and is
// asked again after a saved game is loaded.
type Engine struct {
	teams game.Teams
	side  game.Side
	board *game.Board
	pick  func(team game.Team) agent.Agent

	store     storage.Store
	maxTurns  int
	collector metrics.Collector

	session string
	logger  zerolog.Logger
}

func New(teams game.Teams, side game.Side, board *game.Board, pick func(team game.Team) agent.Agent, options ...Option) *Engine {
	session := uuid.NewString()
	e := &Engine{ // Default values
		teams:     teams,
		side:      side,
		board:     board,
		pick:      pick,
		maxTurns:  meta.MAX_TURNS,
		collector: metrics.NewDummyCollector(),
		session:   session,
		logger:    log.With().Str("session", session).Logger(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Session identifies the run in logs and metrics.
func (e *Engine) Session() string {
	return e.session
}

// Board is the board being played on. It is replaced when a saved game is loaded.
func (e *Engine) Board() *game.Board {
	return e.board
}
