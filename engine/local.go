package engine

import (
	"fmt"

	"hexagon/agent"
	"hexagon/game"
	"hexagon/ranking"
	"hexagon/serializer"
)

// Run plays until the board is finished or the turn cap is reached. Errors from
// agents and illegal moves stop the game.
func (e *Engine) Run() (Result, error) {
	e.logger.Info().Msgf("%s team is starting", e.side)
	e.collector.StartGame(e.session, e.side)

	turn := 1
	for !e.board.IsGameFinished() && turn <= e.maxTurns {
		team, err := e.teams.Get(e.side)
		if err != nil {
			return Result{}, err
		}

		before := e.board.Points()
		e.collector.StartMove()

		// sides without legal moves skip the turn
		var decision agent.Decision
		if len(e.board.FindLegalMoves(e.side, nil)) > 0 {
			decision, err = e.pick(team).Decide(agent.Turn{Board: e.board, Side: e.side, Teams: e.teams})
			if err != nil {
				return Result{}, fmt.Errorf("turn %d: %s %s failed to decide: %w", turn, e.side, team.Type, err)
			}
		} else {
			e.logger.Debug().Msgf("turn %d: %s has no legal moves", turn, e.side)
		}

		if decision.Loaded != nil {
			e.load(*decision.Loaded)
			continue
		}

		if decision.Move != nil {
			err = e.board.MakeMove(e.side, *decision.Move)
			if err != nil {
				return Result{}, fmt.Errorf("turn %d: %w", turn, err)
			}
			e.logger.Debug().Msgf("turn %d: %s played %s", turn, e.side, decision.Move)
		}
		e.collector.CompleteMove(e.side, decision.Move, before, e.board.Points())

		e.side = e.side.Opponent()
		if err := e.fillIfEliminated(); err != nil {
			return Result{}, err
		}
		turn++
	}

	points := e.board.Points()
	finished := e.board.IsGameFinished()
	gameMetric, moveMetrics := e.collector.Complete(points, finished)

	if finished {
		e.logger.Info().Msgf("game finished after %d turns with Red %d - Blue %d", turn-1, points.Red, points.Blue)
		if e.store != nil {
			if err := ranking.Update(e.store, points); err != nil {
				e.logger.Warn().Err(err).Msg("failed to update ranking")
			}
		}
	} else {
		e.logger.Warn().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	return Result{
		Points:   points,
		Side:     e.side,
		Turns:    turn - 1,
		Finished: finished,
		Game:     gameMetric,
		Moves:    moveMetrics,
	}, nil
}

// load replaces the whole session state with a saved game.
func (e *Engine) load(g serializer.Game) {
	e.logger.Info().Msgf("loaded a saved game, %s team to move", g.Side)
	e.teams = g.Teams
	e.side = g.Side
	e.board = g.Board
}

// fillIfEliminated gives every free field to the remaining side once the other one
// has no pawns left.
func (e *Engine) fillIfEliminated() error {
	points := e.board.Points()
	switch {
	case points.Red == 0 && points.Blue > 0:
		return e.board.FillBoardWithState(game.Blue)
	case points.Blue == 0 && points.Red > 0:
		return e.board.FillBoardWithState(game.Red)
	}
	return nil
}
