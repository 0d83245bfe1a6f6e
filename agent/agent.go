package agent

import (
	"hexagon/game"
	"hexagon/serializer"
)

// Turn is what an agent sees when it has to act. Board must not be modified.
type Turn struct {
	Board *game.Board
	Side  game.Side
	Teams game.Teams
}

// Decision is the outcome of a turn: a move to play, a loaded game replacing the
// current one, or neither to pass the turn.
type Decision struct {
	Move   *game.Move
	Loaded *serializer.Game
}

type Agent interface {
	// Decide returns what the side to move does this turn
	Decide(turn Turn) (Decision, error)
}

func play(move game.Move) Decision {
	return Decision{Move: &move}
}
