package agent

type greedyAgent struct{}

// NewGreedy returns the computer player: it always plays the move gaining the most
// points this turn.
func NewGreedy() Agent {
	return greedyAgent{}
}

func (a greedyAgent) Decide(turn Turn) (Decision, error) {
	move, ok := turn.Board.FindBestMove(turn.Side)
	if !ok {
		return Decision{}, nil
	}
	return play(move), nil
}
