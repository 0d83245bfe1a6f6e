package agent

import "golang.org/x/exp/rand"

type randomAgent struct {
	rng *rand.Rand
}

// NewRandom returns an agent picking uniformly among the legal moves. It is the
// baseline opponent in experiments and is not safe for concurrent use.
func NewRandom(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Decide(turn Turn) (Decision, error) {
	moves := turn.Board.FindLegalMoves(turn.Side, nil)
	if len(moves) == 0 {
		return Decision{}, nil
	}
	return play(moves[a.rng.Intn(len(moves))].Move), nil
}
