package game

// FindBestMove returns the legal move gaining side the most points right now,
// false if side cannot move. Used by the computer team.
func (b *Board) FindBestMove(side Side) (Move, bool) {
	moves := b.FindLegalMoves(side, nil)
	if len(moves) == 0 {
		return Move{}, false
	}

	enemy, err := side.Opponent().FieldState()
	if err != nil {
		return Move{}, false
	}

	bestScore := 0
	best := moves[0].Move
	for _, move := range moves {
		// ties keep the move found first
		if score := b.scoreMove(move, enemy); score > bestScore {
			bestScore = score
			best = move.Move
		}
	}
	return best, true
}

// scoreMove gives a point for a duplicated pawn and two for each converted enemy
// pawn, since the enemy loses what the mover gains.
func (b *Board) scoreMove(move MoveWithBorderingStatus, enemy FieldState) int {
	score := 0
	if move.IsBordering {
		score++
	}
	for _, f := range b.around(b.field(move.To), true) {
		if f.state == enemy {
			score += 2
		}
	}
	return score
}
