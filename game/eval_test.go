package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindBestMove(t *testing.T) {
	t.Run("prefers converting enemy pawns", func(t *testing.T) {
		b := mustBoard(t, at(Red, 4, 0), at(Blue, 6, 2))

		move, ok := b.FindBestMove(RedSide)
		require.True(t, ok)
		require.Equal(t, NewMove(4, 0, 5, 1), move, "Duplicating next to the enemy should win")
	})

	t.Run("scores every candidate", func(t *testing.T) {
		b := mustBoard(t, at(Red, 4, 0), at(Blue, 6, 2))
		enemy := Blue

		scores := map[MoveUnit]int{}
		for _, m := range b.FindLegalMoves(RedSide, nil) {
			scores[m.To] = b.scoreMove(m, enemy)
		}
		require.Equal(t, map[MoveUnit]int{
			{3, 1}: 1,
			{5, 1}: 3,
			{6, 0}: 1,
			{2, 2}: 0,
			{4, 2}: 2,
			{7, 1}: 2,
			{8, 0}: 0,
		}, scores)
	})

	t.Run("ties keep the first move", func(t *testing.T) {
		b := mustBoard(t, at(Red, 4, 0))
		move, ok := b.FindBestMove(RedSide)
		require.True(t, ok)
		require.Equal(t, NewMove(4, 0, 3, 1), move)
	})

	t.Run("jump that converts beats plain duplication", func(t *testing.T) {
		b := mustBoard(t, at(Blue, 12, 0), at(Red, 8, 2), at(Red, 8, 6))
		move, ok := b.FindBestMove(BlueSide)
		require.True(t, ok)

		require.Equal(t, NewMove(12, 0, 9, 1), move)

		after := b.Clone()
		require.NoError(t, after.MakeMove(BlueSide, move))
		require.Equal(t, Points{Red: 1, Blue: 2}, after.Points(), "%s should convert a pawn", move)
	})

	t.Run("no moves", func(t *testing.T) {
		b := mustBoard(t, at(Red, 4, 0))
		_, ok := b.FindBestMove(BlueSide)
		require.False(t, ok)

		_, ok = NewDefaultBoard().FindBestMove(Side(3))
		require.False(t, ok)
	})

	t.Run("does not change the board", func(t *testing.T) {
		b := NewDefaultBoard()
		before := b.String()
		_, ok := b.FindBestMove(RedSide)
		require.True(t, ok)
		require.Equal(t, before, b.String())
	})
}
