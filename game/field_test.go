package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowFieldCount(t *testing.T) {
	t.Run("matches the hexagon shape", func(t *testing.T) {
		expected := []int{1, 2, 3, 4, 5, 4, 5, 4, 5, 4, 5, 4, 5, 4, 3, 2, 1}
		total := 0
		for row := 0; row < RowsCount; row++ {
			require.Equal(t, expected[row], RowFieldCount(row), "Row %d should have the fixed field count", row)
			total += RowFieldCount(row)
		}
		require.Equal(t, 61, total, "Board should have 61 fields")
	})

	t.Run("rows are centred", func(t *testing.T) {
		require.Equal(t, 4, UIColumn(0, 0), "Single field row should sit in the middle column")
		require.Equal(t, []int{3, 5}, []int{UIColumn(1, 0), UIColumn(1, 1)})
		require.Equal(t, 0, UIColumn(4, 0), "Widest rows should start at the first column")
		require.Equal(t, 8, UIColumn(4, 4), "Widest rows should end at the last column")
		require.Equal(t, 1, UIColumn(5, 0))
		require.Equal(t, 7, UIColumn(5, 3))
	})
}

func TestValidity(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		require.False(t, IsRowValid(-1))
		require.True(t, IsRowValid(0))
		require.True(t, IsRowValid(16))
		require.False(t, IsRowValid(17))
	})

	t.Run("columns depend on the row", func(t *testing.T) {
		require.True(t, IsColumnInRowValid(0, 0))
		require.False(t, IsColumnInRowValid(1, 0))
		require.True(t, IsColumnInRowValid(4, 4))
		require.False(t, IsColumnInRowValid(4, 5))
		require.False(t, IsColumnInRowValid(-1, 4))
	})

	t.Run("ui columns", func(t *testing.T) {
		require.False(t, IsUIColumnValid(-1))
		require.True(t, IsUIColumnValid(0))
		require.True(t, IsUIColumnValid(8))
		require.False(t, IsUIColumnValid(9))
	})
}

func TestFieldSetState(t *testing.T) {
	t.Run("changes between playable states", func(t *testing.T) {
		f := NewField(Empty, 4, 1)
		require.NoError(t, f.SetState(Red))
		require.Equal(t, Red, f.State())
		require.NoError(t, f.SetState(Blue))
		require.NoError(t, f.SetState(Empty))
		require.Equal(t, Empty, f.State())
	})

	t.Run("cannot become blocked", func(t *testing.T) {
		for _, state := range []FieldState{Empty, Red, Blue} {
			f := NewField(state, 4, 1)
			err := f.SetState(Blocked)
			require.ErrorIs(t, err, ErrInvalidTransition, "%s field should not become blocked", state)
			require.Equal(t, state, f.State(), "State should not change on failure")
		}
	})

	t.Run("cannot stop being blocked", func(t *testing.T) {
		for _, state := range []FieldState{Empty, Red, Blue} {
			f := NewField(Blocked, 6, 2)
			err := f.SetState(state)
			require.ErrorIs(t, err, ErrInvalidTransition, "Blocked field should not become %s", state)
			require.Equal(t, Blocked, f.State())
		}
	})

	t.Run("keeps position", func(t *testing.T) {
		f := NewField(Empty, 9, 2)
		require.Equal(t, 9, f.Row())
		require.Equal(t, 2, f.Column())
		require.Equal(t, 5, f.UIColumn())
		require.Equal(t, MoveUnit{Row: 9, UIColumn: 5}, f.Unit())
	})
}
