package game

// Placement puts a state at a (row, column) position when building a board.
type Placement struct {
	State  FieldState
	Row    int
	Column int
}

// LAYOUT DATA. Functions return fresh slices so no two boards share a template.

// RequiredLayout lists the fields that are blocked on every board.
func RequiredLayout() []Placement {
	return []Placement{
		{State: Blocked, Row: 6, Column: 2},
		{State: Blocked, Row: 9, Column: 1},
		{State: Blocked, Row: 9, Column: 2},
	}
}

// DefaultLayout lists the pawns at the start of a new game.
func DefaultLayout() []Placement {
	return []Placement{
		{State: Red, Row: 4, Column: 0},
		{State: Red, Row: 4, Column: 4},
		{State: Red, Row: 16, Column: 0},
		{State: Blue, Row: 0, Column: 0},
		{State: Blue, Row: 12, Column: 0},
		{State: Blue, Row: 12, Column: 4},
	}
}

// neighbour offsets as (row, ui column) deltas
var (
	borderingRowOffsets      = [6]int{-1, -1, -2, 1, 1, 2}
	borderingUIColumnOffsets = [6]int{-1, 1, 0, -1, 1, 0}

	secondRingRowOffsets      = [12]int{-4, -3, -2, 0, 2, 3, 4, 3, 2, 0, -2, -3}
	secondRingUIColumnOffsets = [12]int{0, 1, 2, 2, 2, 1, 0, -1, -2, -2, -2, -1}
)
