package game

import "fmt"

// Field is a single cell of the board.
type Field struct {
	state  FieldState
	row    int
	column int
	// board-wide horizontal index, rows are centred around the middle column
	uiColumn int
}

// NewField creates a field at (row, column). The position is not validated.
func NewField(state FieldState, row, column int) Field {
	return Field{
		state:    state,
		row:      row,
		column:   column,
		uiColumn: UIColumn(row, column),
	}
}

func (f Field) State() FieldState { return f.state }
func (f Field) Row() int          { return f.row }
func (f Field) Column() int       { return f.column }
func (f Field) UIColumn() int     { return f.uiColumn }

// Unit returns the board address of the field.
func (f Field) Unit() MoveUnit {
	return MoveUnit{Row: f.row, UIColumn: f.uiColumn}
}

// SetState changes the state of the field. Blocked can neither be entered nor left.
func (f *Field) SetState(state FieldState) error {
	if (state == Blocked || f.state == Blocked) && state != f.state {
		return fmt.Errorf("%w: %s to %s at (%d,%d)", ErrInvalidTransition, f.state, state, f.row, f.column)
	}
	f.state = state
	return nil
}

// RowFieldCount returns the number of fields in a row of the hexagon.
func RowFieldCount(row int) int {
	switch row {
	case 0, RowsCount - 1:
		return 1
	case 1, RowsCount - 2:
		return 2
	case 2, RowsCount - 3:
		return 3
	}
	// the middle rows alternate between 5 and 4 fields
	return 5 - row%2
}

// SideEmptyColumns is the number of unused ui columns on each side of a row.
func SideEmptyColumns(row int) int {
	return (ColumnsCount - (RowFieldCount(row)*2 - 1)) / 2
}

// UIColumn converts a column index within a row into a board-wide ui column.
func UIColumn(row, column int) int {
	return SideEmptyColumns(row) + column*2
}

func IsRowValid(row int) bool {
	return row >= 0 && row < RowsCount
}

func IsColumnInRowValid(column, row int) bool {
	return column >= 0 && column < RowFieldCount(row)
}

func IsUIColumnValid(uiColumn int) bool {
	return uiColumn >= 0 && uiColumn < ColumnsCount
}
