package game

import (
	"fmt"

	"hexagon/utils"
)

// MoveUnit addresses a place on the board grid. It may not point to an actual field,
// e.g. when it holds raw user input.
type MoveUnit struct {
	Row      int
	UIColumn int
}

func (u MoveUnit) String() string {
	return fmt.Sprintf("(%d,%d)", u.Row, u.UIColumn)
}

// Move relocates or duplicates a pawn.
type Move struct {
	From MoveUnit
	To   MoveUnit
}

func NewMove(fromRow, fromUIColumn, toRow, toUIColumn int) Move {
	return Move{
		From: MoveUnit{Row: fromRow, UIColumn: fromUIColumn},
		To:   MoveUnit{Row: toRow, UIColumn: toUIColumn},
	}
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

// MoveWithBorderingStatus is a move found during enumeration. Bordering moves
// connect neighbouring fields and duplicate the pawn.
type MoveWithBorderingStatus struct {
	Move
	IsBordering bool
}

// distance returns the absolute row and ui column distances of the move.
func (m Move) distance() (rows, uiColumns int) {
	return utils.Abs(m.To.Row - m.From.Row), utils.Abs(m.To.UIColumn - m.From.UIColumn)
}

// isBordering reports whether the move connects two neighbouring fields.
func (m Move) isBordering() bool {
	dr, dc := m.distance()
	return (dr == 1 && dc == 1) || (dr == 2 && dc == 0)
}

// Duplicates reports whether playing the move keeps the pawn on its origin field.
func (m Move) Duplicates() bool {
	return m.isBordering()
}
