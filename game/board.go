package game

import (
	"fmt"
	"strings"
)

// Board owns every field of the hexagon. Fields are stored row by row and are
// never shared with another board.
type Board struct {
	rows [RowsCount][]Field
}

// NewBoard builds a board from the required blocked fields and the given placements.
// All remaining fields are Empty. When a position is listed more than once the
// first placement wins, and the blocked fields always win.
func NewBoard(placements []Placement) (*Board, error) {
	b := &Board{}
	for row := 0; row < RowsCount; row++ {
		b.rows[row] = make([]Field, RowFieldCount(row))
		for column := range b.rows[row] {
			b.rows[row][column] = NewField(Empty, row, column)
		}
	}

	placed := make(map[[2]int]bool, len(placements)+3)
	for _, p := range RequiredLayout() {
		b.rows[p.Row][p.Column] = NewField(p.State, p.Row, p.Column)
		placed[[2]int{p.Row, p.Column}] = true
	}

	for _, p := range placements {
		if !IsRowValid(p.Row) || !IsColumnInRowValid(p.Column, p.Row) {
			return nil, fmt.Errorf("%w: row %d column %d", ErrInvalidPosition, p.Row, p.Column)
		}
		if p.State == Blocked || !p.State.Valid() {
			return nil, fmt.Errorf("%w: cannot place %s at (%d,%d)", ErrInvalidTransition, p.State, p.Row, p.Column)
		}
		key := [2]int{p.Row, p.Column}
		if placed[key] {
			continue
		}
		placed[key] = true
		b.rows[p.Row][p.Column] = NewField(p.State, p.Row, p.Column)
	}

	return b, nil
}

// NewDefaultBoard returns a board with the starting pawns of a new game.
func NewDefaultBoard() *Board {
	b, err := NewBoard(DefaultLayout())
	if err != nil {
		panic(err) // the default layout is fixed
	}
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{}
	for row := range b.rows {
		nb.rows[row] = append([]Field(nil), b.rows[row]...)
	}
	return nb
}

// Fields returns a copy of all fields, row by row.
func (b *Board) Fields() [][]Field {
	fields := make([][]Field, RowsCount)
	for row := range b.rows {
		fields[row] = append([]Field(nil), b.rows[row]...)
	}
	return fields
}

// FieldAt returns the field at (row, column).
func (b *Board) FieldAt(row, column int) (Field, bool) {
	if !IsRowValid(row) || !IsColumnInRowValid(column, row) {
		return Field{}, false
	}
	return b.rows[row][column], true
}

// FieldByMoveUnit returns the field addressed by u, if there is one.
func (b *Board) FieldByMoveUnit(u MoveUnit) (Field, bool) {
	f := b.field(u)
	if f == nil {
		return Field{}, false
	}
	return *f, true
}

func (b *Board) field(u MoveUnit) *Field {
	if !IsRowValid(u.Row) || !IsUIColumnValid(u.UIColumn) {
		return nil
	}
	offset := u.UIColumn - SideEmptyColumns(u.Row)
	if offset < 0 || offset%2 != 0 {
		return nil
	}
	column := offset / 2
	if !IsColumnInRowValid(column, u.Row) {
		return nil
	}
	return &b.rows[u.Row][column]
}

// IsMoveLegal reports whether side may play move. Unknown addresses are never legal.
func (b *Board) IsMoveLegal(side Side, move Move) bool {
	from := b.field(move.From)
	to := b.field(move.To)
	if from == nil || to == nil {
		return false
	}

	owned, err := side.FieldState()
	if err != nil {
		return false
	}
	if from.state != owned || to.state != Empty {
		return false
	}

	return isLegalShape(move)
}

// isLegalShape checks the distance of a move: one step sideways, up to two steps
// vertically (a row is half a step), or a diagonal of one or two steps.
func isLegalShape(move Move) bool {
	dr, dc := move.distance()
	switch {
	case dr == 0:
		return dc == 2
	case dc == 0:
		return dr <= 4
	case dr == 1 || dr == 3:
		return dc <= 1
	case dr == 2:
		return dc <= 2
	}
	return false
}

// MakeMove plays a legal move. A bordering move duplicates the pawn, any other
// move relocates it. Enemy pawns bordering the destination are converted.
func (b *Board) MakeMove(side Side, move Move) error {
	if !b.IsMoveLegal(side, move) {
		return fmt.Errorf("%w: %s cannot play %s", ErrIllegalMove, side, move)
	}

	from := b.field(move.From)
	to := b.field(move.To)

	if err := to.SetState(from.state); err != nil {
		return err
	}
	if !move.isBordering() {
		if err := from.SetState(Empty); err != nil {
			return err
		}
	}

	return b.runMoveSideEffects(side, to)
}

func (b *Board) runMoveSideEffects(side Side, to *Field) error {
	owned, err := side.FieldState()
	if err != nil {
		return err
	}
	enemy, err := side.Opponent().FieldState()
	if err != nil {
		return err
	}

	for _, f := range b.around(to, true) {
		if f.state == enemy {
			if err := f.SetState(owned); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindFieldsAround returns the fields next to field when isBordering is set,
// otherwise the fields exactly one field further away.
func (b *Board) FindFieldsAround(field Field, isBordering bool) []Field {
	around := b.around(b.field(field.Unit()), isBordering)
	fields := make([]Field, 0, len(around))
	for _, f := range around {
		fields = append(fields, *f)
	}
	return fields
}

func (b *Board) around(field *Field, isBordering bool) []*Field {
	if field == nil {
		return nil
	}

	rowOffsets, uiColumnOffsets := borderingRowOffsets[:], borderingUIColumnOffsets[:]
	if !isBordering {
		rowOffsets, uiColumnOffsets = secondRingRowOffsets[:], secondRingUIColumnOffsets[:]
	}

	fields := make([]*Field, 0, len(rowOffsets))
	for i := range rowOffsets {
		u := MoveUnit{Row: field.row + rowOffsets[i], UIColumn: field.uiColumn + uiColumnOffsets[i]}
		if f := b.field(u); f != nil {
			fields = append(fields, f)
		}
	}
	return fields
}

// FindLegalMoves lists the moves side can make from the given field, or from every
// field it owns when from is nil.
func (b *Board) FindLegalMoves(side Side, from *Field) []MoveWithBorderingStatus {
	var origins []*Field
	if from != nil {
		if f := b.field(from.Unit()); f != nil {
			origins = append(origins, f)
		}
	} else {
		owned, err := side.FieldState()
		if err != nil {
			return nil
		}
		for row := range b.rows {
			for column := range b.rows[row] {
				if b.rows[row][column].state == owned {
					origins = append(origins, &b.rows[row][column])
				}
			}
		}
	}

	moves := []MoveWithBorderingStatus{}
	for _, origin := range origins {
		// bordering fields first, then the ones a jump away
		for _, isBordering := range []bool{true, false} {
			for _, f := range b.around(origin, isBordering) {
				move := Move{From: origin.Unit(), To: f.Unit()}
				if f.state == Empty && b.IsMoveLegal(side, move) {
					moves = append(moves, MoveWithBorderingStatus{Move: move, IsBordering: isBordering})
				}
			}
		}
	}
	return moves
}

// IsGameFinished reports whether Red, Blue and Empty fields can no longer all be
// found on the board.
func (b *Board) IsGameFinished() bool {
	redFound, blueFound, emptyFound := false, false, false

	for row := range b.rows {
		for _, f := range b.rows[row] {
			switch f.state {
			case Red:
				redFound = true
			case Blue:
				blueFound = true
			case Empty:
				emptyFound = true
			}
		}

		if redFound && blueFound && emptyFound {
			return false
		}
	}
	return true
}

// FillBoardWithState sets every field that is not Blocked to state.
func (b *Board) FillBoardWithState(state FieldState) error {
	if state == Blocked || !state.Valid() {
		return fmt.Errorf("%w: cannot fill the board with %s", ErrInvalidTransition, state)
	}
	for row := range b.rows {
		for column := range b.rows[row] {
			f := &b.rows[row][column]
			if f.state != state && f.state != Blocked {
				if err := f.SetState(state); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Points counts the pawns of each side.
func (b *Board) Points() Points {
	var p Points
	for row := range b.rows {
		for _, f := range b.rows[row] {
			switch f.state {
			case Red:
				p.Red++
			case Blue:
				p.Blue++
			}
		}
	}
	return p
}

// String draws the board one row per line: R and B for pawns, X for blocked
// fields and . for empty ones.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.rows {
		line := []byte(strings.Repeat(" ", ColumnsCount))
		for _, f := range b.rows[row] {
			line[f.uiColumn] = stateLetter(f.state)
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		if row < RowsCount-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func stateLetter(s FieldState) byte {
	switch s {
	case Blocked:
		return 'X'
	case Red:
		return 'R'
	case Blue:
		return 'B'
	}
	return '.'
}
