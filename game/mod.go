package game

import (
	"errors"
	"fmt"
)

// Board dimensions. RowFieldCount only describes the 17-row hexagon.
const (
	RowsCount    = 17
	ColumnsCount = 9
)

var (
	// ErrInvalidTransition is returned when a field would change to or from Blocked.
	ErrInvalidTransition = errors.New("invalid field state transition")
	// ErrIllegalMove is returned when a move is executed without being legal.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidSide is returned for side values outside Red and Blue.
	ErrInvalidSide = errors.New("invalid side")
	// ErrInvalidPosition is returned for placements outside the board.
	ErrInvalidPosition = errors.New("invalid position")
)

// FieldState is the content of a single board cell. The values are persisted.
type FieldState int

const (
	Empty FieldState = iota
	Blocked
	Red
	Blue
)

func (s FieldState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Blocked:
		return "Blocked"
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	}
	return fmt.Sprintf("FieldState(%d)", int(s))
}

// Valid reports whether s is one of the four known states.
func (s FieldState) Valid() bool {
	return s >= Empty && s <= Blue
}

// Side identifies one of the two teams. The values are persisted.
type Side int

const (
	RedSide Side = iota
	BlueSide
)

func (s Side) Valid() bool {
	return s == RedSide || s == BlueSide
}

func (s Side) String() string {
	switch s {
	case RedSide:
		return "Red"
	case BlueSide:
		return "Blue"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// FieldState returns the state of the fields owned by the side.
func (s Side) FieldState() (FieldState, error) {
	switch s {
	case RedSide:
		return Red, nil
	case BlueSide:
		return Blue, nil
	}
	return Empty, fmt.Errorf("%w: %d", ErrInvalidSide, int(s))
}

// Opponent returns the other side. Invalid sides are returned unchanged.
func (s Side) Opponent() Side {
	switch s {
	case RedSide:
		return BlueSide
	case BlueSide:
		return RedSide
	}
	return s
}

// TeamType tells whether a side is played by a person or by the computer.
type TeamType int

const (
	Player TeamType = iota
	Computer
)

func (t TeamType) Valid() bool {
	return t == Player || t == Computer
}

func (t TeamType) String() string {
	switch t {
	case Player:
		return "Player"
	case Computer:
		return "Computer"
	}
	return fmt.Sprintf("TeamType(%d)", int(t))
}
