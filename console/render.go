package console

import (
	"fmt"
	"strings"

	"hexagon/game"
)

const resetColor = "\033[0m"

type cellModifier int

const (
	none cellModifier = iota
	selected
	reachable
)

// RenderBoard draws the board with 1-based row and column labels. When selected is
// set, the pawn is marked with [x] and every field it can move to with (x).
func (c *Console) RenderBoard(board *game.Board, side game.Side, selectedField *game.Field) {
	var sb strings.Builder

	sb.WriteString("    ")
	for column := 0; column < game.ColumnsCount; column++ {
		c.writeCell(&sb, byte('1'+column), none, "")
	}
	sb.WriteString("\n\n")

	highlighted := map[game.MoveUnit]bool{}
	if selectedField != nil {
		for _, move := range board.FindLegalMoves(side, selectedField) {
			highlighted[move.To] = true
		}
	}

	for row, fields := range board.Fields() {
		fmt.Fprintf(&sb, "%-4d", row+1)

		cells := make([]*game.Field, game.ColumnsCount)
		for i := range fields {
			cells[fields[i].UIColumn()] = &fields[i]
		}

		for _, f := range cells {
			if f == nil {
				c.writeCell(&sb, ' ', none, "")
				continue
			}

			modifier := none
			switch {
			case selectedField != nil && selectedField.Unit() == f.Unit():
				modifier = selected
			case highlighted[f.Unit()]:
				modifier = reachable
			}
			c.writeCell(&sb, stateChar(f.State()), modifier, stateColor(f.State()))
		}
		sb.WriteByte('\n')
	}

	fmt.Fprint(c.out, sb.String())
}

func (c *Console) writeCell(sb *strings.Builder, char byte, modifier cellModifier, color string) {
	cell := string(char)
	if c.colors && color != "" {
		cell = color + cell + resetColor
	}

	switch modifier {
	case selected:
		sb.WriteString(" [" + cell + "] ")
	case reachable:
		sb.WriteString(" (" + cell + ") ")
	default:
		sb.WriteString("  " + cell + "  ")
	}
}

func stateChar(state game.FieldState) byte {
	switch state {
	case game.Blocked:
		return 'X'
	case game.Red:
		return 'R'
	case game.Blue:
		return 'B'
	}
	return '0'
}

func stateColor(state game.FieldState) string {
	switch state {
	case game.Red:
		return "\033[31m"
	case game.Blue:
		return "\033[34m"
	}
	return ""
}

func (c *Console) renderPoints(points game.Points) {
	fmt.Fprintf(c.out, "Points - Red: %d - Blue: %d\n", points.Red, points.Blue)
}

func (c *Console) renderSide(side game.Side) {
	fmt.Fprintf(c.out, "%s team's move\n", side)
}

// EndScreen shows the final board and announces the winner.
func (c *Console) EndScreen(board *game.Board, side game.Side) {
	c.RenderBoard(board, side, nil)

	points := board.Points()
	c.renderPoints(points)

	winner, ok := points.Winner()
	if !ok {
		c.println("The game ended in a draw")
		return
	}
	fmt.Fprintf(c.out, "%s team won\n", winner)
}
