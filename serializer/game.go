package serializer

import (
	"fmt"
	"strconv"
	"strings"

	"hexagon/game"
)

const headerLines = 5

// Game is a decoded save: who plays each side, whose turn it is and the board.
type Game struct {
	Teams game.Teams
	Side  game.Side
	Board *game.Board
}

// SerializeGame writes the teams, the side to move and every Red or Blue field as
// "<state>,<row>,<column>", one value per line. Empty and Blocked fields are implied.
func SerializeGame(teams game.Teams, side game.Side, board *game.Board) string {
	lines := []string{
		strconv.Itoa(int(teams.Red().Side)),
		strconv.Itoa(int(teams.Red().Type)),
		strconv.Itoa(int(teams.Blue().Side)),
		strconv.Itoa(int(teams.Blue().Type)),
		strconv.Itoa(int(side)),
	}

	for _, row := range board.Fields() {
		for _, f := range row {
			if f.State() == game.Red || f.State() == game.Blue {
				lines = append(lines, fmt.Sprintf("%d,%d,%d", int(f.State()), f.Row(), f.Column()))
			}
		}
	}

	return strings.Join(lines, "\n")
}

// DeserializeGame parses text produced by SerializeGame. Either the whole game is
// returned or an error wrapping ErrMalformedSave.
func DeserializeGame(text string) (Game, error) {
	lines := splitLines(text)
	if len(lines) < headerLines {
		return Game{}, fmt.Errorf("%w: expected at least %d lines, got %d", ErrMalformedSave, headerLines, len(lines))
	}

	teams, err := deserializeTeams(lines[:4])
	if err != nil {
		return Game{}, err
	}

	side, ok := atoi(lines[4])
	if !ok || !game.Side(side).Valid() {
		return Game{}, fmt.Errorf("%w: invalid side %q", ErrMalformedSave, lines[4])
	}

	board, err := deserializeBoard(lines[headerLines:])
	if err != nil {
		return Game{}, err
	}

	return Game{Teams: teams, Side: game.Side(side), Board: board}, nil
}

func deserializeTeams(lines []string) (game.Teams, error) {
	values := make([]int, len(lines))
	for i, line := range lines {
		v, ok := atoi(line)
		if !ok {
			return game.Teams{}, fmt.Errorf("%w: line %d is not a number: %q", ErrMalformedSave, i+1, line)
		}
		values[i] = v
	}

	red := game.Team{Side: game.Side(values[0]), Type: game.TeamType(values[1])}
	blue := game.Team{Side: game.Side(values[2]), Type: game.TeamType(values[3])}
	if !red.Type.Valid() || !blue.Type.Valid() {
		return game.Teams{}, fmt.Errorf("%w: invalid team type", ErrMalformedSave)
	}

	teams, err := game.NewTeams(red, blue)
	if err != nil {
		return game.Teams{}, fmt.Errorf("%w: %w", ErrMalformedSave, err)
	}
	return teams, nil
}

func deserializeBoard(lines []string) (*game.Board, error) {
	blocked := make(map[[2]int]bool)
	for _, p := range game.RequiredLayout() {
		blocked[[2]int{p.Row, p.Column}] = true
	}

	seen := make(map[[2]int]bool, len(lines))
	placements := make([]game.Placement, 0, len(lines))
	for i, line := range lines {
		lineNo := headerLines + i + 1

		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: line %d: expected state,row,column, got %q", ErrMalformedSave, lineNo, line)
		}

		var values [3]int
		for j, part := range parts {
			v, ok := atoi(part)
			if !ok {
				return nil, fmt.Errorf("%w: line %d: %q is not a number", ErrMalformedSave, lineNo, part)
			}
			values[j] = v
		}

		state, row, column := game.FieldState(values[0]), values[1], values[2]
		if state != game.Red && state != game.Blue {
			return nil, fmt.Errorf("%w: line %d: unexpected state %d", ErrMalformedSave, lineNo, values[0])
		}
		if !game.IsRowValid(row) || !game.IsColumnInRowValid(column, row) {
			return nil, fmt.Errorf("%w: line %d: invalid position (%d,%d)", ErrMalformedSave, lineNo, row, column)
		}

		key := [2]int{row, column}
		if blocked[key] {
			return nil, fmt.Errorf("%w: line %d: (%d,%d) is blocked", ErrMalformedSave, lineNo, row, column)
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: line %d: (%d,%d) listed twice", ErrMalformedSave, lineNo, row, column)
		}
		seen[key] = true

		placements = append(placements, game.Placement{State: state, Row: row, Column: column})
	}

	board, err := game.NewBoard(placements)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSave, err)
	}
	return board, nil
}
