package console

import (
	"hexagon/agent"
	"hexagon/game"
	"hexagon/serializer"
)

type human struct {
	console *Console
}

// Human returns an agent asking the player at the console for every move.
func (c *Console) Human() agent.Agent {
	return human{console: c}
}

func (h human) Decide(turn agent.Turn) (agent.Decision, error) {
	c := h.console

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			c.println("Move is illegal")
		}

		c.RenderBoard(turn.Board, turn.Side, nil)
		c.renderPoints(turn.Board.Points())
		c.renderSide(turn.Side)

		loaded, err := c.beforeMove(turn)
		if err != nil {
			return agent.Decision{}, err
		}
		if loaded != nil {
			return agent.Decision{Loaded: loaded}, nil
		}

		from, err := c.selectPawn(turn)
		if err != nil {
			return agent.Decision{}, err
		}

		c.RenderBoard(turn.Board, turn.Side, &from)
		c.println("To which field do you want the pawn to be moved?")
		to, err := c.askMoveUnit()
		if err != nil {
			return agent.Decision{}, err
		}

		move := game.Move{From: from.Unit(), To: to}
		if turn.Board.IsMoveLegal(turn.Side, move) {
			return agent.Decision{Move: &move}, nil
		}
	}
}

// beforeMove offers saving and loading until the player decides to move or a game
// is loaded.
func (c *Console) beforeMove(turn agent.Turn) (*serializer.Game, error) {
	for {
		answer, err := c.choose("Choose an action:\n"+
			"[1] Make a move\n"+
			"[2] Save the game\n"+
			"[3] Load saved game",
			"1", "2", "3")
		if err != nil {
			return nil, err
		}

		switch answer {
		case "1":
			return nil, nil
		case "2":
			if err := c.SaveGame(turn.Teams, turn.Side, turn.Board); err != nil {
				return nil, err
			}
		case "3":
			loaded, err := c.LoadGame()
			if err != nil || loaded != nil {
				return loaded, err
			}
		}
	}
}

// selectPawn asks for a pawn until the player confirms one that can move.
func (c *Console) selectPawn(turn agent.Turn) (game.Field, error) {
	for {
		c.println("Which pawn do you want to move?")
		u, err := c.askMoveUnit()
		if err != nil {
			return game.Field{}, err
		}

		f, ok := turn.Board.FieldByMoveUnit(u)
		if ok && len(turn.Board.FindLegalMoves(turn.Side, &f)) > 0 {
			answer, err := c.choose("Choose an action:\n"+
				"[1] Continue the move\n"+
				"[2] Unselect current pawn",
				"1", "2")
			if err != nil {
				return game.Field{}, err
			}
			if answer == "1" {
				return f, nil
			}
			continue
		}

		if ok && (f.State() == game.Red || f.State() == game.Blue) {
			c.println("No moves can be made with picked pawn")
		} else {
			c.println("Field is invalid")
		}
	}
}
