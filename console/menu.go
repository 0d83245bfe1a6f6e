package console

import (
	"github.com/rs/zerolog/log"

	"hexagon/game"
	"hexagon/serializer"
)

// ChooseTeams shows the game mode menu. It returns false when the player wants to
// load a saved game instead.
func (c *Console) ChooseTeams() (game.Teams, bool, error) {
	answer, err := c.choose("Choose game mode:\n"+
		"[1] Player vs Player\n"+
		"[2] Player vs Computer\n"+
		"[3] Load the game",
		"1", "2", "3")
	if err != nil {
		return game.Teams{}, false, err
	}

	blue := game.Computer
	switch answer {
	case "3":
		return game.Teams{}, false, nil
	case "1":
		blue = game.Player
	}

	teams, err := game.NewTeams(game.Team{Side: game.RedSide, Type: game.Player}, game.Team{Side: game.BlueSide, Type: blue})
	return teams, err == nil, err
}

// Start asks for a new or a saved game until one is available. New games start
// with Red on the default board.
func (c *Console) Start() (serializer.Game, error) {
	for {
		teams, ok, err := c.ChooseTeams()
		if err != nil {
			return serializer.Game{}, err
		}
		if ok {
			return serializer.Game{Teams: teams, Side: game.RedSide, Board: game.NewDefaultBoard()}, nil
		}

		loaded, err := c.LoadGame()
		if err != nil {
			return serializer.Game{}, err
		}
		if loaded != nil {
			return *loaded, nil
		}
	}
}

// LoadGame asks for a save name and loads it. Failures are reported to the player
// and give a nil game; only input errors are returned.
func (c *Console) LoadGame() (*serializer.Game, error) {
	name, err := c.ask("Enter the save name:", func(string) bool { return true })
	if err != nil {
		return nil, err
	}

	text, err := c.store.LoadGame(name)
	if err != nil {
		log.Debug().Err(err).Msgf("Failed to load save %q", name)
		c.println("Failed to load the file")
		return nil, nil
	}

	loaded, err := serializer.DeserializeGame(text)
	if err != nil {
		log.Debug().Err(err).Msgf("Save %q is corrupted", name)
		c.println("File is corrupted")
		return nil, nil
	}
	return &loaded, nil
}

// SaveGame asks for a save name and writes the game under it.
func (c *Console) SaveGame(teams game.Teams, side game.Side, board *game.Board) error {
	text := serializer.SerializeGame(teams, side, board)

	name, err := c.ask("Enter the save name:", func(string) bool { return true })
	if err != nil {
		return err
	}

	if err := c.store.SaveGame(name, text); err != nil {
		log.Warn().Err(err).Msgf("Failed to save %q", name)
		c.println("Failed to save the game")
		return nil
	}
	c.println("Game successfully saved")
	return nil
}
