package game

import "fmt"

// Team pairs a side with the kind of participant playing it.
type Team struct {
	Side Side
	Type TeamType
}

// Teams holds exactly one Red and one Blue team.
type Teams struct {
	red  Team
	blue Team
}

// NewTeams fails unless red plays the Red side and blue plays the Blue side.
func NewTeams(red, blue Team) (Teams, error) {
	if red.Side != RedSide || blue.Side != BlueSide {
		return Teams{}, fmt.Errorf("%w: teams have sides %s and %s", ErrInvalidSide, red.Side, blue.Side)
	}
	return Teams{red: red, blue: blue}, nil
}

func (t Teams) Red() Team  { return t.red }
func (t Teams) Blue() Team { return t.blue }

// Get returns the team playing the side.
func (t Teams) Get(side Side) (Team, error) {
	switch side {
	case RedSide:
		return t.red, nil
	case BlueSide:
		return t.blue, nil
	}
	return Team{}, fmt.Errorf("%w: %d", ErrInvalidSide, int(side))
}

// Points is a snapshot of the number of pawns each side owns.
type Points struct {
	Red  int
	Blue int
}

func (p Points) Get(side Side) (int, error) {
	switch side {
	case RedSide:
		return p.Red, nil
	case BlueSide:
		return p.Blue, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidSide, int(side))
}

// Winner returns the side with more points, false on a tie.
func (p Points) Winner() (Side, bool) {
	switch {
	case p.Red > p.Blue:
		return RedSide, true
	case p.Blue > p.Red:
		return BlueSide, true
	}
	return RedSide, false
}
