package metrics

import (
	"time"

	"hexagon/game"
)

type MoveMetric struct {
	Step       int
	Side       game.Side
	Passed     bool
	Duplicated bool
	Captures   int
	RedPoints  int
	BluePoints int
	Duration   time.Duration
}

type GameMetric struct {
	Session      string
	StartingSide game.Side
	Winner       string // Red, Blue or Draw
	RedPoints    int
	BluePoints   int
	Finished     bool
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

type Collector interface {
	StartGame(session string, startingSide game.Side)
	StartMove()
	// CompleteMove records a turn of side; move is nil when the side passed
	CompleteMove(side game.Side, move *game.Move, before, after game.Points)
	Complete(points game.Points, finished bool) (GameMetric, []MoveMetric)
}

type collector struct {
	game      GameMetric
	moves     []MoveMetric
	moveStart time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) StartGame(session string, startingSide game.Side) {
	m.game = GameMetric{
		Session:      session,
		StartingSide: startingSide,
		StartTime:    time.Now(),
	}
	m.moves = nil
}

func (m *collector) StartMove() {
	m.moveStart = time.Now()
}

func (m *collector) CompleteMove(side game.Side, move *game.Move, before, after game.Points) {
	metric := MoveMetric{
		Step:       len(m.moves) + 1,
		Side:       side,
		Passed:     move == nil,
		RedPoints:  after.Red,
		BluePoints: after.Blue,
		Duration:   time.Since(m.moveStart),
	}

	if move != nil {
		metric.Duplicated = move.Duplicates()
		enemyBefore, _ := before.Get(side.Opponent())
		enemyAfter, _ := after.Get(side.Opponent())
		metric.Captures = enemyBefore - enemyAfter
	}
	m.moves = append(m.moves, metric)
}

func (m *collector) Complete(points game.Points, finished bool) (GameMetric, []MoveMetric) {
	m.game.EndTime = time.Now()
	m.game.Duration = m.game.EndTime.Sub(m.game.StartTime)
	m.game.RedPoints = points.Red
	m.game.BluePoints = points.Blue
	m.game.Finished = finished
	m.game.TotalMoves = len(m.moves)
	m.game.Winner = "Draw"
	if winner, ok := points.Winner(); ok {
		m.game.Winner = winner.String()
	}
	return m.game, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) StartGame(session string, startingSide game.Side)                        {}
func (m *dummyCollector) StartMove()                                                              {}
func (m *dummyCollector) CompleteMove(side game.Side, move *game.Move, before, after game.Points) {}
func (m *dummyCollector) Complete(points game.Points, finished bool) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
