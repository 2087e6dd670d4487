package metrics

import (
	"time"
)

// TurnMetric describes a single turn of a game.
type TurnMetric struct {
	Turn   int
	Player int // Acting player ID
	Box    int // Index of the absorbing box
	Kind   string
	Weight uint32
	Score  float64
}

// GameMetric describes a completed game.
type GameMetric struct {
	StartingPlayer int    // Player ID
	Winner         string // "" on a tied score
	ScoreA         float64
	ScoreB         float64
	Turns          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

type Collector interface {
	Start(startingPlayer int)
	AddTurn(turn TurnMetric)
	Complete(winner string, scoreA, scoreB float64) GameMetric
}

type collector struct {
	startingPlayer int
	startTime      time.Time
	turns          int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(startingPlayer int) {
	c.startTime = time.Now()
	c.startingPlayer = startingPlayer
	c.turns = 0
}

func (c *collector) AddTurn(turn TurnMetric) {
	c.turns++
}

func (c *collector) Complete(winner string, scoreA, scoreB float64) GameMetric {
	endTime := time.Now()
	return GameMetric{
		StartingPlayer: c.startingPlayer,
		Winner:         winner,
		ScoreA:         scoreA,
		ScoreB:         scoreB,
		Turns:          c.turns,
		StartTime:      c.startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(startingPlayer int) {}
func (c *dummyCollector) AddTurn(turn TurnMetric)  {}
func (c *dummyCollector) Complete(winner string, scoreA, scoreB float64) GameMetric {
	return GameMetric{}
}
