package engine

import (
	"boxgame/experiments/metrics"
	"boxgame/game"

	"github.com/rs/zerolog/log"
)

// Local drives one game over a fixed input weight sequence.
type Local struct {
	State     *game.GameState
	Observers []func(Update)
	collector metrics.Collector
}

// Update is emitted to observers after each turn, carrying the turn's
// outcome and a snapshot of the state it produced.
type Update struct {
	Turn  game.TurnResult
	State *game.GameState
}

// NewLocalEngine returns a Local engine over the given input weights.
func NewLocalEngine(weights []uint32) *Local {
	return &Local{
		State:     game.NewGameState(weights),
		collector: metrics.NewCollector(),
	}
}

// NewThroughputEngine returns a Local engine that skips metric collection,
// for runs where only the outcome matters.
func NewThroughputEngine(weights []uint32) *Local {
	return &Local{
		State:     game.NewGameState(weights),
		collector: metrics.NewDummyCollector(),
	}
}

// Run executes the entire game loop until the input is exhausted.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.TurnMetric) {
	e.collector.Start(e.State.CurrentPlayer)

	log.Info().Msgf("player %d is starting over %d input weights", e.State.CurrentPlayer, len(e.State.Pending))

	var turnMetrics []metrics.TurnMetric
	for {
		result, ok := e.State.Step()
		if !ok {
			break
		}

		tm := metrics.TurnMetric{
			Turn:   result.Turn,
			Player: result.Player,
			Box:    result.Box,
			Kind:   e.State.Boxes.Boxes[result.Box].Kind().String(),
			Weight: result.Weight,
			Score:  result.Score,
		}
		e.collector.AddTurn(tm)
		turnMetrics = append(turnMetrics, tm)

		for _, observe := range e.Observers {
			observe(Update{Turn: result, State: e.State.Copy()})
		}

		log.Debug().Msgf("turn %d: player %d credited %v from box %d", result.Turn, result.Player, result.Score, result.Box)
	}

	scoreA, scoreB := e.State.Scores()
	winner := e.State.Winner()
	gameMetric := e.collector.Complete(winner, scoreA, scoreB)

	if winner != "" {
		log.Info().Msgf("game ended after %d turns with winner: %s", e.State.Turn, winner)
	} else {
		log.Info().Msgf("game ended after %d turns with tied scores", e.State.Turn)
	}

	return winner, gameMetric, turnMetrics
}
