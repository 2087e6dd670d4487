package engine

import "boxgame/experiments/metrics"

type Engine interface {
	// Run plays a game to completion over its input weights
	Run() (winner string, gameMetric metrics.GameMetric, turnMetrics []metrics.TurnMetric)
}
