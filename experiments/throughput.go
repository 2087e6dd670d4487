package experiments

import (
	"time"

	"boxgame/engine"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment measures how many games per second the engine
// sustains at increasing input lengths. Metric collection is disabled so
// only the game loop itself is timed.
func RunThroughputExperiment() {
	const NumGames = 1000
	lengths := []int{8, 64, 512, 4096}

	log.Info().Msg("starting throughput experiment...")

	for _, length := range lengths {
		weights := UniformWeights(length, 100, 1)

		start := time.Now()
		for i := 0; i < NumGames; i++ {
			e := engine.NewThroughputEngine(weights)
			e.Run()
		}
		elapsed := time.Since(start)

		log.Info().Msgf("length %d: %d games in %s (%.0f games/sec)", length, NumGames, elapsed, float64(NumGames)/elapsed.Seconds())
	}

	log.Info().Msg("completed throughput experiment")
}
