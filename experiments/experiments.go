package experiments

import (
	"fmt"

	"boxgame/engine"
	"boxgame/experiments/metrics"

	"github.com/rs/zerolog/log"
)

const NumGames = 30 // Per sequence config

var generatorConfigs = []metrics.SequenceConfig{
	{ID: 1, Generator: "fibonacci", Length: 8},
	{ID: 2, Generator: "constant", Length: 32, MaxWeight: 1},
	{ID: 3, Generator: "uniform", Length: 32, MaxWeight: 100, Seed: 1},
	{ID: 4, Generator: "uniform", Length: 32, MaxWeight: 10000, Seed: 1},
}

// RunGeneratorExperiment compares score development across input weight
// distributions.
func RunGeneratorExperiment() {
	runExperiment("generator_comparison", generatorConfigs)
}

// RunLengthExperiment compares games over increasingly long uniform inputs.
func RunLengthExperiment() {
	configs := []metrics.SequenceConfig{}
	for i, length := range []int{8, 32, 128, 512, 2048} {
		configs = append(configs, metrics.SequenceConfig{
			ID:        i + 1,
			Generator: "uniform",
			Length:    length,
			MaxWeight: 100,
			Seed:      1,
		})
	}

	runExperiment("sequence_length", configs)
}

func runExperiment(name string, configs []metrics.SequenceConfig) {
	// Run a number of games for each sequence config
	count := 0
	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting sequence config %d of %d: %+v...", ci+1, len(configs), config)

		for i := 0; i < NumGames; i++ {
			log.Info().Msgf("starting sequence config %d of %d game %d of %d...", ci+1, len(configs), i+1, NumGames)

			winner, gameMetric, turnMetrics := runGame(generate(config, uint64(i)))
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Sequence:   config.ID,
				GameMetric: gameMetric,
			})
			for _, tm := range turnMetrics {
				turnRecords = append(turnRecords, metrics.TurnRecord{
					Game:       count,
					TurnMetric: tm,
				})
			}

			log.Info().Msgf("completed sequence config %d of %d game %d with winner: %s", ci+1, len(configs), i+1, winner)
		}
		log.Info().Msgf("completed sequence config %d of %d", ci+1, len(configs))
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteSequenceConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store sequence configs: %v", err))
	}
	log.Info().Msg("stored sequence configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteTurnRecords(turnRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write turn records: %v", err))
	}
	log.Info().Msg("stored turn records")
}

// runGame executes a single game over the given weights and returns the winner
func runGame(weights []uint32) (string, metrics.GameMetric, []metrics.TurnMetric) {
	e := engine.NewLocalEngine(weights)
	return e.Run()
}
