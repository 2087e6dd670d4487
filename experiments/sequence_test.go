package experiments

import (
	"testing"

	"boxgame/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func TestFibonacciWeights(t *testing.T) {
	require.Equal(t, []uint32{1, 1, 2, 3, 5, 8, 13, 21}, FibonacciWeights(8))
	require.Empty(t, FibonacciWeights(0))
}

func TestConstantWeights(t *testing.T) {
	require.Equal(t, []uint32{7, 7, 7}, ConstantWeights(3, 7))
}

func TestUniformWeights(t *testing.T) {
	t.Run("same seed yields the same sequence", func(t *testing.T) {
		first := UniformWeights(32, 100, 42)
		second := UniformWeights(32, 100, 42)

		require.Equal(t, first, second, "Generation should be deterministic per seed")
	})

	t.Run("different seeds yield different sequences", func(t *testing.T) {
		first := UniformWeights(32, 100, 1)
		second := UniformWeights(32, 100, 2)

		require.NotEqual(t, first, second)
	})

	t.Run("weights stay within the bound", func(t *testing.T) {
		for _, w := range UniformWeights(256, 10, 7) {
			require.LessOrEqual(t, w, uint32(10))
		}
	})
}

func TestGenerate(t *testing.T) {
	t.Run("offset varies seeded sequences across games", func(t *testing.T) {
		config := metrics.SequenceConfig{Generator: "uniform", Length: 32, MaxWeight: 100, Seed: 1}

		require.NotEqual(t, generate(config, 0), generate(config, 1))
	})

	t.Run("unknown generator panics", func(t *testing.T) {
		require.Panics(t, func() {
			generate(metrics.SequenceConfig{Generator: "bogus"}, 0)
		})
	})
}
