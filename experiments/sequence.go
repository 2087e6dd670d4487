package experiments

import (
	"fmt"

	"boxgame/experiments/metrics"

	"golang.org/x/exp/rand"
)

// FibonacciWeights returns the first n Fibonacci numbers starting 1, 1.
func FibonacciWeights(n int) []uint32 {
	weights := make([]uint32, n)
	a, b := uint32(1), uint32(1)
	for i := 0; i < n; i++ {
		weights[i] = a
		a, b = b, a+b
	}
	return weights
}

// ConstantWeights returns n copies of the same weight.
func ConstantWeights(n int, weight uint32) []uint32 {
	weights := make([]uint32, n)
	for i := range weights {
		weights[i] = weight
	}
	return weights
}

// UniformWeights returns n weights drawn uniformly from [0, max] using a
// seeded source, so the same seed always yields the same sequence.
func UniformWeights(n int, max uint32, seed uint64) []uint32 {
	rng := rand.New(rand.NewSource(seed))
	weights := make([]uint32, n)
	for i := range weights {
		weights[i] = uint32(rng.Uint64n(uint64(max) + 1))
	}
	return weights
}

// generate builds the input sequence for one game of a config. The offset
// varies the seed across repeated games of the same config.
func generate(config metrics.SequenceConfig, offset uint64) []uint32 {
	switch config.Generator {
	case "fibonacci":
		return FibonacciWeights(config.Length)
	case "constant":
		return ConstantWeights(config.Length, config.MaxWeight)
	case "uniform":
		return UniformWeights(config.Length, config.MaxWeight, config.Seed+offset)
	default:
		panic(fmt.Sprintf("unknown sequence generator: %s", config.Generator))
	}
}
