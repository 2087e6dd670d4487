package game

// Play runs a full game over the input weights and returns the final
// scores for player A and player B. Each weight is absorbed exactly once,
// in order, with player A acting first. An empty input yields (0, 0).
// Printing the result is a caller concern.
func Play(weights []uint32) (float64, float64) {
	gs := NewGameState(weights)
	for {
		if _, ok := gs.Step(); !ok {
			break
		}
	}
	return gs.Scores()
}
