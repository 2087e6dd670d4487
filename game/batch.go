package game

// Batch represents a submitted sequence of input token weights.
// One batch is played as one game.
type Batch struct {
	ID      int      `json:"id"`
	Weights []uint32 `json:"weights"`
}
