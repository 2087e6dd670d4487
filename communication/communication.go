package communication

import "boxgame/game"

// Communicator is an interface that abstracts the communication mechanism
// between weight feeders and the game master.
type Communicator interface {
	GetSummary() *game.Summary
	UpdateSummary(summary game.Summary)
	SendBatch(batch game.Batch)
	ReceiveBatch() game.Batch
}
