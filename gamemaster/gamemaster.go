package gamemaster

import (
	"fmt"

	"boxgame/communication"
	"boxgame/engine"
	"boxgame/game"
)

// GameMaster manages the game flow: it receives weight batches through its
// communicator, plays each batch as one full game, and publishes the result.
type GameMaster struct {
	Communicator communication.Communicator
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(comm communication.Communicator) *GameMaster {
	return &GameMaster{
		Communicator: comm,
	}
}

// RunGame plays the next batch as a single game and publishes its summary.
func (gm *GameMaster) RunGame() game.Summary {
	batch := gm.Communicator.ReceiveBatch()

	e := engine.NewLocalEngine(batch.Weights)
	winner, _, _ := e.Run()

	summary := e.State.Summary()
	gm.Communicator.UpdateSummary(summary)

	scoreA, scoreB := e.State.Scores()
	fmt.Printf("Scores: player A %v, player B %v\n", scoreA, scoreB)
	if winner != "" {
		fmt.Printf("%s wins!\n", winner)
	} else {
		fmt.Printf("Game ended in a draw\n")
	}

	return summary
}

// the game master loop.
func (gm *GameMaster) Run() {
	for {
		gm.RunGame()
	}
}
