package gamemaster

import (
	"testing"

	"boxgame/game"
)

// channelCommunicator is an in-memory Communicator for tests.
type channelCommunicator struct {
	batches chan game.Batch
	summary *game.Summary
}

func newChannelCommunicator() *channelCommunicator {
	return &channelCommunicator{batches: make(chan game.Batch, 10)}
}

func (c *channelCommunicator) GetSummary() *game.Summary {
	return c.summary
}

func (c *channelCommunicator) UpdateSummary(summary game.Summary) {
	c.summary = &summary
}

func (c *channelCommunicator) SendBatch(batch game.Batch) {
	c.batches <- batch
}

func (c *channelCommunicator) ReceiveBatch() game.Batch {
	return <-c.batches
}

func TestGameMasterRunGame(t *testing.T) {
	comm := newChannelCommunicator()
	master := NewGameMaster(comm)

	comm.SendBatch(game.Batch{ID: 1, Weights: []uint32{1, 1, 2, 3}})
	summary := master.RunGame()

	if summary.ScoreA != 13.0 || summary.ScoreB != 25.0 {
		t.Errorf("expected scores (13, 25), got (%v, %v)", summary.ScoreA, summary.ScoreB)
	}
	if summary.Winner != "Player2" {
		t.Errorf("expected winner Player2, got %q", summary.Winner)
	}
	if summary.Turns != 4 {
		t.Errorf("expected 4 turns, got %d", summary.Turns)
	}

	published := comm.GetSummary()
	if published == nil {
		t.Fatal("expected the summary to be published to the communicator")
	}
	if *published != summary {
		t.Errorf("expected published summary %+v, got %+v", summary, *published)
	}
}

func TestGameMasterRunGame_EmptyBatch(t *testing.T) {
	comm := newChannelCommunicator()
	master := NewGameMaster(comm)

	comm.SendBatch(game.Batch{ID: 1})
	summary := master.RunGame()

	if summary.ScoreA != 0.0 || summary.ScoreB != 0.0 {
		t.Errorf("expected zero scores, got (%v, %v)", summary.ScoreA, summary.ScoreB)
	}
	if summary.Winner != "" {
		t.Errorf("expected a draw, got winner %q", summary.Winner)
	}
}
