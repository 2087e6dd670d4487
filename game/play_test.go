package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	t.Run("first four fibonacci weights", func(t *testing.T) {
		scoreA, scoreB := Play([]uint32{1, 1, 2, 3})

		require.Equal(t, 13.0, scoreA, "Player A should collect the scores of turns 1 and 3")
		require.Equal(t, 25.0, scoreB, "Player B should collect the scores of turns 2 and 4")
	})

	t.Run("first eight fibonacci weights", func(t *testing.T) {
		scoreA, scoreB := Play([]uint32{1, 1, 2, 3, 5, 8, 13, 21})

		require.Equal(t, 155.0, scoreA)
		require.Equal(t, 366.25, scoreB)
	})

	t.Run("empty input yields zero scores", func(t *testing.T) {
		scoreA, scoreB := Play(nil)

		require.Equal(t, 0.0, scoreA)
		require.Equal(t, 0.0, scoreB)
	})

	t.Run("same input always yields the same scores", func(t *testing.T) {
		weights := []uint32{7, 0, 42, 3, 3, 19}

		scoreA1, scoreB1 := Play(weights)
		scoreA2, scoreB2 := Play(weights)

		require.Equal(t, scoreA1, scoreA2, "Play should be a pure function of the input sequence")
		require.Equal(t, scoreB1, scoreB2, "Play should be a pure function of the input sequence")
	})

	t.Run("input slice is left untouched", func(t *testing.T) {
		weights := []uint32{1, 1, 2, 3}

		Play(weights)

		require.Equal(t, []uint32{1, 1, 2, 3}, weights, "Play should consume a copy of the input")
	})
}

func TestGameStateStep(t *testing.T) {
	t.Run("players alternate starting with player A", func(t *testing.T) {
		gs := NewGameState([]uint32{1, 1, 2, 3})

		var actors []int
		for {
			result, ok := gs.Step()
			if !ok {
				break
			}
			actors = append(actors, result.Player)
		}

		require.Equal(t, []int{1, 2, 1, 2}, actors, "Player A acts on even turn indices, player B on odd")
	})

	t.Run("every turn's score is credited exactly once", func(t *testing.T) {
		gs := NewGameState([]uint32{1, 1, 2, 3, 5, 8, 13, 21})

		total := 0.0
		for {
			result, ok := gs.Step()
			if !ok {
				break
			}
			total += result.Score
		}

		scoreA, scoreB := gs.Scores()
		require.Equal(t, total, scoreA+scoreB, "Per-turn scores should sum to the final scores")
	})

	t.Run("running scores never decrease", func(t *testing.T) {
		gs := NewGameState([]uint32{9, 0, 0, 4, 1, 7})

		prevA, prevB := gs.Scores()
		for {
			if _, ok := gs.Step(); !ok {
				break
			}
			scoreA, scoreB := gs.Scores()
			require.GreaterOrEqual(t, scoreA, prevA, "Box scores are non-negative")
			require.GreaterOrEqual(t, scoreB, prevB, "Box scores are non-negative")
			prevA, prevB = scoreA, scoreB
		}
	})

	t.Run("phases advance from not started to finished", func(t *testing.T) {
		gs := NewGameState([]uint32{1, 2})

		require.Equal(t, NotStartedPhase, gs.Phase)

		gs.Step()
		require.Equal(t, RunningPhase, gs.Phase)

		gs.Step()
		require.Equal(t, FinishedPhase, gs.Phase, "Exhausting the input should finish the game")
	})
}

func TestGameStateWinner(t *testing.T) {
	t.Run("no winner while the game is running", func(t *testing.T) {
		gs := NewGameState([]uint32{1, 1, 2, 3})
		gs.Step()

		require.Equal(t, "", gs.Winner())
	})

	t.Run("higher final score wins", func(t *testing.T) {
		gs := NewGameState([]uint32{1, 1, 2, 3})
		for {
			if _, ok := gs.Step(); !ok {
				break
			}
		}

		require.Equal(t, "Player2", gs.Winner())
	})

	t.Run("tied scores yield no winner", func(t *testing.T) {
		gs := NewGameState(nil)
		gs.Step()

		require.Equal(t, "", gs.Winner())
	})
}

func TestGameStateCopy(t *testing.T) {
	gs := NewGameState([]uint32{1, 1, 2, 3})
	gs.Step()

	snapshot := gs.Copy()
	gs.Step()
	gs.Step()

	require.Equal(t, 1, snapshot.Turn, "Snapshot should keep the state at copy time")
	require.Equal(t, 3, gs.Turn)
	scoreA, scoreB := snapshot.Scores()
	require.Equal(t, 1.0, scoreA)
	require.Equal(t, 0.0, scoreB)
	require.Equal(t, []uint32{1}, snapshot.Boxes.Boxes[0].History(), "Boxes should be deep copied")
}
