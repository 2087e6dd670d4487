package game

import "boxgame/meta"

type Phase int

const (
	NotStartedPhase Phase = iota
	RunningPhase
	FinishedPhase
)

// GameState represents the dynamic state of one game: the boxes, both
// players, and the input weights not yet absorbed. Boxes are owned
// exclusively by the state's BoxSet and mutated only through Step.
type GameState struct {
	Boxes         *BoxSet
	Players       []Player // Indexed by player ID - 1
	Pending       []uint32 // Input weights not yet absorbed, in order
	CurrentPlayer int      // The player acting on the next turn
	Turn          int      // Number of turns played so far
	Phase         Phase
}

// TurnResult records what a single turn did.
type TurnResult struct {
	Turn   int     // 1-based turn number
	Player int     // Acting player ID
	Box    int     // Index of the absorbing box in the set
	Weight uint32  // The absorbed token weight
	Score  float64 // Post-absorption score credited to the player
}

// Summary is the outward-facing result of a game, safe to ship over the wire.
type Summary struct {
	Turns  int     `json:"turns"`
	ScoreA float64 `json:"scoreA"`
	ScoreB float64 `json:"scoreB"`
	Winner string  `json:"winner"`
}

// NewGameState initializes and returns a new GameState over the given
// input weights. The input is copied so the caller's slice stays untouched.
func NewGameState(weights []uint32) *GameState {
	players := make([]Player, meta.NUM_PLAYERS)
	for i := range players {
		players[i] = Player{ID: i + 1}
	}

	pending := make([]uint32, len(weights))
	copy(pending, weights)

	return &GameState{
		Boxes:         NewBoxSet(),
		Players:       players,
		Pending:       pending,
		CurrentPlayer: 1,
		Phase:         NotStartedPhase,
	}
}

// Copy returns a deep copy of the GameState.
func (gs *GameState) Copy() *GameState {
	playersCopy := make([]Player, len(gs.Players))
	copy(playersCopy, gs.Players)

	pendingCopy := make([]uint32, len(gs.Pending))
	copy(pendingCopy, gs.Pending)

	return &GameState{
		Boxes:         gs.Boxes.Copy(),
		Players:       playersCopy,
		Pending:       pendingCopy,
		CurrentPlayer: gs.CurrentPlayer,
		Turn:          gs.Turn,
		Phase:         gs.Phase,
	}
}

// Step plays one turn: the acting player lets the box with the smallest
// current weight absorb the next input weight, and the box's post-absorb
// score is credited to that player. Returns false once the input sequence
// is exhausted.
func (gs *GameState) Step() (TurnResult, bool) {
	if len(gs.Pending) == 0 {
		gs.Phase = FinishedPhase
		return TurnResult{}, false
	}
	gs.Phase = RunningPhase

	weight := gs.Pending[0]
	gs.Pending = gs.Pending[1:]

	index := gs.Boxes.SmallestBox()
	selected := gs.Boxes.Boxes[index]
	selected.Absorb(weight)
	score := selected.Score()

	actor := gs.CurrentPlayer
	gs.Players[actor-1].AddScore(score)

	gs.Turn++
	result := TurnResult{
		Turn:   gs.Turn,
		Player: actor,
		Box:    index,
		Weight: weight,
		Score:  score,
	}

	gs.CurrentPlayer = gs.NextPlayer()
	if len(gs.Pending) == 0 {
		gs.Phase = FinishedPhase
	}
	return result, true
}

// NextPlayer returns the ID of the player acting after the current one.
func (gs *GameState) NextPlayer() int {
	return gs.CurrentPlayer%meta.NUM_PLAYERS + 1
}

// Scores returns player A's and player B's accumulated scores.
func (gs *GameState) Scores() (float64, float64) {
	return gs.Players[0].Score, gs.Players[1].Score
}

// Winner returns the name of the player with the higher score once the
// game is finished, or "" while the game is running or on a tied score.
func (gs *GameState) Winner() string {
	if gs.Phase != FinishedPhase {
		return ""
	}
	scoreA, scoreB := gs.Scores()
	switch {
	case scoreA > scoreB:
		return "Player1"
	case scoreB > scoreA:
		return "Player2"
	default:
		return ""
	}
}

// Summary returns the game's outward-facing result.
func (gs *GameState) Summary() Summary {
	scoreA, scoreB := gs.Scores()
	return Summary{
		Turns:  gs.Turn,
		ScoreA: scoreA,
		ScoreB: scoreB,
		Winner: gs.Winner(),
	}
}
