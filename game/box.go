package game

import "boxgame/utils"

// BoxKind identifies the scoring variant of a box.
type BoxKind int

const (
	Green BoxKind = iota
	Blue
)

func (k BoxKind) String() string {
	if k == Green {
		return "green"
	}
	return "blue"
}

// GreenWindow is the number of most recent absorptions a green box scores over.
const GreenWindow = 3

// Box represents a stateful accumulator of absorbed token weights. The
// variant set is closed: every box is either green or blue, fixed at
// construction.
type Box interface {
	// Absorb appends weight to the absorption history and adds it to the
	// box's total weight. History is append-only and never truncated.
	Absorb(weight uint32)
	// CurrentWeight returns the box's total weight. Used only for box
	// selection, never for scoring.
	CurrentWeight() float64
	// Score computes the box's score from its absorption history without
	// mutating state. A box with an empty history scores 0.
	Score() float64
	// Kind returns the box's scoring variant.
	Kind() BoxKind
	// History returns a copy of the absorbed weights in insertion order.
	History() []uint32
	// Copy returns a deep copy of the box.
	Copy() Box
}

// box holds the state shared by both variants.
type box struct {
	weight   float64
	absorbed []uint32
}

func (b *box) Absorb(weight uint32) {
	b.absorbed = append(b.absorbed, weight)
	b.weight += float64(weight)
}

func (b *box) CurrentWeight() float64 {
	return b.weight
}

func (b *box) History() []uint32 {
	history := make([]uint32, len(b.absorbed))
	copy(history, b.absorbed)
	return history
}

func (b *box) copyState() box {
	absorbedCopy := make([]uint32, len(b.absorbed))
	copy(absorbedCopy, b.absorbed)
	return box{weight: b.weight, absorbed: absorbedCopy}
}

type greenBox struct {
	box
}

// NewGreenBox returns a green box with the given initial weight.
func NewGreenBox(initialWeight float64) Box {
	return &greenBox{box{weight: initialWeight}}
}

func (g *greenBox) Kind() BoxKind { return Green }

// Score returns the square of the mean of the most recently absorbed
// weights, over a window of at most GreenWindow entries.
func (g *greenBox) Score() float64 {
	n := len(g.absorbed)
	if n == 0 {
		return 0
	}
	k := n
	if k > GreenWindow {
		k = GreenWindow
	}
	// Widen to float64 before summing so large 32-bit weights cannot wrap
	sum := 0.0
	for _, w := range g.absorbed[n-k:] {
		sum += float64(w)
	}
	mean := sum / float64(k)
	return mean * mean
}

func (g *greenBox) Copy() Box {
	return &greenBox{g.copyState()}
}

type blueBox struct {
	box
}

// NewBlueBox returns a blue box with the given initial weight.
func NewBlueBox(initialWeight float64) Box {
	return &blueBox{box{weight: initialWeight}}
}

func (b *blueBox) Kind() BoxKind { return Blue }

// Score returns Cantor's pairing function of the smallest and largest
// weight absorbed so far, recomputed from the full history each call.
func (b *blueBox) Score() float64 {
	if len(b.absorbed) == 0 {
		return 0
	}
	smallest, largest := utils.MinMax(b.absorbed)
	return Pairing(smallest, largest)
}

func (b *blueBox) Copy() Box {
	return &blueBox{b.copyState()}
}

// Pairing is Cantor's pairing function, pairing(a, b) = (a+b)(a+b+1)/2 + b,
// so that pairing(0, 1) = 2. Evaluated in float64 to avoid wraparound on
// large 32-bit inputs.
func Pairing(a, b uint32) float64 {
	s := float64(a) + float64(b)
	return s*(s+1)/2 + float64(b)
}
