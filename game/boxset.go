package game

import "boxgame/meta"

// BoxSet owns the four boxes a game is played against, in fixed order.
// Composition and initial weights never change during a game.
type BoxSet struct {
	Boxes [meta.NUM_BOXES]Box
}

// NewBoxSet returns the standard set: two green boxes with initial weights
// 0.0 and 0.1, then two blue boxes with initial weights 0.2 and 0.3.
func NewBoxSet() *BoxSet {
	return &BoxSet{
		Boxes: [meta.NUM_BOXES]Box{
			NewGreenBox(0.0),
			NewGreenBox(0.1),
			NewBlueBox(0.2),
			NewBlueBox(0.3),
		},
	}
}

// SmallestBox returns the index of the box with the smallest current
// weight. Ties go to the earliest box in construction order.
func (bs *BoxSet) SmallestBox() int {
	smallest := 0
	for i := 1; i < len(bs.Boxes); i++ {
		if bs.Boxes[i].CurrentWeight() < bs.Boxes[smallest].CurrentWeight() {
			smallest = i
		}
	}
	return smallest
}

// Copy returns a deep copy of the set.
func (bs *BoxSet) Copy() *BoxSet {
	setCopy := &BoxSet{}
	for i, b := range bs.Boxes {
		setCopy.Boxes[i] = b.Copy()
	}
	return setCopy
}
