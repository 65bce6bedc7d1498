package filter

import "fmt"

// Motion is the displacement a robot attempts to execute in one timestep.
// DRow > 0 moves down, DCol > 0 moves right.
type Motion struct {
	DRow, DCol int
}

// Unit motions.
var (
	Stay  = Motion{0, 0}
	Right = Motion{0, 1}
	Left  = Motion{0, -1}
	Down  = Motion{1, 0}
	Up    = Motion{-1, 0}
)

// IsZero reports whether m is the "stay" motion.
func (m Motion) IsZero() bool {
	return m.DRow == 0 && m.DCol == 0
}

// String implements fmt.Stringer as "[dy,dx]".
func (m Motion) String() string {
	return fmt.Sprintf("[%d,%d]", m.DRow, m.DCol)
}

// Phase identifies which half of a timestep an update belongs to.
type Phase int

const (
	// PhaseMove is the motion (prediction) update.
	PhaseMove Phase = iota
	// PhaseSense is the measurement (correction) update.
	PhaseSense
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseMove:
		return "move"
	case PhaseSense:
		return "sense"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}
