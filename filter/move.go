package filter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/histloc/belief"
	"github.com/katalvlaran/histloc/grid"
)

// checkProbability validates that v is a probability in [0,1].
func checkProbability(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%s=%g: %w", name, v, ErrInvalidParameter)
	}

	return nil
}

// Move applies the motion update for displacement m with success
// probability pMove and returns a new belief of the same shape.
//
// The stay motion returns b itself. Otherwise, for every cell,
//
//	B′[r][c] = (1-pMove)·B[r][c] + pMove·B[(r-m.DRow) mod H][(c-m.DCol) mod W]
//
// The result is a convex combination of two distributions and keeps the
// input's total mass, so no renormalization happens here.
//
// Errors: ErrNilBelief, ErrInvalidParameter.
// Complexity: O(H·W) time and memory.
func Move(b *belief.Belief, m Motion, pMove float64) (*belief.Belief, error) {
	if b == nil {
		return nil, ErrNilBelief
	}
	if err := checkProbability("p_move", pMove); err != nil {
		return nil, err
	}
	if m.IsZero() {
		return b, nil
	}

	h, w := b.Height(), b.Width()
	stay := 1 - pMove
	out := make([]float64, h*w)
	for r := 0; r < h; r++ {
		sr := grid.Wrap(r-m.DRow, h) // source row the robot came from
		for c := 0; c < w; c++ {
			sc := grid.Wrap(c-m.DCol, w)
			i := grid.Index(r, c, w)
			out[i] = stay*b.Value(i) + pMove*b.Value(grid.Index(sr, sc, w))
		}
	}

	return belief.FromFlat(h, w, out)
}
