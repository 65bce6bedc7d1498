package belief_test

import (
	"fmt"

	"github.com/katalvlaran/histloc/belief"
)

// ExampleUniform shows the starting point of every localization run:
// complete ignorance about where the robot is.
func ExampleUniform() {
	b, _ := belief.Uniform(2, 4)

	fmt.Println(b)
	fmt.Printf("mass=%.1f entropy=%.4f\n", b.Sum(), b.Entropy())

	// Output:
	// [[0.12500,0.12500,0.12500,0.12500],
	//  [0.12500,0.12500,0.12500,0.12500]]
	// mass=1.0 entropy=2.0794
}
