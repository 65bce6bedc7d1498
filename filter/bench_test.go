package filter_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/histloc/filter"
	"github.com/katalvlaran/histloc/grid"
)

// BenchmarkLocalize measures a 50-step run on a random 200×200 two-color world.
// Complexity: O(N×W×H)
func BenchmarkLocalize(b *testing.B) {
	const n, steps = 200, 50
	rng := rand.New(rand.NewSource(42))
	rows := make([][]byte, n)
	for y := range rows {
		rows[y] = make([]byte, n)
		for x := range rows[y] {
			rows[y][x] = "RG"[rng.Intn(2)]
		}
	}
	world, err := grid.From2D(rows)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}
	measurements := make([]byte, steps)
	motions := make([]filter.Motion, steps)
	for i := range motions {
		measurements[i] = "RG"[rng.Intn(2)]
		motions[i] = filter.Motion{DRow: rng.Intn(3) - 1, DCol: rng.Intn(3) - 1}
	}
	l, err := filter.NewLocalizer(world, 0.8, 0.9)
	if err != nil {
		b.Fatalf("setup NewLocalizer failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.Run(measurements, motions); err != nil {
			b.Fatal(err)
		}
	}
}
