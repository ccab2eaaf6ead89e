package neighbours_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/proxima/neighbours"
	"github.com/katalvlaran/proxima/point"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// chunk groups flat coordinates into points of the given dimension,
// dropping an incomplete tail.
func chunk(flat []float64, dim int) [][]float64 {
	out := make([][]float64, 0, len(flat)/dim)
	for k := 0; k+dim <= len(flat); k += dim {
		out = append(out, flat[k:k+dim])
	}

	return out
}

// TestNeighbourProperties checks the mapping invariants on random clouds.
// These properties must hold for every valid input.
func TestNeighbourProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	if testing.Short() {
		parameters.MinSuccessfulTests = 25
	}
	properties := gopter.NewProperties(parameters)

	coords := gen.SliceOf(gen.Float64Range(-5, 5))
	dims := gen.IntRange(1, 3)
	cutoffs := gen.Float64Range(0, 6)

	properties.Property("mapping is well formed", prop.ForAll(
		func(flat []float64, dim int, cutoff float64) bool {
			pos := chunk(flat, dim)
			opts := neighbours.Options{Cutoff: cutoff}
			m, err := neighbours.Find(pos, len(pos), &opts)
			if err != nil {
				return false
			}
			// keys 0..n-1, no self, strictly ascending, in range
			return m.Validate(len(pos)) == nil
		},
		coords, dims, cutoffs,
	))

	properties.Property("every pair under the cutoff is listed both ways", prop.ForAll(
		func(flat []float64, dim int, cutoff float64) bool {
			pos := chunk(flat, dim)
			opts := neighbours.Options{Cutoff: cutoff}
			m, err := neighbours.Find(pos, len(pos), &opts)
			if err != nil {
				return false
			}
			for i := range pos {
				for j := range pos {
					near := i != j && point.Euclidean(pos[i], pos[j]) < cutoff
					if near != m.Contains(i, j) {
						return false
					}
				}
			}
			return len(m.Asymmetries()) == 0
		},
		coords, dims, cutoffs,
	))

	properties.Property("identical inputs give identical output", prop.ForAll(
		func(flat []float64, dim int, cutoff float64) bool {
			pos := chunk(flat, dim)
			opts := neighbours.Options{Cutoff: cutoff}
			a, errA := neighbours.Find(pos, len(pos), &opts)
			b, errB := neighbours.Find(pos, len(pos), &opts)
			return errA == nil && errB == nil && reflect.DeepEqual(a, b)
		},
		coords, dims, cutoffs,
	))

	properties.Property("raising the cutoff never removes a neighbour", prop.ForAll(
		func(flat []float64, dim int, c1, c2 float64) bool {
			lo, hi := min(c1, c2), max(c1, c2)
			pos := chunk(flat, dim)
			small, err := neighbours.Find(pos, len(pos), &neighbours.Options{Cutoff: lo})
			if err != nil {
				return false
			}
			large, err := neighbours.Find(pos, len(pos), &neighbours.Options{Cutoff: hi})
			if err != nil {
				return false
			}
			for i, row := range small {
				for _, j := range row {
					if !large.Contains(i, j) {
						return false
					}
				}
			}
			return true
		},
		coords, dims, cutoffs, cutoffs,
	))

	properties.Property("worker count does not change the result", prop.ForAll(
		func(flat []float64, dim int, workers int) bool {
			pos := chunk(flat, dim)
			seq, err := neighbours.Find(pos, len(pos), nil)
			if err != nil {
				return false
			}
			opts := neighbours.NewOptions(neighbours.WithWorkers(workers))
			par, err := neighbours.Find(pos, len(pos), &opts)
			return err == nil && reflect.DeepEqual(seq, par)
		},
		coords, dims, gen.IntRange(neighbours.AutoWorkers, 9),
	))

	properties.TestingRun(t)
}
