// Package sweep expands the declarative temperature/density description
// of an input deck into the ordered state-point sequence the evaluator
// consumes.
package sweep

import "github.com/san-kum/mievr/internal/perturb"

// Grid is the requested sweep: each axis is an ordered list, with a
// single scalar represented as a one-element list.
type Grid struct {
	Temperatures []float64
	Densities    []float64
}

// Points expands the grid to the full cross product, temperature-major:
// every density is visited for the first temperature before the second
// temperature starts. The length is len(T)·len(ρ).
func (g Grid) Points() []perturb.StatePoint {
	pts := make([]perturb.StatePoint, 0, len(g.Temperatures)*len(g.Densities))
	for _, t := range g.Temperatures {
		for _, rho := range g.Densities {
			pts = append(pts, perturb.StatePoint{Temperature: t, Density: rho})
		}
	}
	return pts
}

// Size returns the number of state points the grid expands to.
func (g Grid) Size() int {
	return len(g.Temperatures) * len(g.Densities)
}
