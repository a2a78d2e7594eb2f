// Package viz renders evaluated sweeps in the terminal: static
// asciigraph plots for stored runs and a live viewer for exploring the
// temperature dependence interactively.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mievr/internal/perturb"
	"github.com/san-kum/mievr/internal/units"
)

// RenderTerm plots one dimensionless perturbation term against the
// result index (density-ordered within each temperature block).
func RenderTerm(results []perturb.Result, mol perturb.Molecule, term string) (string, error) {
	if len(results) == 0 {
		return "", fmt.Errorf("no data to plot")
	}

	epsKB := mol.PotentialDepth * units.Boltzmann
	data := make([]float64, len(results))
	for i, r := range results {
		switch term {
		case "a1":
			data[i] = r.A1 / epsKB
		case "a2":
			data[i] = r.A2 / epsKB
		default:
			return "", fmt.Errorf("unknown term: %s", term)
		}
	}

	caption := fmt.Sprintf("%s / (ε·kB) across %d state points", term, len(results))
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	), nil
}
