// Package export writes evaluated perturbation terms in the formats the
// original tooling around this model expects: a flat CSV table with
// dimensionless companions, JSON, and an SVG sweep plot.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/mievr/internal/perturb"
	"github.com/san-kum/mievr/internal/units"
)

var csvHeader = []string{
	"temperature", "density", "a1", "a2",
	"a1_dimensionless", "a2_dimensionless",
	"segment_diameter", "potential_depth",
	"repulsive_exponent", "attractive_exponent",
	"input_filename",
}

// WriteCSV writes one row per state point in input order. The
// dimensionless columns divide by ε·kB; the molecule parameters and the
// deck path are echoed on every row so a results file stands alone.
func WriteCSV(w io.Writer, inputName string, mol perturb.Molecule, results []perturb.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	epsKB := mol.PotentialDepth * units.Boltzmann
	for _, r := range results {
		row := []string{
			fmtF(r.Point.Temperature),
			fmtF(r.Point.Density),
			fmtF(r.A1),
			fmtF(r.A2),
			fmtF(r.A1 / epsKB),
			fmtF(r.A2 / epsKB),
			fmtF(mol.SegmentDiameter),
			fmtF(mol.PotentialDepth),
			fmtF(mol.RepulsiveExponent),
			fmtF(mol.AttractiveExponent),
			inputName,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteJSON emits the molecule and results as one indented document.
func WriteJSON(w io.Writer, inputName string, mol perturb.Molecule, results []perturb.Result) error {
	doc := struct {
		Input    string           `json:"input"`
		Molecule perturb.Molecule `json:"molecule"`
		Results  []perturb.Result `json:"results"`
	}{inputName, mol, results}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
