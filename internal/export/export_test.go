package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/san-kum/mievr/internal/perturb"
	"github.com/san-kum/mievr/internal/units"
)

func sampleResults(t *testing.T) (perturb.Molecule, []perturb.Result) {
	t.Helper()
	mol, err := perturb.NewMolecule(4.0, 100.0, 8.0, 6.0, 1, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	eval, err := perturb.Derive(mol)
	if err != nil {
		t.Fatal(err)
	}

	var results []perturb.Result
	for _, rho := range []float64{1.5, 3.0, 6.0} {
		r, err := eval.Evaluate(perturb.StatePoint{Temperature: 100, Density: rho})
		if err != nil {
			t.Fatal(err)
		}
		results = append(results, r)
	}
	return mol, results
}

func TestWriteCSV(t *testing.T) {
	mol, results := sampleResults(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, "deck.yaml", mol, results); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(results)+1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(results)+1)
	}

	header := rows[0]
	if header[0] != "temperature" || header[len(header)-1] != "input_filename" {
		t.Errorf("unexpected header: %v", header)
	}

	epsKB := mol.PotentialDepth * units.Boltzmann
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			t.Fatalf("row %d has %d fields, want %d", i, len(row), len(header))
		}

		a1, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			t.Fatal(err)
		}
		if a1 != results[i].A1 {
			t.Errorf("row %d: a1 = %g, want %g", i, a1, results[i].A1)
		}

		a1Red, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(a1Red-results[i].A1/epsKB) > 1e-15*math.Abs(a1Red) {
			t.Errorf("row %d: dimensionless a1 = %g, want %g", i, a1Red, results[i].A1/epsKB)
		}

		if row[len(row)-1] != "deck.yaml" {
			t.Errorf("row %d: input column = %q", i, row[len(row)-1])
		}
	}
}

func TestWriteJSON(t *testing.T) {
	mol, results := sampleResults(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, "deck.yaml", mol, results); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Input    string           `json:"input"`
		Molecule perturb.Molecule `json:"molecule"`
		Results  []perturb.Result `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}

	if doc.Input != "deck.yaml" {
		t.Errorf("input = %q", doc.Input)
	}
	if doc.Molecule != mol {
		t.Errorf("molecule = %+v, want %+v", doc.Molecule, mol)
	}
	if len(doc.Results) != len(results) {
		t.Fatalf("got %d results, want %d", len(doc.Results), len(results))
	}
	if doc.Results[1] != results[1] {
		t.Errorf("result 1 = %+v, want %+v", doc.Results[1], results[1])
	}
}

func TestSweepSVG(t *testing.T) {
	points := []struct{ X, Y float64 }{
		{1, -1.0}, {2, -2.1}, {3, -2.9}, {4, -3.2},
	}

	svg := SweepSVG(points, 640, 400, "#00ff88")
	if svg == "" {
		t.Fatal("empty SVG for a valid sweep")
	}
	if !strings.Contains(svg, `width="640" height="400"`) {
		t.Error("missing dimensions")
	}
	if !strings.Contains(svg, `stroke="#00ff88"`) {
		t.Error("missing stroke color")
	}
	if strings.Count(svg, " L") != len(points)-1 {
		t.Errorf("expected %d line segments, got %d", len(points)-1, strings.Count(svg, " L"))
	}
}

func TestSweepSVG_Degenerate(t *testing.T) {
	if svg := SweepSVG(nil, 640, 400, "#fff"); svg != "" {
		t.Error("expected empty output for no points")
	}
	one := []struct{ X, Y float64 }{{1, 1}}
	if svg := SweepSVG(one, 640, 400, "#fff"); svg != "" {
		t.Error("expected empty output for a single point")
	}

	// Constant series must still render without dividing by zero.
	flat := []struct{ X, Y float64 }{{1, 5}, {2, 5}, {3, 5}}
	svg := SweepSVG(flat, 640, 400, "#fff")
	if svg == "" || strings.Contains(svg, "NaN") {
		t.Errorf("flat series rendered badly: %q", svg)
	}
}
