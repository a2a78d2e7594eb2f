package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/san-kum/mievr/internal/perturb"
)

func sampleRun(t *testing.T) (perturb.Molecule, []perturb.Result) {
	t.Helper()
	mol, err := perturb.NewMolecule(4.0, 100.0, 8.0, 6.0, 1, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	eval, err := perturb.Derive(mol)
	if err != nil {
		t.Fatal(err)
	}
	results, err := eval.EvaluateAll(context.Background(), []perturb.StatePoint{
		{Temperature: 100, Density: 1.5},
		{Temperature: 100, Density: 3.0},
		{Temperature: 200, Density: 6.0},
	})
	if err != nil {
		t.Fatal(err)
	}
	return mol, results
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	mol, results := sampleRun(t)
	runID, err := st.Save("roundtrip", mol, results)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(runID, "roundtrip_") {
		t.Errorf("run id %q missing label prefix", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.ID != runID || meta.Label != "roundtrip" {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Points != len(results) {
		t.Errorf("Points = %d, want %d", meta.Points, len(results))
	}
	if meta.Molecule != mol {
		t.Errorf("molecule changed across round trip: %+v vs %+v", meta.Molecule, mol)
	}

	loaded, err := st.LoadResults(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != len(results) {
		t.Fatalf("got %d results, want %d", len(loaded), len(results))
	}
	for i, r := range loaded {
		// 'g'/-1 formatting round-trips float64 exactly.
		want := results[i]
		if r.Point != want.Point || r.Eta != want.Eta || r.A1 != want.A1 || r.A2 != want.A2 {
			t.Errorf("result %d changed across round trip:\n got %+v\nwant %+v", i, r, want)
		}
	}
}

func TestSave_CountsWarnings(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	mol, results := sampleRun(t)
	results[1].NearClosePacking = true
	results[2].NearClosePacking = true

	runID, err := st.Save("warn", mol, results)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Warnings != 2 {
		t.Errorf("Warnings = %d, want 2", meta.Warnings)
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("fresh store lists %d runs", len(runs))
	}

	mol, results := sampleRun(t)
	if _, err := st.Save("first", mol, results); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save("second", mol, results); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
}

func TestList_MissingDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs from a missing directory", len(runs))
	}
}

func TestLoad_UnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Load("nope_12345678"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, err := st.LoadResults("nope_12345678"); err == nil {
		t.Error("expected error for unknown run results")
	}
}
