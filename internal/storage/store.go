// Package storage keeps evaluated runs on disk, one directory per run
// with JSON metadata and a CSV result table.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/mievr/internal/perturb"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one stored evaluation run.
type RunMetadata struct {
	ID        string           `json:"id"`
	Label     string           `json:"label"`
	Timestamp time.Time        `json:"timestamp"`
	Molecule  perturb.Molecule `json:"molecule"`
	Points    int              `json:"points"`
	Warnings  int              `json:"warnings"`
}

// Save writes metadata.json and results.csv for a finished run and
// returns the run ID.
func (s *Store) Save(label string, mol perturb.Molecule, results []perturb.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s", label, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	warnings := 0
	for _, r := range results {
		if r.NearClosePacking {
			warnings++
		}
	}

	meta := RunMetadata{
		ID:        runID,
		Label:     label,
		Timestamp: time.Now(),
		Molecule:  mol,
		Points:    len(results),
		Warnings:  warnings,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "results.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"temperature", "density", "eta", "a1", "a2"}); err != nil {
		return "", err
	}
	for _, r := range results {
		row := []string{
			strconv.FormatFloat(r.Point.Temperature, 'g', -1, 64),
			strconv.FormatFloat(r.Point.Density, 'g', -1, 64),
			strconv.FormatFloat(r.Eta, 'g', -1, 64),
			strconv.FormatFloat(r.A1, 'g', -1, 64),
			strconv.FormatFloat(r.A2, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every stored run, newest last.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

// Load returns the metadata for one run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadResults reads the stored result table back, in stored order.
func (s *Store) LoadResults(runID string) ([]perturb.Result, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "results.csv"))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("run %s: empty result table", runID)
	}

	results := make([]perturb.Result, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 5 {
			return nil, fmt.Errorf("run %s: short result row", runID)
		}
		vals := make([]float64, 5)
		for i := range vals {
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: %w", runID, err)
			}
			vals[i] = v
		}
		results = append(results, perturb.Result{
			Point: perturb.StatePoint{Temperature: vals[0], Density: vals[1]},
			Eta:   vals[2],
			A1:    vals[3],
			A2:    vals[4],
		})
	}
	return results, nil
}
