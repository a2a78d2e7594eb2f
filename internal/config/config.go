package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mievr/internal/perturb"
	"github.com/san-kum/mievr/internal/sweep"
)

// Values is an ordered list of scalars that also accepts a bare scalar
// in YAML. The scalar/list flexibility lives here at the boundary; the
// evaluator always sees a sequence.
type Values []float64

func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var x float64
		if err := node.Decode(&x); err != nil {
			return err
		}
		*v = Values{x}
		return nil
	}
	var xs []float64
	if err := node.Decode(&xs); err != nil {
		return err
	}
	*v = Values(xs)
	return nil
}

// Deck is one declarative input: a molecule, the sweep axes, and the
// output label. Field names mirror the input-file keys.
type Deck struct {
	SegmentDiameter    float64 `yaml:"segment_diameter"`
	PotentialDepth     float64 `yaml:"potential_depth"`
	RepulsiveExponent  float64 `yaml:"repulsive_exponent"`
	AttractiveExponent float64 `yaml:"attractive_exponent"`
	Segments           float64 `yaml:"ms"`
	MolarMass          float64 `yaml:"molar_mass"`
	Temperature        Values  `yaml:"temperature"`
	Density            Values  `yaml:"density"`
	OutputFilename     string  `yaml:"output_filename"`
}

// Load reads and decodes a deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(d.Temperature) == 0 {
		return nil, fmt.Errorf("%s: no temperature given", path)
	}
	if len(d.Density) == 0 {
		return nil, fmt.Errorf("%s: no density given", path)
	}
	return &d, nil
}

// Save writes a deck back out, list-valued axes included.
func Save(path string, d *Deck) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Molecule builds the validated molecule parameters from the deck.
func (d *Deck) Molecule() (perturb.Molecule, error) {
	return perturb.NewMolecule(d.SegmentDiameter, d.PotentialDepth,
		d.RepulsiveExponent, d.AttractiveExponent, d.Segments, d.MolarMass)
}

// Grid returns the sweep axes in deck order.
func (d *Deck) Grid() sweep.Grid {
	return sweep.Grid{
		Temperatures: []float64(d.Temperature),
		Densities:    []float64(d.Density),
	}
}
