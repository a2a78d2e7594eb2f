package config

import "sort"

// Presets are ready-to-run decks for a few reference fluids. Parameter
// sets are coarse-grained Mie fits from the SAFT-VR Mie literature;
// density lists span dilute gas up to compressed liquid.
var presets = map[string]*Deck{
	"reference": {
		SegmentDiameter:    4.0,
		PotentialDepth:     100.0,
		RepulsiveExponent:  8.0,
		AttractiveExponent: 6.0,
		Segments:           1,
		MolarMass:          1.0,
		Temperature:        Values{100.0},
		Density:            Values{1.2855738727930046, 3.0, 6.0, 12.855738727930046},
		OutputFilename:     "reference_terms",
	},
	"methane": {
		SegmentDiameter:    3.7412,
		PotentialDepth:     153.36,
		RepulsiveExponent:  12.65,
		AttractiveExponent: 6.0,
		Segments:           1,
		MolarMass:          16.04,
		Temperature:        Values{150.0, 200.0, 300.0},
		Density:            Values{1.0, 10.0, 50.0, 100.0, 200.0},
		OutputFilename:     "methane_terms",
	},
	"carbon_dioxide": {
		SegmentDiameter:    3.1916,
		PotentialDepth:     231.88,
		RepulsiveExponent:  27.557,
		AttractiveExponent: 5.1646,
		Segments:           1.5,
		MolarMass:          44.01,
		Temperature:        Values{250.0, 300.0, 350.0},
		Density:            Values{10.0, 100.0, 400.0, 800.0},
		OutputFilename:     "co2_terms",
	},
	"decane": {
		SegmentDiameter:    4.589,
		PotentialDepth:     400.79,
		RepulsiveExponent:  18.885,
		AttractiveExponent: 6.0,
		Segments:           2.9976,
		MolarMass:          142.28,
		Temperature:        Values{350.0, 450.0},
		Density:            Values{500.0, 600.0, 700.0},
		OutputFilename:     "decane_terms",
	},
}

// GetPreset returns a copy of the named preset deck, or nil.
func GetPreset(name string) *Deck {
	d, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *d
	cp.Temperature = append(Values(nil), d.Temperature...)
	cp.Density = append(Values(nil), d.Density...)
	return &cp
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
