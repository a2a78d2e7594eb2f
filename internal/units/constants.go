package units

// Physical constants and conversion factors used throughout the
// perturbation pipeline. Values match the reference parameterization.
const (
	// Boltzmann is the Boltzmann constant in J/K.
	Boltzmann = 1.3806452e-23

	// Avogadro is the Avogadro number in 1/mol.
	Avogadro = 6.023e23

	// Angstrom is one angstrom in meters.
	Angstrom = 1e-10

	// GramsPerKilogram converts kg to g.
	GramsPerKilogram = 1e3
)

// SegmentDensity converts a mass density in kg/m³ to a segment number
// density in segments/Å³ for a chain fluid with the given molar mass
// (g/mol) and segments per chain.
func SegmentDensity(massDensity, molarMass, segments float64) float64 {
	molPerM3 := massDensity * GramsPerKilogram / molarMass
	segPerM3 := molPerM3 * Avogadro * segments
	return segPerM3 * Angstrom * Angstrom * Angstrom
}
