// Package hsref implements the hard-sphere reference fluid used by the
// Mie perturbation expansion: Carnahan-Starling packing and
// compressibility, the Sutherland first-order terms, and the
// fluctuation-correction coefficients.
package hsref

import "math"

// ClosePackingEta is the packing fraction of close-packed spheres,
// π/(3√2). Evaluations above this are outside the physical domain and
// get flagged, not rejected.
const ClosePackingEta = math.Pi / (3 * math.Sqrt2)

// phi holds the rational-fit coefficients for the correction functions
// f1..f6(α). Row n is the α^n coefficient (n=0..3 numerator, n=4..6
// denominator); column k-1 belongs to fk.
var phi = [7][6]float64{
	{7.5365557, -359.44, 1550.9, -1.19932, -1911.28, 9236.9},
	{-37.60463, 1825.6, -5070.1, 9.063632, 21390.175, -129430},
	{71.745953, -3168, 6534.6, -17.94482, -51320.7, 357230},
	{-46.83552, 1884.2, -3288.7, 11.34027, 37064.54, -315530},
	{-2.467982, -0.82376, -2.7171, 20.52142, 1103.742, 1390.2},
	{-0.50272, -3.1935, 2.0883, -56.6377, -3264.61, -4518.2},
	{8.0956883, 3.7090, 0, 40.53683, 2556.181, 4241.6},
}

// PackingFraction returns η = π·ρs·σ³/6 for a segment number density in
// segments/Å³ and a segment diameter in Å.
func PackingFraction(segmentDensity, segmentDiameter float64) float64 {
	return segmentDensity * math.Pi * segmentDiameter * segmentDiameter * segmentDiameter / 6
}

// FreeEnergy returns the Carnahan-Starling residual Helmholtz energy per
// segment, a_hs/kT = (4η − 3η²)/(1 − η)².
func FreeEnergy(eta float64) float64 {
	return (4*eta - 3*eta*eta) / ((1 - eta) * (1 - eta))
}

// Compressibility returns the isothermal hard-sphere compressibility
// factor Khs(η) = (1−η)⁴ / (1 + 4η + 4η² − 4η³ + η⁴). Khs(0) = 1 and
// Khs vanishes toward close packing.
func Compressibility(eta float64) float64 {
	num := 1 - eta
	num *= num
	num *= num
	den := 1 + 4*eta + 4*eta*eta - 4*eta*eta*eta + eta*eta*eta*eta
	return num / den
}

// FCoefficient evaluates fk(α) for k in 1..6 as the rational fit
// Σ φ[n][k]·αⁿ (n=0..3) over 1 + Σ φ[n][k]·α^(n−3) (n=4..6).
func FCoefficient(k int, alpha float64) float64 {
	num := 0.0
	pow := 1.0
	for n := 0; n <= 3; n++ {
		num += phi[n][k-1] * pow
		pow *= alpha
	}
	den := 1.0
	pow = alpha
	for n := 4; n <= 6; n++ {
		den += phi[n][k-1] * pow
		pow *= alpha
	}
	return num / den
}

// ChainCorrection returns the fluctuation correction χ entering the
// second-order term, χ = f1·ζx + f2·ζx⁵ + f3·ζx⁸ with ζx = η·x0³.
// Zero at zero density.
func ChainCorrection(alpha, eta, x0 float64) float64 {
	zx := eta * x0 * x0 * x0
	zx5 := zx * zx * zx * zx * zx
	return FCoefficient(1, alpha)*zx +
		FCoefficient(2, alpha)*zx5 +
		FCoefficient(3, alpha)*zx5*zx*zx*zx
}
