package mie

import "math"

// Fixed 10-node Gauss-Legendre rule on [-1, 1]. A fixed-order rule keeps
// the Barker-Henderson diameter a closed-form weighted sum: no adaptive
// refinement, identical node placement at every state point, so results
// are bit-for-bit reproducible.
var (
	gaussNodes = [10]float64{
		-0.9739065285171717, -0.8650633666889845, -0.6794095682990244,
		-0.4333953941292472, -0.1488743389816312, 0.1488743389816312,
		0.4333953941292472, 0.6794095682990244, 0.8650633666889845,
		0.9739065285171717,
	}
	gaussWeights = [10]float64{
		0.0666713443086881, 0.1494513491505806, 0.2190863625159820,
		0.2692667193099963, 0.2955242247147529, 0.2955242247147529,
		0.2692667193099963, 0.2190863625159820, 0.1494513491505806,
		0.0666713443086881,
	}
)

// EffectiveDiameter returns the Barker-Henderson effective hard-sphere
// diameter in Å at temperature T (K):
//
//	d(T) = ∫₀^σ (1 − exp(−u(r)/kT)) dr
//
// The integrand is 1 at r=0 (hard core) and 0 at r=σ; the Gauss-Legendre
// nodes never touch either endpoint, so no special casing is needed.
func (p *Potential) EffectiveDiameter(temperature float64) float64 {
	half := 0.5 * p.SegmentDiameter
	sum := 0.0
	for i, x := range gaussNodes {
		r := half * (x + 1)
		sum += gaussWeights[i] * (1 - math.Exp(-p.Energy(r)/temperature))
	}
	return half * sum
}

// ReducedDiameter returns x0 = σ/d(T), always ≥ 1 for T > 0.
func (p *Potential) ReducedDiameter(temperature float64) float64 {
	return p.SegmentDiameter / p.EffectiveDiameter(temperature)
}
