package mie

import (
	"errors"
	"math"
	"testing"
)

func TestPrefactor(t *testing.T) {
	tests := []struct {
		lr, la   float64
		expected float64
	}{
		{8, 6, 9.48148148148148},
		{12, 6, 4.0},
		{20, 5.2, 2.1692928510834246},
	}

	for _, tt := range tests {
		got := Prefactor(tt.lr, tt.la)
		if math.Abs(got-tt.expected) > 1e-12*math.Abs(tt.expected) {
			t.Errorf("Prefactor(%g, %g) = %.17g, want %.17g", tt.lr, tt.la, got, tt.expected)
		}
	}
}

func TestNew_ExponentOrder(t *testing.T) {
	cases := [][2]float64{
		{6, 6},   // equal
		{6, 8},   // reversed
		{8, -1},  // non-positive attractive
		{-2, -4}, // both negative
	}

	for _, c := range cases {
		_, err := New(c[1], c[0], 4.0, 100.0)
		if !errors.Is(err, ErrExponentOrder) {
			t.Errorf("New with λr=%g λa=%g: expected ErrExponentOrder, got %v", c[0], c[1], err)
		}
	}
}

func TestNew_ParameterBounds(t *testing.T) {
	if _, err := New(6, 8, 0, 100); !errors.Is(err, ErrParameterBounds) {
		t.Errorf("zero diameter: expected ErrParameterBounds, got %v", err)
	}
	if _, err := New(6, 8, 4, -5); !errors.Is(err, ErrParameterBounds) {
		t.Errorf("negative depth: expected ErrParameterBounds, got %v", err)
	}
}

func TestAlpha(t *testing.T) {
	p, err := New(6, 8, 4.0, 100.0)
	if err != nil {
		t.Fatal(err)
	}

	expected := 1.2641975308641968
	if math.Abs(p.Alpha()-expected) > 1e-12 {
		t.Errorf("Alpha() = %.17g, want %.17g", p.Alpha(), expected)
	}
}

func TestEnergy_WellShape(t *testing.T) {
	p, err := New(6, 8, 4.0, 100.0)
	if err != nil {
		t.Fatal(err)
	}

	// u(σ) = 0 by construction.
	if got := p.Energy(4.0); math.Abs(got) > 1e-10 {
		t.Errorf("Energy(σ) = %g, want 0", got)
	}

	// The well minimum sits at σ·(λr/λa)^(1/(λr−λa)) with depth −ε.
	rmin := 4.0 * math.Pow(8.0/6.0, 1.0/(8.0-6.0))
	if got := p.Energy(rmin); math.Abs(got+100.0) > 1e-9 {
		t.Errorf("Energy(rmin) = %g, want -100", got)
	}

	// Strongly repulsive inside the core.
	if got := p.Energy(2.0); got < 100.0 {
		t.Errorf("Energy(σ/2) = %g, expected strongly positive", got)
	}
}

func TestEffectiveDiameter_ReferenceValues(t *testing.T) {
	p, err := New(6, 8, 4.0, 100.0)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		temperature float64
		expected    float64
	}{
		{50, 3.9188006291192607},
		{100, 3.8640977263029783},
		{200, 3.7807197438030706},
		{400, 3.675432702424537},
	}

	for _, tt := range tests {
		got := p.EffectiveDiameter(tt.temperature)
		if math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("EffectiveDiameter(%g) = %.17g, want %.17g", tt.temperature, got, tt.expected)
		}
	}
}

func TestEffectiveDiameter_Monotonic(t *testing.T) {
	p, err := New(6, 12, 3.7412, 153.36)
	if err != nil {
		t.Fatal(err)
	}

	// Hotter fluids penetrate deeper: d decreases with T, bounded by σ.
	prev := p.SegmentDiameter
	for _, temp := range []float64{50, 100, 200, 400, 800, 1600} {
		d := p.EffectiveDiameter(temp)
		if d <= 0 || d >= p.SegmentDiameter {
			t.Fatalf("EffectiveDiameter(%g) = %g out of (0, σ)", temp, d)
		}
		if d >= prev {
			t.Errorf("EffectiveDiameter not decreasing at T=%g: %g >= %g", temp, d, prev)
		}
		prev = d
	}
}

func TestReducedDiameter(t *testing.T) {
	p, err := New(6, 8, 4.0, 100.0)
	if err != nil {
		t.Fatal(err)
	}

	for _, temp := range []float64{10, 100, 1000} {
		if x0 := p.ReducedDiameter(temp); x0 < 1 {
			t.Errorf("ReducedDiameter(%g) = %g, want >= 1", temp, x0)
		}
	}
}
