package infoecon

import (
	"errors"
	"math"
	"testing"
)

// TestEntropy_Uniform verifies the uniform distribution has maximum entropy ln N.
func TestEntropy_Uniform(t *testing.T) {
	for _, n := range []int{2, 3, 5, 10, MaxMethods} {
		h, err := Entropy(Uniform(n))
		if err != nil {
			t.Fatalf("N=%d: unexpected error: %v", n, err)
		}

		if math.Abs(h-math.Log(float64(n))) > 1e-12 {
			t.Errorf("N=%d: H = %.15f, want ln N = %.15f", n, h, math.Log(float64(n)))
		}
	}

	t.Logf("✓ H(uniform) = ln N")
}

// TestEntropy_OneHot verifies a certain belief has zero entropy.
func TestEntropy_OneHot(t *testing.T) {
	for i := 0; i < 5; i++ {
		dist := make([]float64, 5)
		dist[i] = 1

		h, err := Entropy(dist)
		if err != nil {
			t.Fatalf("one-hot at %d: %v", i, err)
		}
		if h != 0 {
			t.Errorf("one-hot at %d: H = %g, want 0", i, h)
		}
	}
}

// TestEntropy_ZeroWeightsContributeNothing checks the 0·ln0 := 0 convention.
func TestEntropy_ZeroWeightsContributeNothing(t *testing.T) {
	h, err := Entropy([]float64{0.5, 0, 0.5, 0, 0})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(h-math.Ln2) > 1e-15 {
		t.Errorf("H = %.15f, want ln 2 = %.15f", h, math.Ln2)
	}
}

// TestEntropy_Bounds verifies 0 ≤ H ≤ ln N with equality only at the extremes.
func TestEntropy_Bounds(t *testing.T) {
	tests := []struct {
		name string
		dist []float64
	}{
		{"Skewed", []float64{0.6, 0.1, 0.1, 0.1, 0.1}},
		{"Two methods left", []float64{0.5, 0.5, 0, 0, 0}},
		{"Near one-hot", []float64{0.999, 0.00025, 0.00025, 0.00025, 0.00025}},
		{"Near uniform", []float64{0.2001, 0.1999, 0.2, 0.2, 0.2}},
	}

	hMax := math.Log(5)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Entropy(tt.dist)
			if err != nil {
				t.Fatal(err)
			}

			if !(h > 0) {
				t.Errorf("H = %g, want > 0 for a non one-hot vector", h)
			}
			if !(h < hMax) {
				t.Errorf("H = %.15f, want < ln 5 = %.15f for a non-uniform vector", h, hMax)
			}
		})
	}
}

// TestValidateDistribution_Rejects covers every InvalidDistribution cause.
func TestValidateDistribution_Rejects(t *testing.T) {
	tests := []struct {
		name string
		dist []float64
	}{
		{"Empty", nil},
		{"Negative weight", []float64{1.1, -0.1}},
		{"NaN weight", []float64{math.NaN(), 1}},
		{"Infinite weight", []float64{math.Inf(1), 0}},
		{"Sums below one", []float64{0.2, 0.2, 0.2, 0.2, 0.1}},
		{"Sums above one", []float64{0.5, 0.5, 0.1}},
		{"Just outside tolerance", []float64{0.5, 0.5 + 1e-8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDistribution(tt.dist)
			if !errors.Is(err, ErrInvalidDistribution) {
				t.Errorf("got %v, want ErrInvalidDistribution", err)
			}

			if _, err := Entropy(tt.dist); !errors.Is(err, ErrInvalidDistribution) {
				t.Errorf("Entropy: got %v, want ErrInvalidDistribution", err)
			}
		})
	}
}

// TestValidateDistribution_AcceptsWithinTolerance allows float noise on the sum.
func TestValidateDistribution_AcceptsWithinTolerance(t *testing.T) {
	if err := ValidateDistribution([]float64{0.5, 0.5 + 1e-10}); err != nil {
		t.Errorf("rejected sum within tolerance: %v", err)
	}
}

// TestMetrics_ShapeMismatch rejects a vector whose length differs from N.
func TestMetrics_ShapeMismatch(t *testing.T) {
	p := DefaultParams()
	dist := Uniform(3)

	checks := map[string]func() error{
		"Knowledge": func() error { _, err := Knowledge(dist, p); return err },
		"TFP":       func() error { _, err := TFP(dist, p); return err },
		"Output":    func() error { _, err := Output(dist, p); return err },
		"RealWage":  func() error { _, err := RealWage(dist, p); return err },
		"TimePrice": func() error { _, err := TimePrice(dist, p); return err },
		"Measure":   func() error { _, err := Measure(dist, p); return err },
	}
	for name, check := range checks {
		if err := check(); !errors.Is(err, ErrInvalidDistribution) {
			t.Errorf("%s: got %v, want ErrInvalidDistribution", name, err)
		}
	}
}

// TestMetrics_ZeroKnowledge verifies the uniform baseline: K=0, A=1, π=1.
func TestMetrics_ZeroKnowledge(t *testing.T) {
	p := DefaultParams()

	m, err := Measure(Uniform(p.NumMethods), p)
	if err != nil {
		t.Fatal(err)
	}

	if m.Knowledge != 0 {
		t.Errorf("K = %g, want 0", m.Knowledge)
	}
	if m.TFP != 1 {
		t.Errorf("A = %g, want 1", m.TFP)
	}
	if m.TimePrice != 1 {
		t.Errorf("π = %g, want 1", m.TimePrice)
	}
	if math.Abs(m.Output-10) > 1e-12 {
		t.Errorf("Y = %.15f, want 10", m.Output)
	}
	if math.Abs(m.RealWage-5) > 1e-12 {
		t.Errorf("w = %.15f, want 5", m.RealWage)
	}

	t.Logf("✓ Uniform: K=%.4f A=%.4f Y=%.4f w=%.4f π=%.4f",
		m.Knowledge, m.TFP, m.Output, m.RealWage, m.TimePrice)
}

// TestMetrics_FullKnowledge verifies the one-hot ceiling: K = ln N.
func TestMetrics_FullKnowledge(t *testing.T) {
	p := DefaultParams()
	dist := []float64{1, 0, 0, 0, 0}

	m, err := Measure(dist, p)
	if err != nil {
		t.Fatal(err)
	}

	hMax := math.Log(5)
	if math.Abs(m.Knowledge-hMax) > 1e-15 {
		t.Errorf("K = %.15f, want ln 5", m.Knowledge)
	}
	if want := math.Exp(p.Alpha * hMax); math.Abs(m.TFP-want) > 1e-12 {
		t.Errorf("A = %.12f, want exp(α ln 5) = %.12f", m.TFP, want)
	}
	if want := math.Exp(-p.Delta * hMax); math.Abs(m.TimePrice-want) > 1e-12 {
		t.Errorf("π = %.12f, want exp(-δ ln 5) = %.12f", m.TimePrice, want)
	}
}

// TestRealWage_ExponentPreserved pins the wage rule's β exponent on L,
// which differs from output's (1-β).
func TestRealWage_ExponentPreserved(t *testing.T) {
	p := DefaultParams()
	p.Beta = 0.25
	p.PhysicalCapital = 16
	p.Labor = 81
	dist := Uniform(p.NumMethods)

	y, err := Output(dist, p)
	if err != nil {
		t.Fatal(err)
	}
	w, err := RealWage(dist, p)
	if err != nil {
		t.Fatal(err)
	}

	// Y = 16^0.25 · 81^0.75 = 2 · 27
	if math.Abs(y-54) > 1e-9 {
		t.Errorf("Y = %.12f, want 54", y)
	}
	// w = 0.75 · 16^0.25 · 81^0.25 = 0.75 · 2 · 3
	if math.Abs(w-4.5) > 1e-9 {
		t.Errorf("w = %.12f, want 4.5", w)
	}
}

// TestMeasure_MatchesSingleMetrics requires bit-identical agreement.
func TestMeasure_MatchesSingleMetrics(t *testing.T) {
	p := DefaultParams()
	dist := []float64{0.4, 0.3, 0.15, 0.1, 0.05}

	m, err := Measure(dist, p)
	if err != nil {
		t.Fatal(err)
	}

	h, _ := Entropy(dist)
	k, _ := Knowledge(dist, p)
	a, _ := TFP(dist, p)
	y, _ := Output(dist, p)
	w, _ := RealWage(dist, p)
	pi, _ := TimePrice(dist, p)

	got := []float64{m.Entropy, m.Knowledge, m.TFP, m.Output, m.RealWage, m.TimePrice}
	want := []float64{h, k, a, y, w, pi}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("field %d: Measure = %v, single = %v", i, got[i], want[i])
		}
	}
}

// TestMetrics_StrictlyMonotoneInKnowledge compares a low- and high-knowledge vector.
func TestMetrics_StrictlyMonotoneInKnowledge(t *testing.T) {
	p := DefaultParams()

	low, err := Measure([]float64{0.3, 0.2, 0.2, 0.2, 0.1}, p)
	if err != nil {
		t.Fatal(err)
	}
	high, err := Measure([]float64{0.8, 0.05, 0.05, 0.05, 0.05}, p)
	if err != nil {
		t.Fatal(err)
	}

	if !(high.Knowledge > low.Knowledge) {
		t.Fatalf("setup: K %.4f not above %.4f", high.Knowledge, low.Knowledge)
	}
	if !(high.TFP > low.TFP) {
		t.Errorf("A not increasing: %.6f → %.6f", low.TFP, high.TFP)
	}
	if !(high.Output > low.Output) {
		t.Errorf("Y not increasing: %.6f → %.6f", low.Output, high.Output)
	}
	if !(high.RealWage > low.RealWage) {
		t.Errorf("w not increasing: %.6f → %.6f", low.RealWage, high.RealWage)
	}
	if !(high.TimePrice < low.TimePrice) {
		t.Errorf("π not decreasing: %.6f → %.6f", low.TimePrice, high.TimePrice)
	}
}
