package infoecon

import (
	"fmt"
	"math"
	"math/rand"
)

// MaxMethods caps the number of candidate production methods.
// The simulation is a toy; anything wider is a configuration mistake.
const MaxMethods = 64

// Params holds the model constants for one run.
// They are fixed at construction and never mutated by a transition.
type Params struct {
	NumMethods      int     `yaml:"num_methods" env:"INFOECON_NUM_METHODS"`           // N: candidate methods (finite Ω)
	ResearchRate    float64 `yaml:"research_rate" env:"INFOECON_RESEARCH_RATE"`       // r: growth of the best weight per research turn
	Alpha           float64 `yaml:"alpha" env:"INFOECON_ALPHA"`                       // α: TFP sensitivity to knowledge
	Delta           float64 `yaml:"delta" env:"INFOECON_DELTA"`                       // δ: time-price sensitivity to knowledge
	Beta            float64 `yaml:"beta" env:"INFOECON_BETA"`                         // β: capital exponent, 0 < β < 1
	PhysicalCapital float64 `yaml:"physical_capital" env:"INFOECON_PHYSICAL_CAPITAL"` // K_phys > 0
	Labor           float64 `yaml:"labor" env:"INFOECON_LABOR"`                       // L > 0
	BestMethod      int     `yaml:"best_method" env:"INFOECON_BEST_METHOD"`           // hidden target index in [0, N)
	Smoothing       float64 `yaml:"smoothing" env:"INFOECON_SMOOTHING"`               // additive floor before research; 0 = exact rule
}

// DefaultParams returns the reference economy: five methods, 5% research
// rate, unit TFP sensitivity, δ = 0.7, β = 0.5, K_phys = L = 10, best = 0.
func DefaultParams() Params {
	return Params{
		NumMethods:      5,
		ResearchRate:    0.05,
		Alpha:           1.0,
		Delta:           0.7,
		Beta:            0.5,
		PhysicalCapital: 10.0,
		Labor:           10.0,
		BestMethod:      0,
		Smoothing:       0,
	}
}

// HMax is the entropy of the uniform distribution over N methods: ln(N).
func (p Params) HMax() float64 {
	return math.Log(float64(p.NumMethods))
}

// Validate checks every parameter against its admissible range.
// The returned error wraps ErrInvalidParameter.
func (p Params) Validate() error {
	if p.NumMethods < 2 || p.NumMethods > MaxMethods {
		return fmt.Errorf("%w: num_methods=%d outside [2, %d]", ErrInvalidParameter, p.NumMethods, MaxMethods)
	}
	if !(p.ResearchRate > 0) || math.IsInf(p.ResearchRate, 0) {
		return fmt.Errorf("%w: research_rate=%g must be positive and finite", ErrInvalidParameter, p.ResearchRate)
	}
	if !(p.Beta > 0 && p.Beta < 1) {
		return fmt.Errorf("%w: beta=%g outside (0, 1)", ErrInvalidParameter, p.Beta)
	}
	if !(p.PhysicalCapital > 0) || math.IsInf(p.PhysicalCapital, 0) {
		return fmt.Errorf("%w: physical_capital=%g must be positive and finite", ErrInvalidParameter, p.PhysicalCapital)
	}
	if !(p.Labor > 0) || math.IsInf(p.Labor, 0) {
		return fmt.Errorf("%w: labor=%g must be positive and finite", ErrInvalidParameter, p.Labor)
	}
	if p.BestMethod < 0 || p.BestMethod >= p.NumMethods {
		return fmt.Errorf("%w: best_method=%d outside [0, %d)", ErrInvalidParameter, p.BestMethod, p.NumMethods)
	}
	if isNonFinite(p.Alpha) {
		return fmt.Errorf("%w: alpha=%g must be finite", ErrInvalidParameter, p.Alpha)
	}
	if isNonFinite(p.Delta) {
		return fmt.Errorf("%w: delta=%g must be finite", ErrInvalidParameter, p.Delta)
	}
	if !(p.Smoothing >= 0) || math.IsInf(p.Smoothing, 0) {
		return fmt.Errorf("%w: smoothing=%g must be non-negative and finite", ErrInvalidParameter, p.Smoothing)
	}
	return nil
}

// RandomBestMethod draws a hidden best method index in [0, n).
// The same seed always yields the same index.
func RandomBestMethod(n int, seed int64) int {
	if n <= 1 {
		return 0
	}
	return rand.New(rand.NewSource(seed)).Intn(n)
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
