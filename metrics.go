package infoecon

import (
	"fmt"
	"math"
)

// DistributionTolerance is the largest |Σp - 1| accepted as normalized.
const DistributionTolerance = 1e-9

// Metrics is every derived quantity of one distribution, computed together.
// Each field is bit-identical to the matching single-metric function.
type Metrics struct {
	Entropy   float64 `yaml:"entropy"`    // H(p) = -Σ p ln p
	Knowledge float64 `yaml:"knowledge"`  // K = H_max - H
	TFP       float64 `yaml:"tfp"`        // A = exp(αK)
	Output    float64 `yaml:"output"`     // Y = A K_phys^β L^(1-β)
	RealWage  float64 `yaml:"real_wage"`  // w = (1-β) A K_phys^β L^β
	TimePrice float64 `yaml:"time_price"` // π = exp(-δK)
}

// Uniform returns the maximum-entropy distribution over n methods.
func Uniform(n int) []float64 {
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = 1.0 / float64(n)
	}
	return dist
}

// ValidateDistribution rejects empty vectors, negative or NaN weights, and
// vectors whose sum is off 1 by more than DistributionTolerance.
func ValidateDistribution(dist []float64) error {
	if len(dist) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidDistribution)
	}

	sum := 0.0
	for i, p := range dist {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: p[%d]=%g is not finite", ErrInvalidDistribution, i, p)
		}
		if p < 0 {
			return fmt.Errorf("%w: p[%d]=%g is negative", ErrInvalidDistribution, i, p)
		}
		sum += p
	}

	if math.Abs(sum-1) > DistributionTolerance {
		return fmt.Errorf("%w: weights sum to %.12f, want 1 ± %g", ErrInvalidDistribution, sum, DistributionTolerance)
	}
	return nil
}

// Entropy returns the Shannon entropy H(p) = -Σ p ln p in nats.
// Zero weights contribute nothing (0·ln0 := 0).
func Entropy(dist []float64) (float64, error) {
	if err := ValidateDistribution(dist); err != nil {
		return 0, err
	}
	return entropy(dist), nil
}

// Knowledge returns the knowledge stock K = H_max - H(p), in [0, ln N].
func Knowledge(dist []float64, p Params) (float64, error) {
	if err := checkShape(dist, p); err != nil {
		return 0, err
	}
	return knowledge(dist, p), nil
}

// TFP returns total factor productivity A = exp(α·K).
func TFP(dist []float64, p Params) (float64, error) {
	if err := checkShape(dist, p); err != nil {
		return 0, err
	}
	return tfp(dist, p), nil
}

// Output returns production Y = A·K_phys^β·L^(1-β).
func Output(dist []float64, p Params) (float64, error) {
	if err := checkShape(dist, p); err != nil {
		return 0, err
	}
	return output(dist, p), nil
}

// RealWage returns w = (1-β)·A·K_phys^β·L^β.
//
// The exponent on L is β, not -β: this is the model's stated wage rule and
// intentionally not the partial derivative ∂Y/∂L.
func RealWage(dist []float64, p Params) (float64, error) {
	if err := checkShape(dist, p); err != nil {
		return 0, err
	}
	return realWage(dist, p), nil
}

// TimePrice returns π = exp(-δ·K), in (0, 1] for δ ≥ 0.
func TimePrice(dist []float64, p Params) (float64, error) {
	if err := checkShape(dist, p); err != nil {
		return 0, err
	}
	return timePrice(dist, p), nil
}

// Measure validates dist once and computes all six metrics.
func Measure(dist []float64, p Params) (Metrics, error) {
	if err := checkShape(dist, p); err != nil {
		return Metrics{}, err
	}
	return measure(dist, p), nil
}

func checkShape(dist []float64, p Params) error {
	if len(dist) != p.NumMethods {
		return fmt.Errorf("%w: %d weights for %d methods", ErrInvalidDistribution, len(dist), p.NumMethods)
	}
	return ValidateDistribution(dist)
}

// Unchecked formulas. Callers guarantee dist is valid for p.

func entropy(dist []float64) float64 {
	h := 0.0
	for _, p := range dist {
		if p > 0 {
			h -= p * math.Log(p)
		}
	}
	return h
}

// knowledgeFloor absorbs the rounding gap between H(uniform) and ln N.
const knowledgeFloor = 1e-12

func knowledge(dist []float64, p Params) float64 {
	k := p.HMax() - entropy(dist)
	if k < knowledgeFloor {
		return 0
	}
	return k
}

func tfp(dist []float64, p Params) float64 {
	return math.Exp(p.Alpha * knowledge(dist, p))
}

func output(dist []float64, p Params) float64 {
	return tfp(dist, p) * math.Pow(p.PhysicalCapital, p.Beta) * math.Pow(p.Labor, 1-p.Beta)
}

func realWage(dist []float64, p Params) float64 {
	return (1 - p.Beta) * tfp(dist, p) * math.Pow(p.PhysicalCapital, p.Beta) * math.Pow(p.Labor, p.Beta)
}

func timePrice(dist []float64, p Params) float64 {
	return math.Exp(-p.Delta * knowledge(dist, p))
}

func measure(dist []float64, p Params) Metrics {
	return Metrics{
		Entropy:   entropy(dist),
		Knowledge: knowledge(dist, p),
		TFP:       tfp(dist, p),
		Output:    output(dist, p),
		RealWage:  realWage(dist, p),
		TimePrice: timePrice(dist, p),
	}
}
