package infoecon

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for the trajectory invariants.
type AssertionConfig struct {
	// Maximum |Σp - 1| per step
	SumTolerance float64

	// Slack allowed on the entropy bounds [0, ln N] and on monotone series
	Epsilon float64
}

// DefaultAssertionConfig returns the tolerances the model guarantees.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		SumTolerance: DistributionTolerance,
		Epsilon:      1e-12,
	}
}

// AssertNormalized verifies every step's weights are non-negative and sum to 1.
func AssertNormalized(t *testing.T, traj Trajectory, cfg AssertionConfig) {
	t.Helper()

	for _, s := range traj.Steps {
		sum := 0.0
		for i, p := range s.Distribution {
			if p < 0 {
				t.Errorf("Turn %d: p[%d] = %g is negative", s.Turn, i, p)
			}
			sum += p
		}
		if math.Abs(sum-1) > cfg.SumTolerance {
			t.Errorf("Turn %d: Σp = %.15f (tolerance: %g)", s.Turn, sum, cfg.SumTolerance)
		}
	}

	t.Logf("✓ Normalized across %d steps", len(traj.Steps))
}

// AssertEntropyBounds verifies 0 ≤ H ≤ ln N at every step.
func AssertEntropyBounds(t *testing.T, traj Trajectory, cfg AssertionConfig) {
	t.Helper()

	hMax := traj.Params.HMax()
	for _, s := range traj.Steps {
		h := s.Metrics.Entropy
		if h < -cfg.Epsilon || h > hMax+cfg.Epsilon {
			t.Errorf("Turn %d: H = %.12f outside [0, %.12f]", s.Turn, h, hMax)
		}
	}

	t.Logf("✓ Entropy within [0, ln %d = %.4f]", traj.Params.NumMethods, hMax)
}

// AssertKnowledgeNonDecreasing verifies research never loses knowledge:
// K, A and Y never fall and π never rises from one step to the next.
// Production leaves all four unchanged, so the check covers whole runs.
func AssertKnowledgeNonDecreasing(t *testing.T, traj Trajectory, cfg AssertionConfig) {
	t.Helper()

	for i := 1; i < len(traj.Steps); i++ {
		prev, cur := traj.Steps[i-1].Metrics, traj.Steps[i].Metrics
		turn := traj.Steps[i].Turn

		if cur.Knowledge < prev.Knowledge-cfg.Epsilon {
			t.Errorf("Turn %d: knowledge fell %.12f → %.12f", turn, prev.Knowledge, cur.Knowledge)
		}
		if cur.TFP < prev.TFP-cfg.Epsilon {
			t.Errorf("Turn %d: TFP fell %.12f → %.12f", turn, prev.TFP, cur.TFP)
		}
		if cur.Output < prev.Output-cfg.Epsilon {
			t.Errorf("Turn %d: output fell %.12f → %.12f", turn, prev.Output, cur.Output)
		}
		if cur.TimePrice > prev.TimePrice+cfg.Epsilon {
			t.Errorf("Turn %d: time price rose %.12f → %.12f", turn, prev.TimePrice, cur.TimePrice)
		}
	}

	final := traj.Final().Metrics
	t.Logf("✓ Knowledge non-decreasing: K = %.4f, A = %.4f, π = %.4f", final.Knowledge, final.TFP, final.TimePrice)
}

// AssertMoneyNonDecreasing verifies money never falls and every produce step
// strictly raises it.
func AssertMoneyNonDecreasing(t *testing.T, traj Trajectory) {
	t.Helper()

	for i := 1; i < len(traj.Steps); i++ {
		prev, cur := traj.Steps[i-1], traj.Steps[i]
		if cur.Money < prev.Money {
			t.Errorf("Turn %d: money fell %.4f → %.4f", cur.Turn, prev.Money, cur.Money)
		}
		if cur.Action == ActionProduce && !(cur.Money > prev.Money) {
			t.Errorf("Turn %d: produce did not raise money (%.4f → %.4f)", cur.Turn, prev.Money, cur.Money)
		}
	}

	t.Logf("✓ Money non-decreasing: final %.2f", traj.Final().Money)
}

// AssertTurnAccounting verifies each recorded action advanced the turn by one.
func AssertTurnAccounting(t *testing.T, traj Trajectory) {
	t.Helper()

	for i := 1; i < len(traj.Steps); i++ {
		if got, want := traj.Steps[i].Turn, traj.Steps[i-1].Turn+1; got != want {
			t.Errorf("Step %d: turn = %d, want %d", i, got, want)
		}
	}

	t.Logf("✓ Turn accounting: %d actions, final turn %d", len(traj.Steps)-1, traj.Final().Turn)
}
