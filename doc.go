// Package infoecon simulates a toy economy whose productivity grows as
// uncertainty about the best production method shrinks.
//
// # Overview
//
// Beliefs over N candidate production methods form a probability
// distribution p(ω). Its Shannon entropy measures how little the economy
// knows; the gap to the uniform (maximum-entropy) baseline is the knowledge
// stock. Knowledge raises total factor productivity and with it output and
// wages, and lowers the time price of goods.
//
// # Formulas
//
//	H(p) = -Σ p(ω) ln p(ω)            (0·ln0 := 0)
//	K    = ln N - H(p)                 (knowledge stock, 0 ≤ K ≤ ln N)
//	A    = exp(α·K)                    (TFP, A ≥ 1)
//	Y    = A · K_phys^β · L^(1-β)      (output)
//	w    = (1-β) · A · K_phys^β · L^β  (real wage)
//	π    = exp(-δ·K)                   (time price, 0 < π ≤ 1)
//
// The wage rule keeps the exponent β on L as stated; it is not ∂Y/∂L.
//
// # Turns
//
// An Economy starts uniform, with zero money, on turn 0. Each turn is one of
// two transitions:
//
//   - Research: p(b) ← p(b)·(1+r), then renormalize. b is the hidden best
//     method. Weight on b rises strictly, entropy falls, K → ln N.
//   - Produce: money += Y(p). The distribution is unchanged.
//
// Metric queries never change state and return bit-identical values when
// repeated.
//
// # Quick Start
//
//	econ, err := infoecon.NewEconomy(infoecon.DefaultParams())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	econ.Research()
//	income := econ.Produce()
//
//	fmt.Printf("Turn %d: H=%.4f income=%.2f money=%.2f\n",
//	    econ.Turn(), econ.Entropy(), income, econ.Money())
//
// # Batch runs
//
// Simulate plays a scripted sequence of actions and records a Trajectory;
// Greedy lets the Advisor pick each move for a fixed number of turns:
//
//	actions, _ := infoecon.ParseActions("rrrrp")
//	traj, err := infoecon.Simulate(infoecon.DefaultParams(), actions)
//
//	advice := infoecon.Advise(econ, 20) // RESEARCH or PRODUCE
//
// # Zero-weight lock-in
//
// The research rule is multiplicative: a best method whose weight is
// exactly 0 stays at 0 forever (Economy.Stalled). This cannot happen from
// the uniform start. Params.Smoothing adds an opt-in floor ε to every weight
// before each research step; the default 0 keeps the rule exact.
//
// # Testing
//
// The assertion helpers check the model's invariants over a trajectory:
//
//	func TestMyStrategy(t *testing.T) {
//	    traj, _ := infoecon.Simulate(params, actions)
//	    cfg := infoecon.DefaultAssertionConfig()
//
//	    infoecon.AssertNormalized(t, traj, cfg)
//	    infoecon.AssertEntropyBounds(t, traj, cfg)
//	    infoecon.AssertKnowledgeNonDecreasing(t, traj, cfg)
//	    infoecon.AssertMoneyNonDecreasing(t, traj)
//	    infoecon.AssertTurnAccounting(t, traj)
//	}
//
// # Concurrency
//
// An Economy is single-threaded by contract. The caller serializes actions;
// independent runs each own their Economy and share nothing.
package infoecon
