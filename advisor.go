package infoecon

import "fmt"

// AdviceType is the advisor's recommended next action.
type AdviceType string

const (
	AdviceResearch AdviceType = "RESEARCH" // the best plan still has research turns left
	AdviceProduce  AdviceType = "PRODUCE"  // harvesting now beats refining beliefs
)

// Advice is the advisor's decision and its reasoning.
type Advice struct {
	Type          AdviceType
	Reason        string
	ResearchTurns int     // research turns in the best plan, taken first
	PlanGain      float64 // money the best plan earns over the horizon
	ProduceGain   float64 // money from producing every turn of the horizon
}

// Action maps the advice onto the transition it recommends.
func (a Advice) Action() Action {
	if a.Type == AdviceResearch {
		return ActionResearch
	}
	return ActionProduce
}

// Advise picks the money-maximizing plan for the next horizon turns.
//
// Research only pays through later production, so moving a research turn
// ahead of a produce turn never lowers income. The best plan is therefore
// "research k turns, then produce horizon-k turns", earning
//
//	gain(k) = (horizon - k) · Y(p after k research turns)
//
// Advise scans every k in [0, horizon] and recommends research when the
// best k is positive. Ties go to fewer research turns. Advise does not
// mutate e.
func Advise(e *Economy, horizon int) Advice {
	now := output(e.dist, e.params)
	if horizon <= 1 {
		return Advice{
			Type:        AdviceProduce,
			Reason:      fmt.Sprintf("LAST TURN: nothing left to reinvest in\n  Income now: %.4f", now),
			PlanGain:    now * float64(max(horizon, 0)),
			ProduceGain: now * float64(max(horizon, 0)),
		}
	}

	produceGain := float64(horizon) * now
	bestK, bestGain := 0, produceGain

	dist := e.dist
	for k := 1; k < horizon; k++ {
		if e.params.Smoothing == 0 && dist[e.params.BestMethod] == 0 {
			break
		}
		dist = researched(dist, e.params)
		gain := float64(horizon-k) * output(dist, e.params)
		if gain > bestGain {
			bestK, bestGain = k, gain
		}
	}

	if bestK > 0 {
		return Advice{
			Type: AdviceResearch,
			Reason: fmt.Sprintf(
				"RESEARCH: inquiry pays back within the horizon\n"+
					"  Horizon: %d turns\n"+
					"  Best plan: research %d, then produce %d\n"+
					"  Gain: %.4f vs %.4f producing every turn",
				horizon, bestK, horizon-bestK, bestGain, produceGain,
			),
			ResearchTurns: bestK,
			PlanGain:      bestGain,
			ProduceGain:   produceGain,
		}
	}

	return Advice{
		Type: AdviceProduce,
		Reason: fmt.Sprintf(
			"PRODUCE: horizon too short to recoup research\n"+
				"  Horizon: %d turns\n"+
				"  Output now: %.4f\n"+
				"  Gain: %.4f producing every turn",
			horizon, now, produceGain,
		),
		PlanGain:    produceGain,
		ProduceGain: produceGain,
	}
}

// Greedy plays turns turns on a fresh economy following the advisor.
func Greedy(p Params, turns int) (Trajectory, error) {
	e, err := NewEconomy(p)
	if err != nil {
		return Trajectory{}, err
	}
	return e.PlayAdvised(turns)
}

// PlayAdvised plays turns turns on e, each time following Advise with the
// remaining horizon, and records every step starting with e's current state.
func (e *Economy) PlayAdvised(turns int) (Trajectory, error) {
	if turns < 0 {
		return Trajectory{}, fmt.Errorf("%w: turns=%d must be non-negative", ErrInvalidParameter, turns)
	}

	traj := Trajectory{Params: e.params, Steps: []Step{e.snapshot()}}
	for t := 0; t < turns; t++ {
		step, err := e.Apply(Advise(e, turns-t).Action())
		if err != nil {
			return traj, err
		}
		traj.Steps = append(traj.Steps, step)
	}
	return traj, nil
}
