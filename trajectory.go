package infoecon

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Action is one player decision. Each action consumes exactly one turn.
type Action string

const (
	ActionResearch Action = "research" // refine beliefs toward the best method
	ActionProduce  Action = "produce"  // harvest current output into money
)

// Step records the economy right after one action.
// Step 0 of a trajectory is the initial state and has an empty Action.
type Step struct {
	Turn         int       `yaml:"turn"`
	Action       Action    `yaml:"action,omitempty"`
	Income       float64   `yaml:"income"`
	Money        float64   `yaml:"money"`
	Metrics      Metrics   `yaml:"metrics"`
	Distribution []float64 `yaml:"distribution"`
}

// Trajectory is the full record of one simulated run.
type Trajectory struct {
	Params Params `yaml:"params"`
	Steps  []Step `yaml:"steps"`
}

// Final returns the last recorded step.
func (t Trajectory) Final() Step {
	if len(t.Steps) == 0 {
		return Step{}
	}
	return t.Steps[len(t.Steps)-1]
}

// ParseActions reads an action script.
//
// Tokens are separated by commas or whitespace. A token is either a full
// word ("research", "produce") or a run of single letters ("rrp"), in any
// case. An empty script yields no actions.
func ParseActions(script string) ([]Action, error) {
	tokens := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	actions := make([]Action, 0, len(script))
	for _, tok := range tokens {
		tok = strings.ToLower(tok)
		switch tok {
		case string(ActionResearch):
			actions = append(actions, ActionResearch)
			continue
		case string(ActionProduce):
			actions = append(actions, ActionProduce)
			continue
		}

		for i, r := range tok {
			switch r {
			case 'r':
				actions = append(actions, ActionResearch)
			case 'p':
				actions = append(actions, ActionProduce)
			default:
				return nil, fmt.Errorf("%w: %q (character %d of %q)", ErrUnknownAction, r, i, tok)
			}
		}
	}
	return actions, nil
}

// Apply performs one action and returns the resulting step.
func (e *Economy) Apply(a Action) (Step, error) {
	var income float64
	switch a {
	case ActionResearch:
		e.Research()
	case ActionProduce:
		income = e.Produce()
	default:
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}

	step := e.snapshot()
	step.Action = a
	step.Income = income
	return step, nil
}

func (e *Economy) snapshot() Step {
	return Step{
		Turn:         e.turn,
		Money:        e.money,
		Metrics:      e.Metrics(),
		Distribution: e.Distribution(),
	}
}

// Simulate plays actions on a fresh economy and records every step,
// starting with the initial state.
func Simulate(p Params, actions []Action) (Trajectory, error) {
	e, err := NewEconomy(p)
	if err != nil {
		return Trajectory{}, err
	}
	return e.Play(actions)
}

// Play applies actions in order to e and records every step, starting with
// e's current state. On error the steps recorded so far are returned.
func (e *Economy) Play(actions []Action) (Trajectory, error) {
	traj := Trajectory{
		Params: e.params,
		Steps:  make([]Step, 0, len(actions)+1),
	}
	traj.Steps = append(traj.Steps, e.snapshot())

	for i, a := range actions {
		step, err := e.Apply(a)
		if err != nil {
			return traj, fmt.Errorf("action %d: %w", i, err)
		}
		traj.Steps = append(traj.Steps, step)
	}
	return traj, nil
}

// ResearchUntil researches until the best method's weight exceeds threshold.
// It returns the number of research turns spent, or (-1, false) when
// maxTurns were spent without getting there.
func ResearchUntil(e *Economy, threshold float64, maxTurns int) (int, bool) {
	b := e.params.BestMethod
	turns := 0
	for e.dist[b] <= threshold {
		if turns >= maxTurns || e.Stalled() {
			return -1, false
		}
		e.Research()
		turns++
	}
	return turns, true
}

// TurnsToConverge predicts, without simulating, how many research turns take
// the uniform start past threshold on the best method.
//
// After k turns the best weight is q(1+r)^k / (q(1+r)^k + 1 - q) with
// q = 1/N, so k is the smallest integer with (1+r)^k > θ(1-q) / (q(1-θ)).
// Smoothing breaks the closed form and is rejected.
func TurnsToConverge(p Params, threshold float64) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.Smoothing != 0 {
		return 0, fmt.Errorf("%w: closed form requires smoothing=0, got %g", ErrInvalidParameter, p.Smoothing)
	}
	if !(threshold < 1) {
		return 0, fmt.Errorf("%w: threshold=%g is never exceeded", ErrInvalidParameter, threshold)
	}

	q := 1.0 / float64(p.NumMethods)
	share := func(k int) float64 {
		g := q * math.Pow(1+p.ResearchRate, float64(k))
		return g / (g + 1 - q)
	}
	if share(0) > threshold {
		return 0, nil
	}

	target := threshold * (1 - q) / (q * (1 - threshold))
	k := int(math.Ceil(math.Log(target) / math.Log1p(p.ResearchRate)))
	if k < 0 {
		k = 0
	}
	// Guard the boundary against rounding in the logarithms.
	for share(k) <= threshold {
		k++
	}
	for k > 0 && share(k-1) > threshold {
		k--
	}
	return k, nil
}
