package infoecon

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// State is a read-only snapshot of an Economy: the method weights, the
// accumulated money and the number of turns played.
type State struct {
	Distribution []float64 `yaml:"distribution"`
	Money        float64   `yaml:"money"`
	Turn         int       `yaml:"turn"`
}

// Economy owns the single mutable simulation state of one run.
//
// Only Research and Produce change it; every query is side-effect free.
// An Economy is not safe for concurrent use: the caller serializes actions,
// one transition at a time.
type Economy struct {
	params Params
	dist   []float64
	money  float64
	turn   int
	logger *slog.Logger
}

// NewEconomy validates p and returns an economy at the uniform start with
// zero money on turn 0.
func NewEconomy(p Params) (*Economy, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Economy{
		params: p,
		dist:   Uniform(p.NumMethods),
		logger: discardLogger(),
	}, nil
}

// Restore rebuilds an economy from a previously taken State.
// The distribution must be valid for p and money/turn non-negative;
// nothing is repaired.
func Restore(p Params, s State) (*Economy, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := checkShape(s.Distribution, p); err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	if !(s.Money >= 0) || isNonFinite(s.Money) {
		return nil, fmt.Errorf("restore: %w: money=%g must be non-negative", ErrInvalidParameter, s.Money)
	}
	if s.Turn < 0 {
		return nil, fmt.Errorf("restore: %w: turn=%d must be non-negative", ErrInvalidParameter, s.Turn)
	}

	dist := make([]float64, len(s.Distribution))
	copy(dist, s.Distribution)
	return &Economy{
		params: p,
		dist:   dist,
		money:  s.Money,
		turn:   s.Turn,
		logger: discardLogger(),
	}, nil
}

// SetLogger routes transition logs to l. A nil logger silences them.
func (e *Economy) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	e.logger = l
}

// Research spends one turn nudging the weights toward the best method:
// p[b] grows by (1 + r) and the vector is renormalized. Money is untouched.
//
// With Smoothing ε > 0 every weight first gains ε, so a best method whose
// weight reached exactly zero can recover.
func (e *Economy) Research() {
	e.dist = researched(e.dist, e.params)
	e.turn++

	e.logger.LogAttrs(context.Background(), slog.LevelDebug, "research",
		slog.Int("turn", e.turn),
		slog.Float64("best_weight", e.dist[e.params.BestMethod]),
		slog.Float64("entropy", entropy(e.dist)),
	)
}

// researched applies one research update to a copy of dist.
func researched(dist []float64, p Params) []float64 {
	updated := make([]float64, len(dist))
	copy(updated, dist)
	if eps := p.Smoothing; eps > 0 {
		for i := range updated {
			updated[i] += eps
		}
	}
	updated[p.BestMethod] *= 1 + p.ResearchRate

	sum := 0.0
	for _, w := range updated {
		sum += w
	}
	for i := range updated {
		updated[i] /= sum
	}
	return updated
}

// Produce spends one turn harvesting current output into money and returns
// the income. The distribution is untouched.
func (e *Economy) Produce() float64 {
	income := output(e.dist, e.params)
	e.money += income
	e.turn++

	e.logger.LogAttrs(context.Background(), slog.LevelDebug, "produce",
		slog.Int("turn", e.turn),
		slog.Float64("income", income),
		slog.Float64("money", e.money),
	)
	return income
}

// Stalled reports whether research can no longer move the distribution:
// the best method carries zero weight and no smoothing is configured.
// This is unreachable from the uniform start.
func (e *Economy) Stalled() bool {
	return e.dist[e.params.BestMethod] == 0 && e.params.Smoothing == 0
}

// Params returns the fixed model parameters.
func (e *Economy) Params() Params { return e.params }

// Turn returns the number of transitions applied so far.
func (e *Economy) Turn() int { return e.turn }

// Money returns the accumulated income.
func (e *Economy) Money() float64 { return e.money }

// Distribution returns a copy of the current method weights.
func (e *Economy) Distribution() []float64 {
	out := make([]float64, len(e.dist))
	copy(out, e.dist)
	return out
}

// State returns a snapshot suitable for Restore.
func (e *Economy) State() State {
	return State{
		Distribution: e.Distribution(),
		Money:        e.money,
		Turn:         e.turn,
	}
}

func (e *Economy) Entropy() float64   { return entropy(e.dist) }
func (e *Economy) Knowledge() float64 { return knowledge(e.dist, e.params) }
func (e *Economy) TFP() float64       { return tfp(e.dist, e.params) }
func (e *Economy) Output() float64    { return output(e.dist, e.params) }
func (e *Economy) RealWage() float64  { return realWage(e.dist, e.params) }
func (e *Economy) TimePrice() float64 { return timePrice(e.dist, e.params) }

// Metrics evaluates all six metrics on the current distribution.
func (e *Economy) Metrics() Metrics { return measure(e.dist, e.params) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
