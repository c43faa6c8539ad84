// Package seir integrates the Susceptible-Exposed-Infectious-Recovered model
// over a fixed horizon. Compartments are fractions of the total population.
package seir

import (
	"fmt"
	"math"

	"github.com/ja7ad/epidemic/pkg/ode"
	"github.com/ja7ad/epidemic/pkg/util"
)

// Compartment indexes into the state vector [S, E, I, R].
const (
	S = iota
	E
	I
	R
)

// Derivative returns the SEIR right-hand side for the given rates:
//
//	dS = -β·S·I
//	dE =  β·S·I - σ·E
//	dI =  σ·E - γ·I
//	dR =  γ·I
func Derivative(r Rates) ode.Func {
	return func(_ float64, y []float64) ([]float64, error) {
		return []float64{
			-r.Beta * y[S] * y[I],
			r.Beta*y[S]*y[I] - r.Sigma*y[E],
			r.Sigma*y[E] - r.Gamma*y[I],
			r.Gamma * y[I],
		}, nil
	}
}

// InitialState seeds an otherwise fully susceptible population with eps
// exposed.
func InitialState(eps float64) []float64 {
	return []float64{1.0 - eps, eps, 0, 0}
}

// Series is a trajectory split into parallel columns indexed by step.
type Series struct {
	T []float64
	S []float64
	E []float64
	I []float64
	R []float64
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.T) }

// Total returns S+E+I+R at step i.
func (s *Series) Total(i int) float64 {
	return s.S[i] + s.E[i] + s.I[i] + s.R[i]
}

// FromTrajectory splits a 4-dimensional trajectory into columns.
func FromTrajectory(tr *ode.Trajectory) (*Series, error) {
	if tr.Dim() != 4 {
		return nil, fmt.Errorf("%w: got %d components, want 4", ode.ErrDimension, tr.Dim())
	}
	return &Series{
		T: append([]float64(nil), tr.T...),
		S: tr.Column(S),
		E: tr.Column(E),
		I: tr.Column(I),
		R: tr.Column(R),
	}, nil
}

// Run validates cfg, integrates the model with the midpoint method and
// checks the result for non-finite values.
func Run(cfg Config) (*Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tr, err := ode.Integrate(Derivative(cfg.Rates()), InitialState(cfg.SeedFraction), cfg.Start, cfg.Horizon, cfg.Steps)
	if err != nil {
		return nil, fmt.Errorf("integrate: %w", err)
	}
	if err := checkFinite(tr); err != nil {
		return nil, err
	}
	return FromTrajectory(tr)
}

func checkFinite(tr *ode.Trajectory) error {
	for i, row := range tr.Y {
		if j := util.FirstNonFinite(row); j >= 0 {
			return fmt.Errorf("%w: compartment %d at t=%g", ErrNonFinite, j, tr.T[i])
		}
	}
	return nil
}

// Summary describes the shape of an epidemic curve.
type Summary struct {
	PeakIndex      int     `json:"peak_index"`
	PeakDay        float64 `json:"peak_day"`
	PeakInfectious float64 `json:"peak_infectious"`
	FinalS         float64 `json:"final_s"`
	FinalR         float64 `json:"final_r"`
	AttackRate     float64 `json:"attack_rate"` // 1 - S_end / S_0
	MaxDrift       float64 `json:"max_drift"`   // max |total_i - total_0|
}

// Summarize computes peak and final-size statistics of s.
func Summarize(s *Series) Summary {
	if s.Len() == 0 {
		return Summary{PeakIndex: -1}
	}
	last := s.Len() - 1
	idx, peak := util.ArgMax(s.I)

	total0 := s.Total(0)
	var drift float64
	for i := 1; i < s.Len(); i++ {
		drift = math.Max(drift, math.Abs(s.Total(i)-total0))
	}

	return Summary{
		PeakIndex:      idx,
		PeakDay:        s.T[idx],
		PeakInfectious: peak,
		FinalS:         s.S[last],
		FinalR:         s.R[last],
		AttackRate:     1 - util.SafeDiv(s.S[last], s.S[0]),
		MaxDrift:       drift,
	}
}
