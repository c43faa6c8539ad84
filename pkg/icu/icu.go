// Package icu turns an infectious-fraction curve into day-by-day ICU bed
// allocations with a fixed length of stay and a growable pool of beds.
package icu

import (
	"fmt"
	"math"

	"github.com/ja7ad/epidemic/pkg/util"
)

// Simulator keeps the bed pool and running counters; one Admit call per day.
// Days must be fed in increasing order.
type Simulator struct {
	cfg     Config
	pool    Pool
	treated int
	total   int
	peak    int
	peakDay int
	history []Day
}

// NewSimulator returns a simulator with an empty pool.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{cfg: cfg}, nil
}

// Demand returns the ICU admissions requested on a day with infectious
// fraction i: round(fraction × population × γ × i), half to even. i is
// clamped to [0,1], so a validated config never exceeds MaxDailyRequests.
func (c Config) Demand(i float64) int {
	return util.RoundCount(c.DemandFraction * float64(c.Population) * c.Gamma * util.Clamp01(i))
}

// Admit advances the pool by one day with request new patients.
//
// Every occupied bed ages by one day. A bed reaching the length of stay is
// discharged (counted as treated if its index is below the real capacity)
// and immediately refilled while requests remain; empty beds are refilled
// the same way, first fit by index. Requests left over get new beds appended
// to the pool.
func (s *Simulator) Admit(request int) Day {
	return s.admit(float64(len(s.history)), request)
}

func (s *Simulator) admit(t float64, request int) Day {
	if request < 0 {
		request = 0
	}
	day := Day{Index: len(s.history), Time: t, Requests: request}
	s.total += request

	inUse := request
	for i := range s.pool.beds {
		b := &s.pool.beds[i]
		if b.occupied {
			b.days++
			if float64(b.days) < s.cfg.LengthOfStay {
				inUse++
				continue
			}
			day.Discharged++
			if i < s.cfg.RealCapacity {
				s.treated++
			}
			if request > 0 {
				*b = OccupiedBed(0)
				request--
			} else {
				*b = EmptyBed()
			}
			continue
		}
		if request > 0 {
			*b = OccupiedBed(0)
			request--
		}
	}
	if request > 0 {
		s.pool.grow(request)
	}

	if inUse > s.peak {
		s.peak, s.peakDay = inUse, day.Index
	}

	day.InUse = inUse
	day.PoolSize = s.pool.Len()
	day.Treated = s.treated
	s.history = append(s.history, day)
	return day
}

// Pool exposes the bed pool for inspection. Callers must not retain it across
// Admit calls.
func (s *Simulator) Pool() *Pool { return &s.pool }

// Result returns the statistics accumulated so far.
func (s *Simulator) Result() Result {
	return Result{
		PoolSize:      s.pool.Len(),
		PeakBeds:      s.peak,
		PeakDay:       s.peakDay,
		TotalPatients: s.total,
		Treated:       s.treated,
		Untreated:     s.total - s.treated,
		RealCapacity:  s.cfg.RealCapacity,
		Days:          append([]Day(nil), s.history...),
	}
}

// Simulate runs one day per sample of t, reading the infectious fraction at
// day offset int(t[k] - t[0]). With a one-day step this is infectious[k].
func Simulate(t, infectious []float64, cfg Config) (Result, error) {
	if len(t) != len(infectious) {
		return Result{}, fmt.Errorf("%w: %d times, %d infectious values", ErrSeriesLength, len(t), len(infectious))
	}
	sim, err := NewSimulator(cfg)
	if err != nil {
		return Result{}, err
	}

	for k, tk := range t {
		off := tk - t[0]
		if math.IsNaN(off) || off < 0 || off >= float64(len(infectious)) {
			return Result{}, fmt.Errorf("%w: t[%d]=%g", ErrTimeIndex, k, tk)
		}
		sim.admit(tk, cfg.Demand(infectious[int(off)]))
	}
	return sim.Result(), nil
}
