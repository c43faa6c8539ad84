package icu

import (
	"fmt"
	"math"
	"strings"
)

// Config holds the bed simulation parameters.
// Units:
//   - Population: people
//   - DemandFraction: share of people leaving the infectious state who need ICU [0..1]
//   - Gamma: removal rate from the infectious compartment, 1/day
//   - LengthOfStay: days a patient occupies a bed
//   - RealCapacity: beds that exist; indices >= RealCapacity are overflow
type Config struct {
	Population     int
	DemandFraction float64
	Gamma          float64
	LengthOfStay   float64
	RealCapacity   int
}

// MaxDailyRequests bounds the admissions a single day can demand, i.e.
// DemandFraction × Population × Gamma for a fully infectious population.
const MaxDailyRequests = 100_000_000

// Validate checks that cfg can drive a simulation.
func (c Config) Validate() error {
	if !(c.LengthOfStay > 0) || math.IsInf(c.LengthOfStay, 1) {
		return fmt.Errorf("%w: %g", ErrLengthOfStay, c.LengthOfStay)
	}
	switch {
	case c.Population < 0:
		return fmt.Errorf("%w: population=%d", ErrNegative, c.Population)
	case !(c.DemandFraction >= 0):
		return fmt.Errorf("%w: demand fraction=%g", ErrNegative, c.DemandFraction)
	case !(c.Gamma >= 0):
		return fmt.Errorf("%w: gamma=%g", ErrNegative, c.Gamma)
	case c.RealCapacity < 0:
		return fmt.Errorf("%w: real capacity=%d", ErrNegative, c.RealCapacity)
	}
	if peak := c.DemandFraction * float64(c.Population) * c.Gamma; peak > MaxDailyRequests {
		return fmt.Errorf("%w: up to %.0f admissions per day, limit %d", ErrDemand, peak, MaxDailyRequests)
	}
	return nil
}

// Mode selects which statistic is reported as the bed demand.
type Mode int

const (
	// ModePool reports the final pool size: distinct beds ever allocated.
	ModePool Mode = iota
	// ModePeak reports the peak number of beds in use on a single day.
	ModePeak
)

func (m Mode) String() string {
	switch m {
	case ModePool:
		return "pool"
	case ModePeak:
		return "peak"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps "pool" or "peak" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pool", "cumulative":
		return ModePool, nil
	case "peak", "simultaneous":
		return ModePeak, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrMode, s)
	}
}

// Day is the outcome of one simulated day.
type Day struct {
	Index      int     `json:"day"`
	Time       float64 `json:"t"`
	Requests   int     `json:"requests"`   // new ICU admissions demanded
	InUse      int     `json:"in_use"`     // beds occupied after admissions
	Discharged int     `json:"discharged"` // stays completed today
	PoolSize   int     `json:"pool_size"`
	Treated    int     `json:"treated"` // cumulative, real beds only
}

// Result summarizes a whole simulation.
type Result struct {
	PoolSize      int   `json:"pool_size"`
	PeakBeds      int   `json:"peak_beds"`
	PeakDay       int   `json:"peak_day"`
	TotalPatients int   `json:"total_patients"`
	Treated       int   `json:"treated"`
	Untreated     int   `json:"untreated"`
	RealCapacity  int   `json:"real_capacity"`
	Days          []Day `json:"-"`
}

// Reported returns the bed demand statistic selected by m.
func (r Result) Reported(m Mode) int {
	if m == ModePeak {
		return r.PeakBeds
	}
	return r.PoolSize
}

// Accounting reports whether treated/untreated counts are meaningful, i.e.
// a real capacity was configured.
func (r Result) Accounting() bool { return r.RealCapacity > 0 }
