package seir

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds one epidemic scenario.
// Units:
//   - InfectionPeriod/IncubationPeriod/LengthOfStay: days
//   - ICUDemand: fraction of people leaving the infectious state who need ICU [0..1]
//   - Population/RealICUCapacity: people, beds
//   - Start/Horizon: integration bounds in days
//   - SeedFraction: initial exposed fraction of the population (0..1)
type Config struct {
	ReproductionNumber float64 `yaml:"reproduction_number" json:"reproduction_number"`
	InfectionPeriod    float64 `yaml:"infection_period_days" json:"infection_period_days"`
	IncubationPeriod   float64 `yaml:"incubation_period_days" json:"incubation_period_days"`
	ICUDemand          float64 `yaml:"icu_demand_fraction" json:"icu_demand_fraction"`
	LengthOfStay       float64 `yaml:"length_of_stay_days" json:"length_of_stay_days"`
	Population         int     `yaml:"population" json:"population"`
	RealICUCapacity    int     `yaml:"real_icu_capacity" json:"real_icu_capacity"`
	Start              float64 `yaml:"start_day" json:"start_day"`
	Horizon            float64 `yaml:"horizon_days" json:"horizon_days"`
	Steps              int     `yaml:"step_count" json:"step_count"`
	SeedFraction       float64 `yaml:"seed_fraction" json:"seed_fraction"`
}

// DefaultConfig returns the São Paulo state scenario: one step per day over
// 498 days. RealICUCapacity 0 turns treated/untreated accounting off.
func DefaultConfig() Config {
	return Config{
		ReproductionNumber: 2.5,        // r0, dimensionless
		InfectionPeriod:    2.9,        // T_inf
		IncubationPeriod:   5.2,        // T_inc
		ICUDemand:          0.03,       // 3%
		LengthOfStay:       7.0,        // days in ICU
		Population:         46_000_000, // SP state
		RealICUCapacity:    0,
		Start:              0,
		Horizon:            498,
		Steps:              498,
		SeedFraction:       1e-6,
	}
}

// Rates are the per-day rate constants derived from a Config.
type Rates struct {
	Beta  float64 // transmission, R0 / T_inf
	Sigma float64 // incubation, 1 / T_inc
	Gamma float64 // removal,    1 / T_inf
}

// Rates derives the rate constants. The config must be valid.
func (c Config) Rates() Rates {
	return Rates{
		Beta:  c.ReproductionNumber / c.InfectionPeriod,
		Sigma: 1.0 / c.IncubationPeriod,
		Gamma: 1.0 / c.InfectionPeriod,
	}
}

// Step returns the integration step size in days.
func (c Config) Step() float64 {
	return (c.Horizon - c.Start) / float64(c.Steps)
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	bad := func(field string, v any, want string) error {
		return fmt.Errorf("%w: %s=%v, want %s", ErrInvalidConfig, field, v, want)
	}

	floatsByName := []struct {
		name string
		v    float64
	}{
		{"reproduction_number", c.ReproductionNumber},
		{"infection_period_days", c.InfectionPeriod},
		{"incubation_period_days", c.IncubationPeriod},
		{"icu_demand_fraction", c.ICUDemand},
		{"length_of_stay_days", c.LengthOfStay},
		{"start_day", c.Start},
		{"horizon_days", c.Horizon},
		{"seed_fraction", c.SeedFraction},
	}
	for _, f := range floatsByName {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return bad(f.name, f.v, "a finite number")
		}
	}

	switch {
	case c.ReproductionNumber <= 0:
		return bad("reproduction_number", c.ReproductionNumber, "> 0")
	case c.InfectionPeriod <= 0:
		return bad("infection_period_days", c.InfectionPeriod, "> 0")
	case c.IncubationPeriod <= 0:
		return bad("incubation_period_days", c.IncubationPeriod, "> 0")
	case c.ICUDemand < 0 || c.ICUDemand > 1:
		return bad("icu_demand_fraction", c.ICUDemand, "in [0,1]")
	case c.LengthOfStay <= 0:
		return bad("length_of_stay_days", c.LengthOfStay, "> 0")
	case c.Population < 0:
		return bad("population", c.Population, ">= 0")
	case c.RealICUCapacity < 0:
		return bad("real_icu_capacity", c.RealICUCapacity, ">= 0")
	case c.Steps < 1:
		return bad("step_count", c.Steps, ">= 1")
	case c.Start >= c.Horizon:
		return bad("horizon_days", c.Horizon, fmt.Sprintf("> start_day (%g)", c.Start))
	case c.SeedFraction <= 0 || c.SeedFraction >= 1:
		return bad("seed_fraction", c.SeedFraction, "in (0,1)")
	}
	return nil
}

// Load reads a YAML scenario from path. Fields missing from the file keep
// their DefaultConfig value; unknown fields are an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}

// Decode parses a YAML scenario from r over DefaultConfig.
func Decode(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	return cfg, nil
}

// Encode writes cfg as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
