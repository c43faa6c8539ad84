package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ja7ad/epidemic/pkg/seir"
)

type opts struct {
	configPath string

	// scenario overrides, applied only when the flag was set
	scenario seir.Config

	// reporting
	mode   string
	every  int
	pretty bool

	// outputs
	csvPath  string
	jsonPath string
	htmlPath string
	pngPath  string

	// logging
	logLevel string
	logJSON  bool
}

// scenarioFlags maps flag names to the Config field they override.
var scenarioFlags = map[string]func(dst *seir.Config, src seir.Config){
	"r0":         func(d *seir.Config, s seir.Config) { d.ReproductionNumber = s.ReproductionNumber },
	"t-inf":      func(d *seir.Config, s seir.Config) { d.InfectionPeriod = s.InfectionPeriod },
	"t-inc":      func(d *seir.Config, s seir.Config) { d.IncubationPeriod = s.IncubationPeriod },
	"icu-demand": func(d *seir.Config, s seir.Config) { d.ICUDemand = s.ICUDemand },
	"los":        func(d *seir.Config, s seir.Config) { d.LengthOfStay = s.LengthOfStay },
	"population": func(d *seir.Config, s seir.Config) { d.Population = s.Population },
	"capacity":   func(d *seir.Config, s seir.Config) { d.RealICUCapacity = s.RealICUCapacity },
	"start":      func(d *seir.Config, s seir.Config) { d.Start = s.Start },
	"horizon":    func(d *seir.Config, s seir.Config) { d.Horizon = s.Horizon },
	"steps":      func(d *seir.Config, s seir.Config) { d.Steps = s.Steps },
	"seed":       func(d *seir.Config, s seir.Config) { d.SeedFraction = s.SeedFraction },
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o opts

	root := &cobra.Command{
		Use:   "seir",
		Short: "SEIR epidemic curve and ICU bed demand estimation",
		Long: `The seir tool integrates a Susceptible-Exposed-Infectious-Recovered model
with the explicit midpoint method and derives ICU bed demand from the
infectious curve with a fixed length of stay and a growable bed pool.

Examples:
  seir run
  seir run --r0 3 --capacity 5000 --mode peak
  seir run -c scenario.yaml --csv out/run.csv --png out/run.png
  seir defaults > scenario.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "Integrate the scenario and simulate ICU bed usage",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogger(o.logLevel, o.logJSON)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(o, cmd.Flags())
			if err != nil {
				return err
			}
			return runScenario(cmd.OutOrStdout(), cfg, o)
		},
	}

	def := seir.DefaultConfig()
	fs := run.Flags()
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML scenario file (flags override its values)")
	bindScenarioFlags(fs, &o.scenario, def)

	fs.StringVar(&o.mode, "mode", "pool", "reported bed statistic: pool (cumulative beds) or peak (simultaneous)")
	fs.IntVar(&o.every, "every", 7, "print every N-th day in the table (0 = summary only)")
	fs.BoolVar(&o.pretty, "pretty", true, "format output as a table instead of CSV-like lines")

	fs.StringVar(&o.csvPath, "csv", "", "write per-day rows to CSV file")
	fs.StringVar(&o.jsonPath, "json", "", "write the full report to JSON file")
	fs.StringVar(&o.htmlPath, "html", "", "write the report to HTML file")
	fs.StringVar(&o.pngPath, "png", "", "write the compartment chart to PNG file")

	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&o.logJSON, "log-json", false, "emit logs as JSON")

	root.AddCommand(run, newDefaultsCmd())
	return root
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default scenario as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return seir.DefaultConfig().Encode(cmd.OutOrStdout())
		},
	}
}

func bindScenarioFlags(fs *pflag.FlagSet, c *seir.Config, def seir.Config) {
	fs.Float64Var(&c.ReproductionNumber, "r0", def.ReproductionNumber, "basic reproduction number")
	fs.Float64Var(&c.InfectionPeriod, "t-inf", def.InfectionPeriod, "infectious period in days")
	fs.Float64Var(&c.IncubationPeriod, "t-inc", def.IncubationPeriod, "incubation period in days")
	fs.Float64Var(&c.ICUDemand, "icu-demand", def.ICUDemand, "fraction of removed infectious needing ICU [0..1]")
	fs.Float64Var(&c.LengthOfStay, "los", def.LengthOfStay, "ICU length of stay in days")
	fs.IntVar(&c.Population, "population", def.Population, "population size")
	fs.IntVar(&c.RealICUCapacity, "capacity", def.RealICUCapacity, "real ICU beds for treated/untreated accounting (0 = off)")
	fs.Float64Var(&c.Start, "start", def.Start, "first day of the horizon")
	fs.Float64Var(&c.Horizon, "horizon", def.Horizon, "last day of the horizon")
	fs.IntVar(&c.Steps, "steps", def.Steps, "number of integration steps")
	fs.Float64Var(&c.SeedFraction, "seed", def.SeedFraction, "initial exposed fraction")
}

// resolveConfig loads the file (or defaults), then applies every scenario
// flag the user set explicitly.
func resolveConfig(o opts, fs *pflag.FlagSet) (seir.Config, error) {
	cfg := seir.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = seir.Load(o.configPath); err != nil {
			return seir.Config{}, err
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := scenarioFlags[f.Name]; ok {
			apply(&cfg, o.scenario)
		}
	})
	if err := cfg.Validate(); err != nil {
		return seir.Config{}, err
	}
	return cfg, nil
}

func setupLogger(level string, asJSON bool) error {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}

	hopts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if asJSON {
		h = slog.NewJSONHandler(os.Stderr, hopts)
	} else {
		h = slog.NewTextHandler(os.Stderr, hopts)
	}
	slog.SetDefault(slog.New(h))
	return nil
}
