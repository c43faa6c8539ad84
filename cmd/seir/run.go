package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ja7ad/epidemic/pkg/icu"
	"github.com/ja7ad/epidemic/pkg/report"
	"github.com/ja7ad/epidemic/pkg/seir"
)

// icuConfig derives the bed simulation parameters from a scenario.
func icuConfig(cfg seir.Config) icu.Config {
	return icu.Config{
		Population:     cfg.Population,
		DemandFraction: cfg.ICUDemand,
		Gamma:          cfg.Rates().Gamma,
		LengthOfStay:   cfg.LengthOfStay,
		RealCapacity:   cfg.RealICUCapacity,
	}
}

func runScenario(w io.Writer, cfg seir.Config, o opts) error {
	mode, err := icu.ParseMode(o.mode)
	if err != nil {
		return err
	}
	if o.every < 0 {
		return fmt.Errorf("every must be >= 0")
	}

	rates := cfg.Rates()
	slog.Debug("derived rates", "beta", rates.Beta, "sigma", rates.Sigma, "gamma", rates.Gamma)
	if h := cfg.Step(); h != 1 {
		slog.Warn("step is not one day; bed simulation reads I at int(t - start)", "step", h)
	}

	start := time.Now()
	series, err := seir.Run(cfg)
	if err != nil {
		return fmt.Errorf("seir: %w", err)
	}
	sum := seir.Summarize(series)
	slog.Info("integrated", "samples", series.Len(), "peak_day", sum.PeakDay, "drift", sum.MaxDrift, "took", time.Since(start))

	start = time.Now()
	beds, err := icu.Simulate(series.T, series.I, icuConfig(cfg))
	if err != nil {
		return fmt.Errorf("icu: %w", err)
	}
	slog.Info("simulated beds", "pool", beds.PoolSize, "peak", beds.PeakBeds, "took", time.Since(start))

	rep, err := report.New(cfg, mode, series, beds)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, _console, rep.Meta.RunID, cfg.ReproductionNumber, cfg.InfectionPeriod, cfg.IncubationPeriod,
		popString(cfg.Population), 100*cfg.ICUDemand, cfg.LengthOfStay, cfg.Start, cfg.Horizon, cfg.Steps)

	if o.every > 0 {
		if o.pretty {
			printTable(w, rep.Rows, o.every)
		} else {
			printCsvLike(w, rep.Rows, o.every)
		}
	}
	printSummary(w, rep, mode)

	outputs := []struct {
		path  string
		write func(io.Writer) error
	}{
		{o.csvPath, rep.WriteCSV},
		{o.jsonPath, rep.WriteJSON},
		{o.htmlPath, rep.WriteHTML},
		{o.pngPath, rep.WritePNG},
	}
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := report.WriteFile(out.path, out.write); err != nil {
			return err
		}
		slog.Info("wrote", "path", out.path)
	}
	return nil
}
