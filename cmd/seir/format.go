package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ja7ad/epidemic/pkg/icu"
	"github.com/ja7ad/epidemic/pkg/report"
	"github.com/ja7ad/epidemic/pkg/types"
)

func popString(n int) string { return types.Headcount(n).Humanized() }

// sampled yields every n-th row plus the last one.
func sampled(rows []report.Row, n int, fn func(report.Row)) {
	for i, r := range rows {
		if i%n == 0 || i == len(rows)-1 {
			fn(r)
		}
	}
}

func printTable(w io.Writer, rows []report.Row, every int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "DAY\tS (%)\tE (%)\tI (%)\tR (%)\tREQ\tBEDS\tPOOL\t")
	fmt.Fprintln(tw, "---\t-----\t-----\t-----\t-----\t---\t----\t----\t")
	sampled(rows, every, func(r report.Row) {
		fmt.Fprintf(tw, "%g\t%.3f\t%.3f\t%.3f\t%.3f\t%d\t%d\t%d\t\n",
			r.T, 100*r.S, 100*r.E, 100*r.I, 100*r.R, r.Requests, r.InUse, r.PoolSize)
	})
	tw.Flush()
}

func printCsvLike(w io.Writer, rows []report.Row, every int) {
	fmt.Fprintln(w, "# t, S, E, I, R, requests, beds, pool")
	sampled(rows, every, func(r report.Row) {
		fmt.Fprintf(w, "%g, %.6f, %.6f, %.6f, %.6f, %d, %d, %d\n",
			r.T, r.S, r.E, r.I, r.R, r.Requests, r.InUse, r.PoolSize)
	})
}

func printSummary(w io.Writer, rep *report.Report, mode icu.Mode) {
	s, b := rep.Summary, rep.Beds
	fmt.Fprintln(w)
	fmt.Fprintf(w, "epidemic (%d samples):\n", len(rep.Rows))
	fmt.Fprintf(w, "- peak infectious:   %.3f%% on day %g\n", 100*s.PeakInfectious, s.PeakDay)
	fmt.Fprintf(w, "- final susceptible: %.3f%%\n", 100*s.FinalS)
	fmt.Fprintf(w, "- final recovered:   %.3f%%\n", 100*s.FinalR)
	fmt.Fprintf(w, "- conservation drift: %.3g\n", s.MaxDrift)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "icu:\n")
	fmt.Fprintf(w, "- patients:          %d (%s)\n", b.TotalPatients, types.Headcount(b.TotalPatients).Humanized())
	fmt.Fprintf(w, "- peak beds:         %d (day %d)\n", b.PeakBeds, b.PeakDay)
	fmt.Fprintf(w, "- bed pool:          %d\n", b.PoolSize)
	if b.Accounting() {
		fmt.Fprintf(w, "- real capacity:     %d\n", b.RealCapacity)
		fmt.Fprintf(w, "- treated:           %d\n", b.Treated)
		fmt.Fprintf(w, "- untreated:         %d\n", b.Untreated)
	}
	fmt.Fprintf(w, "- reported (%s):     %d\n", mode, rep.Reported)
	fmt.Fprintln(w)
}

const _console = `SEIR - Epidemic Curve and ICU Bed Demand Estimation

       Run: %s
       R0: %g
       T_inf: %g d, T_inc: %g d
       Population: %s
       ICU demand: %.2f%%, stay: %g d
       Horizon: %g..%g d, %d steps

`
