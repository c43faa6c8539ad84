package report

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	colorS = drawing.ColorFromHex("4878CF")
	colorE = drawing.ColorFromHex("ED2139")
	colorI = drawing.ColorFromHex("D9C514")
	colorR = drawing.ColorFromHex("07A81A")
	colorB = drawing.ColorFromHex("555555")
)

// WritePNG renders the compartment curves in percent and, when any bed was
// used, the daily bed occupancy on a secondary axis.
func (r *Report) WritePNG(w io.Writer) error {
	if len(r.Rows) < 2 {
		return fmt.Errorf("report: need at least 2 rows to plot, have %d", len(r.Rows))
	}

	n := len(r.Rows)
	t := make([]float64, n)
	s, e, i, rc := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	beds := make([]float64, n)
	var anyBeds bool
	for k, row := range r.Rows {
		t[k] = row.T
		s[k], e[k], i[k], rc[k] = 100*row.S, 100*row.E, 100*row.I, 100*row.R
		beds[k] = float64(row.InUse)
		anyBeds = anyBeds || row.InUse > 0
	}

	line := func(name string, ys []float64, c drawing.Color) chart.ContinuousSeries {
		return chart.ContinuousSeries{
			Name:    name,
			XValues: t,
			YValues: ys,
			Style:   chart.Style{StrokeColor: c, StrokeWidth: 2.0},
		}
	}
	series := []chart.Series{
		line("Susceptible", s, colorS),
		line("Exposed", e, colorE),
		line("Infectious", i, colorI),
		line("Recovered", rc, colorR),
	}
	if anyBeds {
		b := line("ICU beds in use", beds, colorB)
		b.YAxis = chart.YAxisSecondary
		b.Style.StrokeDashArray = []float64{5.0, 3.0}
		series = append(series, b)
	}

	graph := chart.Chart{
		Width:  1600,
		Height: 1200,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Time [days]",
			Style: chart.Style{FontSize: 12.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Population [%]",
			Style: chart.Style{FontSize: 12.0},
			Range: &chart.ContinuousRange{Min: -1, Max: 101},
		},
		Series: series,
	}
	if anyBeds {
		graph.YAxisSecondary = chart.YAxis{
			Name:  "Beds",
			Style: chart.Style{FontSize: 12.0},
		}
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
