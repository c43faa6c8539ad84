package report

import (
	"bytes"
	"html/template"
	"io"

	"github.com/ja7ad/epidemic/pkg/types"
)

// WriteHTML writes a standalone HTML page with the summary and per-day table.
func (r *Report) WriteHTML(w io.Writer) error {
	type view struct {
		*Report
		Population types.Headcount
		Patients   types.Headcount
	}

	var buf bytes.Buffer
	data := view{
		Report:     r,
		Population: types.Headcount(r.Meta.Config.Population),
		Patients:   types.Headcount(r.Beds.TotalPatients),
	}
	if err := tpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var tpl = template.Must(template.New("rep").Funcs(template.FuncMap{
	"pct": func(v float64) float64 { return 100 * v },
}).Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>SEIR / ICU Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
.badge{display:inline-block;background:#eef;border:1px solid #ccd;padding:2px 6px;border-radius:6px;margin-right:6px;}
</style>

<h1>SEIR / ICU Report</h1>

<p class="small">
<span class="badge">run {{.Meta.RunID}}</span>
{{.Meta.CreatedAt.Format "2006-01-02 15:04:05"}} UTC &nbsp;|&nbsp;
Days: {{len .Rows}} &nbsp;|&nbsp;
Population: {{.Population.Humanized}}
</p>

<h2>Scenario</h2>
<ul>
<li>R0: {{.Meta.Config.ReproductionNumber}}</li>
<li>T_inf: {{.Meta.Config.InfectionPeriod}} d, T_inc: {{.Meta.Config.IncubationPeriod}} d</li>
<li>ICU demand: {{printf "%.2f" (pct .Meta.Config.ICUDemand)}}%, length of stay: {{.Meta.Config.LengthOfStay}} d</li>
<li>Horizon: {{.Meta.Config.Start}}..{{.Meta.Config.Horizon}} d in {{.Meta.Config.Steps}} steps</li>
</ul>

<h2>Summary</h2>
<ul>
<li>Peak infectious: {{printf "%.3f" (pct .Summary.PeakInfectious)}}% on day {{.Summary.PeakDay}}</li>
<li>Final susceptible: {{printf "%.3f" (pct .Summary.FinalS)}}%, recovered: {{printf "%.3f" (pct .Summary.FinalR)}}%</li>
<li>ICU patients: {{.Patients.Humanized}} ({{.Beds.TotalPatients}})</li>
<li>Peak simultaneous beds: {{.Beds.PeakBeds}} (day {{.Beds.PeakDay}})</li>
<li>Cumulative bed pool: {{.Beds.PoolSize}}</li>
<li>Reported ({{.Meta.Mode}}): <b>{{.Reported}}</b></li>
{{if .Beds.Accounting}}
<li>Real capacity {{.Beds.RealCapacity}}: treated {{.Beds.Treated}}, untreated {{.Beds.Untreated}}</li>
{{end}}
</ul>

<h2>Per-day</h2>
<table>
<thead>
<tr>
<th>day</th><th>S %</th><th>E %</th><th>I %</th><th>R %</th>
<th>requests</th><th>in use</th><th>pool</th><th>treated</th>
</tr>
</thead>
<tbody>
{{range .Rows}}
<tr>
<td>{{.Day}}</td>
<td>{{printf "%.4f" (pct .S)}}</td>
<td>{{printf "%.4f" (pct .E)}}</td>
<td>{{printf "%.4f" (pct .I)}}</td>
<td>{{printf "%.4f" (pct .R)}}</td>
<td>{{.Requests}}</td>
<td>{{.InUse}}</td>
<td>{{.PoolSize}}</td>
<td>{{.Treated}}</td>
</tr>
{{end}}
</tbody>
</table>
</html>`))
