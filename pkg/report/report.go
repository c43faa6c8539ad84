// Package report renders a finished run (trajectory, bed statistics and the
// configuration that produced them) as CSV, JSON, HTML or a PNG chart.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ja7ad/epidemic/pkg/icu"
	"github.com/ja7ad/epidemic/pkg/seir"
	"github.com/ja7ad/epidemic/pkg/util"
)

// Meta identifies a run.
type Meta struct {
	RunID     string      `json:"run_id"`
	CreatedAt time.Time   `json:"created_at"`
	Mode      string      `json:"mode"`
	Config    seir.Config `json:"config"`
}

// Row is one day of the trajectory joined with that day's bed usage.
type Row struct {
	Day      int     `json:"day"`
	T        float64 `json:"t"`
	S        float64 `json:"s"`
	E        float64 `json:"e"`
	I        float64 `json:"i"`
	R        float64 `json:"r"`
	Requests int     `json:"requests"`
	InUse    int     `json:"in_use"`
	PoolSize int     `json:"pool_size"`
	Treated  int     `json:"treated"`
}

// Report is everything a downstream consumer needs about one run.
type Report struct {
	Meta     Meta         `json:"meta"`
	Summary  seir.Summary `json:"summary"`
	Beds     icu.Result   `json:"beds"`
	Reported int          `json:"reported_beds"`
	Rows     []Row        `json:"rows"`
}

// New joins s and res row by row. They must come from the same run.
func New(cfg seir.Config, mode icu.Mode, s *seir.Series, res icu.Result) (*Report, error) {
	if len(res.Days) != s.Len() {
		return nil, fmt.Errorf("report: %d trajectory samples, %d bed days", s.Len(), len(res.Days))
	}

	rows := make([]Row, s.Len())
	for i := range rows {
		d := res.Days[i]
		rows[i] = Row{
			Day:      i,
			T:        s.T[i],
			S:        s.S[i],
			E:        s.E[i],
			I:        s.I[i],
			R:        s.R[i],
			Requests: d.Requests,
			InUse:    d.InUse,
			PoolSize: d.PoolSize,
			Treated:  d.Treated,
		}
	}

	return &Report{
		Meta: Meta{
			RunID:     uuid.NewString(),
			CreatedAt: time.Now().UTC(),
			Mode:      mode.String(),
			Config:    cfg,
		},
		Summary:  seir.Summarize(s),
		Beds:     res,
		Reported: res.Reported(mode),
		Rows:     rows,
	}, nil
}

var csvHeader = []string{
	"day", "t", "s", "e", "i", "r", "requests", "in_use", "pool_size", "treated",
}

// WriteCSV writes one line per day, with a header.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range r.Rows {
		rec := []string{
			strconv.Itoa(row.Day),
			util.FmtFloat(row.T),
			util.FmtFloat(row.S), util.FmtFloat(row.E), util.FmtFloat(row.I), util.FmtFloat(row.R),
			strconv.Itoa(row.Requests),
			strconv.Itoa(row.InUse),
			strconv.Itoa(row.PoolSize),
			strconv.Itoa(row.Treated),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the whole report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteFile creates path (and its directory) and hands it to write.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
