package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/epidemic/pkg/icu"
	"github.com/ja7ad/epidemic/pkg/seir"
)

func smallRun(t *testing.T, demand float64) *Report {
	t.Helper()
	cfg := seir.DefaultConfig()
	cfg.Horizon = 60
	cfg.Steps = 60
	cfg.SeedFraction = 1e-3
	cfg.ICUDemand = demand
	cfg.RealICUCapacity = 1000

	s, err := seir.Run(cfg)
	require.NoError(t, err)
	res, err := icu.Simulate(s.T, s.I, icu.Config{
		Population:     cfg.Population,
		DemandFraction: cfg.ICUDemand,
		Gamma:          cfg.Rates().Gamma,
		LengthOfStay:   cfg.LengthOfStay,
		RealCapacity:   cfg.RealICUCapacity,
	})
	require.NoError(t, err)

	rep, err := New(cfg, icu.ModePeak, s, res)
	require.NoError(t, err)
	return rep
}

func TestNew_JoinsRows(t *testing.T) {
	rep := smallRun(t, 0.03)
	require.Len(t, rep.Rows, 61)

	_, err := uuid.Parse(rep.Meta.RunID)
	require.NoError(t, err)
	assert.Equal(t, "peak", rep.Meta.Mode)
	assert.Equal(t, rep.Beds.PeakBeds, rep.Reported)

	for i, row := range rep.Rows {
		require.Equal(t, i, row.Day)
		require.Equal(t, rep.Beds.Days[i].InUse, row.InUse)
	}
}

func TestNew_LengthMismatch(t *testing.T) {
	s := &seir.Series{T: []float64{0, 1}, S: []float64{1, 1}, E: []float64{0, 0}, I: []float64{0, 0}, R: []float64{0, 0}}
	_, err := New(seir.DefaultConfig(), icu.ModePool, s, icu.Result{})
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	rep := smallRun(t, 0.03)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteCSV(&buf))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, len(rep.Rows)+1)
	assert.Equal(t, csvHeader, recs[0])
	assert.Equal(t, "0", recs[1][0])
	assert.Equal(t, "60", recs[len(recs)-1][0])
}

func TestWriteJSON(t *testing.T) {
	rep := smallRun(t, 0.03)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Contains(t, got, "meta")
	assert.Contains(t, got, "summary")
	assert.Contains(t, got, "beds")
	assert.Len(t, got["rows"], 61)

	beds := got["beds"].(map[string]any)
	assert.EqualValues(t, rep.Beds.PoolSize, beds["pool_size"])
	assert.NotContains(t, beds, "Days")
}

func TestWriteHTML(t *testing.T) {
	rep := smallRun(t, 0.03)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteHTML(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, rep.Meta.RunID)
	assert.Contains(t, out, "46.00 M")
	assert.Contains(t, out, "Real capacity 1000")
	assert.Equal(t, len(rep.Rows), strings.Count(out, "<tr>")-1)
}

func TestWritePNG(t *testing.T) {
	for _, demand := range []float64{0.03, 0} {
		rep := smallRun(t, demand)

		var buf bytes.Buffer
		require.NoError(t, rep.WritePNG(&buf), "demand %g", demand)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
	}
}

func TestWritePNG_TooFewRows(t *testing.T) {
	rep := &Report{Rows: []Row{{}}}
	assert.Error(t, rep.WritePNG(&bytes.Buffer{}))
}

func TestWriteFile(t *testing.T) {
	rep := smallRun(t, 0.03)
	path := filepath.Join(t.TempDir(), "nested", "run.csv")

	require.NoError(t, WriteFile(path, rep.WriteCSV))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "day,t,s,e,i,r,"))
}
