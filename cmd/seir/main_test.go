package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/epidemic/pkg/seir"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDefaults_RoundTrips(t *testing.T) {
	out, err := execute(t, "defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "reproduction_number: 2.5")

	cfg, err := seir.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, seir.DefaultConfig(), cfg)
}

func TestRun_DefaultScenarioSummary(t *testing.T) {
	out, err := execute(t, "run", "--every", "0", "--capacity", "5000", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Population: 46.00 M")
	assert.Contains(t, out, "on day 99")
	assert.Contains(t, out, "- patients:          1231649")
	assert.Contains(t, out, "- bed pool:          270353")
	assert.Contains(t, out, "- treated:           71453")
	assert.Contains(t, out, "- untreated:         1160196")
	assert.Contains(t, out, "- reported (pool):     270353")
	assert.NotContains(t, out, "DAY")
}

func TestRun_TableAndPeakMode(t *testing.T) {
	out, err := execute(t, "run", "--mode", "peak", "--every", "100", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "DAY")
	assert.Contains(t, out, "- reported (peak):     270353")
	assert.NotContains(t, out, "treated:")
}

func TestRun_CsvLike(t *testing.T) {
	out, err := execute(t, "run", "--pretty=false", "--every", "249", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "# t, S, E, I, R, requests, beds, pool")
	assert.Contains(t, out, "\n0, 0.999999, 0.000001, 0.000000, 0.000000, 0, 0, 0\n")
}

func TestRun_ConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reproduction_number: 3.0\nhorizon_days: 120\nstep_count: 120\n"), 0o644))

	root := newRootCmd()
	run, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	require.NoError(t, run.ParseFlags([]string{"-c", path, "--steps", "240", "--capacity", "10"}))

	o := opts{}
	o.configPath, _ = run.Flags().GetString("config")
	o.scenario.Steps, _ = run.Flags().GetInt("steps")
	o.scenario.RealICUCapacity, _ = run.Flags().GetInt("capacity")

	cfg, err := resolveConfig(o, run.Flags())
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.ReproductionNumber) // file
	assert.Equal(t, 120.0, cfg.Horizon)          // file
	assert.Equal(t, 240, cfg.Steps)              // flag beats file
	assert.Equal(t, 10, cfg.RealICUCapacity)     // flag
	assert.Equal(t, 2.9, cfg.InfectionPeriod)    // default
}

func TestRun_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out", "run.csv")
	jsonPath := filepath.Join(dir, "out", "run.json")
	htmlPath := filepath.Join(dir, "out", "run.html")
	pngPath := filepath.Join(dir, "out", "run.png")

	_, err := execute(t, "run", "--horizon", "90", "--steps", "90", "--every", "0", "--log-level", "error",
		"--csv", csvPath, "--json", jsonPath, "--html", htmlPath, "--png", pngPath)
	require.NoError(t, err)

	for _, p := range []string{csvPath, jsonPath, htmlPath, pngPath} {
		st, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Greater(t, st.Size(), int64(0), p)
	}
}

func TestRun_ShiftedHorizon(t *testing.T) {
	out, err := execute(t, "run", "--start", "10", "--horizon", "100", "--steps", "90", "--every", "30", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Horizon: 10..100 d, 90 steps")
	assert.Contains(t, out, "- bed pool:")
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"bad mode", []string{"run", "--mode", "max"}, "unknown reporting mode"},
		{"zero steps", []string{"run", "--steps", "0"}, "step_count"},
		{"reversed horizon", []string{"run", "--start", "10", "--horizon", "5"}, "horizon_days"},
		{"bad fraction", []string{"run", "--icu-demand", "1.5"}, "icu_demand_fraction"},
		{"missing file", []string{"run", "-c", "/nonexistent/scenario.yaml"}, "reading config file"},
		{"bad log level", []string{"run", "--log-level", "loud"}, "unknown log level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
