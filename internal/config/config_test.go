package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/search"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathfinder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, maze.DefaultCosts(), cfg.Costs())
	assert.Zero(t, cfg.Search.ReportEvery)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
search:
  report_every: 500
reindeer:
  turn_cost: 10
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep defaults")
	assert.Equal(t, 500, cfg.Search.ReportEvery)
	assert.Equal(t, maze.Costs{Move: 1, Turn: 10}, cfg.Costs())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "search:\n  report_every: 500\n")
	t.Setenv("PATHFINDER_REPORT_EVERY", "7")
	t.Setenv("PATHFINDER_LOG_FORMAT", "JSON")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Search.ReportEvery)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "log: [unterminated"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeFile(t, "log:\n  level: loud\n"))
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Level", verrs[0].Field())

	_, err = Load(writeFile(t, "reindeer:\n  turn_cost: -1\n"))
	assert.ErrorAs(t, err, &verrs)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"
	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	cfg = Default()
	cfg.Log.Level = "debug"
	cfg.Logger(&buf).Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestSearchOptions(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.Search.ReportEvery = 1
	logger := cfg.Logger(&buf)

	calls := 0
	opts := append(cfg.SearchOptions(logger), search.WithOnProgress(func(search.Progress) { calls++ }))
	res, err := search.Find(search.Problem[int]{
		Start: 0,
		Next:  search.Unweighted(func(n int) []int { return []int{n + 1} }),
		End:   search.EndState(3),
	}, opts...)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Cost)
	assert.Equal(t, 4, calls)
	assert.Contains(t, buf.String(), "search progress")
}
