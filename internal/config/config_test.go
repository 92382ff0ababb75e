package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 50, cfg.Data.HistogramBins)
	assert.Equal(t, 200*time.Millisecond, cfg.Dashboard.RefreshMinGap)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  default_file: "2019-Nov.csv"
  top_brands: 15
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "2019-Nov.csv", cfg.Data.DefaultFile)
	assert.Equal(t, 15, cfg.Data.TopBrands)
	// Untouched fields keep their defaults.
	assert.Equal(t, 50, cfg.Data.HistogramBins)
	assert.Equal(t, "info", cfg.Application.LogLevel)
}

func TestLoadParsesDurations(t *testing.T) {
	path := writeConfig(t, `
dashboard:
  refresh_min_gap: "1s"
  auto_refresh: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Dashboard.RefreshMinGap)
	assert.False(t, cfg.Dashboard.AutoRefresh)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad log level", "application:\n  log_level: \"verbose\"\n"},
		{"zero histogram bins", "data:\n  histogram_bins: 0\n"},
		{"negative top brands", "data:\n  top_brands: -1\n"},
		{"unknown theme", "dashboard:\n  theme: \"solarized\"\n"},
		{"window too small", "dashboard:\n  width: 10\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation")
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATA_DIR", "/srv/events")
	t.Setenv("DEFAULT_FILE", "latest.csv")

	cfg, err := Load(writeConfig(t, "application:\n  log_level: \"info\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Application.LogLevel)
	assert.Equal(t, "/srv/events", cfg.Data.Dir)
	assert.Equal(t, "latest.csv", cfg.Data.DefaultFile)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	want := Default()
	want.Data.TopBrands = 7
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	return path
}
