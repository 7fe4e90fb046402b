package snow

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snowreport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewSnowReportDefaults(t *testing.T) {
	sr, err := NewSnowReport("")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, sr.Workers, 1)
	assert.Equal(t, "data/snow.json", sr.Output)
	assert.Equal(t, 30*time.Second, sr.Timeout)
	assert.Equal(t, "https://api.open-meteo.com", sr.OpenMeteo.BaseURL)
	assert.Equal(t, "tahoe-snow-report/1.0", sr.OpenMeteo.UserAgent)
	assert.Equal(t, 3, sr.OpenMeteo.PastDays)
	assert.Equal(t, 1, sr.OpenMeteo.ForecastDays)
	assert.Equal(t, []string{"script", "style", "template"}, sr.RemoveSelectors.Tags)
	assert.Empty(t, sr.HistoryDB)

	require.Len(t, sr.Resorts, 16)
	assert.Equal(t, "Palisades Tahoe", sr.Resorts[0].Name)
	assert.Equal(t, "Telluride", sr.Resorts[15].Name)
}

func TestNewSnowReportFromFile(t *testing.T) {
	path := writeConfig(t, `
workers: 2
output: out/snow.json
history_db: out/history.db
timeout: 5s
open_meteo:
  base_url: http://localhost:9999
  past_days: 5
remove_selectors:
  tags: [script]
  class_keywords: ["^ad-"]
resorts:
  - name: Mt. Test
    region: Testville
    elevation_ft: 4000
    lat: 45.5
    lon: -121.7
    report_url: https://test/report
    webcams_url: https://test/cams
    onthesnow_url: https://test/skireport
`)

	sr, err := NewSnowReport(path)
	require.NoError(t, err)

	assert.Equal(t, 2, sr.Workers)
	assert.Equal(t, "out/snow.json", sr.Output)
	assert.Equal(t, "out/history.db", sr.HistoryDB)
	assert.Equal(t, 5*time.Second, sr.Timeout)
	assert.Equal(t, "http://localhost:9999", sr.OpenMeteo.BaseURL)
	assert.Equal(t, 5, sr.OpenMeteo.PastDays)
	assert.Equal(t, 1, sr.OpenMeteo.ForecastDays)
	assert.Equal(t, []string{"script"}, sr.RemoveSelectors.Tags)
	assert.Equal(t, []string{"^ad-"}, sr.RemoveSelectors.ClassKeywords)

	require.Len(t, sr.Resorts, 1)
	assert.Equal(t, Resort{
		Name:         "Mt. Test",
		Region:       "Testville",
		ElevationFt:  4000,
		Lat:          45.5,
		Lon:          -121.7,
		ReportURL:    "https://test/report",
		WebcamsURL:   "https://test/cams",
		OnTheSnowURL: "https://test/skireport",
	}, sr.Resorts[0])
}

func TestNewSnowReportEnvOverrides(t *testing.T) {
	t.Setenv("SNOWREPORT_OUTPUT", "env/snow.json")
	t.Setenv("SNOWREPORT_WORKERS", "7")
	t.Setenv("SNOWREPORT_HISTORY_DB", "env/history.db")

	path := writeConfig(t, "workers: 2\noutput: file/snow.json\n")

	sr, err := NewSnowReport(path)
	require.NoError(t, err)
	assert.Equal(t, "env/snow.json", sr.Output)
	assert.Equal(t, 7, sr.Workers)
	assert.Equal(t, "env/history.db", sr.HistoryDB)
}

func TestNewSnowReportErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewSnowReport(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := NewSnowReport(writeConfig(t, "workers: [1, 2"))
		require.Error(t, err)
	})

	t.Run("invalid resort", func(t *testing.T) {
		_, err := NewSnowReport(writeConfig(t, "resorts:\n  - name: Nowhere\n    lat: 123\n    lon: 0\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("invalid env override", func(t *testing.T) {
		t.Setenv("SNOWREPORT_WORKERS", "many")
		_, err := NewSnowReport("")
		require.Error(t, err)
	})
}

func TestResortValidate(t *testing.T) {
	for _, r := range DefaultResorts() {
		assert.NoError(t, r.Validate(), r.Name)
	}
	assert.Error(t, Resort{Lat: 1, Lon: 1}.Validate())
	assert.Error(t, Resort{Name: "x", Lat: 0, Lon: 181}.Validate())
}
