package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-manpower/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScheduling_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadScheduling(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, config.DefaultScheduling(), cfg)
	assert.Equal(t, 0.6, cfg.Scoring.WorkloadWeight)
	assert.Equal(t, []string{"Loader"}, cfg.GenderExemptSections)
}

func TestLoadScheduling_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduling.yaml")
	body := `
workload_weight: 0.7
assessment_weight: 0.3
working_day_curve:
  period_days: 30
  target_days: 22
  boost: 1.1
  dampen_per_day: 0.1
  floor: 0.4
gender_exempt_sections: ["Loader", "Packing"]
bulk_concurrency: 8
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.LoadScheduling(path)

	require.NoError(t, err)
	assert.Equal(t, 0.7, cfg.Scoring.WorkloadWeight)
	assert.Equal(t, 0.3, cfg.Scoring.AssessmentWeight)
	assert.Equal(t, 22, cfg.Scoring.WorkingDayCurve.TargetDays)
	assert.Equal(t, 30, cfg.Scoring.WorkloadWindowDays)
	assert.Equal(t, 100.0, cfg.Scoring.Assessment.BlindTestMax)
	assert.Equal(t, []string{"Loader", "Packing"}, cfg.GenderExemptSections)
	assert.Equal(t, 8, cfg.BulkConcurrency)
}

func TestParseScheduling_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed yaml", body: "workload_weight: [1"},
		{name: "negative weight", body: "workload_weight: -1"},
		{name: "zero bulk concurrency", body: "bulk_concurrency: 0"},
		{name: "both weights zero", body: "workload_weight: 0\nassessment_weight: 0"},
		{name: "inverted rating range", body: "assessment:\n  blind_test_max: 100\n  rating_min: 5\n  rating_max: 1"},
		{name: "blank exempt section", body: "gender_exempt_sections: [\" \"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseScheduling([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("DB_NAME", "")

	cfg := config.FromEnv()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "manpower", cfg.DB.Name)
}
