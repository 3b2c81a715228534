package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jjCode01/xer-pro/internal/importer"
	"github.com/jjCode01/xer-pro/internal/schedule"
	"github.com/jjCode01/xer-pro/internal/warning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.LogCalls)
	assert.Equal(t, importer.EncodingCP1252, cfg.XEREncoding())
	assert.Equal(t, schedule.DefaultFloatThresholds(), cfg.FloatThresholds())
	assert.Equal(t, warning.DefaultOptions(), cfg.WarningOptions())

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("XERPRO_LOG_LEVEL", "debug")
	t.Setenv("XERPRO_XER_ENCODING", "utf8")
	t.Setenv("XERPRO_NEAR_CRITICAL_DAYS", "10")
	t.Setenv("XERPRO_HIGH_FLOAT_DAYS", "30")
	t.Setenv("XERPRO_LONG_LAG_DAYS", "5")
	t.Setenv("XERPRO_ADMIN_KEYWORDS", " Permit , ,RFI")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, importer.EncodingUTF8, cfg.XEREncoding())
	assert.Equal(t, schedule.FloatThresholds{NearCritical: 10, HighFloat: 30}, cfg.FloatThresholds())

	opts := cfg.WarningOptions()
	assert.Equal(t, 5, opts.LongLagDays)
	assert.Equal(t, 20, opts.LongDurationDays)
	assert.Equal(t, []string{"permit", "rfi"}, opts.Classifier.AdminKeywords)
	assert.Equal(t, warning.DefaultClassifier().ConstructionVerbs, opts.Classifier.ConstructionVerbs)
}

func TestLoad_ReportsEveryInvalidSetting(t *testing.T) {
	t.Setenv("XERPRO_LOG_LEVEL", "loud")
	t.Setenv("XERPRO_XER_ENCODING", "latin9")
	t.Setenv("XERPRO_HIGH_FLOAT_DAYS", "5")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, `invalid log level "loud"`)
	assert.ErrorContains(t, err, `unsupported xer encoding "latin9"`)
	assert.ErrorContains(t, err, "high float days (5) must exceed near critical days (20)")
}

func TestLoad_MalformedNumber(t *testing.T) {
	t.Setenv("XERPRO_LONG_LAG_DAYS", "ten")

	_, err := Load()
	assert.ErrorContains(t, err, "parsing environment")
}

func TestLoadEnv_ReadsExistingFilesOnly(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("XERPRO_LONG_DURATION_DAYS=44\n"), 0o644))
	// godotenv sets variables directly; register cleanup before it does.
	t.Setenv("XERPRO_LONG_DURATION_DAYS", "")
	require.NoError(t, os.Unsetenv("XERPRO_LONG_DURATION_DAYS"))

	cfg, err := Load(envFile, filepath.Join(dir, ".env.local"))
	require.NoError(t, err)
	assert.Equal(t, 44, cfg.Thresholds.LongDurationDays)
}

func TestLoadEnv_DoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("XERPRO_LONG_LAG_DAYS=44\n"), 0o644))
	t.Setenv("XERPRO_LONG_LAG_DAYS", "7")

	n, err := LoadEnv([]string{envFile})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "7", os.Getenv("XERPRO_LONG_LAG_DAYS"))
}

func TestDefault_IgnoresEnvironment(t *testing.T) {
	t.Setenv("XERPRO_NEAR_CRITICAL_DAYS", "5")
	t.Setenv("XERPRO_LOG_LEVEL", "debug")

	cfg := Default()
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, schedule.DefaultFloatThresholds(), cfg.FloatThresholds())
	assert.NoError(t, cfg.Validate())
}
