package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/jjCode01/xer-pro/internal/importer"
	"github.com/jjCode01/xer-pro/internal/schedule"
	"github.com/jjCode01/xer-pro/internal/warning"
	"github.com/joho/godotenv"
)

// DefaultEnvFiles are loaded from the working directory when present.
var DefaultEnvFiles = []string{".env", ".env.local"}

// ThresholdOptions holds the analysis breakpoints, in work days.
type ThresholdOptions struct {
	NearCriticalDays int `env:"XERPRO_NEAR_CRITICAL_DAYS" envDefault:"20"`
	HighFloatDays    int `env:"XERPRO_HIGH_FLOAT_DAYS" envDefault:"50"`
	LongLagDays      int `env:"XERPRO_LONG_LAG_DAYS" envDefault:"10"`
	LongDurationDays int `env:"XERPRO_LONG_DURATION_DAYS" envDefault:"20"`
}

// ClassifierOptions replace the built-in keyword lists when set.
type ClassifierOptions struct {
	AdminKeywords     []string `env:"XERPRO_ADMIN_KEYWORDS" envSeparator:","`
	ConstructionVerbs []string `env:"XERPRO_CONSTRUCTION_VERBS" envSeparator:","`
}

type Config struct {
	LogLevel   string `env:"XERPRO_LOG_LEVEL" envDefault:"warn"`
	LogCalls   bool   `env:"XERPRO_LOG_CALLS" envDefault:"false"`
	NoColor    bool   `env:"XERPRO_NO_COLOR" envDefault:"false"`
	Encoding   string `env:"XERPRO_XER_ENCODING" envDefault:"cp1252"`
	Thresholds ThresholdOptions
	Classifier ClassifierOptions
}

// LoadEnv loads the env files that exist, without overriding variables
// already set, and returns how many were loaded.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Load reads the env files and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if _, err := LoadEnv(envFiles); err != nil {
		return nil, fmt.Errorf("loading env files: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in settings, ignoring the environment.
func Default() *Config {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

// Validate returns every invalid setting joined into one error.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if _, err := importer.ParseEncoding(c.Encoding); err != nil {
		errs = append(errs, err)
	}

	th := c.Thresholds
	if th.NearCriticalDays < 0 {
		errs = append(errs, fmt.Errorf("near critical days must be non-negative, got %d", th.NearCriticalDays))
	}
	if th.HighFloatDays <= th.NearCriticalDays {
		errs = append(errs, fmt.Errorf("high float days (%d) must exceed near critical days (%d)", th.HighFloatDays, th.NearCriticalDays))
	}
	if th.LongLagDays <= 0 {
		errs = append(errs, fmt.Errorf("long lag days must be positive, got %d", th.LongLagDays))
	}
	if th.LongDurationDays <= 0 {
		errs = append(errs, fmt.Errorf("long duration days must be positive, got %d", th.LongDurationDays))
	}
	return errors.Join(errs...)
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

// XEREncoding returns the configured encoding, or cp1252 when invalid.
func (c *Config) XEREncoding() importer.Encoding {
	enc, err := importer.ParseEncoding(c.Encoding)
	if err != nil {
		return importer.EncodingCP1252
	}
	return enc
}

func (c *Config) FloatThresholds() schedule.FloatThresholds {
	return schedule.FloatThresholds{
		NearCritical: c.Thresholds.NearCriticalDays,
		HighFloat:    c.Thresholds.HighFloatDays,
	}
}

func (c *Config) WarningOptions() warning.Options {
	classifier := warning.DefaultClassifier()
	if kw := cleanList(c.Classifier.AdminKeywords); len(kw) > 0 {
		classifier.AdminKeywords = kw
	}
	if verbs := cleanList(c.Classifier.ConstructionVerbs); len(verbs) > 0 {
		classifier.ConstructionVerbs = verbs
	}
	return warning.Options{
		LongLagDays:      c.Thresholds.LongLagDays,
		LongDurationDays: c.Thresholds.LongDurationDays,
		Classifier:       classifier,
	}
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
