package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
)

// ClassifierConfig holds the classification policy knobs that can be set from the environment.
// A rules file, when given, is applied on top of these.
type ClassifierConfig struct {
	RulesFile              string   `env:"CLASSIFIER_RULES_FILE"`
	AllowGradeConversion   bool     `env:"CLASSIFIER_ALLOW_GRADE_CONVERSION" envDefault:"true"`
	DefaultToPassOnMissing bool     `env:"CLASSIFIER_DEFAULT_TO_PASS" envDefault:"true"`
	StrictColumnMatching   bool     `env:"CLASSIFIER_STRICT_COLUMNS" envDefault:"false"`
	CustomFieldMappings    []string `env:"CLASSIFIER_CUSTOM_FIELDS" envSeparator:","`
}

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"local"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Classifier ClassifierConfig

	BatchWorkers int `env:"BATCH_WORKERS" envDefault:"4"`
	HealthPort   int `env:"HEALTH_PORT" envDefault:"8080"`

	// Watch mode
	InboxDir     string        `env:"INBOX_DIR" envDefault:"./inbox"`
	OutboxDir    string        `env:"OUTBOX_DIR" envDefault:"./outbox"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"10s"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	applyLegacyAliases(cfg)

	return cfg, nil
}

// Level returns the configured zerolog level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return lvl
}

// ProcessingConfig merges defaults, environment settings and the rules file, in that order.
func (c *Config) ProcessingConfig() (domain.ProcessingConfig, error) {
	allow := c.Classifier.AllowGradeConversion
	toPass := c.Classifier.DefaultToPassOnMissing
	strict := c.Classifier.StrictColumnMatching

	override := domain.ConfigOverride{
		AllowGradeConversion:   &allow,
		DefaultToPassOnMissing: &toPass,
		StrictColumnMatching:   &strict,
	}

	if fields := trimNonEmpty(c.Classifier.CustomFieldMappings); len(fields) > 0 {
		override.CustomFieldMappings = fields
	}

	pc := domain.DefaultProcessingConfig().Apply(override)

	if c.Classifier.RulesFile == "" {
		return pc, nil
	}

	rules, err := LoadRules(c.Classifier.RulesFile)
	if err != nil {
		return domain.ProcessingConfig{}, err
	}

	return pc.Apply(rules), nil
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))

	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// applyLegacyAliases honors the variable names used by the import scripts this tool replaced.
// The canonical names win when both are set.
func applyLegacyAliases(cfg *Config) {
	if !hasEnv("CLASSIFIER_DEFAULT_TO_PASS") {
		setBoolFromEnv("DEFAULT_TO_PASS_ON_MISSING", &cfg.Classifier.DefaultToPassOnMissing)
	}

	if !hasEnv("CLASSIFIER_STRICT_COLUMNS") {
		setBoolFromEnv("STRICT_COLUMN_MATCHING", &cfg.Classifier.StrictColumnMatching)
	}

	if !hasEnv("CLASSIFIER_RULES_FILE") {
		setStringFromEnv("ASSESSMENT_RULES_FILE", &cfg.Classifier.RulesFile)
	}

	if !hasEnv("BATCH_WORKERS") {
		setIntFromEnv("CLASSIFIER_WORKERS", &cfg.BatchWorkers)
	}
}

func hasEnv(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func setStringFromEnv(key string, target *string) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	val = strings.TrimSpace(val)
	if val == "" {
		return
	}

	*target = val
}

func setBoolFromEnv(key string, target *bool) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	parsed, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		return
	}

	*target = parsed
}

func setIntFromEnv(key string, target *int) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return
	}

	*target = parsed
}
