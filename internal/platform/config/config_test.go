package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
	apperrors "github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/errors"
)

// Test environment variable keys.
const (
	testEnvAppEnv       = "APP_ENV"
	testEnvLogLevel     = "LOG_LEVEL"
	testEnvRulesFile    = "CLASSIFIER_RULES_FILE"
	testEnvDefaultPass  = "CLASSIFIER_DEFAULT_TO_PASS"
	testEnvStrict       = "CLASSIFIER_STRICT_COLUMNS"
	testEnvCustomFields = "CLASSIFIER_CUSTOM_FIELDS"
	testEnvWorkers      = "BATCH_WORKERS"
	testEnvPoll         = "POLL_INTERVAL"
)

const (
	testErrLoad         = "Load() error = %v"
	testErrProcessing   = "ProcessingConfig() error = %v"
	testDefaultEnv      = "local"
	testDefaultInboxDir = "./inbox"
)

// clearEnv unsets keys for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func clearAll(t *testing.T) {
	t.Helper()

	clearEnv(t,
		testEnvAppEnv, testEnvLogLevel, testEnvRulesFile, testEnvDefaultPass, testEnvStrict,
		testEnvCustomFields, testEnvWorkers, testEnvPoll, "CLASSIFIER_ALLOW_GRADE_CONVERSION",
		"DEFAULT_TO_PASS_ON_MISSING", "STRICT_COLUMN_MATCHING", "ASSESSMENT_RULES_FILE", "CLASSIFIER_WORKERS",
	)
}

func TestLoad_Defaults(t *testing.T) {
	clearAll(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf(testErrLoad, err)
	}

	if cfg.AppEnv != testDefaultEnv {
		t.Errorf("AppEnv default = %q, want %q", cfg.AppEnv, testDefaultEnv)
	}

	if cfg.BatchWorkers != 4 {
		t.Errorf("BatchWorkers default = %d, want %d", cfg.BatchWorkers, 4)
	}

	if cfg.PollInterval != 10*time.Second {
		t.Errorf("PollInterval default = %v, want %v", cfg.PollInterval, 10*time.Second)
	}

	if cfg.InboxDir != testDefaultInboxDir {
		t.Errorf("InboxDir default = %q, want %q", cfg.InboxDir, testDefaultInboxDir)
	}

	if !cfg.Classifier.DefaultToPassOnMissing || !cfg.Classifier.AllowGradeConversion {
		t.Error("classifier booleans should default to true")
	}

	if cfg.Classifier.StrictColumnMatching {
		t.Error("StrictColumnMatching should default to false")
	}
}

func TestLoad_CustomFields(t *testing.T) {
	clearAll(t)
	t.Setenv(testEnvCustomFields, "Outcome Code, Result ,,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf(testErrLoad, err)
	}

	pc, err := cfg.ProcessingConfig()
	if err != nil {
		t.Fatalf(testErrProcessing, err)
	}

	want := []string{"Outcome Code", "Result"}
	if len(pc.CustomFieldMappings) != len(want) {
		t.Fatalf("CustomFieldMappings = %v, want %v", pc.CustomFieldMappings, want)
	}

	for i := range want {
		if pc.CustomFieldMappings[i] != want[i] {
			t.Errorf("CustomFieldMappings[%d] = %q, want %q", i, pc.CustomFieldMappings[i], want[i])
		}
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	clearAll(t)
	t.Setenv(testEnvStrict, "sometimes")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid CLASSIFIER_STRICT_COLUMNS")
	}
}

func TestLoad_LegacyAliases(t *testing.T) {
	clearAll(t)
	t.Setenv("DEFAULT_TO_PASS_ON_MISSING", "false")
	t.Setenv("CLASSIFIER_WORKERS", "9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf(testErrLoad, err)
	}

	if cfg.Classifier.DefaultToPassOnMissing {
		t.Error("legacy DEFAULT_TO_PASS_ON_MISSING=false was ignored")
	}

	if cfg.BatchWorkers != 9 {
		t.Errorf("BatchWorkers = %d, want 9", cfg.BatchWorkers)
	}
}

func TestLoad_CanonicalBeatsAlias(t *testing.T) {
	clearAll(t)
	t.Setenv(testEnvDefaultPass, "true")
	t.Setenv("DEFAULT_TO_PASS_ON_MISSING", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf(testErrLoad, err)
	}

	if !cfg.Classifier.DefaultToPassOnMissing {
		t.Error("alias overrode canonical CLASSIFIER_DEFAULT_TO_PASS")
	}
}

func TestConfig_Level(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.in}
			if got := cfg.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProcessingConfig_RulesFileOverridesEnv(t *testing.T) {
	clearAll(t)

	path := filepath.Join(t.TempDir(), "rules.yaml")
	rules := []byte("default_to_pass_on_missing: false\ngrade_mapping:\n  MERIT: PASS\n  REFER: FAIL\n")

	if err := os.WriteFile(path, rules, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	t.Setenv(testEnvRulesFile, path)
	t.Setenv(testEnvDefaultPass, "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf(testErrLoad, err)
	}

	pc, err := cfg.ProcessingConfig()
	if err != nil {
		t.Fatalf(testErrProcessing, err)
	}

	if pc.DefaultToPassOnMissing {
		t.Error("rules file should override the environment")
	}

	if pc.GradeMapping["REFER"] != domain.StatusFail || len(pc.GradeMapping) != 2 {
		t.Errorf("GradeMapping = %v, want MERIT/REFER only", pc.GradeMapping)
	}

	if !pc.AllowGradeConversion {
		t.Error("AllowGradeConversion should keep its default when the rules file omits it")
	}
}

func TestProcessingConfig_MissingRulesFile(t *testing.T) {
	cfg := &Config{Classifier: ClassifierConfig{RulesFile: filepath.Join(t.TempDir(), "absent.yaml")}}

	_, err := cfg.ProcessingConfig()
	if !errors.Is(err, apperrors.ErrRulesFile) {
		t.Errorf("ProcessingConfig() error = %v, want %v", err, apperrors.ErrRulesFile)
	}
}
