package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SPOT_ADVISOR_REGION",
		"AWS_REGION",
		"SPOT_ADVISOR_MIN_SAVINGS",
		"SPOT_ADVISOR_MAX_INTERRUPTION",
		"SPOT_ADVISOR_MIN_SCORE",
		"SPOT_ADVISOR_MAX_RESULTS",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Region != "us-east-1" {
		t.Errorf("Region = %q, want us-east-1", cfg.Region)
	}
	if cfg.Thresholds.MinSavingsPercent != 15 {
		t.Errorf("MinSavingsPercent = %v, want 15", cfg.Thresholds.MinSavingsPercent)
	}
	if cfg.Thresholds.MaxInterruptionRate != 0.15 {
		t.Errorf("MaxInterruptionRate = %v, want 0.15", cfg.Thresholds.MaxInterruptionRate)
	}
	if cfg.Thresholds.MinScore != 0.4 {
		t.Errorf("MinScore = %v, want 0.4", cfg.Thresholds.MinScore)
	}
	if cfg.Thresholds.AZSaturation != 3 {
		t.Errorf("AZSaturation = %d, want 3", cfg.Thresholds.AZSaturation)
	}
	if cfg.Lookback.AnalysisDays != 7 {
		t.Errorf("AnalysisDays = %d, want 7", cfg.Lookback.AnalysisDays)
	}
	if cfg.Lookback.ProbeDays != 2 {
		t.Errorf("ProbeDays = %d, want 2", cfg.Lookback.ProbeDays)
	}
	if cfg.MaxResults != 5 {
		t.Errorf("MaxResults = %d, want 5", cfg.MaxResults)
	}
	if cfg.Parallelism != 1 {
		t.Errorf("Parallelism = %d, want 1", cfg.Parallelism)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
region: eu-west-1
thresholds:
  min_savings_percent: 25
  max_interruption_rate: 0.1
  min_score: 0.6
lookback:
  analysis_days: 14
  probe_days: 3
max_results: 8
parallelism: 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Region != "eu-west-1" {
		t.Errorf("Region = %q, want eu-west-1", cfg.Region)
	}
	if cfg.Thresholds.MinSavingsPercent != 25 {
		t.Errorf("MinSavingsPercent = %v, want 25", cfg.Thresholds.MinSavingsPercent)
	}
	if cfg.Thresholds.MaxInterruptionRate != 0.1 {
		t.Errorf("MaxInterruptionRate = %v, want 0.1", cfg.Thresholds.MaxInterruptionRate)
	}
	if cfg.Lookback.AnalysisDays != 14 {
		t.Errorf("AnalysisDays = %d, want 14", cfg.Lookback.AnalysisDays)
	}
	if cfg.MaxResults != 8 {
		t.Errorf("MaxResults = %d, want 8", cfg.MaxResults)
	}
	if cfg.Parallelism != 4 {
		t.Errorf("Parallelism = %d, want 4", cfg.Parallelism)
	}
	// Unset fields still pick up defaults.
	if cfg.Thresholds.AZSaturation != 3 {
		t.Errorf("AZSaturation = %d, want 3", cfg.Thresholds.AZSaturation)
	}
}

func TestLoadPartialFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "region: ap-south-1\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Region != "ap-south-1" {
		t.Errorf("Region = %q, want ap-south-1", cfg.Region)
	}
	if cfg.Thresholds.MinSavingsPercent != 15 {
		t.Errorf("MinSavingsPercent = %v, want default 15", cfg.Thresholds.MinSavingsPercent)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "region: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error, want parse failure")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPOT_ADVISOR_REGION", "us-west-2")
	t.Setenv("SPOT_ADVISOR_MIN_SAVINGS", "30")
	t.Setenv("SPOT_ADVISOR_MAX_RESULTS", "12")

	path := writeConfig(t, `
region: eu-west-1
thresholds:
  min_savings_percent: 25
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Region != "us-west-2" {
		t.Errorf("Region = %q, want us-west-2", cfg.Region)
	}
	if cfg.Thresholds.MinSavingsPercent != 30 {
		t.Errorf("MinSavingsPercent = %v, want 30", cfg.Thresholds.MinSavingsPercent)
	}
	if cfg.MaxResults != 12 {
		t.Errorf("MaxResults = %d, want 12", cfg.MaxResults)
	}
}

func TestAWSRegionFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_REGION", "ca-central-1")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Region != "ca-central-1" {
		t.Errorf("Region = %q, want ca-central-1", cfg.Region)
	}

	// SPOT_ADVISOR_REGION wins over AWS_REGION.
	t.Setenv("SPOT_ADVISOR_REGION", "sa-east-1")
	cfg, err = Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Errorf("Region = %q, want sa-east-1", cfg.Region)
	}
}

func TestInvalidEnvValuesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPOT_ADVISOR_MIN_SAVINGS", "not-a-number")
	t.Setenv("SPOT_ADVISOR_MAX_RESULTS", "3.5")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Thresholds.MinSavingsPercent != 15 {
		t.Errorf("MinSavingsPercent = %v, want default 15", cfg.Thresholds.MinSavingsPercent)
	}
	if cfg.MaxResults != 5 {
		t.Errorf("MaxResults = %d, want default 5", cfg.MaxResults)
	}
}
