// Package config loads the optional spot-advisor configuration file.
// Precedence: built-in defaults < config file < environment variables;
// CLI flags override everything at the command layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the file format for ~/.spot-advisor.yaml.
type Config struct {
	Region string `yaml:"region"`

	Thresholds struct {
		MinSavingsPercent   float64 `yaml:"min_savings_percent"`
		MaxInterruptionRate float64 `yaml:"max_interruption_rate"`
		MinScore            float64 `yaml:"min_score"`
		AZSaturation        int     `yaml:"az_saturation"`
	} `yaml:"thresholds"`

	Lookback struct {
		AnalysisDays int `yaml:"analysis_days"`
		ProbeDays    int `yaml:"probe_days"`
	} `yaml:"lookback"`

	MaxResults  int `yaml:"max_results"`
	Parallelism int `yaml:"parallelism"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spot-advisor.yaml")
}

// Load reads configuration from the given path (DefaultPath when empty).
// A missing file is not an error: defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultPath()
	}

	var cfg Config
	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	mergeEnvVars(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

func mergeEnvVars(cfg *Config) {
	if v := os.Getenv("SPOT_ADVISOR_REGION"); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" && cfg.Region == "" {
		cfg.Region = v
	}
	if v := os.Getenv("SPOT_ADVISOR_MIN_SAVINGS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Thresholds.MinSavingsPercent = f
		}
	}
	if v := os.Getenv("SPOT_ADVISOR_MAX_INTERRUPTION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Thresholds.MaxInterruptionRate = f
		}
	}
	if v := os.Getenv("SPOT_ADVISOR_MIN_SCORE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Thresholds.MinScore = f
		}
	}
	if v := os.Getenv("SPOT_ADVISOR_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxResults = n
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.Thresholds.MinSavingsPercent == 0 {
		cfg.Thresholds.MinSavingsPercent = 15
	}
	if cfg.Thresholds.MaxInterruptionRate == 0 {
		cfg.Thresholds.MaxInterruptionRate = 0.15
	}
	if cfg.Thresholds.MinScore == 0 {
		cfg.Thresholds.MinScore = 0.4
	}
	if cfg.Thresholds.AZSaturation == 0 {
		cfg.Thresholds.AZSaturation = 3
	}
	if cfg.Lookback.AnalysisDays == 0 {
		cfg.Lookback.AnalysisDays = 7
	}
	if cfg.Lookback.ProbeDays == 0 {
		cfg.Lookback.ProbeDays = 2
	}
	if cfg.MaxResults == 0 {
		cfg.MaxResults = 5
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = 1
	}
}
