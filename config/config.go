package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradelog/discipline"
)

// Config is the complete engine configuration.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Journal JournalConfig `json:"journal" yaml:"journal"`

	// InstrumentsFile optionally points to a YAML instrument catalog;
	// empty means the compiled-in defaults.
	InstrumentsFile string `json:"instruments_file,omitempty" yaml:"instruments_file,omitempty"`

	// Rates is an offline conversion-rate table keyed "FROM/TO", used
	// when no live rate provider is wired in. Missing entries degrade
	// cross-currency precision, they do not fail the trade.
	Rates map[string]float64 `json:"rates,omitempty" yaml:"rates,omitempty"`
}

// AccountConfig holds the account identity and its risk policy.
type AccountConfig struct {
	ID                string  `json:"id" yaml:"id"`
	Currency          string  `json:"currency" yaml:"currency"`
	StartBalance      float64 `json:"start_balance" yaml:"start_balance"`
	MaxRiskPct        float64 `json:"max_risk_pct" yaml:"max_risk_pct"`
	TargetRewardRatio float64 `json:"target_reward_ratio" yaml:"target_reward_ratio"`
}

// Profile converts the account settings into the read-only risk
// profile the scoring engine grades against.
func (a AccountConfig) Profile() discipline.Profile {
	return discipline.Profile{
		MaxRiskPct:        a.MaxRiskPct,
		TargetRewardRatio: a.TargetRewardRatio,
		AccountCurrency:   a.Currency,
	}
}

// JournalConfig holds persistence settings.
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// LoadFromFile loads configuration from a file (YAML first, JSON as
// fallback).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on
// extension).
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if len(c.Account.Currency) != 3 {
		return fmt.Errorf("account.currency must be a 3-letter code")
	}
	if c.Account.StartBalance < 0 {
		return fmt.Errorf("account.start_balance must not be negative")
	}
	if c.Account.MaxRiskPct <= 0 {
		return fmt.Errorf("account.max_risk_pct must be positive")
	}
	if c.Account.TargetRewardRatio <= 0 {
		return fmt.Errorf("account.target_reward_ratio must be positive")
	}
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:                "ACCT-001",
			Currency:          "USD",
			StartBalance:      10_000,
			MaxRiskPct:        1.0,
			TargetRewardRatio: 2.0,
		},
		Journal: JournalConfig{
			DBPath: "./tradelog.sqlite",
		},
	}
}
