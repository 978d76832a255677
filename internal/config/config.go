// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"tariffbill/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Billing contains billing defaults
	Billing BillingConfig `json:"billing"`

	// Input contains usage-data input settings
	Input InputConfig `json:"input"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// BillingConfig contains billing-related settings
type BillingConfig struct {
	// MonthlyFee is the fixed per-billing-period charge in currency units,
	// added once to every bill regardless of consumption
	MonthlyFee float64 `json:"monthly_fee"`

	// MaxMonthlyKWH caps the top consumption tier. It acts as the
	// effectively-unbounded upper boundary of tier 3.
	MaxMonthlyKWH float64 `json:"max_monthly_kwh"`
}

// InputConfig contains usage-data input settings
type InputConfig struct {
	// UsageFile is the default usage spreadsheet path
	UsageFile string `json:"usage_file"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-tier / per-window breakdown
	ShowDetails bool `json:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Billing: BillingConfig{
			MonthlyFee:    10.0,
			MaxMonthlyKWH: 10000, // 10 MWh
		},
		Input: InputConfig{
			UsageFile: "sample_usage_data_month.csv",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
