package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// ClosureRule marks recurring workplace closures. Dates matched by the
// expanded RRULE are hard-blocked for every slot.
type ClosureRule struct {
	RRule string `yaml:"rrule" validate:"required"`
	Label string `yaml:"label,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// HTTPAddr is the listen address of the API server
	HTTPAddr string `yaml:"httpAddr,omitempty"`

	// LookbackDays bounds the cross-period state fed into a solver
	// pass (e.g. "assigned yesterday").
	LookbackDays int `yaml:"lookbackDays" validate:"min=1,max=14"`

	ClosureRules []ClosureRule `yaml:"closureRules,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from roster_config.yaml.
// It looks for the config file in the current directory first, then in
// the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.ClosureRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in closureRules[%d]: %w", i, err)
		}
	}

	return nil
}

// ExpandClosures expands the closure rules over one month and returns
// the closed dates keyed as YYYY-MM-DD.
func (c *Config) ExpandClosures(year int, month time.Month) (map[string]bool, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	closed := make(map[string]bool)
	for i, rule := range c.ClosureRules {
		r, err := rrule.StrToRRule(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in closureRules[%d]: %w", i, err)
		}
		r.DTStart(start)
		for _, date := range r.Between(start, end, true) {
			closed[date.Format("2006-01-02")] = true
		}
	}
	return closed, nil
}

// findConfigFile searches for roster_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "roster_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
