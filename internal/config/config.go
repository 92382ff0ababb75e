package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Application Application `yaml:"application"`
	Data        Data        `yaml:"data"`
	Dashboard   Dashboard   `yaml:"dashboard"`
}

type Application struct {
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
	LogLevel string `yaml:"log_level"`
}

type Data struct {
	Dir           string `yaml:"dir"`
	DefaultFile   string `yaml:"default_file"`
	TopBrands     int    `yaml:"top_brands"`
	HistogramBins int    `yaml:"histogram_bins"`
	SampleRows    int    `yaml:"sample_rows"`
}

type Dashboard struct {
	Title         string        `yaml:"title"`
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	Theme         string        `yaml:"theme"`
	AutoRefresh   bool          `yaml:"auto_refresh"`
	RefreshMinGap time.Duration `yaml:"refresh_min_gap"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Application: Application{
			Name:     "event-dashboard",
			Version:  "1.0.0",
			LogLevel: "info",
		},
		Data: Data{
			Dir:           ".",
			DefaultFile:   "2019-Oct.csv",
			TopBrands:     10,
			HistogramBins: 50,
			SampleRows:    5,
		},
		Dashboard: Dashboard{
			Title:         "E-commerce Analytics Dashboard",
			Width:         1600,
			Height:        1000,
			Theme:         "dark",
			AutoRefresh:   true,
			RefreshMinGap: 200 * time.Millisecond,
		},
	}
}

// Load reads, validates and returns the YAML configuration at path. Missing
// fields fall back to Default values; a missing file returns the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := Validate(data); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// applyEnvOverrides lets the environment take precedence over the file for
// the handful of settings that change between machines.
func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.Application.LogLevel = v
	}
	if v, ok := os.LookupEnv("DATA_DIR"); ok && v != "" {
		cfg.Data.Dir = v
	}
	if v, ok := os.LookupEnv("DEFAULT_FILE"); ok && v != "" {
		cfg.Data.DefaultFile = v
	}
}
