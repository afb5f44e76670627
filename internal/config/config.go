package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"textsum/internal/domain"
	"textsum/internal/scoring"
)

// SummarizerConfig configures the extractive summarizer and its default budget.
type SummarizerConfig struct {
	Language     string                `yaml:"language"`
	Ratio        float64               `yaml:"ratio"`
	MaxSentences int                   `yaml:"max_sentences"`
	Weights      scoring.Weights       `yaml:"weights"`
	Length       scoring.LengthProfile `yaml:"length"`
	// MinChars is the input length below which callers warn about weak results.
	MinChars int `yaml:"min_chars"`
}

// Request returns the configured summary budget.
func (c SummarizerConfig) Request() domain.SummaryRequest {
	return domain.SummaryRequest{Ratio: c.Ratio, MaxSentences: c.MaxSentences}
}

// ServiceConfig configures batch summarization of files.
type ServiceConfig struct {
	Concurrency int      `yaml:"concurrency"`
	Extensions  []string `yaml:"extensions"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Service    ServiceConfig    `yaml:"service"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Preset is a named summary budget.
type Preset struct {
	Name         string
	Ratio        float64
	MaxSentences int
}

// Request returns the preset as a summary request.
func (p Preset) Request() domain.SummaryRequest {
	return domain.SummaryRequest{Ratio: p.Ratio, MaxSentences: p.MaxSentences}
}

// Presets are the built-in short, medium and long budgets.
var Presets = []Preset{
	{Name: "short", Ratio: 0.2, MaxSentences: 3},
	{Name: "medium", Ratio: 0.3, MaxSentences: 5},
	{Name: "long", Ratio: 0.4, MaxSentences: 7},
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Keys missing from the file keep their default values.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/textsum/config.yaml.
// If neither exists, it writes defaults to ~/.config/textsum/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv overrides settings from TEXTSUM_* environment variables.
func ApplyEnv(cfg *AppConfig) error {
	if v := os.Getenv("TEXTSUM_RATIO"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("TEXTSUM_RATIO: %w", err)
		}
		cfg.Summarizer.Ratio = f
	}
	if v := os.Getenv("TEXTSUM_MAX_SENTENCES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TEXTSUM_MAX_SENTENCES: %w", err)
		}
		cfg.Summarizer.MaxSentences = n
	}
	if v := os.Getenv("TEXTSUM_LANGUAGE"); v != "" {
		cfg.Summarizer.Language = v
	}
	if v := os.Getenv("TEXTSUM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// Validate checks the summarizer settings.
func (c *AppConfig) Validate() error {
	if err := c.Summarizer.Request().Validate(); err != nil {
		return err
	}
	if err := c.Summarizer.Weights.Validate(); err != nil {
		return err
	}
	return c.Summarizer.Length.Validate()
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textsum", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Summarizer: SummarizerConfig{
			Language:     "english",
			Ratio:        0.3,
			MaxSentences: 5,
			Weights:      scoring.DefaultWeights(),
			Length:       scoring.DefaultLengthProfile(),
			MinChars:     100,
		},
		Service: ServiceConfig{Concurrency: 4, Extensions: []string{".txt", ".md"}},
		Logging: LoggingConfig{Level: "info"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Summarizer.Language == "" {
		cfg.Summarizer.Language = "english"
	}
	if cfg.Service.Concurrency <= 0 {
		cfg.Service.Concurrency = 4
	}
	if len(cfg.Service.Extensions) == 0 {
		cfg.Service.Extensions = []string{".txt", ".md"}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
