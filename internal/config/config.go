package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jjenkins/narou-reader/internal/service"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         string        `yaml:"port"`
	BaseURL      string        `yaml:"base_url"`
	SearchURL    string        `yaml:"search_url"`
	UserAgent    string        `yaml:"user_agent"`
	RequestDelay time.Duration `yaml:"request_delay"`
	Timeout      time.Duration `yaml:"timeout"`
	LogLevel     string        `yaml:"log_level"`
	LogFormat    string        `yaml:"log_format"`
}

// Options carries command-line overrides. Zero values leave the loaded config untouched.
type Options struct {
	ConfigPath string
	Port       string
	LogLevel   string
}

func DefaultConfig() *Config {
	return &Config{
		Port:         "8000",
		BaseURL:      service.DefaultBaseURL,
		SearchURL:    service.DefaultSearchURL,
		UserAgent:    service.DefaultUserAgent,
		RequestDelay: 1 * time.Second,
		Timeout:      15 * time.Second,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load builds the effective config: defaults, then the YAML file (if any),
// then the environment (after .env files), then command-line overrides.
func Load(opts Options) (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	cfg := DefaultConfig()

	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv("NAROU_CONFIG")
	}
	if path != "" {
		if err := loadYAML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg, os.Getenv); err != nil {
		return nil, err
	}
	mergeOptions(cfg, opts)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadYAML(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, cfg)
}

func applyEnv(c *Config, getenv func(string) string) error {
	if v := getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := getenv("NAROU_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := getenv("NAROU_SEARCH_URL"); v != "" {
		c.SearchURL = v
	}
	if v := getenv("NAROU_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := getenv("NAROU_REQUEST_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid NAROU_REQUEST_DELAY: %w", err)
		}
		c.RequestDelay = d
	}
	if v := getenv("NAROU_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid NAROU_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := getenv("NAROU_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("NAROU_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	return nil
}

func mergeOptions(c *Config, o Options) {
	if o.Port != "" {
		c.Port = o.Port
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("port must not be empty"))
	}
	if c.BaseURL == "" {
		errs = append(errs, errors.New("base_url must not be empty"))
	}
	if c.SearchURL == "" {
		errs = append(errs, errors.New("search_url must not be empty"))
	}
	if c.RequestDelay < 0 {
		errs = append(errs, errors.New("request_delay must not be negative"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log_format %q", c.LogFormat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ClientOptions maps the config onto the upstream client's options
func (c *Config) ClientOptions(logger *slog.Logger) service.ClientOptions {
	return service.ClientOptions{
		UserAgent:    c.UserAgent,
		Timeout:      c.Timeout,
		RequestDelay: c.RequestDelay,
		Logger:       logger,
	}
}

// YAML renders the effective config in the same shape the config file uses
func (c *Config) YAML() (string, error) {
	out := map[string]string{
		"port":          c.Port,
		"base_url":      c.BaseURL,
		"search_url":    c.SearchURL,
		"user_agent":    c.UserAgent,
		"request_delay": c.RequestDelay.String(),
		"timeout":       c.Timeout.String(),
		"log_level":     c.LogLevel,
		"log_format":    c.LogFormat,
	}
	b, err := yaml.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
}

// NewLogger builds the application logger described by the config
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(c.LogFormat) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
