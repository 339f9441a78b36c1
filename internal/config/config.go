package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/passforge/passforge-go/internal/breach"
)

type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFormat string

	BreachAPIURL  string
	BreachTimeout time.Duration
	BreachPadding bool
	BreachRPS     float64
	BreachBurst   int

	StaticDir       string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// fileConfig mirrors the optional YAML file named by CONFIG_FILE.
type fileConfig struct {
	Port            string   `yaml:"port"`
	Env             string   `yaml:"env"`
	LogLevel        string   `yaml:"log_level"`
	LogFormat       string   `yaml:"log_format"`
	StaticDir       string   `yaml:"static_dir"`
	CORSOrigins     []string `yaml:"cors_origins"`
	ShutdownTimeout string   `yaml:"shutdown_timeout"`
	Breach          struct {
		APIURL  string   `yaml:"api_url"`
		Timeout string   `yaml:"timeout"`
		Padding *bool    `yaml:"padding"`
		RPS     *float64 `yaml:"rps"`
		Burst   *int     `yaml:"burst"`
	} `yaml:"breach"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	b := breach.DefaultConfig()
	return Config{
		Port:            "8080",
		Env:             "development",
		LogLevel:        "info",
		BreachAPIURL:    b.BaseURL,
		BreachTimeout:   b.Timeout,
		BreachPadding:   b.Padding,
		BreachRPS:       b.RPS,
		BreachBurst:     b.Burst,
		StaticDir:       "../frontend",
		CORSOrigins:     []string{"*"},
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// CONFIG_FILE, then environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
		if cfg.IsProduction() {
			cfg.LogFormat = "json"
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with ENV=production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Breach returns the breach client settings.
func (c Config) Breach() breach.Config {
	return breach.Config{
		BaseURL:   c.BreachAPIURL,
		Timeout:   c.BreachTimeout,
		Padding:   c.BreachPadding,
		UserAgent: "passforge",
		RPS:       c.BreachRPS,
		Burst:     c.BreachBurst,
	}
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.Port, fc.Port)
	setString(&cfg.Env, fc.Env)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.StaticDir, fc.StaticDir)
	setString(&cfg.BreachAPIURL, fc.Breach.APIURL)
	if len(fc.CORSOrigins) > 0 {
		cfg.CORSOrigins = fc.CORSOrigins
	}
	if fc.Breach.Padding != nil {
		cfg.BreachPadding = *fc.Breach.Padding
	}
	if fc.Breach.RPS != nil {
		cfg.BreachRPS = *fc.Breach.RPS
	}
	if fc.Breach.Burst != nil {
		cfg.BreachBurst = *fc.Breach.Burst
	}
	if err := setDuration(&cfg.BreachTimeout, "breach.timeout", fc.Breach.Timeout); err != nil {
		return err
	}
	return setDuration(&cfg.ShutdownTimeout, "shutdown_timeout", fc.ShutdownTimeout)
}

func applyEnv(cfg *Config) error {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.BreachAPIURL = getEnv("BREACH_API_URL", cfg.BreachAPIURL)
	cfg.StaticDir = getEnv("STATIC_DIR", cfg.StaticDir)

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	if err := setDuration(&cfg.BreachTimeout, "BREACH_TIMEOUT", os.Getenv("BREACH_TIMEOUT")); err != nil {
		return err
	}
	if err := setDuration(&cfg.ShutdownTimeout, "SHUTDOWN_TIMEOUT", os.Getenv("SHUTDOWN_TIMEOUT")); err != nil {
		return err
	}
	if v := os.Getenv("BREACH_PADDING"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid BREACH_PADDING %q: %w", v, err)
		}
		cfg.BreachPadding = b
	}
	if v := os.Getenv("BREACH_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid BREACH_RPS %q: %w", v, err)
		}
		cfg.BreachRPS = f
	}
	if v := os.Getenv("BREACH_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BREACH_BURST %q: %w", v, err)
		}
		cfg.BreachBurst = n
	}
	return nil
}

func (c Config) validate() error {
	if c.Port == "" {
		return errors.New("port must not be empty")
	}
	if c.BreachTimeout <= 0 {
		return errors.New("breach timeout must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	if c.BreachRPS < 0 {
		return errors.New("breach rps must not be negative")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, name, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*dst = d
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
