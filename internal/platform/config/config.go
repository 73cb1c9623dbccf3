package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	errInvalidConfig = errors.New("config: invalid configuration")
	errReadFile      = errors.New("config: cannot read CONFIG_FILE")
)

// Config holds all application configuration. Values come from built-in
// defaults, then an optional YAML file named by CONFIG_FILE, then
// environment variables, in increasing order of precedence.
type Config struct {
	Port                 string        `yaml:"port" validate:"required,port"`
	LogLevel             string        `yaml:"log_level" validate:"loglevel"`
	LogFile              string        `yaml:"log_file"`
	FetchTimeout         time.Duration `yaml:"fetch_timeout" validate:"gt=0"`
	AllowPrivateNetworks bool          `yaml:"allow_private_networks"`
	BatchConcurrency     int           `yaml:"batch_concurrency" validate:"min=1,max=100"`
	CORSAllowedOrigins   []string      `yaml:"cors_allowed_origins" validate:"dive,required"`
	ShutdownTimeout      time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Port:               "8080",
		LogLevel:           "ERROR",
		FetchTimeout:       30 * time.Second,
		BatchConcurrency:   10,
		CORSAllowedOrigins: []string{"*"},
		ShutdownTimeout:    15 * time.Second,
	}
}

// Load reads configuration from CONFIG_FILE (if set) and environment
// variables on top of the defaults, then validates the result.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}

	cfg.applyEnv()

	return cfg, cfg.validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errReadFile, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: %s: %w", errInvalidConfig, path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("LOG_FILE", c.LogFile)
	c.FetchTimeout = getEnvAsDuration("FETCH_TIMEOUT", c.FetchTimeout)
	c.AllowPrivateNetworks = getEnvAsBool("ALLOW_PRIVATE_NETWORKS", c.AllowPrivateNetworks)
	c.BatchConcurrency = getEnvAsInt("BATCH_CONCURRENCY", c.BatchConcurrency)
	c.CORSAllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", c.CORSAllowedOrigins)
	c.ShutdownTimeout = getEnvAsDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)
}

func (c Config) validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	_ = validate.RegisterValidation("port", func(fl validator.FieldLevel) bool {
		port, err := strconv.Atoi(fl.Field().String())
		return err == nil && port >= 1 && port <= 65535
	})
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToUpper(fl.Field().String()) {
		case "", "DEBUG", "INFO", "WARN", "ERROR":
			return true
		}
		return false
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msg := fmt.Sprintf("%s failed %q", e.Field(), e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (%s)", e.Param())
		}
		msgs = append(msgs, fmt.Sprintf("%s, got %v", msg, e.Value()))
	}
	return fmt.Errorf("%w: %s", errInvalidConfig, strings.Join(msgs, "; "))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsBool(key string, fallback bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping blank entries.
func getEnvAsList(key string, fallback []string) []string {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
