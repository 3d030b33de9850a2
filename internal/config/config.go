// Package config loads process settings from the environment.
//
// Values come from CREATURE_* variables, optionally seeded from a .env file.
// Command line flags are applied on top by the caller.
package config

import (
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "CREATURE"

// Cache backends
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// CacheModes lists the accepted cache backends.
var CacheModes = []string{CacheNone, CacheMemory, CacheRedis}

// LogLevels lists the accepted log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config is the full set of runtime settings.
type Config struct {
	// BaseURL of the creature service
	BaseURL string `envconfig:"BASE_URL" default:"https://rpg-creature-api.freecodecamp.rocks"`
	// Timeout for one fetch; zero waits indefinitely
	Timeout time.Duration `envconfig:"TIMEOUT" default:"0s"`

	Cache         string        `envconfig:"CACHE" default:"none"`
	CacheTTL      time.Duration `envconfig:"CACHE_TTL" default:"24h"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	RedisTLS      bool          `envconfig:"REDIS_TLS" default:"false"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// OTel turns on trace export over OTLP
	OTel bool `envconfig:"OTEL" default:"false"`

	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
}

// Load reads an optional env file and then the environment. Variables that
// are already set win over the file. A missing file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to load %s", envFile)
		}
	}

	cfg := &Config{}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate normalizes the config and reports every invalid field
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	c.Cache = strings.ToLower(strings.TrimSpace(c.Cache))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.Cache == "" {
		c.Cache = CacheNone
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	vb := errors.NewValidationBuilder()

	if strings.TrimSpace(c.BaseURL) == "" {
		vb.RequiredField("BaseURL")
	}
	if c.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}
	errors.ValidateEnum("Cache", c.Cache, CacheModes, vb)
	errors.ValidateEnum("LogLevel", c.LogLevel, LogLevels, vb)

	if c.Cache != CacheNone && c.CacheTTL <= 0 {
		vb.Field("CacheTTL", "must be positive when caching")
	}
	if c.Cache == CacheRedis && c.RedisAddr == "" {
		vb.RequiredField("RedisAddr")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CacheEnabled reports whether fetch results are cached.
func (c *Config) CacheEnabled() bool {
	return c.Cache != CacheNone
}
