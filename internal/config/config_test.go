package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/config"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
)

var configVars = []string{
	"CREATURE_BASE_URL",
	"CREATURE_TIMEOUT",
	"CREATURE_CACHE",
	"CREATURE_CACHE_TTL",
	"CREATURE_REDIS_ADDR",
	"CREATURE_REDIS_PASSWORD",
	"CREATURE_REDIS_DB",
	"CREATURE_REDIS_TLS",
	"CREATURE_LOG_LEVEL",
	"CREATURE_OTEL",
	"CREATURE_LISTEN_ADDR",
}

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, name := range configVars {
		// Setenv registers a restore; Unsetenv leaves the variable absent so
		// defaults and .env values apply.
		s.T().Setenv(name, "")
		s.Require().NoError(os.Unsetenv(name))
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal("https://rpg-creature-api.freecodecamp.rocks", cfg.BaseURL)
	s.Equal(time.Duration(0), cfg.Timeout)
	s.Equal(config.CacheNone, cfg.Cache)
	s.False(cfg.CacheEnabled())
	s.Equal(24*time.Hour, cfg.CacheTTL)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
	s.False(cfg.OTel)
	s.Equal(":8080", cfg.ListenAddr)
}

func (s *ConfigTestSuite) TestEnvironment() {
	s.T().Setenv("CREATURE_BASE_URL", "http://localhost:3000")
	s.T().Setenv("CREATURE_TIMEOUT", "5s")
	s.T().Setenv("CREATURE_CACHE", "Redis")
	s.T().Setenv("CREATURE_REDIS_DB", "2")
	s.T().Setenv("CREATURE_REDIS_TLS", "true")
	s.T().Setenv("CREATURE_LOG_LEVEL", "DEBUG")
	s.T().Setenv("CREATURE_OTEL", "true")

	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal("http://localhost:3000", cfg.BaseURL)
	s.Equal(5*time.Second, cfg.Timeout)
	s.Equal(config.CacheRedis, cfg.Cache)
	s.True(cfg.CacheEnabled())
	s.Equal(2, cfg.RedisDB)
	s.True(cfg.RedisTLS)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
	s.True(cfg.OTel)
}

func (s *ConfigTestSuite) TestEnvFile() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("CREATURE_CACHE=memory\nCREATURE_LISTEN_ADDR=:9090\n"), 0o600))
	s.T().Setenv("CREATURE_LISTEN_ADDR", ":7070")

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal(config.CacheMemory, cfg.Cache)
	// Already set in the environment, so the file does not override it.
	s.Equal(":7070", cfg.ListenAddr)
}

func (s *ConfigTestSuite) TestMissingEnvFileIsIgnored() {
	cfg, err := config.Load(filepath.Join(s.T().TempDir(), "absent.env"))
	s.Require().NoError(err)
	s.Equal(config.CacheNone, cfg.Cache)
}

func (s *ConfigTestSuite) TestBadDuration() {
	s.T().Setenv("CREATURE_TIMEOUT", "soon")

	_, err := config.Load("")
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{name: "nil", wantErr: "config cannot be nil"},
		{
			name:    "unknown cache",
			cfg:     &config.Config{BaseURL: "http://x", Cache: "disk"},
			wantErr: "Cache: must be one of: none, memory, redis",
		},
		{
			name:    "unknown log level",
			cfg:     &config.Config{BaseURL: "http://x", LogLevel: "loud"},
			wantErr: "LogLevel: must be one of",
		},
		{
			name:    "negative timeout",
			cfg:     &config.Config{BaseURL: "http://x", Timeout: -time.Second},
			wantErr: "Timeout: must not be negative",
		},
		{
			name:    "cache without ttl",
			cfg:     &config.Config{BaseURL: "http://x", Cache: config.CacheMemory},
			wantErr: "CacheTTL: must be positive when caching",
		},
		{
			name:    "redis without address",
			cfg:     &config.Config{BaseURL: "http://x", Cache: config.CacheRedis, CacheTTL: time.Minute},
			wantErr: "RedisAddr: is required",
		},
		{
			name:    "missing base url",
			cfg:     &config.Config{},
			wantErr: "BaseURL: is required",
		},
		{
			name: "valid",
			cfg:  &config.Config{BaseURL: "http://x", Cache: " Memory ", CacheTTL: time.Minute},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				s.NoError(err)
				return
			}
			s.Require().Error(err)
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}

func (s *ConfigTestSuite) TestValidateNormalizes() {
	cfg := &config.Config{BaseURL: "http://x", Cache: " Memory ", CacheTTL: time.Minute, LogLevel: "WARN"}
	s.Require().NoError(cfg.Validate())
	s.Equal(config.CacheMemory, cfg.Cache)
	s.Equal(slog.LevelWarn, cfg.SlogLevel())
}
