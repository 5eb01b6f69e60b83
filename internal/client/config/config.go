package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CRAMMER_"

// ConfigFileEnv, after EnvPrefix, names the config file when no -c/-config
// flag is given.
const ConfigFileEnv = "CONFIG"

// Config holds runtime settings for the Crammer+ client.
type Config struct {
	BaseURL             string        `env:"BASE_URL, overwrite"`
	StorePath           string        `env:"STORE_PATH, overwrite"`
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL, overwrite"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT, overwrite"`
	LogLevel            string        `env:"LOG_LEVEL, overwrite"`
	LogFormat           string        `env:"LOG_FORMAT, overwrite"`
	LogBackend          string        `env:"LOG_BACKEND, overwrite"`
	LogFile             string        `env:"LOG_FILE, overwrite"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api/v1"
	c.StorePath = "crammer.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.LogBackend = "slog"
	c.LogFile = ""
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || c.BaseURL == "" {
		return fmt.Errorf("invalid base url %q", c.BaseURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base url %q must be an absolute http(s) url", c.BaseURL)
	}
	if c.OnlineCheckInterval < 0 {
		return fmt.Errorf("online check interval must not be negative")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}
	return nil
}

// Load builds a Config from defaults, then the config file named in args,
// then environment variables found through lookup, then the flags in args.
// Later sources take precedence over earlier ones.
func Load(ctx context.Context, args []string, lookup envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args, lookup); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg, lookup); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments and environment.
func LoadConfig(ctx context.Context) (*Config, error) {
	return Load(ctx, os.Args[1:], envconfig.OsLookuper())
}

func parseEnv(ctx context.Context, cfg *Config, lookup envconfig.Lookuper) error {
	if lookup == nil {
		return nil
	}
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, lookup),
	})
	if err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}
