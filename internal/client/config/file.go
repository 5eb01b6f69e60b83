package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/crammer/internal/flagx"
	"github.com/dmitrijs2005/crammer/internal/timex"
)

// FileConfig is the DTO for config files. Intervals use timex.Duration so
// they can be written as "3s" (or, in JSON, integer nanoseconds). Empty
// fields leave the earlier value in place.
type FileConfig struct {
	BaseURL             string          `json:"base_url" yaml:"base_url"`
	StorePath           string          `json:"store_path" yaml:"store_path"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	RequestTimeout      *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogLevel            string          `json:"log_level" yaml:"log_level"`
	LogFormat           string          `json:"log_format" yaml:"log_format"`
	LogBackend          string          `json:"log_backend" yaml:"log_backend"`
	LogFile             string          `json:"log_file" yaml:"log_file"`
}

// parseFile overlays cfg with the file given by -c/-config, or else by
// CRAMMER_CONFIG as seen through lookup. Files ending in .yaml or .yml are read as YAML, anything
// else as JSON.
func parseFile(cfg *Config, args []string, lookup envconfig.Lookuper) error {
	path := flagx.ConfigFile(args)
	if path == "" && lookup != nil {
		path, _ = envconfig.PrefixLookuper(EnvPrefix, lookup).Lookup(ConfigFileEnv)
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.BaseURL, fc.BaseURL)
	setString(&cfg.StorePath, fc.StorePath)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.LogBackend, fc.LogBackend)
	setString(&cfg.LogFile, fc.LogFile)
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
