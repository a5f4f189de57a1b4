// Package config defines wbmodel's configuration and loads it through viper.
//
// Configuration hierarchy (highest to lowest priority):
//  1. CLI flags
//  2. Environment variables (WBMODEL_*)
//  3. Config file (~/.wbmodel/config.yaml)
//  4. Defaults
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variable overrides
const EnvPrefix = "WBMODEL"

// Output formats accepted by Output.Format
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// CacheConfig controls where revision hashes are kept between runs.
// A TTL of zero keeps entries forever.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

type OutputConfig struct {
	Verbose  bool   `yaml:"verbose" mapstructure:"verbose"`
	JSONLogs bool   `yaml:"json_logs" mapstructure:"json_logs"`
	Format   string `yaml:"format" mapstructure:"format"`
}

// Dir returns the wbmodel home directory, ~/.wbmodel
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".wbmodel")
	}
	return filepath.Join(home, ".wbmodel")
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       filepath.Join(Dir(), "cache"),
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   0,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// SetDefaults registers every key with its default so that environment
// variables are picked up by Unmarshal
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("cache.memory_ttl", d.Cache.MemoryTTL)
	v.SetDefault("cache.disk_ttl", d.Cache.DiskTTL)
	v.SetDefault("concurrency.workers", d.Concurrency.Workers)
	v.SetDefault("output.verbose", d.Output.Verbose)
	v.SetDefault("output.json_logs", d.Output.JSONLogs)
	v.SetDefault("output.format", d.Output.Format)
}

// BindEnv makes WBMODEL_CACHE_DIR and friends override file values
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load resolves the configuration held by v and validates it
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Concurrency.Workers < 1 {
		return errors.WithHint(
			errors.InvalidArgumentf("concurrency.workers must be at least 1, got %d", c.Concurrency.Workers),
			"set concurrency.workers or WBMODEL_CONCURRENCY_WORKERS to a positive number")
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.InvalidArgumentf("output.format must be one of text, json, yaml, got %q", c.Output.Format)
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Dir) == "" {
		return errors.InvalidArgumentf("cache.dir must be set when the cache is enabled")
	}
	if c.Cache.MemoryTTL < 0 || c.Cache.DiskTTL < 0 {
		return errors.InvalidArgumentf("cache TTLs must not be negative")
	}
	return nil
}
