package server

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gregorio-gerardi/circuitry/pkg/errors"
)

// Store backend names accepted in configuration.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Cache backend names accepted in configuration.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Duration wraps time.Duration so TOML values can be written as "30s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Config is the server configuration, loaded from a TOML file.
//
// Example:
//
//	listen = ":8080"
//	read_timeout = "10s"
//	write_timeout = "60s"
//	render = true
//
//	[store]
//	backend = "mongo"
//	uri = "mongodb://localhost:27017"
//	database = "circuitry"
//
//	[cache]
//	backend = "redis"
//	url = "redis://localhost:6379/0"
type Config struct {
	Listen       string   `toml:"listen"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`

	// Render enables the render stage for analysis requests that ask
	// for it and the per-report SVG endpoint.
	Render bool `toml:"render"`

	Store StoreConfig `toml:"store"`
	Cache CacheConfig `toml:"cache"`
}

// StoreConfig selects the report storage backend.
type StoreConfig struct {
	Backend  string `toml:"backend"`  // memory or mongo
	URI      string `toml:"uri"`      // mongo connection string
	Database string `toml:"database"` // mongo database name
}

// CacheConfig selects the result cache backend.
type CacheConfig struct {
	Backend string `toml:"backend"` // none, file or redis
	Dir     string `toml:"dir"`     // file cache directory
	URL     string `toml:"url"`     // redis connection URL
}

// DefaultConfig returns the configuration used when no file is given:
// listen on :8080, in-memory store, no cache, rendering enabled.
func DefaultConfig() Config {
	return Config{
		Listen:       ":8080",
		ReadTimeout:  Duration(10 * time.Second),
		WriteTimeout: Duration(60 * time.Second),
		Render:       true,
		Store:        StoreConfig{Backend: StoreMemory, Database: "circuitry"},
		Cache:        CacheConfig{Backend: CacheNone},
	}
}

// LoadConfig reads a TOML configuration file, applies defaults for unset
// fields, and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks backend selections and their required parameters.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "listen address cannot be empty")
	}

	switch c.Store.Backend {
	case StoreMemory:
	case StoreMongo:
		if c.Store.URI == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "store backend %q requires a uri", StoreMongo)
		}
		if c.Store.Database == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "store backend %q requires a database", StoreMongo)
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown store backend: %q (expected %s or %s)", c.Store.Backend, StoreMemory, StoreMongo)
	}

	switch c.Cache.Backend {
	case CacheNone, CacheFile:
	case CacheRedis:
		if c.Cache.URL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache backend %q requires a url", CacheRedis)
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend: %q (expected %s, %s or %s)", c.Cache.Backend, CacheNone, CacheFile, CacheRedis)
	}

	return nil
}

// String returns a loggable one-line summary without credentials.
func (c *Config) String() string {
	return fmt.Sprintf("listen=%s store=%s cache=%s render=%t",
		c.Listen, c.Store.Backend, c.Cache.Backend, c.Render)
}
