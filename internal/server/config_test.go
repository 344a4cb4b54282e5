package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gregorio-gerardi/circuitry/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %q, want :8080", cfg.Listen)
	}
	if cfg.Store.Backend != StoreMemory {
		t.Errorf("Store.Backend = %q, want %q", cfg.Store.Backend, StoreMemory)
	}
	if cfg.Cache.Backend != CacheNone {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, CacheNone)
	}
	if !cfg.Render {
		t.Error("Render = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circuitry.toml")
	content := `
listen = ":9090"
read_timeout = "5s"
render = false

[store]
backend = "mongo"
uri = "mongodb://localhost:27017"
database = "graphs"

[cache]
backend = "file"
dir = "/tmp/circuitry-cache"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Listen != ":9090" {
		t.Errorf("Listen = %q, want :9090", cfg.Listen)
	}
	if time.Duration(cfg.ReadTimeout) != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", time.Duration(cfg.ReadTimeout))
	}
	// Unset fields keep their defaults.
	if time.Duration(cfg.WriteTimeout) != 60*time.Second {
		t.Errorf("WriteTimeout = %v, want default 60s", time.Duration(cfg.WriteTimeout))
	}
	if cfg.Render {
		t.Error("Render = true, want false")
	}
	if cfg.Store.Backend != StoreMongo || cfg.Store.Database != "graphs" {
		t.Errorf("Store = %+v, want mongo/graphs", cfg.Store)
	}
	if cfg.Cache.Backend != CacheFile || cfg.Cache.Dir != "/tmp/circuitry-cache" {
		t.Errorf("Cache = %+v, want file backend", cfg.Cache)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("LoadConfig() = nil error for missing file")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty listen", func(c *Config) { c.Listen = "" }, true},
		{"unknown store", func(c *Config) { c.Store.Backend = "postgres" }, true},
		{"mongo without uri", func(c *Config) { c.Store.Backend = StoreMongo }, true},
		{"mongo complete", func(c *Config) {
			c.Store = StoreConfig{Backend: StoreMongo, URI: "mongodb://localhost", Database: "db"}
		}, false},
		{"unknown cache", func(c *Config) { c.Cache.Backend = "memcached" }, true},
		{"redis without url", func(c *Config) { c.Cache.Backend = CacheRedis }, true},
		{"file cache", func(c *Config) { c.Cache.Backend = CacheFile }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %t", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestDurationUnmarshalText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("90s")); err != nil {
		t.Fatalf("UnmarshalText() error: %v", err)
	}
	if time.Duration(d) != 90*time.Second {
		t.Errorf("duration = %v, want 90s", time.Duration(d))
	}

	if err := d.UnmarshalText([]byte("not-a-duration")); err == nil {
		t.Error("UnmarshalText() = nil error for invalid input")
	}
}
