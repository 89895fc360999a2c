// Package config loads the layerforge configuration file.
//
// Configuration is TOML, resolved from an explicit --config path or the
// default location under the user config directory. A missing file is not
// an error; every field has a usable default so the CLI works out of the
// box with a file cache and an in-memory store.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/layerforge/layerforge/pkg/errors"
)

// Backend names accepted by the cache and store sections.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"

	StoreMemory = "memory"
	StoreMongo  = "mongo"
	StoreNone   = "none"
)

// Config is the full configuration tree.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// StoreConfig selects and configures the persistence backend.
type StoreConfig struct {
	Backend string      `toml:"backend"`
	Mongo   MongoConfig `toml:"mongo"`
}

// MongoConfig configures the mongo store backend.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache: CacheConfig{
			Backend: CacheFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Store: StoreConfig{
			Backend: StoreMemory,
			Mongo: MongoConfig{
				URI:      "mongodb://localhost:27017",
				Database: "layerforge",
			},
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "layerforge", "config.toml"), nil
}

// DefaultCacheDir returns the default file cache directory.
func DefaultCacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "layerforge"), nil
}

// Load reads the config at path, layered over defaults. An empty path
// resolves to [DefaultPath]; a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			cfg.applyEnv()
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyEnv()
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv layers secret-bearing values from the environment over the file,
// so credentials stay out of config files checked into dotfile repos.
func (c *Config) applyEnv() {
	if v := os.Getenv("LAYERFORGE_REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}
	if v := os.Getenv("LAYERFORGE_MONGO_URI"); v != "" {
		c.Store.Mongo.URI = v
	}
}

// Validate checks backend names.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheFile, CacheRedis, CacheNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend: %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case StoreMemory, StoreMongo, StoreNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown store backend: %q (must be one of: memory, mongo, none)", c.Store.Backend)
	}
	return nil
}
