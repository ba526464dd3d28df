package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pagesmith/pagesmith/pkg/store"
)

// Config is the on-disk server configuration, read from a TOML file.
type Config struct {
	Addr  string      `toml:"addr"`
	Store StoreConfig `toml:"store"`
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	// Backend is one of "memory", "file", "redis", or "mongo".
	Backend string `toml:"backend"`

	// Dir is the base directory for the file backend. Empty selects the
	// default under the user config directory.
	Dir string `toml:"dir"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// defaultConfig returns the configuration used when no file is present:
// a file-backed store listening on localhost.
func defaultConfig() Config {
	return Config{
		Addr:  "127.0.0.1:8080",
		Store: StoreConfig{Backend: "file"},
	}
}

// defaultConfigPath returns the conventional config file location,
// or an empty string if the user config directory cannot be determined.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pagesmith", "config.toml")
}

// loadConfig reads a TOML config file. When path is empty the conventional
// location is tried, and a missing file there falls back to defaults. An
// explicitly given path must exist.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath()
	}
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultConfig().Addr
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "file"
	}
	return cfg, nil
}

// openBackend constructs the store backend named by cfg.
func openBackend(ctx context.Context, cfg StoreConfig) (store.Backend, error) {
	switch cfg.Backend {
	case "memory":
		return store.NewMemory(), nil
	case "file":
		return store.NewFile(cfg.Dir)
	case "redis":
		return store.NewRedis(ctx, store.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case "mongo":
		return store.NewMongo(ctx, store.MongoConfig{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
	default:
		return nil, fmt.Errorf("unknown store backend %q (available: memory, file, redis, mongo)", cfg.Backend)
	}
}
