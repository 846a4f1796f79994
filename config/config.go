// Package config loads the settings of the bets tool.
//
// Settings are read, each layer overriding the previous one, from the
// defaults, an optional YAML file, a .env file and the environment.
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backends of the key-value store.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Environment variables.
const (
	EnvStore         = "BANKROLL_STORE"
	EnvPath          = "BANKROLL_PATH"
	EnvRedisAddr     = "BANKROLL_REDIS_ADDR"
	EnvRedisPassword = "BANKROLL_REDIS_PASSWORD"
	EnvRedisDB       = "BANKROLL_REDIS_DB"
	EnvRedisPrefix   = "BANKROLL_REDIS_PREFIX"
	EnvCurrency      = "BANKROLL_CURRENCY"
	EnvLogLevel      = "BANKROLL_LOG_LEVEL"
)

// DefaultFile is the YAML file read when no other is given.
const DefaultFile = "bankroll.yaml"

// Config holds the application configuration.
type Config struct {
	Store    string `yaml:"store"`    // key-value backend: file, sqlite, redis or memory
	Path     string `yaml:"path"`     // file or sqlite database path
	Currency string `yaml:"currency"` // ISO 4217 code used for display
	LogLevel string `yaml:"logLevel"` // zerolog level name

	Redis Redis `yaml:"redis"`
}

// Redis holds the settings of the redis backend.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Store:    BackendFile,
		Path:     "bankroll.json",
		Currency: "BRL",
		LogLevel: "warn",
		Redis: Redis{
			Addr:   "localhost:6379",
			Prefix: "bankroll:",
		},
	}
}

// Load returns the configuration read from the YAML file at path, if it
// exists, then from .env and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := cfg.readFile(path); err != nil {
		return cfg, err
	}
	_ = godotenv.Load() // .env is optional
	if err := cfg.readEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) readFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("could not parse config %q: %w", path, err)
	}
	return nil
}

func (c *Config) readEnv() error {
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setString(&c.Store, EnvStore)
	setString(&c.Path, EnvPath)
	setString(&c.Currency, EnvCurrency)
	setString(&c.LogLevel, EnvLogLevel)
	setString(&c.Redis.Addr, EnvRedisAddr)
	setString(&c.Redis.Password, EnvRedisPassword)
	setString(&c.Redis.Prefix, EnvRedisPrefix)
	if v := os.Getenv(EnvRedisDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvRedisDB, v, err)
		}
		c.Redis.DB = db
	}
	return nil
}

// Validate checks the backend and its required settings.
func (c Config) Validate() error {
	switch c.Store {
	case BackendFile, BackendSQLite:
		if c.Path == "" {
			return fmt.Errorf("store %q needs a path", c.Store)
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("store %q needs an address", c.Store)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown store %q want one of %s, %s, %s, %s", c.Store, BackendFile, BackendSQLite, BackendRedis, BackendMemory)
	}
	if c.Currency == "" {
		return errors.New("currency is not set")
	}
	return nil
}
