package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

const (
	DefaultAPIBaseURL = "http://localhost:8000"
	DefaultTimeout    = 10 * time.Second
)

type Config struct {
	APIBaseURL  string        `yaml:"apiBaseURL"`
	Timeout     time.Duration `yaml:"timeout"`
	Store       string        `yaml:"store"`
	DataDir     string        `yaml:"dataDir"`
	RedisAddr   string        `yaml:"redisAddr"`
	RedisPrefix string        `yaml:"redisPrefix"`
	LogLevel    string        `yaml:"logLevel"`
	LogFormat   string        `yaml:"logFormat"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		APIBaseURL:  DefaultAPIBaseURL,
		Timeout:     DefaultTimeout,
		Store:       StoreFile,
		DataDir:     filepath.Join(home, ".sabalabor"),
		RedisAddr:   "localhost:6379",
		RedisPrefix: "sabalabor",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads an optional YAML file on top of the defaults and then applies
// environment overrides. A missing file at the default path is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SABALABOR_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("SABALABOR_STORE"); v != "" {
		c.Store = v
	}
	if v := os.Getenv("SABALABOR_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("SABALABOR_REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("SABALABOR_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SABALABOR_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
}

func (c Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api base url %q", c.APIBaseURL)
	}
	switch c.Store {
	case StoreFile, StoreSQLite:
		if strings.TrimSpace(c.DataDir) == "" {
			return fmt.Errorf("data dir is required for %s store", c.Store)
		}
	case StoreRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("redis address is required for redis store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unsupported store %q", c.Store)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func (c Config) StorePath() string {
	return filepath.Join(c.DataDir, "session.json")
}

func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "sabalabor.db")
}

func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "sabalabor.log")
}

// DefaultConfigPath returns the default location for the CLI config file.
func DefaultConfigPath() string {
	if path := os.Getenv("SABALABOR_CONFIG"); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sabalabor", "config.yaml")
}
