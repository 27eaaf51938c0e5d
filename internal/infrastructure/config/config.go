package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of all environment variables read by the service
const EnvPrefix = "SENTIMENT"

// Config holds all configuration for the service
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Model  ModelConfig  `mapstructure:"model"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// ModelConfig holds the inference endpoint configuration
type ModelConfig struct {
	Name        string        `mapstructure:"name"`
	BaseURL     string        `mapstructure:"base_url"`
	Endpoint    string        `mapstructure:"endpoint"`
	APIToken    string        `mapstructure:"api_token"`
	Timeout     time.Duration `mapstructure:"timeout"`
	LoadTimeout time.Duration `mapstructure:"load_timeout"`
	ProbeText   string        `mapstructure:"probe_text"`
}

// URL returns the classification URL of the model.
// An explicit endpoint takes precedence over base_url + model name.
func (m ModelConfig) URL() string {
	if m.Endpoint != "" {
		return m.Endpoint
	}
	return strings.TrimRight(m.BaseURL, "/") + "/models/" + m.Name
}

// CacheConfig holds prediction cache configuration
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Backend string        `mapstructure:"backend"`
	Size    int           `mapstructure:"size"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// Addr returns the host:port address of the Redis server
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Console log destinations
const (
	LogOutputStdout = "stdout"
	LogOutputStderr = "stderr"
)

// LogConfig holds logger configuration
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Load reads configuration from defaults, an optional config file,
// a .env file and SENTIMENT_ prefixed environment variables.
func Load() (*Config, error) {
	// Best-effort: a missing .env is not an error
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for values the service cannot run with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.Model.Name == "" && c.Model.Endpoint == "" {
		return errors.New("either model.name or model.endpoint must be set")
	}
	if c.Cache.Enabled {
		switch c.Cache.Backend {
		case "memory":
			if c.Cache.Size <= 0 {
				return fmt.Errorf("invalid cache.size: %d", c.Cache.Size)
			}
		case "redis":
		default:
			return fmt.Errorf("unsupported cache.backend: %q", c.Cache.Backend)
		}
	}
	switch c.Log.Output {
	case "", LogOutputStdout, LogOutputStderr:
	default:
		return fmt.Errorf("unsupported log.output: %q", c.Log.Output)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "release")

	// Model
	v.SetDefault("model.name", "saribasmetehan/bert-base-turkish-sentiment-analysis")
	v.SetDefault("model.base_url", "https://api-inference.huggingface.co")
	v.SetDefault("model.endpoint", "")
	v.SetDefault("model.api_token", "")
	v.SetDefault("model.timeout", 30*time.Second)
	v.SetDefault("model.load_timeout", 60*time.Second)
	v.SetDefault("model.probe_text", "merhaba")

	// Cache
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.size", 1024)
	v.SetDefault("cache.ttl", time.Hour)

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "sentiment")

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", LogOutputStdout)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}
