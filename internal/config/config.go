package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	Statsd     StatsdConfig
	Sentry     SentryConfig
	LogLevel   string
	LogBackend string
}

type ServerConfig struct {
	Address         string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type StorageConfig struct {
	Type        string
	PostgresURL string
}

// StatsdConfig описывает клиента DogStatsD
type StatsdConfig struct {
	Enabled          bool
	LocalAddress     string
	CollectorAddress string
	Namespace        string
}

type SentryConfig struct {
	DSN string
}

func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/dogweb")

	v.SetDefault("server.address", "127.0.0.1:8000")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 10)
	v.SetDefault("storage.type", StorageMemory)
	v.SetDefault("storage.postgres_url", "")
	v.SetDefault("statsd.enabled", true)
	v.SetDefault("statsd.local_address", "127.0.0.1:8000")
	v.SetDefault("statsd.collector_address", "127.0.0.1:8125")
	v.SetDefault("statsd.namespace", "analytics")
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_backend", "slog")

	v.AutomaticEnv()
	v.SetEnvPrefix("DOGWEB")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Address:         v.GetString("server.address"),
			ReadTimeout:     v.GetInt("server.read_timeout"),
			WriteTimeout:    v.GetInt("server.write_timeout"),
			ShutdownTimeout: v.GetInt("server.shutdown_timeout"),
		},
		Storage: StorageConfig{
			Type:        v.GetString("storage.type"),
			PostgresURL: v.GetString("storage.postgres_url"),
		},
		Statsd: StatsdConfig{
			Enabled:          v.GetBool("statsd.enabled"),
			LocalAddress:     v.GetString("statsd.local_address"),
			CollectorAddress: v.GetString("statsd.collector_address"),
			Namespace:        v.GetString("statsd.namespace"),
		},
		Sentry: SentryConfig{
			DSN: v.GetString("sentry.dsn"),
		},
		LogLevel:   v.GetString("log_level"),
		LogBackend: v.GetString("log_backend"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return errors.New("config: missing server address")
	}

	switch c.Storage.Type {
	case StorageMemory:
	case StoragePostgres:
		if c.Storage.PostgresURL == "" {
			return errors.New("config: postgres storage requires storage.postgres_url")
		}
	default:
		return fmt.Errorf("config: unknown storage type %q", c.Storage.Type)
	}

	// Метрики можно отключить целиком, тогда адреса не нужны
	if c.Statsd.Enabled {
		if c.Statsd.LocalAddress == "" {
			return errors.New("config: missing statsd local address")
		}
		if c.Statsd.CollectorAddress == "" {
			return errors.New("config: missing statsd collector address")
		}
	}

	return nil
}
