// Package config loads the service configuration from defaults, an optional
// YAML file and the environment, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"dashboard-analytics-service/internal/validation"
)

const (
	// PathEnvVar overrides the config file location.
	PathEnvVar = "CONFIG_PATH"
	// EnvPrefix marks service variables; "__" separates sections,
	// e.g. DASHBOARD_STORE__DSN -> store.dsn.
	EnvPrefix = "DASHBOARD_"

	defaultPath = "config.yaml"
)

type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Store       StoreConfig       `koanf:"store"`
	Logging     LoggingConfig     `koanf:"logging"`
	TimeSeries  TimeSeriesConfig  `koanf:"timeseries"`
	Collections CollectionsConfig `koanf:"collections"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     string        `koanf:"cors_origins"`
}

type StoreConfig struct {
	Driver          string        `koanf:"driver" validate:"oneof=postgres sqlite"`
	DSN             string        `koanf:"dsn" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"min=0"`
	// SlowQuery is the duration above which a query is logged at warn. Zero disables it.
	SlowQuery       time.Duration `koanf:"slow_query" validate:"min=0"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

type TimeSeriesConfig struct {
	// Location is the IANA zone all periods are computed in.
	Location      string `koanf:"location" validate:"required"`
	DefaultRange  string `koanf:"default_range" validate:"oneof=1d 7d 1m 3m 6m 1y 2y 5y"`
	// MaxHourlyDays bounds the span of a series requested at hourly frequency.
	MaxHourlyDays int    `koanf:"max_hourly_days" validate:"min=1"`
}

type CollectionConfig struct {
	Table          string `koanf:"table" validate:"required"`
	TimestampField string `koanf:"timestamp_field"`
}

type CollectionsConfig struct {
	Candidates   CollectionConfig `koanf:"candidates"`
	Transactions CollectionConfig `koanf:"transactions"`
	Recruiters   CollectionConfig `koanf:"recruiters"`
	Bids         CollectionConfig `koanf:"bids"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			CORSOrigins:     "*",
		},
		Store: StoreConfig{
			Driver:          "postgres",
			MaxOpenConns:    20,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
			SlowQuery:       500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		TimeSeries: TimeSeriesConfig{
			Location:      "UTC",
			DefaultRange:  "7d",
			MaxHourlyDays: 31,
		},
		Collections: CollectionsConfig{
			Candidates:   CollectionConfig{Table: "candidates", TimestampField: "created_at"},
			Transactions: CollectionConfig{Table: "transactions", TimestampField: "timestamp"},
			Recruiters:   CollectionConfig{Table: "recruiters"},
			Bids:         CollectionConfig{Table: "bids", TimestampField: "created_at"},
		},
	}
}

// Load layers struct defaults, the YAML file named by CONFIG_PATH (or
// ./config.yaml when present), POSTGRES_DSN and DASHBOARD_* variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(&defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := configPath(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	legacy := env.ProviderWithValue("POSTGRES_DSN", ".", func(key, value string) (string, any) {
		if key != "POSTGRES_DSN" || value == "" {
			return "", nil
		}
		return "store.dsn", value
	})
	if err := k.Load(legacy, nil); err != nil {
		return nil, fmt.Errorf("load legacy environment: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps DASHBOARD_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

func configPath() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	if _, err := os.Stat(defaultPath); err == nil {
		return defaultPath
	}
	return ""
}

func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.LoadLocation(c.TimeSeries.Location); err != nil {
		return fmt.Errorf("invalid config: timeseries.location: %w", err)
	}
	for name, col := range map[string]CollectionConfig{
		"candidates":   c.Collections.Candidates,
		"transactions": c.Collections.Transactions,
		"bids":         c.Collections.Bids,
	} {
		if col.TimestampField == "" {
			return fmt.Errorf("invalid config: collections.%s.timestamp_field is required", name)
		}
	}
	return nil
}

// Location returns the configured time zone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeSeries.Location)
	if err != nil {
		return time.UTC
	}
	return loc
}
