// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Places source modes.
const (
	PlacesModeFixture = "fixture"
	PlacesModeHTTP    = "http"
	PlacesModeOff     = "off"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Places    PlacesConfig    `yaml:"places"`
	Ingestion IngestionConfig `yaml:"ingestion"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings. With the memory
// backend the connection fields are ignored.
type DatabaseConfig struct {
	Backend  string `yaml:"backend"` // postgres, memory
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// PlacesConfig selects and tunes the nearby-places source.
type PlacesConfig struct {
	Mode         string          `yaml:"mode"` // fixture, http, off
	URL          string          `yaml:"url"`
	APIKey       string          `yaml:"api_key"`
	RadiusMeters int             `yaml:"radius_meters"`
	Timeout      time.Duration   `yaml:"timeout"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines places API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"` // 0 means unlimited
}

// IngestionConfig holds the defaults applied to uploaded spreadsheet rows.
type IngestionConfig struct {
	DefaultRating     float64 `yaml:"default_rating"`
	DefaultPercentage int     `yaml:"default_percentage"`
	VerifiedBy        string  `yaml:"verified_by"`
	MaxUploadBytes    int64   `yaml:"max_upload_bytes"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	LiveDiscountInterval time.Duration `yaml:"live_discount_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// TelemetryConfig defines OpenTelemetry OTLP export settings.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"` // host:port of the OTLP gRPC collector
	Insecure       bool          `yaml:"insecure"`
	ServiceName    string        `yaml:"service_name"`
	ExportInterval time.Duration `yaml:"export_interval"`
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied: in-memory
// storage and the fixture places source.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyPlacesDefaults(&cfg.Places)
	applyIngestionDefaults(&cfg.Ingestion)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Backend == "" {
		if d.Host != "" {
			d.Backend = BackendPostgres
		} else {
			d.Backend = BackendMemory
		}
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyPlacesDefaults(p *PlacesConfig) {
	if p.Mode == "" {
		p.Mode = PlacesModeFixture
	}
	if p.URL == "" {
		p.URL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	}
	if p.RadiusMeters == 0 {
		p.RadiusMeters = 5000
	}
	if p.Timeout == 0 {
		p.Timeout = 5 * time.Second
	}
	if p.RateLimit.PerSecond == 0 {
		p.RateLimit.PerSecond = 5.0
	}
	if p.RateLimit.Burst == 0 {
		p.RateLimit.Burst = 10
	}
}

func applyIngestionDefaults(i *IngestionConfig) {
	if i.DefaultRating == 0 {
		i.DefaultRating = 4.0
	}
	if i.DefaultPercentage == 0 {
		i.DefaultPercentage = 20
	}
	if i.VerifiedBy == "" {
		i.VerifiedBy = "admin"
	}
	if i.MaxUploadBytes == 0 {
		i.MaxUploadBytes = 10 << 20
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.LiveDiscountInterval == 0 {
		s.LiveDiscountInterval = time.Minute
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "happyarz"
	}
	if t.ExportInterval == 0 {
		t.ExportInterval = 30 * time.Second
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Database.Backend {
	case BackendPostgres:
		if cfg.Database.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required"))
		}
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required"))
		}
	case BackendMemory:
	default:
		errs = append(errs, fmt.Errorf(
			"database.backend must be one of: postgres, memory (got %q)",
			cfg.Database.Backend,
		))
	}

	switch cfg.Places.Mode {
	case PlacesModeHTTP:
		if cfg.Places.APIKey == "" {
			errs = append(errs, fmt.Errorf("places.api_key is required when mode is http"))
		}
	case PlacesModeFixture, PlacesModeOff:
	default:
		errs = append(errs, fmt.Errorf(
			"places.mode must be one of: fixture, http, off (got %q)",
			cfg.Places.Mode,
		))
	}

	if cfg.Ingestion.DefaultRating < 0 || cfg.Ingestion.DefaultRating > 5 {
		errs = append(errs, fmt.Errorf("ingestion.default_rating must be between 0 and 5"))
	}
	if cfg.Ingestion.DefaultPercentage < 0 || cfg.Ingestion.DefaultPercentage > 100 {
		errs = append(errs, fmt.Errorf("ingestion.default_percentage must be between 0 and 100"))
	}

	return errors.Join(errs...)
}
