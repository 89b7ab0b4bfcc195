package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/passvault/pkg/httpx"
	"gopkg.in/yaml.v3"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ConfigFileEnv names the variable consulted when no --config path is given.
const ConfigFileEnv = "VAULT_CONFIG_FILE"

type Config struct {
	Env                 string        `yaml:"env"`                   // dev, staging, prod (default: dev)
	LogLevel            string        `yaml:"log_level"`             // debug, info, warn, error (default: info)
	LogFormat           string        `yaml:"log_format"`            // json, text (default: json)
	Port                int           `yaml:"port"`                  // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration `yaml:"shutdown_grace_period"` // default: 10s

	Database DatabaseConfig `yaml:"database"`

	AutoMigrate        bool     `yaml:"auto_migrate"`         // apply migrations on serve (default: true)
	MaskStorageErrors  bool     `yaml:"mask_storage_errors"`  // hide driver messages in 500s (default: false)
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"` // default: *
	// TrustedProxies lists the peers (IPs or CIDRs) whose X-Forwarded-For
	// and X-Real-IP headers are believed by the rate limiter. Default: none.
	TrustedProxies []string `yaml:"trusted_proxies"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"` // sqlite or postgres (default: sqlite)
	File            string        `yaml:"file"`   // sqlite path (default: vault.db)
	URL             string        `yaml:"url"`    // postgres connection URL
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: 10 * time.Second,
		Database: DatabaseConfig{
			Driver:          DriverSQLite,
			File:            "vault.db",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		AutoMigrate:        true,
		CORSAllowedOrigins: []string{"*"},
	}
}

// LoadConfig layers defaults, the YAML file at path (skipped when path is
// empty) and the environment, in that order.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(ConfigFileEnv)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)

	db := &cfg.Database
	db.Driver = getEnvOrDefault("VAULT_DATABASE_DRIVER", db.Driver)
	db.File = getEnvOrDefault("VAULT_DATABASE_FILE", db.File)
	db.URL = getEnvOrDefault("VAULT_DATABASE_URL", db.URL)
	db.MaxOpenConns = getEnvIntOrDefault("VAULT_DB_MAX_OPEN_CONNS", db.MaxOpenConns)
	db.MaxIdleConns = getEnvIntOrDefault("VAULT_DB_MAX_IDLE_CONNS", db.MaxIdleConns)
	db.ConnMaxLifetime = getEnvDurationOrDefault("VAULT_DB_CONN_MAX_LIFETIME", db.ConnMaxLifetime)

	cfg.AutoMigrate = getEnvBoolOrDefault("VAULT_AUTO_MIGRATE", cfg.AutoMigrate)
	cfg.MaskStorageErrors = getEnvBoolOrDefault("VAULT_MASK_STORAGE_ERRORS", cfg.MaskStorageErrors)

	if origins := os.Getenv("VAULT_CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = splitList(origins)
	}
	if proxies := os.Getenv("VAULT_TRUSTED_PROXIES"); proxies != "" {
		cfg.TrustedProxies = splitList(proxies)
	}
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Validate reports configuration that cannot start a server.
func (c Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.File == "" {
			errs = append(errs, errors.New("database.file is required for sqlite"))
		}
	case DriverPostgres:
		if c.Database.URL == "" {
			errs = append(errs, errors.New("database.url is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown database driver %q (want %s or %s)",
			c.Database.Driver, DriverSQLite, DriverPostgres))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}
	if c.ShutdownGracePeriod < 0 {
		errs = append(errs, errors.New("shutdown_grace_period must not be negative"))
	}
	if _, err := httpx.ParseTrustedProxies(c.TrustedProxies); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
