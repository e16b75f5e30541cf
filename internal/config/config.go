package config

import (
	"fmt"
	"strings"
	"time"

	pkgconfig "github.com/klueko/sheos/pkg/config"
	"github.com/klueko/sheos/pkg/database"
	"github.com/klueko/sheos/pkg/pagination"
	"github.com/klueko/sheos/pkg/tracing"
)

// ServiceName identifies the catalog service in logs, metrics and traces.
const ServiceName = "catalog-service"

// Config holds all configuration for the catalog service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"CATALOG_HTTP_PORT" envDefault:"8001" validate:"min=1,max=65535"`

	// PostgreSQL
	PostgresHost string `env:"POSTGRES_HOST" envDefault:"localhost" validate:"required"`
	PostgresPort int    `env:"POSTGRES_PORT" envDefault:"5432" validate:"min=1,max=65535"`
	PostgresUser string `env:"POSTGRES_USER" envDefault:"catalog" validate:"required"`
	PostgresPass string `env:"POSTGRES_PASSWORD" envDefault:"catalog_secret"`
	PostgresDB   string `env:"CATALOG_DB_NAME" envDefault:"catalog_db" validate:"required"`
	PostgresSSL  string `env:"POSTGRES_SSL_MODE" envDefault:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`

	// Database pool
	DBMaxConns            int32 `env:"DB_MAX_CONNS" envDefault:"25" validate:"min=1"`
	DBMinConns            int32 `env:"DB_MIN_CONNS" envDefault:"5" validate:"min=0,ltefield=DBMaxConns"`
	DBMaxConnLifetimeMins int   `env:"DB_MAX_CONN_LIFETIME_MINUTES" envDefault:"60" validate:"min=1"`
	DBMaxConnIdleTimeMins int   `env:"DB_MAX_CONN_IDLE_TIME_MINUTES" envDefault:"30" validate:"min=1"`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0" validate:"gte=0,lte=1"`

	// Pprof debug endpoints (IP allowlist in CIDR notation, empty disables them)
	PprofAllowedCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"10.0.0.0/8,172.16.0.0/12,192.168.0.0/16,127.0.0.0/8,::1/128" envSeparator:"," validate:"dive,omitempty,cidr"`

	// Slow query logging
	SlowQueryThresholdMs int `env:"LOG_SLOW_QUERY_MS" envDefault:"500" validate:"min=0"`

	// HTTP response policy
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	CacheMaxAgeSeconds int      `env:"CACHE_MAX_AGE_SECONDS" envDefault:"0" validate:"min=0"`

	// Per-client rate limiting on catalog routes (0 RPS disables it)
	RateLimitRPS   int `env:"RATE_LIMIT_RPS" envDefault:"50" validate:"min=0"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"100" validate:"min=0"`

	// Page sizes
	CatalogDefaultLimit int `env:"CATALOG_DEFAULT_LIMIT" envDefault:"20" validate:"min=1,ltefield=MaxPageLimit"`
	LegacyDefaultLimit  int `env:"LEGACY_DEFAULT_LIMIT" envDefault:"50" validate:"min=1,ltefield=MaxPageLimit"`
	MaxPageLimit        int `env:"MAX_PAGE_LIMIT" envDefault:"100" validate:"min=1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load catalog config: %w", err)
	}
	return cfg, nil
}

// Postgres returns the connection pool settings.
func (c *Config) Postgres() *database.PostgresConfig {
	return &database.PostgresConfig{
		Host:            c.PostgresHost,
		Port:            c.PostgresPort,
		User:            c.PostgresUser,
		Password:        c.PostgresPass,
		DBName:          c.PostgresDB,
		SSLMode:         c.PostgresSSL,
		MaxConns:        c.DBMaxConns,
		MinConns:        c.DBMinConns,
		MaxConnLifetime: time.Duration(c.DBMaxConnLifetimeMins) * time.Minute,
		MaxConnIdleTime: time.Duration(c.DBMaxConnIdleTimeMins) * time.Minute,
	}
}

// Tracing returns the OpenTelemetry settings.
func (c *Config) Tracing(version string) tracing.Config {
	return tracing.Config{
		ServiceName:    ServiceName,
		ServiceVersion: version,
		Environment:    c.Environment,
		OTLPEndpoint:   c.OTELEndpoint,
		SampleRate:     c.OTELSampleRate,
		Enabled:        c.OTELEnabled,
	}
}

// SlowQueryThreshold is LOG_SLOW_QUERY_MS as a duration.
func (c *Config) SlowQueryThreshold() time.Duration {
	return time.Duration(c.SlowQueryThresholdMs) * time.Millisecond
}

// CatalogPaging is the page-size policy of the catalog listing.
func (c *Config) CatalogPaging() pagination.Options {
	return pagination.Options{DefaultLimit: c.CatalogDefaultLimit, MaxLimit: c.MaxPageLimit}
}

// LegacyPaging is the page-size policy of the legacy listing.
func (c *Config) LegacyPaging() pagination.Options {
	return pagination.Options{DefaultLimit: c.LegacyDefaultLimit, MaxLimit: c.MaxPageLimit}
}

// PprofCIDRs returns the non-empty allowlist entries. An empty result leaves
// the pprof endpoints unmounted.
func (c *Config) PprofCIDRs() []string {
	cidrs := make([]string, 0, len(c.PprofAllowedCIDRs))
	for _, cidr := range c.PprofAllowedCIDRs {
		if cidr = strings.TrimSpace(cidr); cidr != "" {
			cidrs = append(cidrs, cidr)
		}
	}
	return cidrs
}
