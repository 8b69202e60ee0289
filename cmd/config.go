package cmd

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT"   envDefault:"8080"`
	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"     envDefault:"fulfillment"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	OtelExporterEndpoint string `env:"OTEL_EXPORTER_ENDPOINT"`

	// Six-field cron expressions, seconds first.
	StatusRefreshSchedule   string `env:"STATUS_REFRESH_SCHEDULE"   envDefault:"*/30 * * * * *"`
	OversellAuditSchedule   string `env:"OVERSELL_AUDIT_SCHEDULE"   envDefault:"0 */15 * * * *"`
	SessionEvictionSchedule string `env:"SESSION_EVICTION_SCHEDULE" envDefault:"0 * * * * *"`

	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`

	LaunchTimeout  time.Duration `env:"LAUNCH_TIMEOUT"  envDefault:"30s"`
	LookupTimeout  time.Duration `env:"LOOKUP_TIMEOUT"  envDefault:"10s"`
	RefreshTimeout time.Duration `env:"REFRESH_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN is a postgres:// URL, accepted by both the gorm driver and pq.NewListener.
// Credentials and names are escaped, and an empty password is left out.
func (c Config) DSN() string {
	user := url.User(c.DBUser)
	if c.DBPassword != "" {
		user = url.UserPassword(c.DBUser, c.DBPassword)
	}
	dsn := url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return dsn.String()
}
