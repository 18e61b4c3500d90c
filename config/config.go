package config

import (
	"github.com/caarlos0/env/v9"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Internal InternalConfig
	Monitor  MonitorConfig
	CORS     CORSConfig
}

// ServerConfig is the configuration for the API server
type ServerConfig struct {
	Host string `env:"API_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"API_PORT" envDefault:"8080"`
	Mode string `env:"API_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level    string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode     string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding string `env:"LOGGER_ENCODING" envDefault:"json"`
}

// PostgresConfig is the configuration for PostgreSQL
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"gatherup"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

// JWTConfig is the configuration for JWT verification
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

// SMTPConfig is the configuration for the digest email relay.
// An empty host disables email delivery.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM" envDefault:"noreply@gatherup.dev"`
}

// InternalConfig guards the operational endpoints
type InternalConfig struct {
	APIKey string `env:"INTERNAL_API_KEY"`
}

// MonitorConfig is the configuration for the threshold monitor.
// Zero values fall back to the built-in defaults.
type MonitorConfig struct {
	WarmupStalledHours    int `env:"MONITOR_WARMUP_STALLED_HOURS" envDefault:"24"`
	ReviewStalledHours    int `env:"MONITOR_REVIEW_STALLED_HOURS" envDefault:"12"`
	FirstResponseSLAHours int `env:"MONITOR_FIRST_RESPONSE_SLA_HOURS" envDefault:"4"`
	ResolutionSLAHours    int `env:"MONITOR_RESOLUTION_SLA_HOURS" envDefault:"24"`
	SLALookbackHours      int `env:"MONITOR_SLA_LOOKBACK_HOURS" envDefault:"24"`

	SquadSweepSpec  string `env:"MONITOR_SQUAD_SWEEP_SPEC" envDefault:"@every 5m"`
	TicketSweepSpec string `env:"MONITOR_TICKET_SWEEP_SPEC" envDefault:"@every 5m"`
	SchedulerOn     bool   `env:"MONITOR_SCHEDULER_ENABLED" envDefault:"true"`
}

// CORSConfig is the configuration for cross-origin requests
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
