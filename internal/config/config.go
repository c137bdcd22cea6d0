package config

import (
	"github.com/maxviazov/article-catalog-service/internal/logger"
)

type Config struct {
	App        AppConfig           `mapstructure:"app"`
	Logger     logger.LoggerConfig `mapstructure:"logger"`
	Postgres   PostgresConfig      `mapstructure:"postgres"`
	Pagination PaginationConfig    `mapstructure:"pagination"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Port int    `mapstructure:"port" validate:"gte=0,lte=65535"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	DBName   string `mapstructure:"db_name" validate:"required"`
	SSLMode  string `mapstructure:"ssl_mode"`
	// Pool tuning; durations are seconds.
	MaxConns          int32 `mapstructure:"max_conns"`
	MinConns          int32 `mapstructure:"min_conns"`
	MaxConnLifetime   int   `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int   `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int   `mapstructure:"health_check_period"`
}

// PaginationConfig feeds the default window used by list endpoints when a
// request carries no 'limit'/'offset' parameters and no 'Range' header.
type PaginationConfig struct {
	DefaultLimit int `mapstructure:"default_limit" validate:"gte=0"`
}

func (c *Config) setDefaults() {
	if c.App.Name == "" {
		c.App.Name = "article-catalog-service"
	}
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.Postgres.Host == "" {
		c.Postgres.Host = "127.0.0.1"
	}
	if c.Postgres.Port == 0 {
		c.Postgres.Port = 5432
	}
	if c.Postgres.SSLMode == "" {
		c.Postgres.SSLMode = "disable"
	}
	if c.Postgres.MaxConns == 0 {
		c.Postgres.MaxConns = 10
	}
	if c.Postgres.MinConns == 0 {
		c.Postgres.MinConns = 2
	}
	if c.Postgres.MaxConnLifetime == 0 {
		c.Postgres.MaxConnLifetime = 1800
	}
	if c.Postgres.MaxConnIdleTime == 0 {
		c.Postgres.MaxConnIdleTime = 300
	}
	if c.Postgres.HealthCheckPeriod == 0 {
		c.Postgres.HealthCheckPeriod = 60
	}
	if c.Pagination.DefaultLimit == 0 {
		c.Pagination.DefaultLimit = 25
	}
}
