package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"
	"go.uber.org/multierr"
)

type Config struct {
	Host        string
	Port        int
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogMaxBackups int    `toml:"log_max_backups"`
	LogMaxAgeDays int    `toml:"log_max_age_days"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`
	MigrationsPath string `toml:"migrations_path"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// health
	AllowedOrigins       []string `toml:"allowed_origins"`
	WriteRateLimitPerMin int      `toml:"write_rate_limit_per_min"`
	StatsCacheTTLMinutes int      `toml:"stats_cache_ttl_minutes"`
	StatsRefreshSchedule string   `toml:"stats_refresh_schedule"`
	TokenCacheSizeMB     int      `toml:"token_cache_size_mb"`
	MCPEnabled           bool     `toml:"mcp_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section of the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// LoadEnvFile loads secrets from a .env file into the process environment.
// A missing file is not an error, the variables may already be set.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func (c *Config) StatsCacheTTL() time.Duration {
	return time.Duration(c.StatsCacheTTLMinutes) * time.Minute
}

func (c *Config) setDefaults() {
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.WriteRateLimitPerMin == 0 {
		c.WriteRateLimitPerMin = 60
	}
	if c.StatsCacheTTLMinutes == 0 {
		c.StatsCacheTTLMinutes = 24 * 60
	}
	if c.StatsRefreshSchedule == "" {
		c.StatsRefreshSchedule = "0 0 3 * * *"
	}
	if c.TokenCacheSizeMB == 0 {
		c.TokenCacheSizeMB = 1
	}
}

func (c *Config) Validate() error {
	var err error
	if c.Port <= 0 || c.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
		err = multierr.Append(err, errors.New("postgres host, port and db name must be set"))
	}
	if c.RedisHost == "" || c.RedisPort == "" {
		err = multierr.Append(err, errors.New("redis host and port must be set"))
	}
	if c.PrometheusMetricsPort == "" {
		err = multierr.Append(err, errors.New("prometheus metrics port must be set"))
	}
	if c.WriteRateLimitPerMin < 0 {
		err = multierr.Append(err, fmt.Errorf("invalid write rate limit: %d", c.WriteRateLimitPerMin))
	}
	if c.StatsCacheTTLMinutes < 0 {
		err = multierr.Append(err, fmt.Errorf("invalid stats cache ttl: %d", c.StatsCacheTTLMinutes))
	}
	if _, cronErr := cron.Parse(c.StatsRefreshSchedule); cronErr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid stats refresh schedule [%s]: %w", c.StatsRefreshSchedule, cronErr))
	}
	return err
}
