package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Session providers understood by the session verifier factory.
const (
	SessionProviderRedis = "redis"
	SessionProviderJWT   = "jwt"
)

// Config holds all configuration for the application
type Config struct {
	DB        DatabaseConfig
	Redis     RedisConfig
	App       AppConfig
	Session   SessionConfig
	Dashboard DashboardConfig
	Metrics   MetricsConfig
	Logger    LoggerConfig
}

// DatabaseConfig holds configuration for the database
type DatabaseConfig struct {
	Host            string `mapstructure:"DB_HOST"`
	Port            string `mapstructure:"DB_PORT"`
	User            string `mapstructure:"DB_USER"`
	Password        string `mapstructure:"DB_PASSWORD"`
	Name            string `mapstructure:"DB_NAME"`
	SSLMode         string `mapstructure:"DB_SSLMODE"`
	MaxOpenConns    int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `mapstructure:"DB_CONN_MAX_LIFETIME_SECONDS"`
	ConnMaxIdleTime int    `mapstructure:"DB_CONN_MAX_IDLE_TIME_SECONDS"`
	AutoMigrate     bool   `mapstructure:"DB_AUTO_MIGRATE"`
}

// RedisConfig holds configuration for the session store
type RedisConfig struct {
	Host        string `mapstructure:"REDIS_HOST"`
	Port        string `mapstructure:"REDIS_PORT"`
	Password    string `mapstructure:"REDIS_PASSWORD"`
	DB          int    `mapstructure:"REDIS_DB"`
	MaxRetries  int    `mapstructure:"REDIS_MAX_RETRIES"`
	PoolSize    int    `mapstructure:"REDIS_POOL_SIZE"`
	MinIdleConn int    `mapstructure:"REDIS_MIN_IDLE_CONN"`
}

// AppConfig holds configuration for the application server
type AppConfig struct {
	Environment            string `mapstructure:"APP_ENV"`
	HTTPPort               string `mapstructure:"HTTP_PORT"`
	GRPCPort               string `mapstructure:"GRPC_PORT"`
	ShutdownTimeoutSeconds int    `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
}

// SessionConfig describes how externally issued sessions are verified
type SessionConfig struct {
	Provider    string `mapstructure:"SESSION_PROVIDER"`
	CookieName  string `mapstructure:"SESSION_COOKIE_NAME"`
	RedisPrefix string `mapstructure:"SESSION_REDIS_PREFIX"`
	JWTSecret   string `mapstructure:"SESSION_JWT_SECRET"`
	JWTIssuer   string `mapstructure:"SESSION_JWT_ISSUER"`
}

// DashboardConfig holds dashboard shell settings
type DashboardConfig struct {
	FetchTimeout      time.Duration `mapstructure:"DASHBOARD_FETCH_TIMEOUT"`
	RenderWait        time.Duration `mapstructure:"DASHBOARD_RENDER_WAIT"`
	ChartSymbol       string        `mapstructure:"DASHBOARD_CHART_SYMBOL"`
	DefaultTimeframe  string        `mapstructure:"DASHBOARD_DEFAULT_TIMEFRAME"`
	PlaceholderAvatar string        `mapstructure:"DASHBOARD_PLACEHOLDER_AVATAR"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"METRICS_ENABLED"`
	Path    string `mapstructure:"METRICS_PATH"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level            string  `mapstructure:"LOG_LEVEL"`
	Format           string  `mapstructure:"LOG_FORMAT"`
	OutputPath       string  `mapstructure:"LOG_OUTPUT_PATH"`
	SlowQuerySeconds float64 `mapstructure:"LOG_SLOW_QUERY_SECONDS"`
	EnableSampling   bool    `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName      string  `mapstructure:"SERVICE_NAME"`
	ServiceVersion   string  `mapstructure:"SERVICE_VERSION"`
}

// SlowQueryThreshold is LOG_SLOW_QUERY_SECONDS as a duration.
func (c LoggerConfig) SlowQueryThreshold() time.Duration {
	return time.Duration(c.SlowQuerySeconds * float64(time.Second))
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv() // Read from environment variables

	// Set defaults first
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app") // Look for app.env
	v.SetConfigType("env")

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if we have env vars
	}

	var config Config

	config.DB.Host = v.GetString("DB_HOST")
	config.DB.Port = v.GetString("DB_PORT")
	config.DB.User = v.GetString("DB_USER")
	config.DB.Password = v.GetString("DB_PASSWORD")
	config.DB.Name = v.GetString("DB_NAME")
	config.DB.SSLMode = v.GetString("DB_SSLMODE")
	config.DB.MaxOpenConns = v.GetInt("DB_MAX_OPEN_CONNS")
	config.DB.MaxIdleConns = v.GetInt("DB_MAX_IDLE_CONNS")
	config.DB.ConnMaxLifetime = v.GetInt("DB_CONN_MAX_LIFETIME_SECONDS")
	config.DB.ConnMaxIdleTime = v.GetInt("DB_CONN_MAX_IDLE_TIME_SECONDS")
	config.DB.AutoMigrate = v.GetBool("DB_AUTO_MIGRATE")

	config.Redis.Host = v.GetString("REDIS_HOST")
	config.Redis.Port = v.GetString("REDIS_PORT")
	config.Redis.Password = v.GetString("REDIS_PASSWORD")
	config.Redis.DB = v.GetInt("REDIS_DB")
	config.Redis.MaxRetries = v.GetInt("REDIS_MAX_RETRIES")
	config.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")
	config.Redis.MinIdleConn = v.GetInt("REDIS_MIN_IDLE_CONN")

	config.App.Environment = v.GetString("APP_ENV")
	config.App.HTTPPort = v.GetString("HTTP_PORT")
	config.App.GRPCPort = v.GetString("GRPC_PORT")
	config.App.ShutdownTimeoutSeconds = v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")

	config.Session.Provider = strings.ToLower(v.GetString("SESSION_PROVIDER"))
	config.Session.CookieName = v.GetString("SESSION_COOKIE_NAME")
	config.Session.RedisPrefix = v.GetString("SESSION_REDIS_PREFIX")
	config.Session.JWTSecret = v.GetString("SESSION_JWT_SECRET")
	config.Session.JWTIssuer = v.GetString("SESSION_JWT_ISSUER")

	config.Dashboard.FetchTimeout = v.GetDuration("DASHBOARD_FETCH_TIMEOUT")
	config.Dashboard.RenderWait = v.GetDuration("DASHBOARD_RENDER_WAIT")
	config.Dashboard.ChartSymbol = v.GetString("DASHBOARD_CHART_SYMBOL")
	config.Dashboard.DefaultTimeframe = v.GetString("DASHBOARD_DEFAULT_TIMEFRAME")
	config.Dashboard.PlaceholderAvatar = v.GetString("DASHBOARD_PLACEHOLDER_AVATAR")

	config.Metrics.Enabled = v.GetBool("METRICS_ENABLED")
	config.Metrics.Path = v.GetString("METRICS_PATH")

	config.Logger.Level = v.GetString("LOG_LEVEL")
	config.Logger.Format = v.GetString("LOG_FORMAT")
	config.Logger.OutputPath = v.GetString("LOG_OUTPUT_PATH")
	config.Logger.SlowQuerySeconds = v.GetFloat64("LOG_SLOW_QUERY_SECONDS")
	config.Logger.EnableSampling = v.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = v.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = v.GetString("SERVICE_VERSION")

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "trading_dashboard")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_SECONDS", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME_SECONDS", 60)
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_MAX_RETRIES", 3)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONN", 2)

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("GRPC_PORT", "50051")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 15)

	v.SetDefault("SESSION_PROVIDER", SessionProviderRedis)
	v.SetDefault("SESSION_COOKIE_NAME", "session")
	v.SetDefault("SESSION_REDIS_PREFIX", "session:")
	v.SetDefault("SESSION_JWT_SECRET", "")
	v.SetDefault("SESSION_JWT_ISSUER", "")

	v.SetDefault("DASHBOARD_FETCH_TIMEOUT", "5s")
	v.SetDefault("DASHBOARD_RENDER_WAIT", "2s")
	v.SetDefault("DASHBOARD_CHART_SYMBOL", "OANDA:XAUUSD")
	v.SetDefault("DASHBOARD_DEFAULT_TIMEFRAME", "1d")
	v.SetDefault("DASHBOARD_PLACEHOLDER_AVATAR", "/images/placeholder-avatar.png")

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PATH", "/metrics")

	// Logger defaults
	env := v.GetString("APP_ENV")
	if env == "production" {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("LOG_FORMAT", "json")
		v.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		v.SetDefault("LOG_LEVEL", "debug")
		v.SetDefault("LOG_FORMAT", "console")
		v.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	v.SetDefault("LOG_OUTPUT_PATH", "stdout")
	v.SetDefault("LOG_SLOW_QUERY_SECONDS", 0.2)
	v.SetDefault("SERVICE_NAME", "trading-dashboard")
	v.SetDefault("SERVICE_VERSION", "1.0.0")
}

// Validate checks settings that cannot be defaulted safely.
func (c *Config) Validate() error {
	var errs []error

	if c.DB.Host == "" || c.DB.Name == "" {
		errs = append(errs, errors.New("DB_HOST and DB_NAME are required"))
	}
	if c.App.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	if c.App.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT_SECONDS must be positive"))
	}

	switch c.Session.Provider {
	case SessionProviderRedis:
		if c.Redis.Host == "" {
			errs = append(errs, errors.New("REDIS_HOST is required for the redis session provider"))
		}
	case SessionProviderJWT:
		if c.Session.JWTSecret == "" {
			errs = append(errs, errors.New("SESSION_JWT_SECRET is required for the jwt session provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown SESSION_PROVIDER %q", c.Session.Provider))
	}

	if c.Dashboard.FetchTimeout <= 0 || c.Dashboard.RenderWait <= 0 {
		errs = append(errs, errors.New("DASHBOARD_FETCH_TIMEOUT and DASHBOARD_RENDER_WAIT must be positive"))
	}

	return errors.Join(errs...)
}

// DSN returns the PostgreSQL Data Source Name
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}
