package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   provider credentials), security settings
// - default: Values common across all environments (timeouts, thresholds),
//   standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	Provider     ProviderConfig
	RateLimit    RateLimitConfig
	Compensation CompensationConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// ProviderConfig points the engine at the external aviation-data API.
// Credentials are injected here, never embedded as literals.
type ProviderConfig struct {
	BaseURL        string        `envconfig:"PROVIDER_BASE_URL" required:"true"`
	APIKey         string        `envconfig:"PROVIDER_API_KEY" required:"true"`
	MaxWindow      time.Duration `envconfig:"PROVIDER_MAX_WINDOW" default:"12h"`
	RequestTimeout time.Duration `envconfig:"PROVIDER_REQUEST_TIMEOUT" default:"15s"`
	MaxRetries     int           `envconfig:"PROVIDER_MAX_RETRIES" default:"4"`
	BaseBackoff    time.Duration `envconfig:"PROVIDER_BASE_BACKOFF" default:"500ms"`
	MaxBackoff     time.Duration `envconfig:"PROVIDER_MAX_BACKOFF" default:"30s"`
}

// RateLimitConfig bounds concurrent access to the provider.
type RateLimitConfig struct {
	MaxInFlight   int           `envconfig:"PROVIDER_MAX_IN_FLIGHT" default:"4"`
	MinInterval   time.Duration `envconfig:"PROVIDER_MIN_INTERVAL" default:"1s"`
	MaxQueueDepth int           `envconfig:"PROVIDER_MAX_QUEUE_DEPTH" default:"64"`
}

// CompensationConfig is the static rule table, loaded once at process start.
// A missing or non-positive tier amount fails startup, not evaluation.
type CompensationConfig struct {
	Currency        string        `envconfig:"COMPENSATION_CURRENCY" default:"EUR"`
	ShortTierCents  int64         `envconfig:"COMPENSATION_SHORT_CENTS" default:"25000"`
	MediumTierCents int64         `envconfig:"COMPENSATION_MEDIUM_CENTS" default:"40000"`
	LongTierCents   int64         `envconfig:"COMPENSATION_LONG_CENTS" default:"60000"`
	DelayThreshold  time.Duration `envconfig:"COMPENSATION_DELAY_THRESHOLD" default:"3h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Provider: ProviderConfig{
			BaseURL:        "http://localhost:18080",
			APIKey:         "test-key",
			MaxWindow:      12 * time.Hour,
			RequestTimeout: 2 * time.Second,
			MaxRetries:     2,
			BaseBackoff:    10 * time.Millisecond,
			MaxBackoff:     50 * time.Millisecond,
		},
		RateLimit: RateLimitConfig{
			MaxInFlight:   2,
			MinInterval:   0,
			MaxQueueDepth: 8,
		},
		Compensation: CompensationConfig{
			Currency:        "EUR",
			ShortTierCents:  25000,
			MediumTierCents: 40000,
			LongTierCents:   60000,
			DelayThreshold:  3 * time.Hour,
		},
	}
}
