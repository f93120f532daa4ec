package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// DBHostEnv is the environment variable for database host.
	DBHostEnv = "DB_HOST"

	// DBPortEnv is the environment variable for database port.
	DBPortEnv = "DB_PORT"

	// DBUserEnv is the environment variable for database user.
	DBUserEnv = "DB_USER"

	// DBPassEnv is the environment variable for database password.
	DBPassEnv = "DB_PASS"

	// DBNameEnv is the environment variable for database name.
	DBNameEnv = "DB_NAME"

	// HTTPServerPortEnv is the environment variable for HTTP server port.
	HTTPServerPortEnv = "HTTP_SERVER_PORT"

	// Env is the environment variable for environment name.
	Env = "ENV"

	// MetricsServerPortEnv is the environment variable for metrics server port.
	MetricsServerPortEnv = "METRICS_SERVER_PORT"

	// LocalhostEnv is the constant for localhost.
	LocalhostEnv = "localhost"

	// EnvFilePath is the environment variable for .env file path (only for local/test environment).
	EnvFilePath = "ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"

	// AWSRegionEnv is the environment variable for AWS region.
	AWSRegionEnv = "AWS_REGION"

	// AWSEndpointEnv is the environment variable for AWS endpoint.
	AWSEndpointEnv = "AWS_ENDPOINT"

	// SQSQueueURLEnv is the environment variable for SQS queue URL.
	SQSQueueURLEnv = "SQS_QUEUE_URL"

	// StateBackendEnv selects where cart, wishlist and preferences are stored.
	StateBackendEnv = "STATE_BACKEND"

	// RedisAddrEnv is the environment variable for the Redis address (host:port).
	RedisAddrEnv = "REDIS_ADDR"

	// RedisPasswordEnv is the environment variable for the Redis password.
	RedisPasswordEnv = "REDIS_PASSWORD"

	// RedisDBEnv is the environment variable for the Redis database number.
	RedisDBEnv = "REDIS_DB"

	// CatalogSeedEnv seeds catalog generation. The catalog must be the same across
	// restarts for stored carts and wishlists to keep their products; 0 picks a random seed.
	CatalogSeedEnv = "CATALOG_SEED"

	// PaymentPublishableKeyEnv is the publishable key of the payment provider.
	PaymentPublishableKeyEnv = "PAYMENT_PUBLISHABLE_KEY"

	// PaymentCurrencyEnv is the checkout currency.
	PaymentCurrencyEnv = "PAYMENT_CURRENCY"

	// OutboxIntervalEnv is the polling interval of the outbox worker.
	OutboxIntervalEnv = "OUTBOX_INTERVAL"

	// SearchRateLimitEnv is the number of search requests per second allowed per client.
	SearchRateLimitEnv = "SEARCH_RATE_LIMIT"

	// SearchRateBurstEnv is the search request burst allowed per client.
	SearchRateBurstEnv = "SEARCH_RATE_BURST"
)

// StateBackend names a store state implementation.
type StateBackend string

const (
	StateBackendPostgres StateBackend = "postgres"
	StateBackendRedis    StateBackend = "redis"

	defaultPaymentCurrency = "inr"
	defaultOutboxInterval  = 2 * time.Second
	defaultSearchRateLimit = 20
	defaultSearchRateBurst = 40

	// DefaultCatalogSeed is used when CATALOG_SEED is unset.
	DefaultCatalogSeed uint64 = 20240601
)

var (
	// ErrMissingConfig is returned when required configuration values are missing.
	ErrMissingConfig = errors.New("missing config data")
	// ErrInvalidConfig is returned when a configuration value is malformed.
	ErrInvalidConfig = errors.New("invalid config data")
)

// Config represents the application configuration.
type Config struct {
	DebugMode     bool
	Database      DB
	HTTPServer    Server
	MetricsServer Server
	AWS           AWSConfig
	StateBackend  StateBackend
	Redis         Redis
	Catalog       Catalog
	Payment       Payment
	Outbox        Outbox
	SearchLimit   RateLimit
}

// Redis represents Redis connection settings.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Catalog represents catalog generation settings.
type Catalog struct {
	Seed uint64
}

// Payment represents the mock payment gateway settings.
type Payment struct {
	PublishableKey string
	Currency       string
}

// Outbox represents outbox worker settings.
type Outbox struct {
	Interval time.Duration
}

// RateLimit represents a per-client token bucket.
type RateLimit struct {
	RPS   float64
	Burst int
}

// AWSConfig represents AWS-specific configuration settings.
type AWSConfig struct {
	Region      string
	Endpoint    string
	SQSQueueURL string
}

// DB represents database configuration settings.
type DB struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
}

// Server represents server configuration settings.
type Server struct {
	Port string
}

func allNonEmpty(keyValues map[string]string) error {
	for key, value := range keyValues {
		if value == "" {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("error", "value is empty"))
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func allNumbers(keyValues map[string]string) error {
	for key, value := range keyValues {
		_, err := strconv.Atoi(value)
		if err != nil {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", err.Error()))
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	// Validate database configuration
	if err := allNonEmpty(map[string]string{
		DBHostEnv: c.Database.Host,
		DBUserEnv: c.Database.User,
		DBNameEnv: c.Database.Name,
	}); err != nil {
		return fmt.Errorf("database configuration incomplete: %w", err)
	}

	// Validate server ports
	if err := allNonEmpty(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("server port configuration incomplete: %w", err)
	}

	// Validate port numbers
	if err := allNumbers(map[string]string{
		DBPortEnv:            c.Database.Port,
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}

	// Validate AWS configuration
	if err := allNonEmpty(map[string]string{
		SQSQueueURLEnv: c.AWS.SQSQueueURL,
	}); err != nil {
		return fmt.Errorf("AWS configuration incomplete: %w", err)
	}

	switch c.StateBackend {
	case StateBackendPostgres:
	case StateBackendRedis:
		if err := allNonEmpty(map[string]string{
			RedisAddrEnv: c.Redis.Addr,
		}); err != nil {
			return fmt.Errorf("redis configuration incomplete: %w", err)
		}
	default:
		slog.Error("configuration validation failed", slog.String("key", StateBackendEnv), slog.String("value", string(c.StateBackend)))
		return fmt.Errorf("%w for key %s: %q", ErrInvalidConfig, StateBackendEnv, c.StateBackend)
	}

	if c.Outbox.Interval <= 0 {
		return fmt.Errorf("%w for key %s: must be positive", ErrInvalidConfig, OutboxIntervalEnv)
	}
	if c.SearchLimit.RPS <= 0 {
		return fmt.Errorf("%w for key %s: must be positive", ErrInvalidConfig, SearchRateLimitEnv)
	}
	if c.SearchLimit.Burst <= 0 {
		return fmt.Errorf("%w for key %s: must be positive", ErrInvalidConfig, SearchRateBurstEnv)
	}

	return nil
}

func getEnvOrDefault(name, defaultValue string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w for key %s: %w", ErrInvalidConfig, name, err)
	}
	return val, nil
}

func getEnvAsUint64(name string, defaultValue uint64) (uint64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue, nil
	}
	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w for key %s: %w", ErrInvalidConfig, name, err)
	}
	return val, nil
}

func getEnvAsFloat(name string, defaultValue float64) (float64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w for key %s: %w", ErrInvalidConfig, name, err)
	}
	return val, nil
}

func getEnvAsDuration(name string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue, nil
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w for key %s: %w", ErrInvalidConfig, name, err)
	}
	return val, nil
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

// ApplyEnvFile loads environment variables from the specified .env files.
func ApplyEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables and validates it.
func LoadFromEnv() (*Config, error) {
	envPath := os.Getenv(EnvFilePath)
	if envPath == "" {
		envPath = DefaultEnvFilePath
	}
	err := ApplyEnvFile(envPath)
	if err != nil {
		// just log the error, maybe all envs are set in another way
		slog.Info("failed to load from .env", slog.Any("err", err))
	}

	redisDB, err := getEnvAsInt(RedisDBEnv, 0)
	if err != nil {
		return nil, err
	}
	seed, err := getEnvAsUint64(CatalogSeedEnv, DefaultCatalogSeed)
	if err != nil {
		return nil, err
	}
	outboxInterval, err := getEnvAsDuration(OutboxIntervalEnv, defaultOutboxInterval)
	if err != nil {
		return nil, err
	}
	searchRPS, err := getEnvAsFloat(SearchRateLimitEnv, defaultSearchRateLimit)
	if err != nil {
		return nil, err
	}
	searchBurst, err := getEnvAsInt(SearchRateBurstEnv, defaultSearchRateBurst)
	if err != nil {
		return nil, err
	}

	conf := &Config{
		DebugMode: getEnvAsBool(DebugModeEnv, false),
		Database: DB{
			Host:     os.Getenv(DBHostEnv),
			User:     os.Getenv(DBUserEnv),
			Password: os.Getenv(DBPassEnv),
			Name:     os.Getenv(DBNameEnv),
			Port:     os.Getenv(DBPortEnv),
		},
		HTTPServer: Server{
			Port: os.Getenv(HTTPServerPortEnv),
		},
		MetricsServer: Server{
			Port: os.Getenv(MetricsServerPortEnv),
		},
		AWS: AWSConfig{
			Region:      os.Getenv(AWSRegionEnv),
			Endpoint:    os.Getenv(AWSEndpointEnv),
			SQSQueueURL: os.Getenv(SQSQueueURLEnv),
		},
		StateBackend: StateBackend(getEnvOrDefault(StateBackendEnv, string(StateBackendPostgres))),
		Redis: Redis{
			Addr:     os.Getenv(RedisAddrEnv),
			Password: os.Getenv(RedisPasswordEnv),
			DB:       redisDB,
		},
		Catalog: Catalog{
			Seed: seed,
		},
		Payment: Payment{
			PublishableKey: os.Getenv(PaymentPublishableKeyEnv),
			Currency:       getEnvOrDefault(PaymentCurrencyEnv, defaultPaymentCurrency),
		},
		Outbox: Outbox{
			Interval: outboxInterval,
		},
		SearchLimit: RateLimit{
			RPS:   searchRPS,
			Burst: searchBurst,
		},
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
