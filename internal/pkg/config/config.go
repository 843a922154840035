package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Worker  WorkerConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Payment PaymentConfig
	Otel    OtelConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`

	// Retries for serialization failures and deadlocks
	TxMaxRetries int `envconfig:"DB_TX_MAX_RETRIES" default:"3"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration string        `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"rcf-identity"`
	Leeway   time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

// BookingConfig holds the cancellation policy knobs. Defaults follow the published terms of service.
type BookingConfig struct {
	CancellationNotice time.Duration `envconfig:"BOOKING_CANCELLATION_NOTICE" default:"24h"`
	CreditValidity     time.Duration `envconfig:"BOOKING_CREDIT_VALIDITY" default:"504h"` // 21 days
	IdempotencyTTL     time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
}

type WorkerConfig struct {
	SweepInterval      time.Duration `envconfig:"WORKER_SWEEP_INTERVAL" default:"1m"`
	SweepBatchSize     int           `envconfig:"WORKER_SWEEP_BATCH_SIZE" default:"50"`
	OutboxPollInterval time.Duration `envconfig:"WORKER_OUTBOX_POLL_INTERVAL" default:"2s"`
	OutboxBatchSize    int           `envconfig:"WORKER_OUTBOX_BATCH_SIZE" default:"50"`
}

// Empty Addr disables the reservation rate limiter.
type RedisConfig struct {
	Addr          string        `envconfig:"REDIS_ADDR" default:""`
	Password      string        `envconfig:"REDIS_PASSWORD" default:""`
	DB            int           `envconfig:"REDIS_DB" default:"0"`
	ReserveLimit  int           `envconfig:"REDIS_RESERVE_LIMIT" default:"30"`
	ReserveWindow time.Duration `envconfig:"REDIS_RESERVE_WINDOW" default:"1m"`
	FailOpen      bool          `envconfig:"REDIS_FAIL_OPEN" default:"true"`
}

// Empty Brokers disables the outbox publisher; events stay in the outbox table.
type KafkaConfig struct {
	// Comma separated. Empty disables the outbox publisher.
	Brokers     []string `envconfig:"KAFKA_BROKERS"`
	TopicPrefix string   `envconfig:"KAFKA_TOPIC_PREFIX" default:"rcf."`
}

type PaymentConfig struct {
	CallbackToken string `envconfig:"PAYMENT_CALLBACK_TOKEN" required:"true"`
}

type OtelConfig struct {
	Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName  string  `envconfig:"OTEL_SERVICE_NAME" default:"rcf-booking"`
	OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	SampleRatio  float64 `envconfig:"OTEL_SAMPLING_RATIO" default:"1"`
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
			MaxConns: 20,

			TxMaxRetries: 3,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Argentina/Buenos_Aires",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
			Issuer:   "rcf-identity-test",
		},
		Booking: BookingConfig{
			CancellationNotice: 24 * time.Hour,
			CreditValidity:     21 * 24 * time.Hour,
			IdempotencyTTL:     24 * time.Hour,
		},
		Worker: WorkerConfig{
			SweepInterval:      time.Minute,
			SweepBatchSize:     50,
			OutboxPollInterval: 2 * time.Second,
			OutboxBatchSize:    50,
		},
		Payment: PaymentConfig{
			CallbackToken: "test-callback-token",
		},
	}
}
