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
	Pricing PricingConfig
	Stripe  StripeConfig
	Model   ModelConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
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
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	// Issuer is checked against the iss claim when set.
	Issuer   string `envconfig:"JWT_ISSUER" default:"staybook-identity"`
}

type BookingConfig struct {
	MinCancellationNoticeDays int           `envconfig:"BOOKING_MIN_CANCEL_NOTICE_DAYS" default:"30"`
	MaxRecommendations        int           `envconfig:"BOOKING_MAX_RECOMMENDATIONS" default:"5"`
	PreferenceWeightCeiling   int           `envconfig:"BOOKING_PREFERENCE_WEIGHT_CEILING" default:"44"`
	GatewayTimeout            time.Duration `envconfig:"BOOKING_GATEWAY_TIMEOUT" default:"10s"`
	WebhookLookupAttempts     int           `envconfig:"BOOKING_WEBHOOK_LOOKUP_ATTEMPTS" default:"5"`
	WebhookLookupDelay        time.Duration `envconfig:"BOOKING_WEBHOOK_LOOKUP_DELAY" default:"500ms"`
}

type PricingConfig struct {
	// Zero means the half-width is taken from the model manifest MAE.
	Tolerance    float64       `envconfig:"PRICING_TOLERANCE" default:"0"`
	ModelTimeout time.Duration `envconfig:"PRICING_MODEL_TIMEOUT" default:"3s"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
}

type ModelConfig struct {
	BaseURL      string `envconfig:"MODEL_BASE_URL" default:"http://localhost:8501"`
	ManifestPath string `envconfig:"MODEL_MANIFEST_PATH" default:"model_manifest.yaml"`
	RetryCount   int    `envconfig:"MODEL_RETRY_COUNT" default:"2"`
}

type RedisConfig struct {
	URL              string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	WebhookDedupeTTL time.Duration `envconfig:"REDIS_WEBHOOK_DEDUPE_TTL" default:"24h"`
	WebhookKeyPrefix string        `envconfig:"REDIS_WEBHOOK_KEY_PREFIX" default:"staybook:webhook:"`
}

type KafkaConfig struct {
	Brokers       []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	BookingTopic  string        `envconfig:"KAFKA_BOOKING_TOPIC" default:"staybook.booking-events"`
	RelayInterval time.Duration `envconfig:"KAFKA_RELAY_INTERVAL" default:"2s"`
	RelayBatch    int           `envconfig:"KAFKA_RELAY_BATCH" default:"50"`
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
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
			Issuer:   "staybook-identity",
		},
		Booking: BookingConfig{
			MinCancellationNoticeDays: 30,
			MaxRecommendations:        5,
			PreferenceWeightCeiling:   44,
			GatewayTimeout:            time.Second,
			WebhookLookupAttempts:     3,
			WebhookLookupDelay:        time.Millisecond,
		},
		Pricing: PricingConfig{
			Tolerance:    10,
			ModelTimeout: time.Second,
		},
		Stripe: StripeConfig{
			SecretKey:     "sk_test_dummy",
			WebhookSecret: "whsec_test_dummy",
		},
		Model: ModelConfig{
			BaseURL:      "http://localhost:8501",
			ManifestPath: "model_manifest.yaml",
		},
		Redis: RedisConfig{
			URL:              "redis://localhost:6379/0",
			WebhookDedupeTTL: time.Hour,
			WebhookKeyPrefix: "test:webhook:",
		},
		Kafka: KafkaConfig{
			Brokers:       []string{"localhost:9092"},
			BookingTopic:  "test.booking-events",
			RelayInterval: 100 * time.Millisecond,
			RelayBatch:    10,
		},
	}
}
