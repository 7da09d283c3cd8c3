package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreBackendMongo  = "mongo"
	StoreBackendMemory = "memory"
)

type Config struct {
	AppName                       string `env:"APP_NAME" envDefault:"clover"`
	Version                       string `env:"APP_VERSION" envDefault:"dev"`
	Port                          int    `env:"PORT" envDefault:"3010"`
	LogLevel                      string `env:"LOG_LEVEL" envDefault:"info"`
	PrettyLogs                    bool   `env:"PRETTY_LOGS" envDefault:"false"`
	HttpServerWriteTimeoutSeconds int    `env:"HTTP_SERVER_WRITE_TIMEOUT_SECONDS" envDefault:"300"`
	HttpServerReadTimeoutSeconds  int    `env:"HTTP_SERVER_READ_TIMEOUT_SECONDS" envDefault:"10"`
	HttpServerIdleTimeoutSeconds  int    `env:"HTTP_SERVER_IDLE_TIMEOUT_SECONDS" envDefault:"60"`
	ReadHeaderTimeoutSeconds      int    `env:"HTTP_SERVER_READ_HEADER_TIMEOUT_SECONDS" envDefault:"10"`
	MaxHeaderBytes                int    `env:"HTTP_SERVER_MAX_HEADER_BYTES" envDefault:"64000"`
	StartupMaxAttempts            int    `env:"STARTUP_MAX_ATTEMPTS" envDefault:"5"`

	// Legacy SQL Server
	LegacyDBDriver           string        `env:"LEGACY_DB_DRIVER" envDefault:"sqlserver"`
	LegacyDBConnectionString string        `env:"LEGACY_DB_CONNECTION_STRING"`
	LegacyDBQueryTimeout     time.Duration `env:"LEGACY_DB_QUERY_TIMEOUT" envDefault:"30s"`
	LegacyDBMaxOpenConns     int           `env:"LEGACY_DB_MAX_OPEN_CONNS" envDefault:"4"`

	// Target document store
	StoreBackend        string        `env:"STORE_BACKEND" envDefault:"mongo"`
	MongoURI            string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase       string        `env:"MONGO_DATABASE" envDefault:"clover"`
	MongoConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`

	// Redis
	RedisEnabled         bool          `env:"REDIS_ENABLED" envDefault:"false"`
	RedisHost            string        `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort            int           `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword        string        `env:"REDIS_PASSWORD"`
	RedisDB              int           `env:"REDIS_DB" envDefault:"0"`
	MigrationLockEnabled bool          `env:"MIGRATION_LOCK_ENABLED" envDefault:"false"`
	MigrationLockTTL     time.Duration `env:"MIGRATION_LOCK_TTL" envDefault:"15m"`

	// Kafka producer
	KafkaEnabled      bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaBrokers      []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
	KafkaOutputTopic  string   `env:"KAFKA_OUTPUT_TOPIC" envDefault:"clover.migrations"`
	KafkaBatchSize    int      `env:"KAFKA_BATCH_SIZE" envDefault:"1"`
	KafkaBatchTimeout int      `env:"KAFKA_BATCH_TIMEOUT_MS" envDefault:"50"`
	KafkaRequiredAcks int      `env:"KAFKA_REQUIRED_ACKS" envDefault:"1"`
	KafkaCompression  string   `env:"KAFKA_COMPRESSION" envDefault:"snappy"`

	// Tracing
	TracingEnabled bool   `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint   string `env:"OTLP_ENDPOINT"`
	OTLPProtocol   string `env:"OTLP_PROTOCOL" envDefault:"grpc"`
	OTLPInsecure   bool   `env:"OTLP_INSECURE" envDefault:"true"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// Load reads the env files that exist, then the process environment. Values
// already set in the environment win over the files.
func Load(envFiles ...string) (Config, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return Config{}, fmt.Errorf("failed to load env files: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreBackend {
	case StoreBackendMongo, StoreBackendMemory:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q (use %q or %q)", c.StoreBackend, StoreBackendMongo, StoreBackendMemory)
	}
	if c.TracingEnabled && c.OTLPProtocol != "grpc" && c.OTLPProtocol != "http" {
		return fmt.Errorf("unsupported OTLP_PROTOCOL %q", c.OTLPProtocol)
	}
	return nil
}

func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}
