package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Store     StoreConfig
	Postgres  PostgresConfig
	Lock      LockConfig
	Sales     SalesConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Elastic   ElasticsearchConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
	HTTPPort string

	// RequestTimeout bounds calls that arrive without a deadline.
	RequestTimeout time.Duration
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// StoreConfig selects the persistence backend: "memory" or "postgres".
type StoreConfig struct {
	Backend string
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
	AutoMigrate     bool
}

// LockConfig selects the per-entity lock implementation: "local" or "redis".
type LockConfig struct {
	Backend string
	TTL     time.Duration
	Backoff time.Duration
}

type SalesConfig struct {
	CommitTimeout time.Duration
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Enabled       bool
	Brokers       []string
	RestockTopic  string
	GroupID       string
	SalesTopic    string
	PaymentsTopic string
	LowStockTopic string
}

type ElasticsearchConfig struct {
	Enabled   bool
	Addresses []string
	Username  string
	Password  string
}

type SchedulerConfig struct {
	LowStockCron string
}

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	LockLocal       = "local"
	LockRedis       = "redis"
)

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "development"),
			GRPCPort: getEnv("GRPC_PORT", ":8083"),
			HTTPPort: getEnv("HTTP_PORT", ":8084"),

			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", BackendMemory),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5433"),
			User:            getEnv("POSTGRES_USER", "omnipos"),
			Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
			DBName:          getEnv("POSTGRES_DB", "omnipos_sales"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
			AutoMigrate:     getEnvBool("POSTGRES_AUTO_MIGRATE", true),
		},
		Lock: LockConfig{
			Backend: getEnv("LOCK_BACKEND", LockLocal),
			TTL:     getEnvDuration("LOCK_TTL", 30*time.Second),
			Backoff: getEnvDuration("LOCK_RETRY_BACKOFF", 50*time.Millisecond),
		},
		Sales: SalesConfig{
			CommitTimeout: getEnvDuration("SALES_COMMIT_TIMEOUT", 10*time.Second),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", "your-secret-key-change-this-in-prod"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Enabled:       getEnvBool("KAFKA_ENABLED", false),
			Brokers:       getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			RestockTopic:  getEnv("KAFKA_TOPIC_RESTOCK", "inventory.restock"),
			GroupID:       getEnv("KAFKA_GROUP_INVENTORY", "sales-inventory"),
			SalesTopic:    getEnv("KAFKA_TOPIC_SALES", "sale.committed"),
			PaymentsTopic: getEnv("KAFKA_TOPIC_PAYMENTS", "credit.payment_recorded"),
			LowStockTopic: getEnv("KAFKA_TOPIC_LOW_STOCK", "inventory.low_stock"),
		},
		Elastic: ElasticsearchConfig{
			Enabled:   getEnvBool("ELASTICSEARCH_ENABLED", false),
			Addresses: getEnvSlice("ELASTICSEARCH_ADDRESSES", []string{"http://localhost:9200"}),
			Username:  getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:  getEnv("ELASTICSEARCH_PASSWORD", ""),
		},
		Scheduler: SchedulerConfig{
			LowStockCron: getEnv("LOW_STOCK_CRON", "*/30 * * * *"),
		},
	}
}

// Validate rejects backend combinations the service cannot run with.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch c.Store.Backend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendMemory, BackendPostgres, c.Store.Backend)
	}

	switch c.Lock.Backend {
	case LockLocal:
	case LockRedis:
		if !c.Redis.Enabled {
			return errors.New("LOCK_BACKEND=redis requires REDIS_ENABLED=true")
		}
	default:
		return fmt.Errorf("LOCK_BACKEND must be %q or %q, got %q", LockLocal, LockRedis, c.Lock.Backend)
	}

	if c.Sales.CommitTimeout <= 0 {
		return errors.New("SALES_COMMIT_TIMEOUT must be positive")
	}
	if c.Server.RequestTimeout < c.Sales.CommitTimeout {
		return errors.New("REQUEST_TIMEOUT must not be shorter than SALES_COMMIT_TIMEOUT")
	}
	if c.Lock.TTL <= c.Sales.CommitTimeout {
		return errors.New("LOCK_TTL must be longer than SALES_COMMIT_TIMEOUT")
	}

	if c.JWT.SecretKey == "" {
		return errors.New("JWT_SECRET_KEY must be provided")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}
