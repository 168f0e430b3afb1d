package config

import (
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()
	if cfg.Store.Backend != BackendMemory {
		t.Errorf("Store.Backend = %q, want %q", cfg.Store.Backend, BackendMemory)
	}
	if cfg.Sales.CommitTimeout != 10*time.Second {
		t.Errorf("Sales.CommitTimeout = %s, want 10s", cfg.Sales.CommitTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on defaults: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("SALES_COMMIT_TIMEOUT", "3s")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "not-a-number")

	cfg := LoadEnv()
	if cfg.Store.Backend != BackendPostgres {
		t.Errorf("Store.Backend = %q", cfg.Store.Backend)
	}
	if cfg.Sales.CommitTimeout != 3*time.Second {
		t.Errorf("Sales.CommitTimeout = %s", cfg.Sales.CommitTimeout)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "b:9092" {
		t.Errorf("Kafka.Brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.Postgres.MaxOpenConns != 10 {
		t.Errorf("invalid int should fall back, got %d", cfg.Postgres.MaxOpenConns)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"unknown store", func(c *Config) { c.Store.Backend = "mongo" }, true},
		{"redis lock without redis", func(c *Config) { c.Lock.Backend = LockRedis }, true},
		{"redis lock with redis", func(c *Config) { c.Lock.Backend = LockRedis; c.Redis.Enabled = true }, false},
		{"ttl shorter than commit", func(c *Config) { c.Lock.TTL = time.Second }, true},
		{"zero commit timeout", func(c *Config) { c.Sales.CommitTimeout = 0 }, true},
		{"request timeout shorter than commit", func(c *Config) { c.Server.RequestTimeout = time.Second }, true},
		{"empty secret", func(c *Config) { c.JWT.SecretKey = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadEnv()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
