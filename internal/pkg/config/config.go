package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Spanner SpannerConfig
	Catalog CatalogConfig
	Outbox  OutboxConfig
}

type ServerConfig struct {
	Env      string
	GRPCAddr string
	HTTPAddr string
}

type SpannerConfig struct {
	// Database is the full resource name:
	// projects/<project>/instances/<instance>/databases/<db>.
	Database string
}

type CatalogConfig struct {
	// RPCTimeout bounds a single call to the remote catalog service.
	RPCTimeout time.Duration
}

type OutboxConfig struct {
	Brokers      []string
	Topic        string
	PollInterval time.Duration
	BatchSize    int
}

// Enabled reports whether the relay has somewhere to publish.
func (c OutboxConfig) Enabled() bool {
	return len(c.Brokers) > 0 && c.Topic != ""
}

// Load reads configuration from the environment. Values in the given dotenv
// files (default ".env") are applied first and never override variables
// that are already set; missing files are ignored.
func Load(envFiles ...string) (*Config, error) {
	v, err := newViper(envFiles)
	if err != nil {
		return nil, err
	}

	v.SetDefault("GRPC_ADDR", ":50051")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("KAFKA_TOPIC", "promotion-events")
	v.SetDefault("OUTBOX_POLL_INTERVAL", "2s")
	v.SetDefault("OUTBOX_BATCH_SIZE", 100)

	cfg := &Config{
		Server: ServerConfig{
			Env:      v.GetString("SERVER_ENV"),
			GRPCAddr: v.GetString("GRPC_ADDR"),
			HTTPAddr: v.GetString("HTTP_ADDR"),
		},
		Spanner: SpannerConfig{
			Database: v.GetString("SPANNER_DATABASE"),
		},
		Catalog: CatalogConfig{
			RPCTimeout: v.GetDuration("CATALOG_RPC_TIMEOUT"),
		},
		Outbox: OutboxConfig{
			Brokers:      splitList(v.GetString("KAFKA_BROKERS")),
			Topic:        v.GetString("KAFKA_TOPIC"),
			PollInterval: v.GetDuration("OUTBOX_POLL_INTERVAL"),
			BatchSize:    v.GetInt("OUTBOX_BATCH_SIZE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ClientConfig configures tools that talk to a running catalog service.
type ClientConfig struct {
	Env     string
	Target  string
	Catalog CatalogConfig
}

// LoadClient reads CATALOG_ADDR and CATALOG_RPC_TIMEOUT the same way Load does.
func LoadClient(envFiles ...string) (*ClientConfig, error) {
	v, err := newViper(envFiles)
	if err != nil {
		return nil, err
	}
	v.SetDefault("CATALOG_ADDR", "localhost:50051")

	cfg := &ClientConfig{
		Env:     v.GetString("SERVER_ENV"),
		Target:  v.GetString("CATALOG_ADDR"),
		Catalog: CatalogConfig{RPCTimeout: v.GetDuration("CATALOG_RPC_TIMEOUT")},
	}
	if cfg.Catalog.RPCTimeout <= 0 {
		return nil, errors.New("config: CATALOG_RPC_TIMEOUT must be positive")
	}
	return cfg, nil
}

func newViper(envFiles []string) (*viper.Viper, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("CATALOG_RPC_TIMEOUT", "5s")
	return v, nil
}

func (c *Config) validate() error {
	switch {
	case c.Spanner.Database == "":
		return errors.New("config: SPANNER_DATABASE is required")
	case c.Catalog.RPCTimeout <= 0:
		return errors.New("config: CATALOG_RPC_TIMEOUT must be positive")
	case c.Outbox.PollInterval <= 0:
		return errors.New("config: OUTBOX_POLL_INTERVAL must be positive")
	case c.Outbox.BatchSize <= 0:
		return errors.New("config: OUTBOX_BATCH_SIZE must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
