package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	Port      string        `env:"PORT,      default=5000"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// DemoMode resolves requests without credentials to DemoUserID.
	DemoMode   bool  `env:"DEMO_MODE,    default=true"`
	DemoUserID int64 `env:"DEMO_USER_ID, default=1"`
	SeedDemo   bool  `env:"SEED_DEMO,    default=true"`

	Store    StoreConfig
	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	AI       AIConfig
}

type StoreConfig struct {
	Driver string `env:"STORE_DRIVER, default=memory"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=nomad_planner"`
}

// RedisConfig is optional: an empty Addr disables the AI response cache.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type AIConfig struct {
	APIKey   string        `env:"GEMINI_API_KEY"`
	BaseURL  string        `env:"GEMINI_BASE_URL,    default=https://generativelanguage.googleapis.com"`
	Model    string        `env:"GEMINI_MODEL,       default=gemini-1.5-flash"`
	Timeout  time.Duration `env:"AI_TIMEOUT,         default=0s"`
	CacheTTL time.Duration `env:"AI_CACHE_TTL,       default=10m"`
	Workers  int           `env:"AI_HISTORY_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("POSTGRES_DSN is required when STORE_DRIVER=postgres"))
		}
	case DriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			errs = append(errs, errors.New("MONGO_URI and MONGO_DB are required when STORE_DRIVER=mongo"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}
	if !c.DemoMode && c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required when DEMO_MODE=false"))
	}
	if c.AI.Timeout < 0 || c.AI.CacheTTL < 0 {
		errs = append(errs, errors.New("AI_TIMEOUT and AI_CACHE_TTL must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// IsDevelopment reports whether logs should be human-readable.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
