package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if !cfg.DemoMode || cfg.DemoUserID != 1 || !cfg.SeedDemo {
		t.Fatalf("unexpected demo settings: %+v", cfg)
	}
	if cfg.Store.Driver != DriverMemory {
		t.Fatalf("unexpected driver: %q", cfg.Store.Driver)
	}
	if cfg.AI.Timeout != 0 || cfg.AI.CacheTTL != 10*time.Minute || cfg.AI.Workers != 4 {
		t.Fatalf("unexpected ai settings: %+v", cfg.AI)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("redis should be disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected token ttl: %v", cfg.TokenTTL)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":           "9000",
		"STORE_DRIVER":   "postgres",
		"POSTGRES_DSN":   "postgres://planner@localhost/planner",
		"AI_TIMEOUT":     "30s",
		"REDIS_ADDR":     "localhost:6379",
		"DEMO_MODE":      "false",
		"JWT_SECRET":     "s3cret",
		"GEMINI_API_KEY": "key",
	}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Port != "9000" || cfg.Store.Driver != DriverPostgres || cfg.AI.Timeout != 30*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.DemoMode {
		t.Fatalf("demo mode should be off")
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := map[string]struct {
		env  map[string]string
		want string
	}{
		"unknown driver":       {map[string]string{"STORE_DRIVER": "sqlite"}, "unknown STORE_DRIVER"},
		"postgres without dsn": {map[string]string{"STORE_DRIVER": "postgres"}, "POSTGRES_DSN"},
		"no demo no secret":    {map[string]string{"DEMO_MODE": "false"}, "JWT_SECRET"},
		"negative ttl":         {map[string]string{"AI_CACHE_TTL": "-1m"}, "must not be negative"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(context.Background(), envconfig.MapLookuper(tc.env))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
