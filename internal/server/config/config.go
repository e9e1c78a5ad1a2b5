// Package config holds runtime settings for the QuickJot server, loaded
// from the environment. Defaults are suitable for local development only.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the QuickJot server.
//
// Fields:
//   - HTTPAddr: bind address for the public HTTP endpoint.
//   - RedisURL: connection URL of the backing key-value store
//     (redis:// or rediss://).
//   - RedisPoolSize: upper bound on pooled store connections.
//   - RedisPoolTimeout: how long a request may wait for a free connection
//     before the lease attempt is reported as a store failure.
//   - SessionTTL: lifetime of an issued session token record.
//   - RequestTimeout: per-request deadline enforced by the router.
type Config struct {
	HTTPAddr         string        `env:"QUICKJOT_HTTP_ADDR" envDefault:":8080"`
	RedisURL         string        `env:"QUICKJOT_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisPoolSize    int           `env:"QUICKJOT_REDIS_POOL_SIZE" envDefault:"10"`
	RedisPoolTimeout time.Duration `env:"QUICKJOT_REDIS_POOL_TIMEOUT" envDefault:"5s"`
	SessionTTL       time.Duration `env:"QUICKJOT_SESSION_TTL" envDefault:"720h"`
	RequestTimeout   time.Duration `env:"QUICKJOT_REQUEST_TIMEOUT" envDefault:"10s"`
}

// Load builds a Config from the process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
