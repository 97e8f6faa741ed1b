package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// EnvDevelopment is the only environment allowed to run without an
// explicit JWT secret.
const EnvDevelopment = "development"

// ErrMissingJWTSecret is returned when JWT_SECRET is unset outside of
// development. Running with a known default secret is a security defect,
// so startup fails instead.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET must be set outside development")

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret has no default on purpose. Development substitutes a
	// throwaway value (see Load); every other environment must set it.
	JWTSecret string `env:"JWT_SECRET"`

	// DevSecretApplied is true when Load substituted the development
	// secret because JWT_SECRET was unset.
	DevSecretApplied bool

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=sahyog_medical"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig
// and enforces the secret policy: no JWT secret means no startup, except
// in development where an ephemeral-looking dev value is substituted.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != EnvDevelopment {
			return nil, ErrMissingJWTSecret
		}
		cfg.JWTSecret = "dev-only-insecure-secret"
		cfg.DevSecretApplied = true
	}

	return &cfg, nil
}

// IsDevelopment reports whether the process runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}
