package config

import (
	"context"
	"errors"
	"os"
	"testing"
)

// unsetenv clears a variable for the test while letting t.Setenv restore
// the original value afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	_ = os.Unsetenv(key)
}

func TestLoad_MissingSecretOutsideDevelopmentFails(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestLoad_DevelopmentSubstitutesSecret(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWTSecret == "" {
		t.Fatalf("expected substituted development secret")
	}
	if !cfg.DevSecretApplied {
		t.Fatalf("expected DevSecretApplied to be set")
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development environment")
	}
}

func TestLoad_ExplicitSecretWins(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "real-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWTSecret != "real-secret" {
		t.Fatalf("unexpected secret: %q", cfg.JWTSecret)
	}
	if cfg.DevSecretApplied {
		t.Fatalf("explicit secret should not be flagged as substituted")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "s")
	unsetenv(t, "PORT")
	unsetenv(t, "MONGO_URI")
	unsetenv(t, "MONGO_DB")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("unexpected default port: %q", cfg.Port)
	}
	if cfg.Mongo.Database != "sahyog_medical" {
		t.Fatalf("unexpected default database: %q", cfg.Mongo.Database)
	}
}
