package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/vita_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Errorf("default env should be development")
	}
	if cfg.DBMaxConns != 20 || cfg.DBMinConns != 5 {
		t.Errorf("wrong pool defaults: %d/%d", cfg.DBMaxConns, cfg.DBMinConns)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl, got %s", cfg.TokenTTL)
	}
	if cfg.WorkdayStart != "10:00" || cfg.WorkdayEnd != "16:00" || cfg.SlotStepMinutes != 30 {
		t.Errorf("wrong workday defaults: %s-%s step %d",
			cfg.WorkdayStart, cfg.WorkdayEnd, cfg.SlotStepMinutes)
	}
}

func TestLoad_DatabaseURLRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Errorf("expected error without DATABASE_URL")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/vita_test")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://vita.mx,https://app.vita.mx")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Errorf("expected production mode")
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
}

func TestValidate_SecretRequiredOutsideDev(t *testing.T) {
	cfg := &Config{Env: "production", TokenTTL: time.Hour, SlotStepMinutes: 30}
	if err := cfg.Validate(); err == nil {
		t.Errorf("production without JWT_SECRET must not validate")
	}

	cfg.JWTSecret = "something"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_DevWithoutSecret(t *testing.T) {
	cfg := &Config{Env: "development", TokenTTL: time.Hour, SlotStepMinutes: 30}
	if err := cfg.Validate(); err != nil {
		t.Errorf("development may run without a secret: %v", err)
	}
}

func TestValidate_BadKnobs(t *testing.T) {
	cfg := &Config{Env: "development", TokenTTL: time.Hour, SlotStepMinutes: 0}
	if err := cfg.Validate(); err == nil {
		t.Errorf("zero slot step must not validate")
	}

	cfg = &Config{Env: "development", TokenTTL: 0, SlotStepMinutes: 30}
	if err := cfg.Validate(); err == nil {
		t.Errorf("zero token ttl must not validate")
	}
}
