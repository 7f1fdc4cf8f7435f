package config

import (
	"testing"
	"time"

	"github.com/pitchside/leagueops/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.DBURL != "" {
		t.Fatalf("DBURL should default to empty (memory store), got %q", cfg.DBURL)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected BaseURL: %q", cfg.BaseURL)
	}
	if cfg.ApproveWorkers != 4 {
		t.Fatalf("unexpected ApproveWorkers: %d", cfg.ApproveWorkers)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected timeouts: %s / %s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_BaseURLTrimsTrailingSlash(t *testing.T) {
	t.Setenv("APP_BASE_URL", "https://league.example.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BaseURL != "https://league.example.com" {
		t.Fatalf("unexpected BaseURL: %q", cfg.BaseURL)
	}
}

func TestLoad_SMTPRequiresHostAndFromWhenEnabled(t *testing.T) {
	t.Setenv("SMTP_ENABLED", "true")
	t.Setenv("SMTP_HOST", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SMTP_ENABLED=true without SMTP_HOST")
	}

	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_FROM", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SMTP_ENABLED=true without SMTP_FROM")
	}
}

func TestLoad_SMTPConfigParsing(t *testing.T) {
	t.Setenv("SMTP_ENABLED", "true")
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USERNAME", "relay")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("SMTP_FROM", "league@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.SMTPEnabled || cfg.SMTPHost != "mail.example.com" || cfg.SMTPPort != 2525 {
		t.Fatalf("unexpected SMTP config: %+v", cfg)
	}
	if cfg.SMTPFrom != "league@example.com" {
		t.Fatalf("unexpected SMTPFrom: %q", cfg.SMTPFrom)
	}
}

func TestLoad_AdminTokenRequiredInProd(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("ADMIN_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without ADMIN_TOKEN")
	}

	t.Setenv("ADMIN_TOKEN", "sekrit")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AdminToken != "sekrit" {
		t.Fatalf("unexpected AdminToken")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}
