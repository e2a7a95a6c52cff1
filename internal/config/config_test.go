package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SESSION_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("expected default driver postgres, got %s", cfg.DBDriver)
	}
	if cfg.SessionTTL != 7*24*time.Hour {
		t.Errorf("expected default session ttl of a week, got %s", cfg.SessionTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name:  "session_ttl",
			key:   "SESSION_TTL",
			value: "2h",
			check: func(t *testing.T, cfg *Config) {
				if cfg.SessionTTL != 2*time.Hour {
					t.Errorf("expected 2h, got %s", cfg.SessionTTL)
				}
			},
		},
		{
			name:  "invalid_duration_falls_back",
			key:   "SESSION_CACHE_TTL",
			value: "soon",
			check: func(t *testing.T, cfg *Config) {
				if cfg.SessionCacheTTL != time.Minute {
					t.Errorf("expected fallback of 1m, got %s", cfg.SessionCacheTTL)
				}
			},
		},
		{
			name:  "admin_emails_are_normalized",
			key:   "ADMIN_EMAILS",
			value: " Boss@Example.com, ,ops@example.com ",
			check: func(t *testing.T, cfg *Config) {
				if len(cfg.AdminEmails) != 2 {
					t.Fatalf("expected 2 admin emails, got %v", cfg.AdminEmails)
				}
				if cfg.AdminEmails[0] != "boss@example.com" {
					t.Errorf("expected lowercased email, got %s", cfg.AdminEmails[0])
				}
			},
		},
		{
			name:  "driver_is_lowercased",
			key:   "DB_DRIVER",
			value: "SQLite",
			check: func(t *testing.T, cfg *Config) {
				if cfg.DBDriver != "sqlite" {
					t.Errorf("expected sqlite, got %s", cfg.DBDriver)
				}
			},
		},
		{
			name:  "cookie_secure",
			key:   "COOKIE_SECURE",
			value: "true",
			check: func(t *testing.T, cfg *Config) {
				if !cfg.CookieSecure {
					t.Error("expected secure cookies")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg, err := Load()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}
