package config

import (
	"strings"
	"testing"
	"time"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("ZOOMINFO_USERNAME", "user")
	t.Setenv("ZOOMINFO_PASSWORD", "pass")
}

func TestLoadReadsCredentialsFromEnv(t *testing.T) {
	setCredentials(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with credentials in env: %v", err)
	}
	if cfg.ZoomInfoUsername != "user" || cfg.ZoomInfoPassword != "pass" {
		t.Fatalf("credentials not loaded: %q / %q", cfg.ZoomInfoUsername, cfg.ZoomInfoPassword)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppName != "zoominfo-prospector" {
		t.Fatalf("app_name default missing: %q", cfg.AppName)
	}
	if cfg.ZoomInfoBaseURL != "https://api.zoominfo.com" {
		t.Fatalf("base url default missing: %q", cfg.ZoomInfoBaseURL)
	}
	if cfg.PollInterval != time.Hour {
		t.Fatalf("poll interval default wrong: %s", cfg.PollInterval)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("http timeout default wrong: %s", cfg.HTTPTimeout)
	}
	if cfg.StorageType != "bbolt" {
		t.Fatalf("storage type default wrong: %q", cfg.StorageType)
	}
}

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("ZOOMINFO_USERNAME", "")
	t.Setenv("ZOOMINFO_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when credentials are absent")
	}

	t.Setenv("ZOOMINFO_USERNAME", "user")
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "zoominfo_password") {
		t.Fatalf("expected password error, got %v", err)
	}
}

func TestLoadRejectsNonPositiveIntervals(t *testing.T) {
	setCredentials(t)

	cases := []struct {
		envKey string
		want   string
	}{
		{"POLL_INTERVAL", "poll_interval"},
		{"HTTP_TIMEOUT_SECONDS", "http_timeout_seconds"},
		{"STORAGE_TTL_SECONDS", "storage_ttl_seconds"},
		{"STORAGE_CLEANUP_INTERVAL_SECONDS", "storage_cleanup_interval_seconds"},
	}
	for _, tc := range cases {
		t.Run(tc.envKey, func(t *testing.T) {
			t.Setenv(tc.envKey, "-5")
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %s rejection, got %v", tc.want, err)
			}
		})
	}
}
