package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/tenant-console/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_WizardSettings(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_WIZARD_CODE_CHECK_DEBOUNCE", "250ms")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Wizard.CodeCheckDebounce != 250*time.Millisecond {
		t.Errorf("Wizard.CodeCheckDebounce = %v, want 250ms (env override)", cfg.Wizard.CodeCheckDebounce)
	}
	if cfg.Wizard.SessionTTL <= 0 {
		t.Errorf("Wizard.SessionTTL = %v, want positive", cfg.Wizard.SessionTTL)
	}
	if cfg.Wizard.BaseDomain == "" {
		t.Error("Wizard.BaseDomain is empty")
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	// No YAML file sets the telemetry endpoint for local.
	if cfg.Telemetry.Endpoint != "" {
		t.Errorf("Telemetry.Endpoint = %q, want empty (default)", cfg.Telemetry.Endpoint)
	}
	if cfg.Wizard.SweepInterval != time.Minute {
		t.Errorf("Wizard.SweepInterval = %v, want 1m", cfg.Wizard.SweepInterval)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_FileOverlay(t *testing.T) {
	configDir, err := filepath.Abs("../../../configs")
	if err != nil {
		t.Fatal(err)
	}
	overlay := filepath.Join(t.TempDir(), "tenantctl.yaml")
	writeFile(t, overlay, "client:\n  base_url: http://directory.internal:9000\nwizard:\n  base_domain: example.test\n")

	t.Run("overlay wins over profile", func(t *testing.T) {
		cfg, err := config.Load("local", config.WithConfigDir(configDir), config.WithFile(overlay))
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.Client.BaseURL != "http://directory.internal:9000" {
			t.Errorf("Client.BaseURL = %q, want overlay value", cfg.Client.BaseURL)
		}
		if cfg.Wizard.BaseDomain != "example.test" {
			t.Errorf("Wizard.BaseDomain = %q, want overlay value", cfg.Wizard.BaseDomain)
		}
		if cfg.Log.Format != "text" {
			t.Errorf("Log.Format = %q, want profile value kept", cfg.Log.Format)
		}
	})

	t.Run("env wins over overlay", func(t *testing.T) {
		t.Setenv("APP_WIZARD_BASE_DOMAIN", "env.test")
		cfg, err := config.Load("local", config.WithConfigDir(configDir), config.WithFile(overlay))
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.Wizard.BaseDomain != "env.test" {
			t.Errorf("Wizard.BaseDomain = %q, want env value", cfg.Wizard.BaseDomain)
		}
	})

	t.Run("missing overlay fails", func(t *testing.T) {
		_, err := config.Load("local", config.WithConfigDir(configDir),
			config.WithFile(filepath.Join(t.TempDir(), "absent.yaml")))
		if err == nil {
			t.Fatal("Load with a missing overlay returned nil error")
		}
	})
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "prod/x", `win\path`, ".."} {
		if _, err := config.Load(profile, config.WithConfigDir(t.TempDir())); err == nil {
			t.Errorf("Load(%q) returned nil error", profile)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
