package config

import (
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8000" {
		t.Fatalf("expected default addr :8000, got %q", cfg.Addr)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("expected default timeout 3s, got %s", cfg.RequestTimeout)
	}
	if cfg.TokenTTL != 10*time.Minute {
		t.Fatalf("expected default token ttl 10m, got %s", cfg.TokenTTL)
	}
	if cfg.Debug {
		t.Fatal("expected debug off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CLAVEKEY_ADDR", "127.0.0.1:9999")
	t.Setenv("CLAVEKEY_DEBUG", "true")
	t.Setenv("LICENSE_TOKEN_TTL", "1h")
	t.Setenv("LICENSE_HMAC_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9999" || !cfg.Debug || cfg.TokenTTL != time.Hour || cfg.HMACSecret != "s3cret" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("CLAVEKEY_REQUEST_TIMEOUT", "soon")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("LICENSE_TOKEN_TTL", "0s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero token ttl")
	}
}

func TestDebugFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "true", want: true},
		{value: "false", want: false},
		{value: "maybe", want: false},
	}
	for _, tt := range tests {
		t.Setenv("CLAVEKEY_DEBUG", tt.value)
		if got := DebugFromEnv(); got != tt.want {
			t.Fatalf("CLAVEKEY_DEBUG=%q: expected %v, got %v", tt.value, tt.want, got)
		}
	}
}

func TestDebugFromEnvIgnoresServeSettings(t *testing.T) {
	t.Setenv("CLAVEKEY_DEBUG", "true")
	t.Setenv("LICENSE_TOKEN_TTL", "0s")
	t.Setenv("CLAVEKEY_REQUEST_TIMEOUT", "soon")
	if !DebugFromEnv() {
		t.Fatal("expected debug on")
	}
}

// Exitf calls os.Exit, so it runs in a subprocess.
func TestExitf(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "random source unavailable")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")
	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: random source unavailable") {
		t.Fatalf("expected message in output, got %q", out)
	}
}
