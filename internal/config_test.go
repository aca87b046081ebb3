package internal

import (
	"strings"
	"testing"
	"time"
)

func TestAuthConfig_DisabledMode(t *testing.T) {
	cfg := AuthConfig{Mode: "disabled", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled mode should pass: %v", err)
	}
	if cfg.AuthEnabled() {
		t.Error("disabled mode should not be enabled")
	}
}

func TestAuthConfig_EmptyModeDefaultsDisabled(t *testing.T) {
	cfg := AuthConfig{Mode: "", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mode should default to disabled: %v", err)
	}
	if cfg.Mode != AuthModeDisabled {
		t.Errorf("mode = %q, want %q", cfg.Mode, AuthModeDisabled)
	}
}

func TestAuthConfig_TokenModeValid(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: "mysecret"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("token mode with token should pass: %v", err)
	}
	if !cfg.AuthEnabled() {
		t.Error("token mode should be enabled")
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: ""}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("token mode with empty token should fail")
	}
	if !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthConfig_InvalidMode(t *testing.T) {
	cfg := AuthConfig{Mode: "magic", Token: "x"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid mode should fail validation")
	}
}

func TestBackendConfig_RequiresURL(t *testing.T) {
	cfg := BackendConfig{BaseURL: "", Timeout: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty base_url should fail validation")
	}

	cfg = BackendConfig{BaseURL: "not a url", Timeout: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatal("malformed base_url should fail validation")
	}

	cfg = BackendConfig{BaseURL: "http://localhost:9000", Timeout: 30 * time.Second}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid backend config should pass: %v", err)
	}
}

func TestTokenConfig_MinTTL(t *testing.T) {
	cfg := TokenConfig{TTL: time.Millisecond}
	if err := cfg.Validate(); err == nil {
		t.Fatal("sub-second TTL should fail validation")
	}

	cfg = TokenConfig{TTL: time.Hour}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("one hour TTL should pass: %v", err)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestFullConfig_AuthValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth.Mode = "token"
	cfg.Auth.Token = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch auth error")
	}
}
