package config

import "testing"

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TRIAGE_DB", "custom.db")
	t.Setenv("GENERATIVE_FALLBACK_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DBPath != "custom.db" {
		t.Errorf("DBPath = %q, want custom.db", cfg.DBPath)
	}
	if !cfg.GenerativeEnabled {
		t.Error("GenerativeEnabled = false, want true")
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("PORT", "")
	if _, err := Load(); err == nil {
		t.Error("Load succeeded with an empty PORT")
	}
}

func TestGenerativeDefaultFollowsAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "8080")
	t.Setenv("TRIAGE_DB", "triage.db")
	t.Setenv("GENERATIVE_FALLBACK_ENABLED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.GenerativeEnabled {
		t.Error("GenerativeEnabled should default to true when an API key is present")
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"on", false, true},
		{"false", true, false},
		{"0", true, false},
		{"off", true, false},
		{"gibberish", true, true},
		{"gibberish", false, false},
	}
	for _, tt := range tests {
		t.Setenv("BOOL_UNDER_TEST", tt.value)
		if got := getEnvBool("BOOL_UNDER_TEST", tt.fallback); got != tt.want {
			t.Errorf("getEnvBool(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.want)
		}
	}
}
