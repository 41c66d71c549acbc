package config_test

import (
	"testing"

	"mentor-backend/internal/shared/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CORS_ALLOW_ORIGINS", "GEMINI_API_KEY", "GEMINI_MODEL", "ENV"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Port)
	}
	if len(cfg.CORSAllowOrigin) != 1 || cfg.CORSAllowOrigin[0] != "*" {
		t.Fatalf("expected permissive CORS default, got %v", cfg.CORSAllowOrigin)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Fatalf("expected default model, got %q", cfg.GeminiModel)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("ENV", "PROD")

	cfg := config.Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[0] != want[0] || cfg.CORSAllowOrigin[1] != want[1] {
		t.Fatalf("expected split origins %v, got %v", want, cfg.CORSAllowOrigin)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Fatalf("expected api key, got %q", cfg.GeminiAPIKey)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected normalized env, got %q", cfg.Env)
	}
}
