package config

import "testing"

func TestLoadRequiresGroqKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when GROQ_API_KEY is missing")
	}
}

func TestLoadUsesDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("PORT", "")
	t.Setenv("GROQ_BASE_URL", "")
	t.Setenv("CHAT_MODEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.ChatModel != "llama3-8b-8192" {
		t.Fatalf("unexpected default chat model: %s", cfg.ChatModel)
	}
	if cfg.GroqBaseURL != "https://api.groq.com/openai/v1" {
		t.Fatalf("unexpected default base URL: %s", cfg.GroqBaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("CHAT_MODEL", "llama-3.1-70b-versatile")
	t.Setenv("TTS_BASE_URL", "http://localhost:9090/tts")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ChatModel != "llama-3.1-70b-versatile" {
		t.Fatalf("expected overridden chat model, got %s", cfg.ChatModel)
	}
	if cfg.TTSBaseURL != "http://localhost:9090/tts" {
		t.Fatalf("expected overridden TTS URL, got %s", cfg.TTSBaseURL)
	}
}
