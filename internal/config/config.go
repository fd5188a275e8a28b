package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port        string
	GroqAPIKey  string
	GroqBaseURL string
	ChatModel   string
	STTModel    string
	TTSBaseURL  string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		ChatModel:   getEnv("CHAT_MODEL", "llama3-8b-8192"),
		STTModel:    getEnv("STT_MODEL", "whisper-large-v3"),
		TTSBaseURL:  getEnv("TTS_BASE_URL", "https://translate.google.com/translate_tts"),
	}

	// Validate required environment variables
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required. Please set it as environment variable:\n  Linux/Mac: export GROQ_API_KEY=\"your_key\"\n  Windows PowerShell: $env:GROQ_API_KEY=\"your_key\"\n\nYou can get an API key from: https://console.groq.com/")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
