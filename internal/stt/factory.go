package stt

import (
	"fmt"
	"log"
	"os"
	"strings"

	"vaidya/internal/config"
)

// CreateProvider creates an STT provider based on environment configuration.
// The default "groq" provider shares the chat credential; "openai" points
// the same Whisper client at api.openai.com with its own key.
func CreateProvider(cfg *config.Config) (Provider, error) {
	providerName := strings.ToLower(os.Getenv("STT_PROVIDER"))

	if providerName == "" {
		providerName = "groq"
		log.Printf("[STT Factory] STT_PROVIDER not set, defaulting to 'groq'")
	}

	switch providerName {
	case "groq":
		return createGroqProvider(cfg)
	case "openai":
		return createOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s. Supported: groq, openai", providerName)
	}
}

func createGroqProvider(cfg *config.Config) (Provider, error) {
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable is not set")
	}
	log.Printf("[STT Factory] Creating Groq Whisper provider (model: %s)", cfg.STTModel)
	return NewWhisperProvider(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.STTModel), nil
}

func createOpenAIProvider(cfg *config.Config) (Provider, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}
	model := os.Getenv("OPENAI_STT_MODEL")
	if model == "" {
		model = "whisper-1"
		log.Printf("[STT Factory] OPENAI_STT_MODEL not set, using default: %s", model)
	}
	log.Printf("[STT Factory] Creating OpenAI Whisper provider (model: %s)", model)
	return NewWhisperProvider(apiKey, "", model), nil
}
