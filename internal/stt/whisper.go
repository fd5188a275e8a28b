package stt

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperProvider implements STT using a Whisper model behind an
// OpenAI-compatible audio transcription endpoint (Groq by default).
type WhisperProvider struct {
	api   *openai.Client
	model string
}

// NewWhisperProvider creates a Whisper STT provider.
func NewWhisperProvider(apiKey, baseURL, model string) *WhisperProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &WhisperProvider{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Name returns the provider name
func (p *WhisperProvider) Name() string {
	return "whisper"
}

// Transcribe submits the audio file for transcription requesting plain-text
// output. A single remote attempt is made; failures are returned to the
// caller, which treats them as non-fatal to the intake flow.
func (p *WhisperProvider) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	startTime := time.Now()

	info, err := os.Stat(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}
	log.Printf("[Whisper STT] Processing audio file: %s, size: %d bytes", audioPath, info.Size())

	// Tiny files are almost certainly empty or truncated uploads.
	if info.Size() < 1000 {
		return nil, fmt.Errorf("audio file too small (%d bytes), may be empty or corrupted", info.Size())
	}

	resp, err := p.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    p.model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatText,
	})
	if err != nil {
		return nil, fmt.Errorf("transcription request failed: %w", err)
	}

	transcript := strings.TrimSpace(resp.Text)
	if transcript == "" {
		return nil, fmt.Errorf("no speech detected in audio")
	}

	log.Printf("[Whisper STT] Transcription successful: length=%d, duration=%v",
		len(transcript), time.Since(startTime))

	return &Result{
		Transcript: transcript,
		Provider:   p.Name(),
		Model:      p.model,
	}, nil
}
