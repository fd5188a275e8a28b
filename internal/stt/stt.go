package stt

import "context"

// Provider defines the interface for speech-to-text providers
type Provider interface {
	// Transcribe transcribes an audio file and returns the result
	Transcribe(ctx context.Context, audioPath string) (*Result, error)

	// Name returns the name of the provider (e.g., "whisper")
	Name() string
}

// Result represents the result of a speech-to-text transcription
type Result struct {
	Transcript string // The transcribed text
	Provider   string // The provider used
	Model      string // The model that produced the transcript
}
