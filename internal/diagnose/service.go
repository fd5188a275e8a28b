// Package diagnose orchestrates the intake pipeline: prompt building,
// inference, prescription formatting and speech synthesis, in that fixed
// order. Each stage consumes the previous stage's exact output.
package diagnose

import (
	"context"
	"fmt"
	"log"
	"strings"

	"vaidya/internal/intake"
	"vaidya/internal/llm"
	"vaidya/internal/prompt"
	"vaidya/internal/rx"
	"vaidya/internal/stt"
)

// Result statuses surfaced to the presentation layer. A failed inference
// never masquerades as a diagnosis.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Error kinds for failed results.
const (
	KindInference     = "inference"
	KindTranscription = "transcription"
)

// Inferencer produces a diagnosis from a system+user prompt pair.
type Inferencer interface {
	Infer(ctx context.Context, system, user, imageB64 string, lang intake.Language) (string, error)
}

// Synthesizer renders text as spoken MP3 audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang intake.Language) ([]byte, error)
}

// Result is the shaped pipeline output for one consultation.
type Result struct {
	Status          string
	Diagnosis       string
	Prescription    string
	Recommendations string
	Transcript      string
	Audio           []byte
	ErrorKind       string
	ErrorMessage    string
}

// Service wires the pipeline stages together.
type Service struct {
	llm       Inferencer
	stt       stt.Provider
	tts       Synthesizer
	prompts   prompt.Builder
	formatter *rx.Formatter
}

// New creates a Service. The STT provider and synthesizer may be nil when
// the corresponding modality is not served (tests, degraded deployments).
func New(inferencer Inferencer, provider stt.Provider, synth Synthesizer) *Service {
	return &Service{
		llm:       inferencer,
		stt:       provider,
		tts:       synth,
		formatter: rx.NewFormatter(),
	}
}

// Transcribe runs speech-to-text for the audio file. Failures are returned
// to the caller but are never fatal to the intake flow; the patient can
// still type their symptoms.
func (s *Service) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if s.stt == nil {
		return "", fmt.Errorf("no transcription provider configured")
	}
	res, err := s.stt.Transcribe(ctx, audioPath)
	if err != nil {
		return "", err
	}
	return res.Transcript, nil
}

// Synthesize converts text to MP3 audio, or returns nil when synthesis is
// unavailable or fails. The rest of the result set is still usable.
func (s *Service) Synthesize(ctx context.Context, text string, lang intake.Language) []byte {
	if s.tts == nil {
		return nil
	}
	audio, err := s.tts.Synthesize(ctx, text, lang)
	if err != nil {
		log.Printf("[Diagnose] Audio synthesis failed: %v", err)
		return nil
	}
	return audio
}

// Run executes the full pipeline for a validated request. Invalid input is
// returned as an error (an *intake.InputError); remote failures after that
// point are reported in the Result's status, never as sentinel diagnosis
// strings.
func (s *Service) Run(ctx context.Context, req *intake.Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Status: StatusOK}

	// Voice input: transcription failure is non-fatal as long as the
	// patient typed something.
	if req.AudioPath != "" {
		transcript, err := s.Transcribe(ctx, req.AudioPath)
		if err != nil {
			log.Printf("[Diagnose] Transcription failed: %v", err)
		} else {
			result.Transcript = transcript
			req.Symptoms = transcript
		}
		if strings.TrimSpace(req.Symptoms) == "" {
			return nil, &intake.InputError{Field: "audio_file", Reason: "transcription failed and no symptom text was provided"}
		}
	}

	var imageB64 string
	if req.Modality == intake.ModalityImage {
		encoded, err := llm.EncodeImage(req.ImagePath, llm.DefaultMaxImageSize)
		if err != nil {
			return nil, &intake.InputError{Field: "image_file", Reason: err.Error()}
		}
		imageB64 = encoded
	}

	system, user := s.prompts.Build(req)
	diagnosis, err := s.llm.Infer(ctx, system, user, imageB64, req.Language)
	if err != nil {
		log.Printf("[Diagnose] Inference failed: %v", err)
		result.Status = StatusFailed
		result.ErrorKind = KindInference
		result.ErrorMessage = err.Error()
		return result, nil
	}

	if req.Modality == intake.ModalityImage {
		diagnosis += prompt.AdvisoryNote(req.Language)
	}
	result.Diagnosis = diagnosis
	result.Recommendations = extractRecommendations(diagnosis)

	prescription := s.formatter.Format(diagnosis, req.Language)
	result.Prescription = prescription.Text

	result.Audio = s.Synthesize(ctx, spokenText(req.Language, diagnosis, prescription.Text), req.Language)
	return result, nil
}

// extractRecommendations pulls the RECOMMENDATIONS section out of a
// structured diagnosis, up to the next section header. Unstructured
// replies yield an empty string.
func extractRecommendations(diagnosis string) string {
	lines := strings.Split(diagnosis, "\n")
	var section []string
	inSection := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		upper := strings.ToUpper(trimmed)
		switch {
		case strings.HasPrefix(upper, "RECOMMENDATIONS"):
			inSection = true
		case inSection && (strings.HasPrefix(upper, "DIAGNOSIS") || strings.HasPrefix(upper, "PRESCRIPTION") || strings.HasPrefix(upper, "NOTE:")):
			return strings.TrimSpace(strings.Join(section, "\n"))
		case inSection:
			section = append(section, line)
		}
	}
	return strings.TrimSpace(strings.Join(section, "\n"))
}

// spokenText builds the audio rendering of the result with localized
// section labels.
func spokenText(lang intake.Language, diagnosis, prescription string) string {
	switch lang {
	case intake.Hindi:
		return fmt.Sprintf("निदान: %s. पर्चे: %s", diagnosis, prescription)
	case intake.Marathi:
		return fmt.Sprintf("निदान: %s. औषधपत्र: %s", diagnosis, prescription)
	default:
		return fmt.Sprintf("Diagnosis: %s. Prescription: %s", diagnosis, prescription)
	}
}
