package intake

import (
	"fmt"
	"strings"
)

// Language is the closed set of languages the intake pipeline supports.
// Unrecognized codes are rejected at the boundary by ParseLanguage rather
// than silently defaulted inside each component.
type Language string

const (
	English Language = "English"
	Hindi   Language = "Hindi"
	Marathi Language = "Marathi"
)

// Languages lists all supported languages in display order.
var Languages = []Language{English, Hindi, Marathi}

// ParseLanguage normalizes a user-supplied language name or ISO code.
// An empty value defaults to English; anything else unknown is an error.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "english", "en":
		return English, nil
	case "hindi", "hi":
		return Hindi, nil
	case "marathi", "mr":
		return Marathi, nil
	}
	return "", fmt.Errorf("unsupported language %q (supported: English, Hindi, Marathi)", s)
}

// TTSCode returns the speech-synthesis language code.
func (l Language) TTSCode() string {
	switch l {
	case Hindi:
		return "hi"
	case Marathi:
		return "mr"
	default:
		return "en"
	}
}

// Modality is the input channel of a single request.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityAudio Modality = "audio"
	ModalityImage Modality = "image"
)

const (
	// MinDurationDays and MaxDurationDays bound the reported symptom duration.
	MinDurationDays = 0
	MaxDurationDays = 365
)

// Request is a normalized symptom-intake request. Exactly one primary
// modality payload is expected; a transcript filled in from audio counts
// as text once populated.
type Request struct {
	Modality      Modality
	Symptoms      string
	PriorSymptoms string
	DurationDays  int
	Language      Language
	AudioPath     string
	ImagePath     string
}

// InputError reports invalid user input caught before any remote call.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the request and clamps the duration into its allowed
// range. Audio requests are allowed through with empty symptoms because
// the transcript is filled in later; everything else needs symptom text.
func (r *Request) Validate() error {
	if r.Language == "" {
		r.Language = English
	}
	if r.DurationDays < MinDurationDays {
		r.DurationDays = MinDurationDays
	}
	if r.DurationDays > MaxDurationDays {
		r.DurationDays = MaxDurationDays
	}

	switch r.Modality {
	case ModalityText:
		if strings.TrimSpace(r.Symptoms) == "" {
			return &InputError{Field: "symptoms", Reason: "symptom description is required"}
		}
	case ModalityAudio:
		if r.AudioPath == "" && strings.TrimSpace(r.Symptoms) == "" {
			return &InputError{Field: "audio_file", Reason: "audio file or symptom text is required"}
		}
	case ModalityImage:
		if r.ImagePath == "" {
			return &InputError{Field: "image_file", Reason: "image file is required"}
		}
	default:
		return &InputError{Field: "modality", Reason: fmt.Sprintf("unknown modality %q", r.Modality)}
	}
	return nil
}
