package prompt

import (
	"fmt"
	"strings"

	"vaidya/internal/intake"
)

// Builder assembles the system and user prompts for a diagnosis request.
// The system prompt is selected by language (and modality); the user prompt
// concatenates the raw intake fields under fixed section headers.
type Builder struct{}

// Build returns the (system, user) prompt pair for the request.
func (Builder) Build(req *intake.Request) (string, string) {
	if req.Modality == intake.ModalityImage {
		return imageSystemPrompt(req.Language), imageUserPrompt(req)
	}
	return textSystemPrompt(req.Language), userPrompt(req)
}

func textSystemPrompt(lang intake.Language) string {
	if p, ok := textPrompts[lang]; ok {
		return p
	}
	return textPrompts[intake.English]
}

func imageSystemPrompt(lang intake.Language) string {
	if p, ok := imagePrompts[lang]; ok {
		return p
	}
	return imagePrompts[intake.English]
}

func userPrompt(req *intake.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Symptoms: %s\n", strings.TrimSpace(req.Symptoms))
	if prior := strings.TrimSpace(req.PriorSymptoms); prior != "" {
		fmt.Fprintf(&b, "Earlier symptoms/problem: %s\n", prior)
	}
	fmt.Fprintf(&b, "Duration (days): %d", req.DurationDays)
	return b.String()
}

func imageUserPrompt(req *intake.Request) string {
	return fmt.Sprintf(`Patient has uploaded an image of their skin condition and reports: %s

Please provide a detailed medical analysis based on the image and their description. Consider common skin conditions that match their symptoms.

%s`, userPrompt(req),
		"Focus on providing helpful medical guidance while noting that a healthcare professional should confirm the diagnosis.")
}

// AdvisoryNote is appended to image-modality diagnoses to remind the
// patient that the analysis is not a substitute for professional care.
func AdvisoryNote(lang intake.Language) string {
	if n, ok := advisoryNotes[lang]; ok {
		return n
	}
	return advisoryNotes[intake.English]
}
