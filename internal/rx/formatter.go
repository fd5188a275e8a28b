// Package rx turns free-form diagnosis text into a structured,
// language-appropriate prescription block.
package rx

import (
	"strings"
	"time"

	"vaidya/internal/intake"
)

// conditionMarker is the phrase the model is instructed to emit on the line
// naming the diagnosed condition.
const conditionMarker = "condition identified"

// Prescription is the structured result derived from a diagnosis.
type Prescription struct {
	PrimaryCondition string
	Medications      []string
	Instructions     []string
	FollowUp         string
	Language         intake.Language
	Text             string
}

// Formatter renders prescriptions. The clock is injectable for tests;
// everything else is a pure function of its inputs.
type Formatter struct {
	now func() time.Time
}

// NewFormatter creates a Formatter using the wall clock.
func NewFormatter() *Formatter {
	return &Formatter{now: time.Now}
}

// NewFormatterAt creates a Formatter with a fixed clock.
func NewFormatterAt(now func() time.Time) *Formatter {
	return &Formatter{now: now}
}

// PrimaryCondition extracts the best-effort condition label from diagnosis
// text. It prefers the text after the last colon on a line containing the
// marker phrase; failing that, the first non-empty line. This is a
// heuristic classifier, not a reliable one.
func PrimaryCondition(diagnosis string) string {
	lines := strings.Split(diagnosis, "\n")
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), conditionMarker) {
			if i := strings.LastIndex(line, ":"); i >= 0 {
				if label := strings.TrimSpace(line[i+1:]); label != "" {
					return label
				}
			}
		}
	}
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return strings.TrimSpace(diagnosis)
}

// Format derives a Prescription from the diagnosis text. Unknown conditions
// and unknown languages fall back to the multilingual "consult a healthcare
// professional" block; the result never has empty medication or instruction
// lists.
func (f *Formatter) Format(diagnosis string, lang intake.Language) Prescription {
	condition := PrimaryCondition(diagnosis)
	treatment := lookupTreatment(condition, lang)

	tmpl, ok := templates[lang]
	if !ok {
		tmpl = templates[intake.English]
	}

	text := tmpl
	text = strings.ReplaceAll(text, "{date}", f.now().Format("02/01/2006"))
	text = strings.ReplaceAll(text, "{diagnosis}", diagnosis)
	text = strings.ReplaceAll(text, "{medications}", bulleted(treatment.Medications))
	text = strings.ReplaceAll(text, "{instructions}", bulleted(treatment.Instructions))
	text = strings.ReplaceAll(text, "{follow_up}", treatment.FollowUp)

	return Prescription{
		PrimaryCondition: condition,
		Medications:      treatment.Medications,
		Instructions:     treatment.Instructions,
		FollowUp:         treatment.FollowUp,
		Language:         lang,
		Text:             text,
	}
}

func lookupTreatment(condition string, lang intake.Language) treatment {
	byLang, ok := treatments[strings.ToLower(strings.TrimSpace(condition))]
	if !ok {
		byLang = fallbackTreatment
	}
	if t, ok := byLang[lang]; ok {
		return t
	}
	return byLang[intake.English]
}

func bulleted(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}
