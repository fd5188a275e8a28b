package prompt

import (
	"strings"
	"testing"

	"vaidya/internal/intake"
)

func TestBuildTextPromptSections(t *testing.T) {
	var b Builder
	req := &intake.Request{
		Modality:      intake.ModalityText,
		Symptoms:      "itchy flaky scalp",
		PriorSymptoms: "mild dryness last month",
		DurationDays:  10,
		Language:      intake.English,
	}

	system, user := b.Build(req)
	if !strings.Contains(system, "medical specialist") {
		t.Fatalf("unexpected system prompt: %s", system)
	}
	for _, want := range []string{"Symptoms: itchy flaky scalp", "Earlier symptoms/problem: mild dryness last month", "Duration (days): 10"} {
		if !strings.Contains(user, want) {
			t.Fatalf("user prompt missing %q:\n%s", want, user)
		}
	}
}

func TestBuildOmitsEmptyPriorSymptoms(t *testing.T) {
	var b Builder
	_, user := b.Build(&intake.Request{Modality: intake.ModalityText, Symptoms: "fever", Language: intake.English})
	if strings.Contains(user, "Earlier symptoms") {
		t.Fatalf("expected prior-symptoms section omitted:\n%s", user)
	}
}

func TestBuildSelectsLanguagePrompt(t *testing.T) {
	var b Builder
	system, _ := b.Build(&intake.Request{Modality: intake.ModalityText, Symptoms: "x", Language: intake.Hindi})
	if !strings.Contains(system, "हिंदी") {
		t.Fatalf("expected Hindi system prompt, got: %s", system)
	}
}

func TestBuildFallsBackToEnglish(t *testing.T) {
	var b Builder
	system, _ := b.Build(&intake.Request{Modality: intake.ModalityText, Symptoms: "x", Language: intake.Language("French")})
	if system != textPrompts[intake.English] {
		t.Fatal("expected English fallback for unrecognized language")
	}
}

func TestBuildImagePromptRequestsStructure(t *testing.T) {
	var b Builder
	req := &intake.Request{
		Modality:  intake.ModalityImage,
		Symptoms:  "flaky patches",
		Language:  intake.English,
		ImagePath: "/tmp/skin.jpg",
	}
	system, user := b.Build(req)
	for _, section := range []string{"DIAGNOSIS:", "RECOMMENDATIONS:", "PRESCRIPTION:"} {
		if !strings.Contains(system, section) {
			t.Fatalf("image system prompt missing section %q", section)
		}
	}
	if !strings.Contains(user, "uploaded an image") {
		t.Fatalf("image user prompt missing context:\n%s", user)
	}
}

func TestAdvisoryNotePerLanguage(t *testing.T) {
	if !strings.Contains(AdvisoryNote(intake.English), "consult a healthcare professional") {
		t.Fatal("unexpected English advisory note")
	}
	if AdvisoryNote(intake.Hindi) == AdvisoryNote(intake.English) {
		t.Fatal("expected localized Hindi note")
	}
	if AdvisoryNote(intake.Language("??")) != AdvisoryNote(intake.English) {
		t.Fatal("expected English fallback note")
	}
}
