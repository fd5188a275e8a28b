package rx

import (
	"strings"
	"testing"
	"time"

	"vaidya/internal/intake"
)

func fixedClock() time.Time {
	return time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
}

func TestPrimaryConditionFromMarkerLine(t *testing.T) {
	diagnosis := "DIAGNOSIS:\n- Condition identified: Dandruff\n- Severity level: Mild"
	if got := PrimaryCondition(diagnosis); got != "Dandruff" {
		t.Fatalf("expected Dandruff, got %q", got)
	}
}

func TestPrimaryConditionUsesLastColon(t *testing.T) {
	diagnosis := "Note: condition identified: Seborrheic Dermatitis"
	if got := PrimaryCondition(diagnosis); got != "Seborrheic Dermatitis" {
		t.Fatalf("expected text after last colon, got %q", got)
	}
}

func TestPrimaryConditionMarkerIsCaseInsensitive(t *testing.T) {
	diagnosis := "CONDITION IDENTIFIED: Eczema"
	if got := PrimaryCondition(diagnosis); got != "Eczema" {
		t.Fatalf("expected Eczema, got %q", got)
	}
}

func TestPrimaryConditionFallsBackToFirstNonEmptyLine(t *testing.T) {
	diagnosis := "\n\n  Probable dandruff with mild inflammation\nMore detail here"
	if got := PrimaryCondition(diagnosis); got != "Probable dandruff with mild inflammation" {
		t.Fatalf("unexpected fallback condition: %q", got)
	}
}

func TestFormatKnownCondition(t *testing.T) {
	f := NewFormatterAt(fixedClock)
	p := f.Format("DIAGNOSIS:\n- Condition identified: Dandruff", intake.English)

	if p.PrimaryCondition != "Dandruff" {
		t.Fatalf("unexpected condition: %q", p.PrimaryCondition)
	}
	if len(p.Medications) == 0 || p.Medications[0] != "Ketoconazole 2% shampoo" {
		t.Fatalf("unexpected medications: %v", p.Medications)
	}
	if !strings.Contains(p.Text, "Date: 14/03/2025") {
		t.Fatalf("expected rendered date in prescription:\n%s", p.Text)
	}
	if !strings.Contains(p.Text, "- Ketoconazole 2% shampoo") {
		t.Fatalf("expected bulleted medications:\n%s", p.Text)
	}
	if !strings.Contains(p.Text, "Condition identified: Dandruff") {
		t.Fatalf("expected verbatim diagnosis in prescription:\n%s", p.Text)
	}
}

func TestFormatConditionLookupIsCaseInsensitive(t *testing.T) {
	f := NewFormatterAt(fixedClock)
	p := f.Format("Condition identified: dandruff", intake.English)
	if p.Medications[0] != "Ketoconazole 2% shampoo" {
		t.Fatalf("expected table hit for lowercased condition, got %v", p.Medications)
	}
}

func TestFormatUnknownConditionFallsBack(t *testing.T) {
	f := NewFormatterAt(fixedClock)
	for _, lang := range intake.Languages {
		p := f.Format("Condition identified: Photic Sneeze Reflex", lang)
		if len(p.Medications) == 0 {
			t.Fatalf("%s: medications must never be empty", lang)
		}
		if len(p.Instructions) == 0 {
			t.Fatalf("%s: instructions must never be empty", lang)
		}
		if p.FollowUp == "" {
			t.Fatalf("%s: follow-up must never be empty", lang)
		}
	}

	p := f.Format("Condition identified: Photic Sneeze Reflex", intake.English)
	if !strings.Contains(p.Instructions[0], "consult a healthcare professional") {
		t.Fatalf("expected fallback instruction, got %v", p.Instructions)
	}
}

func TestFormatLocalizedTemplates(t *testing.T) {
	f := NewFormatterAt(fixedClock)

	hi := f.Format("Condition identified: Dandruff", intake.Hindi)
	if !strings.Contains(hi.Text, "नुस्खा") {
		t.Fatalf("expected Hindi template header:\n%s", hi.Text)
	}
	if hi.Medications[0] != "कीटोकोनाज़ोल 2% शैम्पू" {
		t.Fatalf("expected Hindi medications, got %v", hi.Medications)
	}

	mr := f.Format("Condition identified: Dandruff", intake.Marathi)
	if !strings.Contains(mr.Text, "औषधोपचार") {
		t.Fatalf("expected Marathi template header:\n%s", mr.Text)
	}
}

func TestFormatUnknownLanguageFallsBackToEnglish(t *testing.T) {
	f := NewFormatterAt(fixedClock)
	p := f.Format("Condition identified: Dandruff", intake.Language("French"))
	if !strings.Contains(p.Text, "PRESCRIPTION") {
		t.Fatalf("expected English template fallback:\n%s", p.Text)
	}
	if p.Medications[0] != "Ketoconazole 2% shampoo" {
		t.Fatalf("expected English treatment fallback, got %v", p.Medications)
	}
}
