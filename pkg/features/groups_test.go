package features

import "testing"

func TestBuildObservationsDefaultsFlags(t *testing.T) {
	obs, err := BuildObservations("qof weyn", []string{"Qandho"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if obs["Age_Group"] != "qof weyn" {
		t.Fatalf("expected age group set, got %v", obs["Age_Group"])
	}
	if obs["Has_Fever"] != TokenYes {
		t.Fatalf("expected selected flag affirmative, got %v", obs["Has_Fever"])
	}
	for _, flag := range []string{"Has_Cough", "Has_Headache", "Has_Abdominal_Pain", "Has_Fatigue", "Has_Vomiting"} {
		if obs[flag] != TokenNo {
			t.Fatalf("expected %s defaulted to %q, got %v", flag, TokenNo, obs[flag])
		}
	}
}

func TestBuildObservationsGatesAnswersBySelection(t *testing.T) {
	answers := map[string]string{
		"Fever_Level": "aad u daran",
		"Cough_Type":  "qalalan", // cough group not selected
	}
	obs, err := BuildObservations("caruur", []string{"Qandho"}, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if obs["Fever_Level"] != "aad u daran" {
		t.Fatalf("expected fever level admitted, got %v", obs["Fever_Level"])
	}
	if _, ok := obs["Cough_Type"]; ok {
		t.Fatal("expected unselected group's answer dropped")
	}
}

func TestBuildObservationsTranslatesDurations(t *testing.T) {
	answers := map[string]string{"Fever_Duration_Level": "labo illaa sadax maalin"}
	obs, err := BuildObservations("waayeel", []string{"Qandho"}, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs["Fever_Duration_Level"] != SeverityModerate {
		t.Fatalf("expected duration token %q, got %v", SeverityModerate, obs["Fever_Duration_Level"])
	}
}

func TestBuildObservationsRejectsUnknownGroup(t *testing.T) {
	if _, err := BuildObservations("caruur", []string{"Unknown"}, nil); err == nil {
		t.Fatal("expected error for unknown group")
	}
}

func TestDurationTokenPassThrough(t *testing.T) {
	if got := DurationToken("fudud"); got != "fudud" {
		t.Fatalf("expected token pass-through, got %q", got)
	}
	if got := DurationToken("hal maalin iyo ka yar"); got != "fudud" {
		t.Fatalf("expected display mapped to token, got %q", got)
	}
	if len(DurationDisplays()) != 3 {
		t.Fatalf("expected 3 distinct duration phrases, got %d", len(DurationDisplays()))
	}
}
