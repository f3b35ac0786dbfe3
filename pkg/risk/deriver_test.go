package risk

import (
	"testing"

	"github.com/caafimaad-ai/triage/pkg/features"
	"github.com/caafimaad-ai/triage/pkg/schema"
)

func normalize(t *testing.T, obs features.ObservationSet) features.Record {
	t.Helper()
	return features.Normalize(obs, schema.Default())
}

func TestFeverWithFatigueConjunction(t *testing.T) {
	d := NewDeriver(schema.Default())

	rec := d.Derive(normalize(t, features.ObservationSet{"Has_Fever": "haa", "Has_Fatigue": "haa"}))
	if v := rec.Value(FeverWithFatigueField); v.Text != features.TokenYes {
		t.Fatalf("expected flag set, got %+v", v)
	}

	rec = d.Derive(normalize(t, features.ObservationSet{"Has_Fever": "haa", "Has_Fatigue": "maya"}))
	if v := rec.Value(FeverWithFatigueField); !v.IsNull() {
		t.Fatalf("expected flag unset, got %+v", v)
	}

	rec = d.Derive(normalize(t, features.ObservationSet{"Has_Fatigue": "haa"}))
	if v := rec.Value(FeverWithFatigueField); !v.IsNull() {
		t.Fatalf("expected flag unset without fever, got %+v", v)
	}
}

func TestRedFlagCountRules(t *testing.T) {
	rec := normalize(t, features.ObservationSet{
		"Breath_Difficulty": "haa",
		"Blood_Vomit":       "haa",
		"Fever_Level":       "aad u daran", // severity via alternate column name
		"Fatigue_Severity":  "aad u daran",
		"Neck_Stiffness":    "maya",
	})

	if got := RedFlagCount(rec); got != 4 {
		t.Fatalf("expected 4 red flags, got %d", got)
	}
}

func TestRedFlagCountAbsentFieldsContributeZero(t *testing.T) {
	if got := RedFlagCount(normalize(t, features.ObservationSet{})); got != 0 {
		t.Fatalf("expected 0 red flags for empty record, got %d", got)
	}
}

func TestRedFlagCountMonotonic(t *testing.T) {
	obs := features.ObservationSet{"Breath_Difficulty": "haa"}
	base := RedFlagCount(normalize(t, obs))

	obs["Blood_Cough"] = "haa"
	more := RedFlagCount(normalize(t, obs))
	if more < base {
		t.Fatalf("adding a warning decreased count: %d -> %d", base, more)
	}

	delete(obs, "Blood_Cough")
	less := RedFlagCount(normalize(t, obs))
	if less > more {
		t.Fatalf("removing a warning increased count: %d -> %d", more, less)
	}
}

func TestPrimarySeverityShadowsAlternate(t *testing.T) {
	s := schema.Schema{
		CatCols: []string{"Fatigue_Severity", "Fatigue_Level"},
		NumCols: []string{RedFlagCountField},
	}
	rec := features.Normalize(features.ObservationSet{
		"Fatigue_Severity": "fudud",
		"Fatigue_Level":    "aad u daran",
	}, s)

	// The primary column answers, so the severe alternate must not count.
	if got := RedFlagCount(rec); got != 0 {
		t.Fatalf("expected 0 red flags, got %d", got)
	}
}

func TestDeriveHonorsSchemaMembership(t *testing.T) {
	s := schema.Schema{
		CatCols: []string{"Has_Fever", "Has_Fatigue"},
		NumCols: []string{"Other_Score"},
	}
	d := NewDeriver(s)
	rec := d.Derive(features.Normalize(features.ObservationSet{
		"Has_Fever":   "haa",
		"Has_Fatigue": "haa",
	}, s))

	if rec.Has(RedFlagCountField) {
		t.Fatal("expected red-flag count absent when schema does not declare it")
	}
	if rec.Has(FeverWithFatigueField) {
		t.Fatal("expected fever-with-fatigue absent when schema does not declare it")
	}
}

func TestDeriveReturnsCopy(t *testing.T) {
	d := NewDeriver(schema.Default())
	rec := normalize(t, features.ObservationSet{"Breath_Difficulty": "haa"})
	out := d.Derive(rec)

	if v := rec.Value(RedFlagCountField); !v.IsNull() {
		t.Fatalf("expected input record untouched, got %+v", v)
	}
	if v := out.Value(RedFlagCountField); v.Number != 1 {
		t.Fatalf("expected derived count 1, got %+v", v)
	}
}
