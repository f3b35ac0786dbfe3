package features

import (
	"reflect"
	"testing"

	"github.com/caafimaad-ai/triage/pkg/schema"
)

func TestNormalizeEmptyObservationsIsComplete(t *testing.T) {
	s := schema.Default()
	rec := Normalize(ObservationSet{}, s)

	if rec.Len() != len(s.Expected()) {
		t.Fatalf("expected %d fields, got %d", len(s.Expected()), rec.Len())
	}
	if !reflect.DeepEqual(rec.Fields(), s.Expected()) {
		t.Fatal("field order does not match schema contract")
	}
	for _, name := range rec.Fields() {
		if !rec.Value(name).IsNull() {
			t.Fatalf("expected %q null, got %+v", name, rec.Value(name))
		}
	}
}

func TestNormalizeDropsUnknownFields(t *testing.T) {
	s := schema.Default()
	rec := Normalize(ObservationSet{"Not_A_Column": "haa", "Has_Fever": "haa"}, s)

	if rec.Has("Not_A_Column") {
		t.Fatal("expected unknown field dropped")
	}
	if v := rec.Value("Has_Fever"); v.Text != TokenYes {
		t.Fatalf("expected Has_Fever %q, got %+v", TokenYes, v)
	}
}

func TestNormalizeTrimsAndNullsCategoricals(t *testing.T) {
	s := schema.Default()
	rec := Normalize(ObservationSet{
		"Has_Fever":   "  haa  ",
		"Has_Cough":   "   ",
		"Has_Fatigue": nil,
	}, s)

	if v := rec.Value("Has_Fever"); v.Text != "haa" {
		t.Fatalf("expected trimmed text, got %q", v.Text)
	}
	if v := rec.Value("Has_Cough"); !v.IsNull() || v.Reason != NullEmpty {
		t.Fatalf("expected empty-null, got %+v", v)
	}
	if v := rec.Value("Has_Fatigue"); !v.IsNull() || v.Reason != NullMissing {
		t.Fatalf("expected missing-null, got %+v", v)
	}
}

func TestNormalizeNumericCoercionNeverFails(t *testing.T) {
	s := schema.Default()

	cases := map[string]interface{}{
		"text":  "not a number",
		"bool":  true,
		"slice": []string{"2"},
	}
	for name, raw := range cases {
		rec := Normalize(ObservationSet{"Red_Flag_Count": raw}, s)
		v := rec.Value("Red_Flag_Count")
		if !v.IsNull() || v.Reason != NullBadNumber {
			t.Fatalf("%s: expected bad-number null, got %+v", name, v)
		}
	}

	rec := Normalize(ObservationSet{"Red_Flag_Count": "3"}, s)
	if v := rec.Value("Red_Flag_Count"); v.Kind != KindNumber || v.Number != 3 {
		t.Fatalf("expected coerced 3, got %+v", v)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	s := schema.Default()
	obs := ObservationSet{
		"Has_Fever":      "haa",
		"Fever_Level":    "aad u daran",
		"Red_Flag_Count": 2,
	}

	once := Normalize(obs, s)
	again := Normalize(ObservationSet(once.Map()), s)

	if !reflect.DeepEqual(once.Map(), again.Map()) {
		t.Fatal("re-normalizing a normalized record changed it")
	}
}
