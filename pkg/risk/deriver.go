package risk

import (
	"github.com/caafimaad-ai/triage/pkg/features"
	"github.com/caafimaad-ai/triage/pkg/schema"
)

const (
	feverFlagField   = "Has_Fever"
	fatigueFlagField = "Has_Fatigue"

	FeverWithFatigueField = "Fever_With_Fatigue"
	RedFlagCountField     = "Red_Flag_Count"
)

// binaryWarnings each add one red-flag point when answered affirmatively.
var binaryWarnings = []string{
	"Breath_Difficulty",
	"Blood_Cough",
	"Neck_Stiffness",
	"Blood_Vomit",
	"Unable_To_Keep_Fluids",
}

// severitySources lists, per severity risk input, the source columns to
// consult in order. The training data carries fever severity under a _Level
// suffix while the other groups use _Severity, so each input declares both
// spellings and the first non-null one wins.
var severitySources = [][]string{
	{"Fever_Severity", "Fever_Level"},
	{"Headache_Severity", "Headache_Level"},
	{"Fatigue_Severity", "Fatigue_Level"},
	{"Vomiting_Severity", "Vomiting_Level"},
}

// Deriver computes composite risk features from a normalized record. It only
// writes fields the schema declares.
type Deriver struct {
	schema schema.Schema
}

func NewDeriver(s schema.Schema) *Deriver {
	return &Deriver{schema: s}
}

// Derive returns an augmented copy of the record. The fever-with-fatigue
// flag is set only when both presence flags are affirmative; otherwise it
// stays null. The red-flag count is written only when the schema's numeric
// columns expect it.
func (d *Deriver) Derive(rec features.Record) features.Record {
	out := rec.Clone()

	if d.schema.HasCategorical(FeverWithFatigueField) &&
		isAffirmative(rec, feverFlagField) && isAffirmative(rec, fatigueFlagField) {
		out.Set(FeverWithFatigueField, features.TextValue(features.TokenYes))
	}

	if d.schema.HasNumeric(RedFlagCountField) {
		out.Set(RedFlagCountField, features.NumberValue(float64(RedFlagCount(rec))))
	}

	return out
}

// RedFlagCount sums the binary warning signs answered affirmatively and the
// severity inputs at their extreme. Absent fields contribute zero.
func RedFlagCount(rec features.Record) int {
	count := 0
	for _, field := range binaryWarnings {
		if isAffirmative(rec, field) {
			count++
		}
	}
	for _, sources := range severitySources {
		if severityOf(rec, sources) == features.SeveritySevere {
			count++
		}
	}
	return count
}

func isAffirmative(rec features.Record, field string) bool {
	v := rec.Value(field)
	return v.Kind == features.KindText && v.Text == features.TokenYes
}

func severityOf(rec features.Record, sources []string) string {
	for _, field := range sources {
		if v := rec.Value(field); v.Kind == features.KindText {
			return v.Text
		}
	}
	return ""
}
