package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Schema is the ordered feature contract the triage classifier expects:
// every record sent to the model carries exactly CatCols followed by
// NumCols, no more, no fewer.
type Schema struct {
	CatCols []string `json:"cat_cols"`
	NumCols []string `json:"num_cols"`
}

// Load reads a feature schema artifact. Any failure (missing file, malformed
// content, empty column lists) degrades to the built-in default schema so the
// pipeline always has a usable contract; the error is returned alongside the
// defaults so callers can log the substitution.
func Load(path string) (Schema, error) {
	if path == "" {
		return Default(), nil
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Default(), err
	}
	var s Schema
	if err := json.Unmarshal(content, &s); err != nil {
		return Default(), err
	}
	if len(s.CatCols) == 0 || len(s.NumCols) == 0 {
		return Default(), fmt.Errorf("feature schema incomplete")
	}
	return s, nil
}

// Expected returns the full column contract in order.
func (s Schema) Expected() []string {
	cols := make([]string, 0, len(s.CatCols)+len(s.NumCols))
	cols = append(cols, s.CatCols...)
	cols = append(cols, s.NumCols...)
	return cols
}

func (s Schema) HasCategorical(name string) bool {
	return contains(s.CatCols, name)
}

func (s Schema) HasNumeric(name string) bool {
	return contains(s.NumCols, name)
}

func contains(cols []string, name string) bool {
	for _, c := range cols {
		if c == name {
			return true
		}
	}
	return false
}

// Default returns the schema the deployed model was trained against: seven
// symptom question groups plus the age group, and the derived red-flag count.
func Default() Schema {
	return Schema{
		CatCols: []string{
			"Has_Fever", "Fever_Level", "Fever_Duration_Level", "Chills",
			"Has_Cough", "Cough_Type", "Cough_Duration_Level", "Blood_Cough", "Breath_Difficulty",
			"Has_Headache", "Headache_Severity", "Headache_Duration_Level", "Photophobia", "Neck_Stiffness",
			"Has_Abdominal_Pain", "Pain_Location", "Pain_Duration_Level", "Nausea", "Diarrhea",
			"Has_Fatigue", "Fatigue_Severity", "Fatigue_Duration_Level", "Weight_Loss", "Fever_With_Fatigue",
			"Has_Vomiting", "Vomiting_Severity", "Vomiting_Duration_Level", "Blood_Vomit", "Unable_To_Keep_Fluids",
			"Age_Group",
		},
		NumCols: []string{"Red_Flag_Count"},
	}
}
