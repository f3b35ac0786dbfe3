package classifier

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/caafimaad-ai/triage/pkg/features"
	"github.com/caafimaad-ai/triage/pkg/schema"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}
	return path
}

func TestScorerEmitsTextTokenWithClasses(t *testing.T) {
	path := writeArtifact(t, `{
		"model": {
			"type": "categorical-scorer",
			"classes": ["Xaalad fudud (Daryeel guri)", "Xaalad deg deg ah"],
			"bias": [0.5, 0.0],
			"categorical_weights": {
				"Breath_Difficulty": {"haa": [0.0, 2.0]}
			},
			"numeric_weights": {
				"Red_Flag_Count": [0.0, 1.0]
			}
		}
	}`)

	rec := features.Normalize(features.ObservationSet{
		"Breath_Difficulty": "haa",
		"Red_Flag_Count":    2,
	}, schema.Default())

	tokens, err := NewScorer(path).Predict([]features.Record{rec})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected one token, got %d", len(tokens))
	}
	if tokens[0].Kind != TokenText || tokens[0].Text != "Xaalad deg deg ah" {
		t.Fatalf("expected emergency class, got %+v", tokens[0])
	}
}

func TestScorerEmitsIndexWithoutClasses(t *testing.T) {
	path := writeArtifact(t, `{
		"model": {
			"type": "categorical-scorer",
			"bias": [1.0, 0.0, 0.0],
			"categorical_weights": {},
			"numeric_weights": {}
		}
	}`)

	rec := features.Normalize(features.ObservationSet{}, schema.Default())
	tokens, err := NewScorer(path).Predict([]features.Record{rec})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Kind != TokenIndex || tokens[0].Index != 0 {
		t.Fatalf("expected index token 0, got %+v", tokens[0])
	}
}

func TestScorerMissingArtifactIsUnavailable(t *testing.T) {
	s := NewScorer(filepath.Join(t.TempDir(), "missing.json"))
	rec := features.Normalize(features.ObservationSet{}, schema.Default())
	if _, err := s.Predict([]features.Record{rec}); !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}
