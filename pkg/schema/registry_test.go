package schema

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSchemaContract(t *testing.T) {
	s := Default()
	expected := s.Expected()
	if len(expected) != len(s.CatCols)+len(s.NumCols) {
		t.Fatalf("expected %d columns, got %d", len(s.CatCols)+len(s.NumCols), len(expected))
	}

	seen := make(map[string]struct{})
	for _, col := range expected {
		if _, ok := seen[col]; ok {
			t.Fatalf("duplicate column %q", col)
		}
		seen[col] = struct{}{}
	}

	if expected[len(expected)-1] != "Red_Flag_Count" {
		t.Fatalf("expected Red_Flag_Count last, got %q", expected[len(expected)-1])
	}
	if !s.HasCategorical("Age_Group") {
		t.Fatal("expected Age_Group categorical")
	}
	if !s.HasNumeric("Red_Flag_Count") {
		t.Fatal("expected Red_Flag_Count numeric")
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(s.CatCols) != len(Default().CatCols) {
		t.Fatalf("expected default categorical columns, got %d", len(s.CatCols))
	}
}

func TestLoadMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	s, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed schema")
	}
	if len(s.NumCols) != 1 || s.NumCols[0] != "Red_Flag_Count" {
		t.Fatalf("expected default numeric columns, got %v", s.NumCols)
	}
}

func TestLoadValidArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	content := `{"cat_cols":["Has_Fever","Age_Group"],"num_cols":["Red_Flag_Count"]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.CatCols) != 2 {
		t.Fatalf("expected 2 categorical columns, got %d", len(s.CatCols))
	}
	expected := s.Expected()
	if expected[0] != "Has_Fever" || expected[2] != "Red_Flag_Count" {
		t.Fatalf("unexpected column order: %v", expected)
	}
}
