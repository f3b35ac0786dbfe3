package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LabelEncoder resolves encoded class indices back to text labels. It is an
// optional artifact; a nil encoder simply means every token decodes to its
// plain textual form.
type LabelEncoder struct {
	classes []string
}

type encoderArtifact struct {
	Classes []string `json:"classes"`
}

func LoadEncoder(path string) (*LabelEncoder, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var artifact encoderArtifact
	if err := json.Unmarshal(content, &artifact); err != nil {
		return nil, err
	}
	if len(artifact.Classes) == 0 {
		return nil, fmt.Errorf("label encoder has no classes")
	}
	return &LabelEncoder{classes: artifact.Classes}, nil
}

func NewLabelEncoder(classes []string) *LabelEncoder {
	return &LabelEncoder{classes: classes}
}

func (e *LabelEncoder) InverseTransform(index int) (string, error) {
	if e == nil {
		return "", fmt.Errorf("no label encoder loaded")
	}
	if index < 0 || index >= len(e.classes) {
		return "", fmt.Errorf("class index %d out of range", index)
	}
	return e.classes[index], nil
}
