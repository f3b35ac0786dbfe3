package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/caafimaad-ai/triage/pkg/features"
)

// Artifact is the serialized scoring model: a per-class bias plus additive
// weights keyed by categorical token and numeric coefficient. When Classes
// is present the scorer emits text tokens directly; otherwise it emits the
// winning class index for a label encoder to resolve.
type Artifact struct {
	Model struct {
		Type        string                          `json:"type"`
		Classes     []string                        `json:"classes,omitempty"`
		Bias        []float64                       `json:"bias"`
		Categorical map[string]map[string][]float64 `json:"categorical_weights"`
		Numeric     map[string][]float64            `json:"numeric_weights"`
	} `json:"model"`
}

// Scorer serves predictions from a JSON model artifact, reloading it when
// the file changes.
type Scorer struct {
	path  string
	mu    sync.RWMutex
	cache *cachedArtifact
}

type cachedArtifact struct {
	artifact Artifact
	modTime  int64
}

func NewScorer(path string) *Scorer {
	return &Scorer{path: path}
}

func (s *Scorer) Predict(rows []features.Record) ([]Token, error) {
	artifact, err := s.loadArtifact()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	classCount := len(artifact.Model.Bias)
	if classCount == 0 {
		return nil, fmt.Errorf("%w: artifact has no classes", ErrModelUnavailable)
	}

	tokens := make([]Token, len(rows))
	for i, row := range rows {
		best := argmax(score(artifact, row, classCount))
		if best < len(artifact.Model.Classes) {
			tokens[i] = TextToken(artifact.Model.Classes[best])
		} else {
			tokens[i] = IndexToken(best)
		}
	}
	return tokens, nil
}

func score(artifact Artifact, row features.Record, classCount int) []float64 {
	scores := make([]float64, classCount)
	copy(scores, artifact.Model.Bias)

	for field, tokenWeights := range artifact.Model.Categorical {
		v := row.Value(field)
		if v.Kind != features.KindText {
			continue
		}
		addWeights(scores, tokenWeights[v.Text], 1)
	}
	for field, weights := range artifact.Model.Numeric {
		v := row.Value(field)
		if v.Kind != features.KindNumber {
			continue
		}
		addWeights(scores, weights, v.Number)
	}
	return scores
}

func addWeights(scores, weights []float64, factor float64) {
	for c := 0; c < len(scores) && c < len(weights); c++ {
		scores[c] += weights[c] * factor
	}
}

func argmax(scores []float64) int {
	best := 0
	for c := 1; c < len(scores); c++ {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return best
}

func (s *Scorer) loadArtifact() (Artifact, error) {
	info, err := os.Stat(filepath.Clean(s.path))
	if err != nil {
		return Artifact{}, err
	}
	mod := info.ModTime().UnixNano()

	s.mu.RLock()
	cached := s.cache
	s.mu.RUnlock()
	if cached != nil && cached.modTime == mod {
		return cached.artifact, nil
	}

	content, err := os.ReadFile(filepath.Clean(s.path))
	if err != nil {
		return Artifact{}, err
	}
	var artifact Artifact
	if err := json.Unmarshal(content, &artifact); err != nil {
		return Artifact{}, err
	}
	s.mu.Lock()
	s.cache = &cachedArtifact{artifact: artifact, modTime: mod}
	s.mu.Unlock()
	return artifact, nil
}
