package classifier

import (
	"errors"
	"fmt"

	"github.com/caafimaad-ai/triage/pkg/features"
)

// Adapter invokes the opaque model with one record and decodes the raw
// prediction to a text label. Decoding never fails; only model invocation
// can.
type Adapter struct {
	model   Model
	encoder *LabelEncoder
}

func NewAdapter(model Model, encoder *LabelEncoder) *Adapter {
	return &Adapter{model: model, encoder: encoder}
}

func (a *Adapter) Classify(rec features.Record) (string, error) {
	if a == nil || a.model == nil {
		return "", ErrModelUnavailable
	}
	tokens, err := a.model.Predict([]features.Record{rec})
	if err != nil {
		if errors.Is(err, ErrModelUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if len(tokens) != 1 {
		return "", fmt.Errorf("%w: expected one prediction, got %d", ErrModelUnavailable, len(tokens))
	}
	return a.Decode(tokens[0]), nil
}

// Decode resolves an index token through the encoder when one is loaded; on
// any encoder miss, or for text tokens, it falls back to the token's plain
// textual form.
func (a *Adapter) Decode(tok Token) string {
	if tok.Kind == TokenIndex && a != nil && a.encoder != nil {
		if label, err := a.encoder.InverseTransform(tok.Index); err == nil {
			return label
		}
	}
	return tok.String()
}
