package pipeline

import (
	"context"
	"time"

	"github.com/caafimaad-ai/triage/pkg/classifier"
	"github.com/caafimaad-ai/triage/pkg/common/models"
	"github.com/caafimaad-ai/triage/pkg/features"
	"github.com/caafimaad-ai/triage/pkg/risk"
	"github.com/caafimaad-ai/triage/pkg/schema"
	"github.com/caafimaad-ai/triage/pkg/triage"
	"github.com/google/uuid"
)

// Engine runs one synchronous evaluation: normalize → derive → classify →
// interpret. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	schema  schema.Schema
	deriver *risk.Deriver
	adapter *classifier.Adapter
	interp  *triage.Interpreter
}

func NewEngine(s schema.Schema, adapter *classifier.Adapter, interp *triage.Interpreter) *Engine {
	return &Engine{
		schema:  s,
		deriver: risk.NewDeriver(s),
		adapter: adapter,
		interp:  interp,
	}
}

func (e *Engine) Schema() schema.Schema {
	return e.schema
}

// Evaluate turns a sparse observation set into a full assessment. Every
// degradation path short of model unavailability resolves internally; a
// classifier failure is returned as-is so the caller can surface it.
func (e *Engine) Evaluate(ctx context.Context, obs features.ObservationSet) (*models.Assessment, error) {
	rec := features.Normalize(obs, e.schema)
	rec = e.deriver.Derive(rec)

	label, err := e.adapter.Classify(rec)
	if err != nil {
		return nil, err
	}

	tier, style, recommendation := e.interp.Interpret(label)

	redFlags := 0
	if v := rec.Value(risk.RedFlagCountField); v.Kind == features.KindNumber {
		redFlags = int(v.Number)
	}

	return &models.Assessment{
		ID:             uuid.New().String(),
		Label:          label,
		Tier:           string(tier),
		Style:          style,
		Recommendation: recommendation,
		Notice:         e.interp.Notice(),
		RedFlagCount:   redFlags,
		Record:         rec.Map(),
		CreatedAt:      time.Now().UTC(),
	}, nil
}
