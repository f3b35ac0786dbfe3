package features

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/caafimaad-ai/triage/pkg/schema"
)

// ObservationSet is the sparse user-supplied field→value input. It is not
// required to be schema-conformant: unknown fields are dropped and missing
// fields are filled with nulls during normalization.
type ObservationSet map[string]interface{}

// Normalize produces a complete record shaped exactly like the schema's
// column contract. Categorical values are stringified and trimmed (empty →
// null), numeric values are coerced (failure → null). The observation set is
// never mutated and no input can make this fail.
func Normalize(obs ObservationSet, s schema.Schema) Record {
	rec := newRecord(s.Expected())
	for _, name := range s.CatCols {
		raw, ok := obs[name]
		rec.values[name] = categoricalValue(raw, ok)
	}
	for _, name := range s.NumCols {
		raw, ok := obs[name]
		rec.values[name] = numericValue(raw, ok)
	}
	return rec
}

func categoricalValue(raw interface{}, present bool) Value {
	if !present || raw == nil {
		return NullValue(NullMissing)
	}
	text := strings.TrimSpace(stringify(raw))
	if text == "" {
		return NullValue(NullEmpty)
	}
	return TextValue(text)
}

func numericValue(raw interface{}, present bool) Value {
	if !present || raw == nil {
		return NullValue(NullMissing)
	}
	f, err := toFloat(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return NullValue(NullBadNumber)
	}
	return NumberValue(f)
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
}
