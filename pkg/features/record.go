package features

// Kind discriminates a feature value.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindNumber
)

// NullReason records which degradation path produced a null. The classifier
// only ever sees the null; the reason exists so callers and tests can tell
// a missing observation from a failed coercion.
type NullReason int

const (
	NullNone NullReason = iota
	NullMissing
	NullEmpty
	NullBadNumber
)

// Value is one cell of a normalized record: trimmed text, a finite number,
// or a null with a reason.
type Value struct {
	Kind   Kind
	Reason NullReason
	Text   string
	Number float64
}

func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

func NullValue(reason NullReason) Value {
	return Value{Kind: KindNull, Reason: reason}
}

func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// Interface returns the value in its plain external form: nil, string or
// float64. The null reason is internal and does not survive the conversion.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return v.Number
	default:
		return nil
	}
}

// Record is a complete, schema-conformant feature row. Field membership and
// order are fixed at construction; Set refuses names the schema did not
// declare, so a record can never drift from the column contract.
type Record struct {
	fields []string
	values map[string]Value
}

func newRecord(fields []string) Record {
	return Record{
		fields: fields,
		values: make(map[string]Value, len(fields)),
	}
}

// Fields returns the declared field names in contract order.
func (r Record) Fields() []string {
	return r.fields
}

func (r Record) Len() int {
	return len(r.fields)
}

func (r Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Value returns the cell for name, or a missing-null for undeclared names.
func (r Record) Value(name string) Value {
	if v, ok := r.values[name]; ok {
		return v
	}
	return NullValue(NullMissing)
}

// Set writes a declared field and reports whether the name was declared.
func (r Record) Set(name string, v Value) bool {
	if _, ok := r.values[name]; !ok {
		return false
	}
	r.values[name] = v
	return true
}

func (r Record) Clone() Record {
	out := newRecord(r.fields)
	for name, v := range r.values {
		out.values[name] = v
	}
	return out
}

// Map renders the record in its external form: every declared field present,
// nulls as nil.
func (r Record) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(r.fields))
	for _, name := range r.fields {
		out[name] = r.values[name].Interface()
	}
	return out
}
