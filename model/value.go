package model

import "strconv"

// Kind is the scalar type of a catalog cell.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Value is a tagged scalar: exactly one of Str, Int or Float is meaningful,
// selected by Kind.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
}

func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }
func IntValue(i int64) Value     { return Value{Kind: KindInt, Int: i} }
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// Zero returns the default value for k: "" for strings, 0 for ints, 0.0 for floats.
func Zero(k Kind) Value { return Value{Kind: k} }

// AsFloat returns the numeric value of v and whether v is numeric.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	default:
		return v.Str
	}
}

// Field is a single key/value pair of a record.
type Field struct {
	Key   string
	Value Value
}

// Row is an ordered list of fields. Keys are unique within a row.
type Row []Field

// Get returns the value stored under key.
func (r Row) Get(key string) (Value, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}
