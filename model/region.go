package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is returned by Validate when a required field is absent.
var ErrMissingField = errors.New("missing required field")

// Canonical field keys used by persisted catalogs.
const (
	KeyName  = "name"
	KeyOType = "otype"
	KeyCoord = "coord"
	KeyCType = "ctype"
	KeyEpoch = "epoch"
	KeySType = "stype"
	KeyShape = "shape"
	KeySUnit = "sunit"
	KeyRef   = "ref"
	KeyFreq  = "freq"
	KeyFUnit = "funit"
	KeyText  = "text"
)

// KnownKeys lists the record keys in their canonical column order.
var KnownKeys = []string{
	KeyName, KeyOType, KeyCoord, KeyCType, KeyEpoch, KeySType,
	KeyShape, KeySUnit, KeyText, KeyRef, KeyFreq, KeyFUnit,
}

// IsKnownKey reports whether key maps onto a typed RegionRecord field.
func IsKnownKey(key string) bool {
	for _, k := range KnownKeys {
		if k == key {
			return true
		}
	}
	return false
}

// RegionRecord describes one sky region as stored in a catalog.
//
// Required string fields use the empty string for "absent". Optional fields
// are pointers so that older records lacking them can be told apart from
// records that carry an explicit empty value.
type RegionRecord struct {
	Name  string
	OType *string
	Coord string
	CType string
	Epoch *float64
	SType ShapeKind
	Shape string
	SUnit string
	Ref   *string
	Freq  *float64
	FUnit *string
	Text  *string

	// EpochKind and FreqKind are KindInt when the source wrote the number as
	// an integer. Anything else renders as a float.
	EpochKind Kind
	FreqKind  Kind

	// Extra holds keys the typed schema does not know about, and known keys
	// whose value had the wrong type, in document order.
	Extra []Field
}

// Str returns a pointer to s. Handy for literal records.
func Str(s string) *string { return &s }

// Num returns a pointer to f.
func Num(f float64) *float64 { return &f }

// TextOrEmpty returns the annotation text, or "" when absent.
func (r RegionRecord) TextOrEmpty() string {
	if r.Text == nil {
		return ""
	}
	return *r.Text
}

// Label is the display label: the name alone, or "name, text".
func (r RegionRecord) Label() string {
	if t := r.TextOrEmpty(); t != "" {
		return r.Name + ", " + t
	}
	return r.Name
}

// Mistyped returns the value of a known key that the loader could not map
// onto its typed field.
func (r RegionRecord) Mistyped(key string) (Value, bool) {
	if !IsKnownKey(key) {
		return Value{}, false
	}
	return Row(r.Extra).Get(key)
}

// Validate checks that every required field is present. A required key
// carried with the wrong type counts as missing.
func (r RegionRecord) Validate() error {
	var missing []string
	check := func(absent bool, key string) {
		if !absent {
			return
		}
		if v, ok := r.Mistyped(key); ok {
			missing = append(missing, fmt.Sprintf("%s (got %s %q)", key, v.Kind, v))
			return
		}
		missing = append(missing, key)
	}
	check(r.Name == "", KeyName)
	check(r.Coord == "", KeyCoord)
	check(r.CType == "", KeyCType)
	check(r.Epoch == nil, KeyEpoch)
	check(r.SType == "", KeySType)
	check(r.Shape == "", KeyShape)
	check(r.SUnit == "", KeySUnit)
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// Fields returns the record's present fields, known keys first in canonical
// order, then extras in document order. Numeric fields keep the integer or
// float kind they were loaded with.
func (r RegionRecord) Fields() Row {
	row := make(Row, 0, len(KnownKeys)+len(r.Extra))
	addStr := func(key, v string) {
		if v != "" {
			row = append(row, Field{Key: key, Value: StringValue(v)})
		}
	}
	addOpt := func(key string, v *string) {
		if v != nil {
			row = append(row, Field{Key: key, Value: StringValue(*v)})
		}
	}
	addNum := func(key string, v *float64, kind Kind) {
		switch {
		case v == nil:
		case kind == KindInt:
			row = append(row, Field{Key: key, Value: IntValue(int64(*v))})
		default:
			row = append(row, Field{Key: key, Value: FloatValue(*v)})
		}
	}

	addStr(KeyName, r.Name)
	addOpt(KeyOType, r.OType)
	addStr(KeyCoord, r.Coord)
	addStr(KeyCType, r.CType)
	addNum(KeyEpoch, r.Epoch, r.EpochKind)
	addStr(KeySType, string(r.SType))
	addStr(KeyShape, r.Shape)
	addStr(KeySUnit, r.SUnit)
	addOpt(KeyText, r.Text)
	addOpt(KeyRef, r.Ref)
	addNum(KeyFreq, r.Freq, r.FreqKind)
	addOpt(KeyFUnit, r.FUnit)

	return append(row, r.Extra...)
}

// SearchableStrings enumerates every string-valued field of the record.
// Numeric fields (epoch, freq and numeric extras) are not candidates.
func (r RegionRecord) SearchableStrings() []string {
	out := []string{r.Name, r.Coord, r.CType, string(r.SType), r.Shape, r.SUnit}
	for _, p := range []*string{r.OType, r.Text, r.Ref, r.FUnit} {
		if p != nil {
			out = append(out, *p)
		}
	}
	for _, f := range r.Extra {
		if f.Value.Kind == KindString {
			out = append(out, f.Value.Str)
		}
	}
	return out
}
