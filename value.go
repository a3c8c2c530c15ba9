package dt885x

import (
	"fmt"
	"slices"
	"strings"
)

// Range is an inclusive measurement range in dB.
type Range struct {
	Low  uint64
	High uint64
}

// String formats r as "low-high".
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Low, r.High)
}

// Kind tags the variant held by a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindUint64
	KindString
	KindRange
	KindStrings
	KindRanges
	KindKeys
	KindCapabilities
)

// Value is the generic form of a capability value. The zero Value is
// invalid. List results use the slice variants.
type Value struct {
	kind   Kind
	b      bool
	u      uint64
	s      string
	r      Range
	strs   []string
	ranges []Range
	keys   []Key
	caps   []Capability
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// Uint64Value wraps an unsigned count such as limit_samples.
func Uint64Value(u uint64) Value { return Value{kind: KindUint64, u: u} }

// StringValue wraps an enumerated string such as a weighting.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// RangeValue wraps a measurement range in dB.
func RangeValue(low, high uint64) Value {
	return Value{kind: KindRange, r: Range{low, high}}
}

func stringsValue(s []string) Value { return Value{kind: KindStrings, strs: slices.Clone(s)} }
func rangesValue(r []Range) Value   { return Value{kind: KindRanges, ranges: slices.Clone(r)} }
func keysValue(k []Key) Value       { return Value{kind: KindKeys, keys: slices.Clone(k)} }

func capabilitiesValue(c []Capability) Value {
	return Value{kind: KindCapabilities, caps: slices.Clone(c)}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Bool, Uint64, Str and Range return the held scalar and whether v is of
// that kind.
func (v Value) Bool() (bool, bool)     { return v.b, v.kind == KindBool }
func (v Value) Uint64() (uint64, bool) { return v.u, v.kind == KindUint64 }
func (v Value) Str() (string, bool)    { return v.s, v.kind == KindString }
func (v Value) Range() (Range, bool)   { return v.r, v.kind == KindRange }

// Strings, Ranges, Keys and Capabilities return copies; the tables behind
// them are never exposed.
func (v Value) Strings() ([]string, bool) { return slices.Clone(v.strs), v.kind == KindStrings }
func (v Value) Ranges() ([]Range, bool)   { return slices.Clone(v.ranges), v.kind == KindRanges }
func (v Value) Keys() ([]Key, bool)       { return slices.Clone(v.keys), v.kind == KindKeys }

func (v Value) Capabilities() ([]Capability, bool) {
	return slices.Clone(v.caps), v.kind == KindCapabilities
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprint(v.b)
	case KindUint64:
		return fmt.Sprint(v.u)
	case KindString:
		return v.s
	case KindRange:
		return v.r.String()
	case KindStrings:
		return "[" + strings.Join(v.strs, " ") + "]"
	case KindRanges:
		return fmt.Sprint(v.ranges)
	case KindKeys:
		return fmt.Sprint(v.keys)
	case KindCapabilities:
		return fmt.Sprint(v.caps)
	default:
		return "<invalid>"
	}
}
