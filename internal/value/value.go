// Package value defines the runtime values manipulated by the Dy interpreter
// and the operations on them: formatting, coercion, arithmetic and comparison.
package value

import (
	"math"
	"strconv"
	"strings"
)

// Kind describes the kind of a runtime value.
type Kind int

const (
	Invalid Kind = iota // absent value

	Int
	Float
	String
	Bool
)

var kindNames = [...]string{
	Invalid: "absent",
	Int:     "integer",
	Float:   "float",
	String:  "string",
	Bool:    "boolean",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a Dy runtime value. The zero Value is absent: it is held by
// variables declared without an initializer and produced by void calls.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
}

// MakeInt returns an integer value.
func MakeInt(i int64) Value { return Value{kind: Int, i: i} }

// MakeFloat returns a float value.
func MakeFloat(f float64) Value { return Value{kind: Float, f: f} }

// MakeString returns a string value.
func MakeString(s string) Value { return Value{kind: String, s: s} }

// MakeBool returns a boolean value.
func MakeBool(b bool) Value { return Value{kind: Bool, b: b} }

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.kind != Invalid }

// Int returns the integer held by v; v must be of kind Int.
func (v Value) Int() int64 { return v.i }

// Float returns the float held by v; v must be of kind Float.
func (v Value) Float() float64 { return v.f }

// Str returns the string held by v; v must be of kind String.
func (v Value) Str() string { return v.s }

// Bool returns the boolean held by v; v must be of kind Bool.
func (v Value) Bool() bool { return v.b }

// IsNumeric reports whether v is an integer or a float.
func (v Value) IsNumeric() bool {
	return v.kind == Int || v.kind == Float
}

// String formats v the way the print built-in writes it.
// Floats always carry a fractional part so 222.0 stays distinguishable from 222.
func (v Value) String() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return formatFloat(v.f)
	case String:
		return v.s
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	}
	return "<absent>"
}

// Quote formats v for diagnostics, quoting strings.
func (v Value) Quote() string {
	if v.kind == String {
		return strconv.Quote(v.s)
	}
	return v.String()
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// AsFloat converts a numeric value to float64.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case Int:
		return float64(v.i), true
	case Float:
		return v.f, true
	}
	return 0, false
}

// AsBool interprets v in the boolean domain: a boolean, or a string that
// spells true or false in any letter case.
func (v Value) AsBool() (bool, bool) {
	switch v.kind {
	case Bool:
		return v.b, true
	case String:
		return ParseBool(v.s)
	}
	return false, false
}

// ParseBool reports the boolean spelled by s, ignoring letter case.
func ParseBool(s string) (b, ok bool) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	}
	return false, false
}
