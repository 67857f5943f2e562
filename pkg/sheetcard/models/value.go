package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ValueKind is the type of a cell's displayed content.
type ValueKind int

const (
	// Blank is an empty cell.
	Blank ValueKind = iota
	// Text is a non-numeric string.
	Text
	// Number is a numeric cell. Its Text keeps the displayed form.
	Number
	// Absent marks a non-anchor member of a merged range.
	Absent
)

// String returns a human-readable name for the ValueKind.
func (k ValueKind) String() string {
	switch k {
	case Blank:
		return "Blank"
	case Text:
		return "Text"
	case Number:
		return "Number"
	case Absent:
		return "Absent"
	default:
		return "Unknown"
	}
}

// Value is the displayable content of a cell.
// The zero Value is Blank.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
}

// TextValue returns a Text value, or Blank for "".
func TextValue(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{Kind: Text, Text: s}
}

// NumberValue returns a Number value displayed with the shortest float format.
func NumberValue(n float64) Value {
	return Value{Kind: Number, Text: strconv.FormatFloat(n, 'f', -1, 64), Number: n}
}

// BlankValue returns the Blank value.
func BlankValue() Value {
	return Value{}
}

// AbsentValue returns the marker held by non-anchor merge members.
func AbsentValue() Value {
	return Value{Kind: Absent}
}

// ParseValue classifies a displayed cell string.
// Integers and decimals become Number (keeping s as display text),
// "" becomes Blank and anything else Text.
func ParseValue(s string) Value {
	if s == "" {
		return Value{}
	}
	trimmed := strings.TrimSpace(s)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil && !strings.Contains(trimmed, "_") {
		return Value{Kind: Number, Text: s, Number: float64(n)}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) && !strings.ContainsAny(trimmed, "xX_") {
		return Value{Kind: Number, Text: s, Number: n}
	}
	return Value{Kind: Text, Text: s}
}

// IsEmpty reports whether v is Blank or Absent. Numeric zero is not empty.
func (v Value) IsEmpty() bool {
	return v.Kind == Blank || v.Kind == Absent
}

// IsAbsent reports whether v marks a non-anchor merge member.
func (v Value) IsAbsent() bool {
	return v.Kind == Absent
}

// String returns the displayed text ("" for Blank and Absent).
func (v Value) String() string {
	if v.IsEmpty() {
		return ""
	}
	return v.Text
}

// MarshalJSON encodes Absent as null, Blank as "" and Text as a string.
// A Number is encoded as a JSON number when its displayed text is the
// number's shortest form, and as its displayed text otherwise ("1.50").
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case Absent:
		return []byte("null"), nil
	case Number:
		if strings.TrimSpace(v.Text) == strconv.FormatFloat(v.Number, 'f', -1, 64) {
			return json.Marshal(v.Number)
		}
		return json.Marshal(v.Text)
	default:
		return json.Marshal(v.String())
	}
}
