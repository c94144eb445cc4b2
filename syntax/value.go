package syntax

import (
	"strconv"
)

type ValueKind uint8

const (
	ValueAbsent ValueKind = iota
	ValueInteger
	ValueFloat
	ValueBoolean
	ValueText
)

func (k ValueKind) String() string {
	switch k {
	case ValueAbsent:
		return "Absent"
	case ValueInteger:
		return "Integer"
	case ValueFloat:
		return "Float"
	case ValueBoolean:
		return "Boolean"
	case ValueText:
		return "Text"
	}
	return "ValueKind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the literal payload of a token.
// Integer and float literals both store a float64; the kind tells them apart.
// The zero Value is absent.
type Value struct {
	kind    ValueKind
	number  float64
	boolean bool
	text    string
}

func IntegerValue(v float64) Value {
	return Value{
		kind:   ValueInteger,
		number: v,
	}
}

func FloatValue(v float64) Value {
	return Value{
		kind:   ValueFloat,
		number: v,
	}
}

func BoolValue(v bool) Value {
	return Value{
		kind:    ValueBoolean,
		boolean: v,
	}
}

func TextValue(v string) Value {
	return Value{
		kind: ValueText,
		text: v,
	}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsAbsent() bool {
	return v.kind == ValueAbsent
}

// Number returns the payload of an integer or float value.
func (v Value) Number() (float64, bool) {
	if v.kind != ValueInteger && v.kind != ValueFloat {
		return 0, false
	}
	return v.number, true
}

func (v Value) Boolean() (bool, bool) {
	if v.kind != ValueBoolean {
		return false, false
	}
	return v.boolean, true
}

func (v Value) Text() (string, bool) {
	if v.kind != ValueText {
		return "", false
	}
	return v.text, true
}

func (v Value) String() string {
	switch v.kind {
	case ValueInteger, ValueFloat:
		return strconv.FormatFloat(v.number, 'g', -1, 64)
	case ValueBoolean:
		return strconv.FormatBool(v.boolean)
	case ValueText:
		return strconv.Quote(v.text)
	}
	return "<none>"
}
