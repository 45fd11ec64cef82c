package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is both a node of the syntax tree and a runtime value.
//
// A List plays three roles: a parenthesized form read by the parser, a plain
// list of values, and the sequence of results of a top-level program. The
// representation is the same for all three.
type Value struct {
	t ValueType
	v interface{}
}

// Lambda pairs parameter names with an unevaluated body.
type Lambda struct {
	Params []string
	Body   []Value
}

// Void is the absence of a value
var Void = Value{t: ValueTypeVoid}

// NewInt creates an Integer value
func NewInt(v int64) Value {
	return Value{t: ValueTypeInt, v: v}
}

// NewFloat creates a Float value
func NewFloat(v float64) Value {
	return Value{t: ValueTypeFloat, v: v}
}

// NewBool creates a Bool value
func NewBool(v bool) Value {
	return Value{t: ValueTypeBool, v: v}
}

// NewString creates a Str value
func NewString(v string) Value {
	return Value{t: ValueTypeString, v: v}
}

// NewSymbol creates an unbound reference to name
func NewSymbol(name string) Value {
	return Value{t: ValueTypeSymbol, v: name}
}

// NewKeyword creates a Keyword value
func NewKeyword(k Keyword) Value {
	return Value{t: ValueTypeKeyword, v: k}
}

// NewLambda creates a closure value
func NewLambda(params []string, body []Value) Value {
	return Value{t: ValueTypeLambda, v: &Lambda{Params: params, Body: body}}
}

// NewList creates a List holding the given values
func NewList(values ...Value) Value {
	list := make([]Value, len(values))
	copy(list, values)
	return Value{t: ValueTypeList, v: list}
}

// Type returns the variant of the value
func (v Value) Type() ValueType {
	return v.t
}

// Is returns true if the value holds the given variant
func (v Value) Is(t ValueType) bool {
	return v.t == t
}

// IsScalar returns true for Integer, Float, Bool and Str values
func (v Value) IsScalar() bool {
	return v.t&valueTypeScalar > 0
}

// IsVoid returns true if the value is Void
func (v Value) IsVoid() bool {
	return v.t == ValueTypeVoid
}

func (v Value) Int() int64 {
	return v.v.(int64)
}

func (v Value) Float() float64 {
	return v.v.(float64)
}

func (v Value) Bool() bool {
	return v.v.(bool)
}

func (v Value) Str() string {
	return v.v.(string)
}

// Name returns the name of a Symbol or Keyword
func (v Value) Name() string {
	if v.t == ValueTypeKeyword {
		return v.v.(Keyword).String()
	}
	return v.v.(string)
}

func (v Value) Keyword() Keyword {
	return v.v.(Keyword)
}

func (v Value) Lambda() *Lambda {
	return v.v.(*Lambda)
}

func (v Value) List() []Value {
	return v.v.([]Value)
}

// Equal reports whether v and o are structurally equal.
func (v Value) Equal(o Value) bool {
	if v.t != o.t {
		return false
	}
	switch v.t {
	case ValueTypeVoid:
		return true
	case ValueTypeLambda:
		a, b := v.Lambda(), o.Lambda()
		if len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if a.Params[i] != b.Params[i] {
				return false
			}
		}
		return equalValues(a.Body, b.Body)
	case ValueTypeList:
		return equalValues(v.List(), o.List())
	}
	return v.v == o.v
}

func equalValues(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical textual form of the value. Strings are not
// quoted.
func (v Value) String() string {
	switch v.t {
	case ValueTypeVoid:
		return "Void"
	case ValueTypeInt:
		return strconv.FormatInt(v.Int(), 10)
	case ValueTypeFloat:
		return formatFloat(v.Float())
	case ValueTypeBool:
		return strconv.FormatBool(v.Bool())
	case ValueTypeString:
		return v.Str()
	case ValueTypeSymbol, ValueTypeKeyword:
		return v.Name()
	case ValueTypeLambda:
		fn := v.Lambda()
		return fmt.Sprintf("Lambda(%s) %s", strings.Join(fn.Params, " "), NewList(fn.Body...))
	case ValueTypeList:
		items := v.List()
		values := make([]string, 0, len(items))
		for i := range items {
			values = append(values, items[i].String())
		}
		return "(" + strings.Join(values, " ") + ")"
	}
	return fmt.Sprintf("%v", v.v)
}

// Describe returns the textual form of the value prefixed by its type.
func (v Value) Describe() string {
	prefix := v.t.String()
	if v.t == ValueTypeInt {
		prefix = "Int"
	}
	return prefix + ": " + v.String()
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
