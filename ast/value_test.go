package ast

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	testCases := []struct {
		In  Value
		Out string
	}{
		{Void, "Void"},
		{NewInt(-4000), "-4000"},
		{NewFloat(28.2744), "28.2744"},
		{NewFloat(3), "3"},
		{NewFloat(math.Inf(1)), "inf"},
		{NewFloat(math.Inf(-1)), "-inf"},
		{NewFloat(math.NaN()), "NaN"},
		{NewBool(true), "true"},
		{NewString("esta fumado 🚬"), "esta fumado 🚬"},
		{NewSymbol("pi"), "pi"},
		{NewKeyword(KeywordDefine), "define"},
		{NewList(), "()"},
		{NewList(NewInt(1), NewString("a"), NewList(NewSymbol("b"))), "(1 a (b))"},
		{
			NewLambda([]string{"r"}, []Value{NewSymbol("*"), NewSymbol("r"), NewSymbol("r")}),
			"Lambda(r) (* r r)",
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, testCases[i].In.String())
	}
}

func TestValueDescribe(t *testing.T) {
	assert.Equal(t, "Int: 5", NewInt(5).Describe())
	assert.Equal(t, "Float: 1.5", NewFloat(1.5).Describe())
	assert.Equal(t, "Bool: false", NewBool(false).Describe())
	assert.Equal(t, "Str: hola", NewString("hola").Describe())
	assert.Equal(t, "List: (1 2)", NewList(NewInt(1), NewInt(2)).Describe())
}

func TestValueEqual(t *testing.T) {
	sqr := NewLambda([]string{"r"}, []Value{NewSymbol("*"), NewSymbol("r"), NewSymbol("r")})

	testCases := []struct {
		A, B  Value
		Equal bool
	}{
		{Void, Void, true},
		{NewInt(20), NewInt(29), false},
		{NewInt(2), NewInt(2), true},
		{NewInt(2), NewFloat(2), false},
		{NewFloat(0.5), NewFloat(0.5), true},
		{NewFloat(math.NaN()), NewFloat(math.NaN()), false},
		{NewString("a"), NewString("a"), true},
		{NewString("a"), NewSymbol("a"), false},
		{NewKeyword(KeywordIf), NewKeyword(KeywordIf), true},
		{NewKeyword(KeywordIf), NewSymbol("if"), false},
		{NewBool(true), NewBool(true), true},
		{NewList(NewInt(1), NewList(NewInt(2))), NewList(NewInt(1), NewList(NewInt(2))), true},
		{NewList(NewInt(1), NewList(NewInt(2))), NewList(NewInt(1), NewList(NewInt(3))), false},
		{NewList(NewInt(1)), NewList(NewInt(1), NewInt(1)), false},
		{sqr, NewLambda([]string{"r"}, []Value{NewSymbol("*"), NewSymbol("r"), NewSymbol("r")}), true},
		{sqr, NewLambda([]string{"x"}, []Value{NewSymbol("*"), NewSymbol("r"), NewSymbol("r")}), false},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Equal, testCases[i].A.Equal(testCases[i].B), "case %d", i)
	}
}

func TestValueKinds(t *testing.T) {
	for _, v := range []Value{NewInt(1), NewFloat(1), NewBool(true), NewString("")} {
		assert.True(t, v.IsScalar(), v.Type().String())
	}
	for _, v := range []Value{Void, NewSymbol("a"), NewKeyword(KeywordLoad), NewList(), NewLambda(nil, nil)} {
		assert.False(t, v.IsScalar(), v.Type().String())
	}
	assert.True(t, Void.IsVoid())
	assert.True(t, NewList().Is(ValueTypeList))
	assert.NotNil(t, NewList().List())
}

func TestKeywords(t *testing.T) {
	for _, name := range []string{"if", "define", "true", "false", "lambda", "print", "equal", "load"} {
		k, ok := LookupKeyword(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, k.String())
	}

	_, ok := LookupKeyword("concat")
	assert.False(t, ok)

	assert.Equal(t, "Conditional if", KeywordIf.Doc())
	assert.Equal(t, "", KeywordTrue.Doc())
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  Value
		Out string
	}{
		{NewString("hola mundo"), `"hola mundo"`},
		{NewFloat(3), "3.0"},
		{NewFloat(0.25), "0.25"},
		{NewList(NewKeyword(KeywordPrint), NewString("x")), `(print "x")`},
		{
			NewLambda([]string{"a", "b"}, []Value{NewSymbol("+"), NewSymbol("a"), NewSymbol("b")}),
			"(lambda (a b) (+ a b))",
		},
		{Void, ""},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, Encode(testCases[i].In))
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, NewList(NewSymbol("+"), NewInt(1), NewList(NewFloat(2.5))))

	expected := "(List): [3]\n" +
		"    (Symbol): +\n" +
		"    (Integer): 1\n" +
		"    (List): [1]\n" +
		"        (Float): 2.5\n"
	assert.Equal(t, expected, buf.String())
}
