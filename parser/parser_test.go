package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `()`,
			Out: `()`,
		},
		{
			In:  `(+ 1 2)`,
			Out: `(+ 1 2)`,
		},
		{
			In:  "(1\n\t 2\n\n3\n)",
			Out: "(1 2 3)",
		},
		{
			In:  `(1.2 2.4 3.44 5.678 (1 1.2 (2) 1.4) 4 () 11)`,
			Out: `(1.2 2.4 3.44 5.678 (1 1.2 (2) 1.4) 4 () 11)`,
		},
		{
			In:  `((define r 10)(define pi 314)(* pi (* r r)))`,
			Out: `((define r 10) (define pi 314) (* pi (* r r)))`,
		},
		{
			In:  `(define sqr (lambda (r) (* r r)))`,
			Out: `(define sqr (lambda (r) (* r r)))`,
		},
		{
			In:  `(concat "hola   mundo" "(no list)")`,
			Out: `(concat "hola   mundo" "(no list)")`,
		},
		{
			In:  `(+ -1 55 +6.3 +2 -3.23 4.01)`,
			Out: `(+ -1 55 6.3 2 -3.23 4.01)`,
		},
		{
			In:  `(((((1)))))`,
			Out: `(((((1)))))`,
		},
	}

	for i := range testCases {
		root, err := Parse([]byte(testCases[i].In))
		assert.NoError(t, err)

		ast.Print(&bytes.Buffer{}, root)
		s := ast.Encode(root)

		assert.Equal(t, testCases[i].Out, s)
	}
}

func TestParseValues(t *testing.T) {
	root, err := Parse([]byte(`(+ 1 2)`))
	require.NoError(t, err)

	expected := ast.NewList(ast.NewSymbol("+"), ast.NewInt(1), ast.NewInt(2))
	assert.Equal(t, expected, root)
}

func TestParseKeywords(t *testing.T) {
	{
		root, err := Parse([]byte(`(equal 1 2)`))
		require.NoError(t, err)

		expected := ast.NewList(ast.NewKeyword(ast.KeywordEqual), ast.NewInt(1), ast.NewInt(2))
		assert.Equal(t, expected, root)
		assert.True(t, root.List()[0].Is(ast.ValueTypeKeyword))
	}

	{
		root, err := Parse([]byte(`(if define true false lambda print equal load iff)`))
		require.NoError(t, err)

		items := root.List()
		require.Len(t, items, 9)
		for _, item := range items[:8] {
			assert.Equal(t, ast.ValueTypeKeyword, item.Type(), item.String())
		}
		assert.Equal(t, ast.NewSymbol("iff"), items[8])
	}

	{
		root, err := Parse([]byte(`(print "if")`))
		require.NoError(t, err)
		assert.Equal(t, ast.NewString("if"), root.List()[1])
	}
}

func TestParseNested(t *testing.T) {
	root, err := Parse([]byte(`((define x 1.5) (print x))`))
	require.NoError(t, err)

	expected := ast.NewList(
		ast.NewList(ast.NewKeyword(ast.KeywordDefine), ast.NewSymbol("x"), ast.NewFloat(1.5)),
		ast.NewList(ast.NewKeyword(ast.KeywordPrint), ast.NewSymbol("x")),
	)
	assert.True(t, expected.Equal(root))
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{
			In:  ``,
			Err: ErrUnexpectedEOF,
		},
		{
			In:  `1 (2)`,
			Err: ErrUnexpectedToken,
		},
		{
			In:  `)(`,
			Err: ErrUnexpectedToken,
		},
		{
			In:  `(1 2) (3)`,
			Err: ErrTrailingTokens,
		},
		{
			In:  `(1 (2)`,
			Err: lexer.ErrMalformedParens,
		},
		{
			In:  `(print "x)`,
			Err: lexer.ErrMalformedParens,
		},
		{
			In:  `(print 1.2.3)`,
			Err: lexer.ErrInvalidNumber,
		},
	}

	for i := range testCases {
		_, err := Parse([]byte(testCases[i].In))
		assert.ErrorIs(t, err, testCases[i].Err, testCases[i].In)
		t.Log(err)
	}
}

func TestParserInsufficientTokens(t *testing.T) {
	tokens := []lexer.Token{
		*lexer.NewToken(lexer.TokenOpenList, "("),
		*lexer.NewToken(lexer.TokenSymbol, "a"),
	}

	_, err := New(tokens).Parse()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}
