package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"text/scanner"
)

// Lexing errors
var (
	ErrMalformedParens    = errors.New("malformed parentheses")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrInvalidNumber      = errors.New("invalid number")
)

type lexState func(*Lexer) lexState

// New initializes a Lexer over the given source
func New(in []byte) *Lexer {
	s := &scanner.Scanner{}
	s.Init(bytes.NewReader(in))
	s.Error = func(*scanner.Scanner, string) {}

	return &Lexer{
		src:    in,
		in:     s,
		tokens: []Token{},
		buf:    []rune{},
	}
}

// Lexer represents a lexical analyzer. It works in two modes: outside
// strings, where words are split on whitespace and parentheses, and inside
// strings, where every rune up to the closing quote is literal.
type Lexer struct {
	src []byte
	in  *scanner.Scanner

	tokens []Token

	lastErr error

	buf []rune
}

// Tokens returns the tokens found by Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole source. Parentheses are checked for balance before any
// token is produced.
func (lx *Lexer) Scan() error {
	if !balanced(lx.src) {
		return ErrMalformedParens
	}

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		lx.tokens = lx.tokens[0:0]
	}
	return lx.lastErr
}

// balanced compares the number of "(" and ")" found outside string literals.
func balanced(in []byte) bool {
	var open, closed int
	inString := false
	for _, r := range string(in) {
		switch {
		case isQuote(r):
			inString = !inString
		case inString:
			// literal
		case isOpenList(r):
			open++
		case isCloseList(r):
			closed++
		}
	}
	return open == closed
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.buf),
	})
	lx.ignore()
}

func (lx *Lexer) emitNumber() error {
	text := string(lx.buf)

	tok := Token{lexeme: text}
	if i64, err := strconv.ParseInt(text, 10, 64); err == nil {
		tok.tt, tok.i = TokenInteger, i64
	} else if f64, err := strconv.ParseFloat(text, 64); err == nil {
		tok.tt, tok.f = TokenFloat, f64
	} else {
		return fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}

	lx.tokens = append(lx.tokens, tok)
	lx.ignore()
	return nil
}

func (lx *Lexer) ignore() {
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() rune {
	r := lx.in.Next()
	if r != scanner.EOF {
		lx.buf = append(lx.buf, r)
	}
	return r
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.next()

	switch {
	case r == scanner.EOF:
		return nil

	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)

	case isQuote(r):
		lx.ignore()
		return lexString

	case isWhitespace(r):
		lx.ignore()
		return lexDefaultState

	case isDigit(r):
		return lexNumber

	case isSign(r):
		// a sign glued to a digit is part of the number, otherwise it's an
		// operator symbol
		if isDigit(lx.peek()) {
			return lexNumber
		}
		return lexSymbol

	default:
		return lexSymbol
	}
}

func lexString(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF {
			return lexStateError(fmt.Errorf("%w: %q", ErrUnterminatedString, string(lx.buf)))
		}
		if isQuote(p) {
			lx.emit(TokenString)
			lx.in.Next()
			return lexDefaultState
		}
		lx.next()
	}
}

func lexNumber(lx *Lexer) lexState {
	for !isWordBreak(lx.peek()) {
		lx.next()
	}
	if err := lx.emitNumber(); err != nil {
		return lexStateError(err)
	}
	return lexDefaultState
}

func lexSymbol(lx *Lexer) lexState {
	for !isWordBreak(lx.peek()) {
		lx.next()
	}
	return lexEmit(TokenSymbol)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it, or an
// error if the input can't be split into tokens.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(in)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}
