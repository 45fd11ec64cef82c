package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	i int64
	f float64
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Int returns the value of an integer token
func (t Token) Int() int64 {
	return t.i
}

// Float returns the value of a float token
func (t Token) Float() float64 {
	return t.f
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q)", t.tt, t.lexeme)
}
