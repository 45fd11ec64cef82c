package parser

import (
	"fmt"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/lexer"
)

// Parser builds a tree of values out of a token stream. Tokens are kept in
// reverse order so the next one is always at the top of the stack.
type Parser struct {
	stack []lexer.Token
}

// New creates a parser for the given tokens
func New(tokens []lexer.Token) *Parser {
	stack := make([]lexer.Token, len(tokens))
	for i := range tokens {
		stack[len(tokens)-1-i] = tokens[i]
	}
	return &Parser{stack: stack}
}

// Parse reads exactly one list and returns it. Anything left after the list
// is an error.
func (p *Parser) Parse() (ast.Value, error) {
	root, err := p.parseList()
	if err != nil {
		return ast.Void, err
	}

	if tok, ok := p.peek(); ok {
		return ast.Void, fmt.Errorf("%w: %v", ErrTrailingTokens, tok)
	}

	return root, nil
}

func (p *Parser) peek() (lexer.Token, bool) {
	if len(p.stack) == 0 {
		return lexer.Token{}, false
	}
	return p.stack[len(p.stack)-1], true
}

func (p *Parser) next() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.stack = p.stack[:len(p.stack)-1]
	}
	return tok, ok
}

func (p *Parser) push(tok lexer.Token) {
	p.stack = append(p.stack, tok)
}

func (p *Parser) parseList() (ast.Value, error) {
	tok, ok := p.next()
	if !ok {
		return ast.Void, ErrUnexpectedEOF
	}
	if !tok.Is(lexer.TokenOpenList) {
		return ast.Void, fmt.Errorf("%w: expecting \"(\", got %v", ErrUnexpectedToken, tok)
	}

	list := []ast.Value{}
	for {
		tok, ok := p.next()
		if !ok {
			return ast.Void, ErrUnexpectedEOF
		}

		switch tok.Type() {
		case lexer.TokenInteger:
			list = append(list, ast.NewInt(tok.Int()))

		case lexer.TokenFloat:
			list = append(list, ast.NewFloat(tok.Float()))

		case lexer.TokenString:
			list = append(list, ast.NewString(tok.Text()))

		case lexer.TokenSymbol:
			if k, ok := ast.LookupKeyword(tok.Text()); ok {
				list = append(list, ast.NewKeyword(k))
				continue
			}
			list = append(list, ast.NewSymbol(tok.Text()))

		case lexer.TokenOpenList:
			p.push(tok)
			child, err := p.parseList()
			if err != nil {
				return ast.Void, err
			}
			list = append(list, child)

		case lexer.TokenCloseList:
			return ast.NewList(list...), nil

		default:
			return ast.Void, fmt.Errorf("%w: %v", ErrUnexpectedToken, tok)
		}
	}
}

// Parse tokenizes the input and reads it as a single list. Lexer errors are
// returned as they are.
func Parse(in []byte) (ast.Value, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return ast.Void, err
	}
	return New(tokens).Parse()
}
