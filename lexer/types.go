package lexer

import "unicode"

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenList             // Open parenthesis: "("
	TokenCloseList            // Close parenthesis: ")"
	TokenInteger              // 64-bit signed integer
	TokenFloat                // 64-bit floating point number
	TokenString               // Text between double quotes, quotes stripped
	TokenSymbol               // Any other word
)

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenInteger:   "integer",
	TokenFloat:     "float",
	TokenString:    "string",
	TokenSymbol:    "symbol",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// runeClass groups the runes the scanner treats alike.
type runeClass uint8

const (
	classOpenList runeClass = iota
	classCloseList
	classQuote
	classDigit
	classSign
)

var classRunes = map[runeClass][]rune{
	classOpenList:  []rune{'('},
	classCloseList: []rune{')'},
	classQuote:     []rune{'"'},
	classDigit:     []rune("0123456789"),
	classSign:      []rune("+-"),
}

var (
	isOpenList  = isRuneClass(classOpenList)
	isCloseList = isRuneClass(classCloseList)
	isQuote     = isRuneClass(classQuote)
	isDigit     = isRuneClass(classDigit)
	isSign      = isRuneClass(classSign)
)

func isRuneClass(c runeClass) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range classRunes[c] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// isWordBreak reports whether r ends a number or a symbol.
func isWordBreak(r rune) bool {
	return r < 0 || isWhitespace(r) || isOpenList(r) || isCloseList(r) || isQuote(r)
}
