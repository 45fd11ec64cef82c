package parser

import (
	"errors"
)

// Parsing errors
var (
	ErrUnexpectedEOF   = errors.New("insufficient tokens")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingTokens  = errors.New("unexpected tokens after the end of the program")
)
