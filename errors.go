package lisp

import (
	"errors"
)

// Evaluation errors. Returned errors wrap one of these with the offending
// symbol, operator or value.
var (
	ErrUnboundSymbol    = errors.New("unbound symbol")
	ErrArity            = errors.New("invalid number of arguments")
	ErrType             = errors.New("type error")
	ErrInvalidOperator  = errors.New("invalid operator")
	ErrNotCallable      = errors.New("not a lambda")
	ErrMalformed        = errors.New("malformed expression")
	ErrDefineKeyword    = errors.New("cannot define a keyword")
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrModuleNotFound   = errors.New("module not found")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNegativeExponent = errors.New("negative exponent")
	ErrRecursionLimit   = errors.New("recursion limit exceeded")
)
