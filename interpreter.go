// Package lisp evaluates programs written in a small S-expression language.
//
// A program is a single parenthesized list. Evaluation reduces it against an
// Env and returns one value:
//
//	env := lisp.NewEnv()
//	v, err := lisp.Evaluate("((define r 10) (* r r))", env)
//	// v is the list (100)
package lisp

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

// DefaultMaxDepth is the number of nested function calls and module loads
// allowed by default.
const DefaultMaxDepth = 10000

// ModuleReader returns the contents of the module at path.
type ModuleReader func(path string) ([]byte, error)

// Interpreter evaluates values. An Interpreter is not safe for concurrent
// use.
type Interpreter struct {
	out        io.Writer
	readModule ModuleReader
	logger     *log.Logger

	maxDepth int
	depth    int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput sets where print writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.out = w
	}
}

// WithModuleReader sets how load reads files. Defaults to os.ReadFile.
func WithModuleReader(r ModuleReader) Option {
	return func(in *Interpreter) {
		in.readModule = r
	}
}

// WithLogger enables tracing of calls, definitions and loads.
func WithLogger(l *log.Logger) Option {
	return func(in *Interpreter) {
		in.logger = l
	}
}

// WithMaxDepth limits nested function calls and module loads. Zero removes
// the limit.
func WithMaxDepth(n int) Option {
	return func(in *Interpreter) {
		in.maxDepth = n
	}
}

// New creates an Interpreter.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		out:        os.Stdout,
		readModule: os.ReadFile,
		maxDepth:   DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Evaluate parses program and evaluates it in env.
func (in *Interpreter) Evaluate(program string, env *Env) (ast.Value, error) {
	root, err := parser.Parse([]byte(program))
	if err != nil {
		return ast.Void, err
	}
	return in.Eval(root, env)
}

// Evaluate parses program and evaluates it in env with a default Interpreter.
func Evaluate(program string, env *Env) (ast.Value, error) {
	return New().Evaluate(program, env)
}

// enter accounts for one more nested call or load. The returned function
// must be called on the way out.
func (in *Interpreter) enter(what string) (func(), error) {
	if in.maxDepth > 0 && in.depth >= in.maxDepth {
		return nil, fmt.Errorf("%w: %s at depth %d", ErrRecursionLimit, what, in.depth)
	}
	in.depth++
	return func() { in.depth-- }, nil
}

func (in *Interpreter) tracef(format string, v ...interface{}) {
	if in.logger == nil {
		return
	}
	in.logger.Printf("%*s"+format, append([]interface{}{in.depth * 2, ""}, v...)...)
}
