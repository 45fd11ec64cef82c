// Package repl runs lisp programs interactively or from a file.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiam/lisp"
	"github.com/xiam/lisp/ast"
)

// Prompter reads one line of input at a time. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Session keeps the bindings made across inputs. Booleans live in a base
// frame that survives clean, user definitions live in a frame above it.
type Session struct {
	interp *lisp.Interpreter
	out    io.Writer
	prompt string

	base *lisp.Env
	env  *lisp.Env
}

// NewSession creates a session that evaluates with interp and writes results
// to out.
func NewSession(interp *lisp.Interpreter, out io.Writer, prompt string) *Session {
	base := lisp.NewEnv()
	lisp.BindBooleans(base)

	return &Session{
		interp: interp,
		out:    out,
		prompt: prompt,
		base:   base,
		env:    lisp.NewEnclosedEnv(base),
	}
}

// Env returns the frame user definitions are written to.
func (s *Session) Env() *lisp.Env {
	return s.env
}

// Reset drops every user definition.
func (s *Session) Reset() {
	s.env = lisp.NewEnclosedEnv(s.base)
}

// Preload loads each module into the session in order.
func (s *Session) Preload(paths []string) error {
	for _, path := range paths {
		if _, err := s.interp.Load(path, s.env); err != nil {
			return fmt.Errorf("preload %s: %w", path, err)
		}
	}
	return nil
}

// Exec evaluates the program in file. Only .lisp and .cl files are accepted.
func (s *Session) Exec(file string) error {
	if !lisp.IsSourceFile(file) {
		return fmt.Errorf("%w: %s", lisp.ErrInvalidExtension, file)
	}
	_, err := s.interp.Load(file, s.env)
	return err
}

// Handle processes one line of input and reports whether the session should
// end.
func (s *Session) Handle(line string) bool {
	input := strings.TrimSpace(line)

	switch input {
	case "":
		return false
	case "exit", "q":
		return true
	case "clean":
		s.Reset()
		fmt.Fprintln(s.out, "Env cleaned")
		return false
	}

	value, err := s.interp.Evaluate(input, s.env)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	}

	if text, ok := Format(value); ok {
		fmt.Fprintln(s.out, text)
	}
	return false
}

// Run reads lines from p until the input ends or the user quits.
func (s *Session) Run(p Prompter) error {
	defer fmt.Fprintln(s.out, "Good bye")

	for {
		line, err := p.Prompt(s.prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}

		if strings.TrimSpace(line) != "" {
			p.AppendHistory(line)
		}

		if s.Handle(line) {
			return nil
		}
	}
}

// Format renders a result for display. Void has nothing to show.
func Format(v ast.Value) (string, bool) {
	switch v.Type() {
	case ast.ValueTypeVoid:
		return "", false
	case ast.ValueTypeList:
		items := v.List()
		switch len(items) {
		case 0:
			return "", false
		case 1:
			return items[0].String(), true
		}
		values := make([]string, 0, len(items))
		for i := range items {
			values = append(values, items[i].String())
		}
		return strings.Join(values, ", "), true
	}
	return v.String(), true
}
