package lisp

import (
	"github.com/xiam/lisp/ast"
)

// Env is one frame of a scope chain. Lookups walk outward through parent
// frames; Set only ever writes into the frame it is called on.
type Env struct {
	parent *Env
	vars   map[string]ast.Value
}

// NewEnv creates an empty top-level frame.
func NewEnv() *Env {
	return NewEnclosedEnv(nil)
}

// NewEnclosedEnv creates an empty frame whose lookups fall back to parent.
func NewEnclosedEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		vars:   make(map[string]ast.Value),
	}
}

// Get returns the value bound to name in this frame or the nearest ancestor
// that has it.
func (e *Env) Get(name string) (ast.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if value, ok := env.vars[name]; ok {
			return value, true
		}
	}
	return ast.Void, false
}

// Set binds name in this frame, shadowing any ancestor binding.
func (e *Env) Set(name string, value ast.Value) {
	e.vars[name] = value
}

// Clone returns a frame holding a copy of this frame's bindings and sharing
// the same parent chain. Ancestors are not copied.
func (e *Env) Clone() *Env {
	vars := make(map[string]ast.Value, len(e.vars))
	for k, v := range e.vars {
		vars[k] = v
	}
	return &Env{
		parent: e.parent,
		vars:   vars,
	}
}

// BindBooleans binds true and false in e.
func BindBooleans(e *Env) {
	e.Set(ast.KeywordTrue.String(), ast.NewBool(true))
	e.Set(ast.KeywordFalse.String(), ast.NewBool(false))
}
