package lisp

import (
	"fmt"
	"path/filepath"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

// DefaultExtension is appended to module paths that have no extension.
const DefaultExtension = ".lisp"

var sourceExtensions = map[string]struct{}{
	".lisp": {},
	".cl":   {},
}

// IsSourceFile reports whether path has one of the recognized source
// extensions, .lisp or .cl.
func IsSourceFile(path string) bool {
	_, ok := sourceExtensions[filepath.Ext(path)]
	return ok
}

// ModulePath returns the file that load reads for path. A path without
// extension gets DefaultExtension, any extension other than .lisp or .cl is
// rejected.
func ModulePath(path string) (string, error) {
	ext := filepath.Ext(path)
	switch {
	case ext == "":
		return path + DefaultExtension, nil
	case IsSourceFile(path):
		return path, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
}

// Load reads the module at path and evaluates it in env, so its definitions
// stay visible to the caller.
func (in *Interpreter) Load(path string, env *Env) (ast.Value, error) {
	file, err := ModulePath(path)
	if err != nil {
		return ast.Void, err
	}

	leave, err := in.enter("load " + file)
	if err != nil {
		return ast.Void, err
	}
	defer leave()

	in.tracef("load %s", file)
	data, err := in.readModule(file)
	if err != nil {
		return ast.Void, fmt.Errorf("%w: %s (%v)", ErrModuleNotFound, file, err)
	}

	root, err := parser.Parse(data)
	if err != nil {
		return ast.Void, err
	}

	return in.Eval(root, env)
}

func (in *Interpreter) evalLoad(list []ast.Value, env *Env) (ast.Value, error) {
	if err := expectArgs(ast.KeywordLoad, list, 1); err != nil {
		return ast.Void, err
	}

	var path string
	switch arg := list[1]; arg.Type() {
	case ast.ValueTypeString:
		path = arg.Str()
	case ast.ValueTypeSymbol:
		value, err := lookup(arg.Name(), env)
		if err != nil {
			return ast.Void, err
		}
		if !value.Is(ast.ValueTypeString) {
			return ast.Void, fmt.Errorf("%w: load path %s must be Str, got %v", ErrType, arg.Name(), value.Type())
		}
		path = value.Str()
	default:
		return ast.Void, fmt.Errorf("%w: load expects a Str or a Symbol, got %v", ErrType, arg.Type())
	}

	return in.Load(path, env)
}
