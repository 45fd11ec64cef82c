package lisp

import (
	"fmt"

	"github.com/xiam/lisp/ast"
)

// Eval reduces node to a value in env.
func (in *Interpreter) Eval(node ast.Value, env *Env) (ast.Value, error) {
	switch node.Type() {
	case ast.ValueTypeList:
		return in.evalList(node.List(), env)

	case ast.ValueTypeSymbol:
		return lookup(node.Name(), env)

	case ast.ValueTypeKeyword:
		switch k := node.Keyword(); k {
		case ast.KeywordTrue, ast.KeywordFalse:
			// reserved, but only meaningful once bound
			return lookup(k.String(), env)
		}
		return node, nil

	case ast.ValueTypeLambda:
		return ast.Void, nil
	}

	return node, nil
}

func lookup(name string, env *Env) (ast.Value, error) {
	value, ok := env.Get(name)
	if !ok {
		return ast.Void, fmt.Errorf("%w: %s", ErrUnboundSymbol, name)
	}
	return value, nil
}

func (in *Interpreter) evalList(list []ast.Value, env *Env) (ast.Value, error) {
	if len(list) == 0 {
		return ast.Void, nil
	}

	head := list[0]
	switch head.Type() {
	case ast.ValueTypeKeyword:
		return in.evalKeyword(head.Keyword(), list, env)

	case ast.ValueTypeSymbol:
		name := head.Name()
		if _, ok := binaryOperators[name]; ok {
			return in.evalBinary(name, list, env)
		}
		if name == concatOperator {
			return in.evalConcat(list, env)
		}
		return in.evalCall(name, list, env)
	}

	return in.evalSequence(list, env)
}

// evalSequence evaluates every element in order and keeps the non-Void
// results. This is how a whole program is run.
func (in *Interpreter) evalSequence(list []ast.Value, env *Env) (ast.Value, error) {
	results := make([]ast.Value, 0, len(list))
	for i := range list {
		value, err := in.Eval(list[i], env)
		if err != nil {
			return ast.Void, err
		}
		if value.IsVoid() {
			continue
		}
		results = append(results, value)
	}
	return ast.NewList(results...), nil
}

func (in *Interpreter) evalCall(name string, list []ast.Value, env *Env) (ast.Value, error) {
	fn, err := lookup(name, env)
	if err != nil {
		return ast.Void, err
	}

	switch {
	case fn.Is(ast.ValueTypeLambda):
		return in.apply(name, fn.Lambda(), list[1:], env)

	case fn.IsScalar():
		// calling a plain value prints it
		fmt.Fprintln(in.out, fn.String())
		return ast.Void, nil
	}

	return ast.Void, fmt.Errorf("%w: %s is %v", ErrNotCallable, name, fn.Type())
}

// apply calls fn with args. The call frame is a copy of the caller's frame,
// so the body sees what is visible at the call site. Arguments are evaluated
// in the caller's frame, left to right.
func (in *Interpreter) apply(name string, fn *ast.Lambda, args []ast.Value, env *Env) (ast.Value, error) {
	if len(args) != len(fn.Params) {
		return ast.Void, fmt.Errorf("%w: %s expects %d, got %d", ErrArity, name, len(fn.Params), len(args))
	}

	leave, err := in.enter(name)
	if err != nil {
		return ast.Void, err
	}
	defer leave()

	frame := env.Clone()
	for i, param := range fn.Params {
		value, err := in.Eval(args[i], env)
		if err != nil {
			return ast.Void, err
		}
		frame.Set(param, value)
	}

	in.tracef("call %s %v", name, ast.NewList(args...))
	return in.Eval(ast.NewList(fn.Body...), frame)
}
