package lisp

import (
	"fmt"

	"github.com/xiam/lisp/ast"
)

func (in *Interpreter) evalKeyword(k ast.Keyword, list []ast.Value, env *Env) (ast.Value, error) {
	switch k {
	case ast.KeywordDefine:
		return in.evalDefine(list, env)
	case ast.KeywordIf:
		return in.evalIf(list, env)
	case ast.KeywordLambda:
		return evalLambda(list)
	case ast.KeywordPrint:
		return in.evalPrint(list, env)
	case ast.KeywordEqual:
		return in.evalEqual(list, env)
	case ast.KeywordLoad:
		return in.evalLoad(list, env)
	}
	return ast.Void, fmt.Errorf("%w: keyword %s", ErrNotCallable, k)
}

func expectArgs(k ast.Keyword, list []ast.Value, n int) error {
	if len(list)-1 != n {
		return fmt.Errorf("%w: %s expects %d, got %d", ErrArity, k, n, len(list)-1)
	}
	return nil
}

func (in *Interpreter) evalDefine(list []ast.Value, env *Env) (ast.Value, error) {
	if err := expectArgs(ast.KeywordDefine, list, 2); err != nil {
		return ast.Void, err
	}

	name := list[1]
	switch name.Type() {
	case ast.ValueTypeSymbol:
		// ok
	case ast.ValueTypeKeyword:
		return ast.Void, fmt.Errorf("%w: `%s`", ErrDefineKeyword, name.Name())
	default:
		return ast.Void, fmt.Errorf("%w: define expects a symbol, got %v", ErrMalformed, name.Type())
	}

	value, err := in.Eval(list[2], env)
	if err != nil {
		return ast.Void, err
	}

	in.tracef("define %s %s", name.Name(), ast.Encode(value))
	env.Set(name.Name(), value)
	return ast.Void, nil
}

func (in *Interpreter) evalIf(list []ast.Value, env *Env) (ast.Value, error) {
	if err := expectArgs(ast.KeywordIf, list, 3); err != nil {
		return ast.Void, err
	}

	cond, err := in.Eval(list[1], env)
	if err != nil {
		return ast.Void, err
	}
	if !cond.Is(ast.ValueTypeBool) {
		return ast.Void, fmt.Errorf("%w: condition must be Bool, got %v", ErrType, cond.Type())
	}

	if cond.Bool() {
		return in.Eval(list[2], env)
	}
	return in.Eval(list[3], env)
}

func evalLambda(list []ast.Value) (ast.Value, error) {
	if err := expectArgs(ast.KeywordLambda, list, 2); err != nil {
		return ast.Void, err
	}

	if !list[1].Is(ast.ValueTypeList) {
		return ast.Void, fmt.Errorf("%w: lambda parameters must be a list, got %v", ErrMalformed, list[1].Type())
	}
	params := make([]string, 0, len(list[1].List()))
	for _, param := range list[1].List() {
		if !param.Is(ast.ValueTypeSymbol) {
			return ast.Void, fmt.Errorf("%w: lambda parameter %s is %v", ErrMalformed, ast.Encode(param), param.Type())
		}
		params = append(params, param.Name())
	}

	if !list[2].Is(ast.ValueTypeList) {
		return ast.Void, fmt.Errorf("%w: lambda body must be a list, got %v", ErrMalformed, list[2].Type())
	}

	return ast.NewLambda(params, list[2].List()), nil
}

func (in *Interpreter) evalPrint(list []ast.Value, env *Env) (ast.Value, error) {
	if err := expectArgs(ast.KeywordPrint, list, 1); err != nil {
		return ast.Void, err
	}

	arg := list[1]
	switch arg.Type() {
	case ast.ValueTypeKeyword:
		fmt.Fprintln(in.out, arg.Keyword().Doc())

	case ast.ValueTypeSymbol:
		value, err := lookup(arg.Name(), env)
		if err != nil {
			return ast.Void, err
		}
		fmt.Fprintf(in.out, "Type: %v, Var %s: %v\n", value.Type(), arg.Name(), value)

	case ast.ValueTypeList:
		value, err := in.Eval(arg, env)
		if err != nil {
			return ast.Void, err
		}
		fmt.Fprintln(in.out, value)

	case ast.ValueTypeLambda:
		fmt.Fprintln(in.out, arg)

	default:
		fmt.Fprintln(in.out, arg.Describe())
	}

	return ast.Void, nil
}

func (in *Interpreter) evalEqual(list []ast.Value, env *Env) (ast.Value, error) {
	if err := expectArgs(ast.KeywordEqual, list, 2); err != nil {
		return ast.Void, err
	}

	left, err := in.Eval(list[1], env)
	if err != nil {
		return ast.Void, err
	}
	right, err := in.Eval(list[2], env)
	if err != nil {
		return ast.Void, err
	}

	return ast.NewBool(left.Equal(right)), nil
}
