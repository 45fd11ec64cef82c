package lisp

import (
	"fmt"
	"math"

	"github.com/xiam/lisp/ast"
)

const concatOperator = "concat"

var binaryOperators = map[string]struct{}{
	"+":  {},
	"-":  {},
	"*":  {},
	"/":  {},
	"%":  {},
	"^":  {},
	"<":  {},
	">":  {},
	"==": {},
	"!=": {},
	">=": {},
	"<=": {},
}

type number struct {
	i       int64
	f       float64
	isFloat bool
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func toNumber(op string, v ast.Value) (number, error) {
	switch v.Type() {
	case ast.ValueTypeInt:
		return number{i: v.Int()}, nil
	case ast.ValueTypeFloat:
		return number{f: v.Float(), isFloat: true}, nil
	}
	return number{}, fmt.Errorf("%w: operand of %s must be a number, got %v", ErrType, op, v.Type())
}

func (in *Interpreter) evalOperands(op string, list []ast.Value, env *Env) (ast.Value, ast.Value, error) {
	if len(list) != 3 {
		return ast.Void, ast.Void, fmt.Errorf("%w: %s expects 2, got %d", ErrArity, op, len(list)-1)
	}
	left, err := in.Eval(list[1], env)
	if err != nil {
		return ast.Void, ast.Void, err
	}
	right, err := in.Eval(list[2], env)
	if err != nil {
		return ast.Void, ast.Void, err
	}
	return left, right, nil
}

// evalBinary runs a numeric operator. Integers stay integers unless either
// side is a float, in which case both sides are converted.
func (in *Interpreter) evalBinary(op string, list []ast.Value, env *Env) (ast.Value, error) {
	left, right, err := in.evalOperands(op, list, env)
	if err != nil {
		return ast.Void, err
	}

	l, err := toNumber(op, left)
	if err != nil {
		return ast.Void, err
	}
	r, err := toNumber(op, right)
	if err != nil {
		return ast.Void, err
	}

	if l.isFloat || r.isFloat {
		return floatOp(op, l.float(), r.float())
	}
	return intOp(op, l.i, r.i)
}

func floatOp(op string, l, r float64) (ast.Value, error) {
	switch op {
	case "+":
		return ast.NewFloat(l + r), nil
	case "-":
		return ast.NewFloat(l - r), nil
	case "*":
		return ast.NewFloat(l * r), nil
	case "/":
		return ast.NewFloat(l / r), nil
	case "%":
		return ast.NewFloat(math.Mod(l, r)), nil
	case "^":
		return ast.NewFloat(math.Pow(l, r)), nil
	}
	return compare(op, l < r, l > r, l == r)
}

func intOp(op string, l, r int64) (ast.Value, error) {
	switch op {
	case "+":
		return ast.NewInt(l + r), nil
	case "-":
		return ast.NewInt(l - r), nil
	case "*":
		return ast.NewInt(l * r), nil
	case "/", "%":
		if r == 0 {
			return ast.Void, fmt.Errorf("%w: %d %s %d", ErrDivisionByZero, l, op, r)
		}
		if op == "/" {
			return ast.NewInt(l / r), nil
		}
		return ast.NewInt(l % r), nil
	case "^":
		if r < 0 {
			return ast.Void, fmt.Errorf("%w: %d ^ %d", ErrNegativeExponent, l, r)
		}
		return ast.NewInt(ipow(l, r)), nil
	}
	return compare(op, l < r, l > r, l == r)
}

func compare(op string, lt, gt, eq bool) (ast.Value, error) {
	switch op {
	case "<":
		return ast.NewBool(lt), nil
	case ">":
		return ast.NewBool(gt), nil
	case "==":
		return ast.NewBool(eq), nil
	case "!=":
		return ast.NewBool(!eq), nil
	case ">=":
		return ast.NewBool(gt || eq), nil
	case "<=":
		return ast.NewBool(lt || eq), nil
	}
	return ast.Void, fmt.Errorf("%w: %s", ErrInvalidOperator, op)
}

// ipow wraps around on overflow like the other integer operators.
func ipow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func (in *Interpreter) evalConcat(list []ast.Value, env *Env) (ast.Value, error) {
	left, right, err := in.evalOperands(concatOperator, list, env)
	if err != nil {
		return ast.Void, err
	}
	for _, v := range []ast.Value{left, right} {
		if !v.IsScalar() {
			return ast.Void, fmt.Errorf("%w: operand of %s must be Str, Integer, Float or Bool, got %v", ErrType, concatOperator, v.Type())
		}
	}
	return ast.NewString(left.String() + right.String()), nil
}
