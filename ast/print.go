package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes a human-readable tree of the value to w
func Print(w io.Writer, v Value) {
	printLevel(w, v, 0)
}

func printLevel(w io.Writer, v Value, level int) {
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, v.Type())
	switch v.Type() {
	case ValueTypeList:
		fmt.Fprintf(w, "[%d]\n", len(v.List()))
		list := v.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case ValueTypeLambda:
		fn := v.Lambda()
		fmt.Fprintf(w, "%v\n", fn.Params)
		for i := range fn.Body {
			printLevel(w, fn.Body[i], level+1)
		}

	default:
		fmt.Fprintf(w, "%s\n", Encode(v))
	}
}

// Encode transforms a value into source text that reads back as the same
// value. Void has no source form and encodes as an empty string.
func Encode(v Value) string {
	switch v.Type() {
	case ValueTypeVoid:
		return ""

	case ValueTypeString:
		return `"` + v.Str() + `"`

	case ValueTypeFloat:
		s := formatFloat(v.Float())
		if !strings.ContainsAny(s, ".enN") {
			s = s + ".0"
		}
		return s

	case ValueTypeInt:
		return strconv.FormatInt(v.Int(), 10)

	case ValueTypeList:
		return encodeList(v.List())

	case ValueTypeLambda:
		fn := v.Lambda()
		params := make([]Value, 0, len(fn.Params))
		for i := range fn.Params {
			params = append(params, NewSymbol(fn.Params[i]))
		}
		return fmt.Sprintf("(lambda %s %s)", encodeList(params), encodeList(fn.Body))
	}

	return v.String()
}

func encodeList(values []Value) string {
	nodes := make([]string, 0, len(values))
	for i := range values {
		nodes = append(nodes, Encode(values[i]))
	}
	return "(" + strings.Join(nodes, " ") + ")"
}
