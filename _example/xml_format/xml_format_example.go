package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

func printTree(node ast.Value) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node ast.Value, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.Is(ast.ValueTypeList) {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		children := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), node, node.Type())
}

func main() {
	input := `((define sqr (lambda (r) (* r r))) (print (concat "Hello world! " (sqr 2.5))) 😊)`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
