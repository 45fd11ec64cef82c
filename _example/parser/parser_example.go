package main

import (
	"log"
	"os"

	"github.com/xiam/lisp/ast"
	"github.com/xiam/lisp/parser"
)

func main() {
	input := `((define sqr (lambda (r) (* r r))) (print (concat "Hello world! " (sqr 2.5))) 😊)`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(os.Stdout, root)
}
