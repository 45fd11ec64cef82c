package main

import (
	"fmt"
	"log"

	"github.com/xiam/lisp/lexer"
)

func main() {
	input := `
		(
			(define area (lambda (r) (* 3.1416 (* r r))))
			(print (concat "area: " (area -2)))
		)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v)\n\t-> %q\n\n", i, tok.Type(), tok.Text())
	}
}
