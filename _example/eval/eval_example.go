package main

import (
	"fmt"
	"log"

	"github.com/xiam/lisp"
)

func main() {
	input := `(
		(define fib (lambda (n) (if (< n 2) 1 (+ (fib (- n 1)) (fib (- n 2))))))
		(define PI 3.1416)
		(define area (lambda (r) (* PI (* r r))))
		(print (concat "fib: " (fib 10)))
		(area 3)
	)`

	env := lisp.NewEnv()
	lisp.BindBooleans(env)

	result, err := lisp.Evaluate(input, env)
	if err != nil {
		log.Fatal("lisp.Evaluate:", err)
	}

	fmt.Println(result)
}
