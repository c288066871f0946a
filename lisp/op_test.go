package lisp_test

import (
	"testing"

	"github.com/siutin/scheme-go/lisp"
	"github.com/siutin/scheme-go/lisptest"
)

func TestSpecialOp(t *testing.T) {
	tests := lisptest.TestSuite{
		{"define", lisptest.TestSequence{
			{`(define x 1)`, ``, ``},
			{`x`, `1`, ``},
			{`(define x 2.5)`, ``, ``},
			{`x`, `2.5`, ``},
			{`(define y x)`, ``, ``},
			// the value form is not evaluated
			{`y`, `x`, ``},
			{`(define pi 3)`, ``, ``},
			{`pi`, `3`, ``},
			{`(define car 1)`, ``, ``},
			{`(car (list 1))`, `error: name-error: symbol is not bound to a function: car (int)`, ``},
		}},
		{"define errors", lisptest.TestSequence{
			{`(define)`, `error: syntax-error: wrong syntax for define expression: expected 2 arguments (got 0)`, ``},
			{`(define x)`, `error: syntax-error: wrong syntax for define expression: expected 2 arguments (got 1)`, ``},
			{`(define x 1 2)`, `error: syntax-error: wrong syntax for define expression: expected 2 arguments (got 3)`, ``},
			{`(define 1 2)`, `error: syntax-error: wrong syntax for define expression: name is not a symbol: 1`, ``},
			{`(define (f) 2)`, `error: syntax-error: wrong syntax for define expression: name is not a symbol: (f)`, ``},
			{`(define x (+ 1 2))`, `error: syntax-error: wrong syntax for define expression: unsupported value: (+ 1 2)`, ``},
			{`x`, `error: name-error: symbol is not defined: x`, ``},
		}},
		{"define as argument", lisptest.TestSequence{
			// define produces no value so it is omitted from the arguments, which
			// are evaluated from left to right
			{`(list (define z 4) z)`, `'(4)`, ``},
			{`(list z (define w 5))`, `'(4)`, ``},
			{`w`, `5`, ``},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

func TestArgumentPolicy(t *testing.T) {
	abort := lisptest.TestSuite{
		{"abort", lisptest.TestSequence{
			{`(+ 1 undefined 2)`, `error: name-error: symbol is not defined: undefined`, ``},
			{`(list 1 (car (list)) 3)`, `error: car: type-error: argument is an empty list`, ``},
			{`(begin (print 1) (print) (print 3))`, `error: print: arity-error: one argument expected (got 0)`, "1\n"},
			{`(list 1 (print 2) 3)`, `'(1 3)`, "2\n"},
		}},
	}
	r := &lisptest.Runner{}
	r.RunTestSuite(t, abort)

	r = &lisptest.Runner{Config: []lisp.Config{lisp.WithArgumentPolicy(lisp.AbortOnArgError)}}
	r.RunTestSuite(t, abort)

	drop := lisptest.TestSuite{
		{"drop", lisptest.TestSequence{
			{`(+ 1 undefined 2)`, `3`, ``},
			{`(list 1 (car (list)) 3)`, `'(1 3)`, ``},
			{`(begin (print 1) (print) (print 3))`, ``, "1\n3\n"},
			{`(list 1 (print 2) 3)`, `'(1 3)`, "2\n"},
			// errors in the head of an expression are not arguments
			{`(undefined 1)`, `error: name-error: symbol is not defined: undefined`, ``},
			{`(car (car (list)) (list 7))`, `7`, ``},
		}},
	}
	r = &lisptest.Runner{Config: []lisp.Config{lisp.WithArgumentPolicy(lisp.DropFailedArgs)}}
	r.RunTestSuite(t, drop)
}
