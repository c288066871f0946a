// Package lisptest runs sequences of lisp expressions against isolated
// environments and compares their printed results.
package lisptest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/siutin/scheme-go/lisp"
	"github.com/siutin/scheme-go/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated sequentially
// by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
	Output string // data written to stdout
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// Runner is a test runner.
type Runner struct {
	// Config is applied to every environment created by the Runner.
	Config []lisp.Config
}

// NewEnv returns an initialized user environment which writes printed output
// to stdout.
func (r *Runner) NewEnv(stdout *bytes.Buffer) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	config := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
	}
	config = append(config, r.Config...)
	err := lisp.InitializeUserEnv(env, config...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lisp environment: %w", err)
	}
	return env, nil
}

// Result formats the outcome of an evaluation the way the REPL prints it.
// Result is empty when v is nil and err is nil.
func Result(v *lisp.LVal, err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return v.String()
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func (r *Runner) RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var stdout bytes.Buffer
		env, err := r.NewEnv(&stdout)
		if err != nil {
			t.Fatal(err)
		}
		for j, expr := range test.TestSequence {
			stdout.Reset()
			v, err := parser.Parse(expr.Expr)
			if err != nil {
				result := Result(nil, err)
				if result != expr.Result {
					t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				}
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v))
				continue
			}
			result := Result(env.Eval(v[0]))
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %q (got %q)", i, test.Name, j, expr.Result, result)
			}
			if stdout.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, stdout.String())
			}
		}
	}
}

// RunTestSuite runs tests with a default Runner.
func RunTestSuite(t *testing.T, tests TestSuite) {
	r := &Runner{}
	r.RunTestSuite(t, tests)
}
