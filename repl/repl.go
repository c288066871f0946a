// Package repl implements an interactive read-eval-print loop.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/siutin/scheme-go/lisp"
)

// DefaultPrompt is the prompt used when Config.Prompt is empty.
const DefaultPrompt = "scheme=> "

// Config holds the settings of an interactive session.
type Config struct {
	Prompt      string
	HistoryFile string
	Banner      string
}

// RunRepl reads lines from the terminal and evaluates them in env until the
// input is closed.  Each line must contain complete expressions.
func RunRepl(env *lisp.LEnv, config Config) error {
	prompt := config.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     config.HistoryFile,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	stdout := rl.Stdout()
	err = lisp.WithStdout(stdout)(env)
	if err != nil {
		return err
	}
	if config.Banner != "" {
		fmt.Fprintln(stdout, config.Banner)
	}
	logger := env.Runtime.Logger
	logger.Debug("repl started", "env", env.ID, "history", config.HistoryFile)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		err = EvalLine(env, stdout, line)
		if err != nil {
			logger.Debug("line failed", "line", line, "error", err)
		}
	}
	logger.Debug("repl done")
	return nil
}

// EvalLine evaluates each expression in line with env.  The value of each
// expression is written to w, expressions producing no value write nothing.
// Evaluation stops at the first error, which is written to w prefixed with
// "error: " and returned.
func EvalLine(env *lisp.LEnv, w io.Writer, line string) error {
	forms, err := env.Read("repl", strings.NewReader(line))
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return err
	}
	for _, form := range forms {
		v, err := env.Eval(form)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			return err
		}
		if v != nil {
			fmt.Fprintln(w, v)
		}
	}
	return nil
}
