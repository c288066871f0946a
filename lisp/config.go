package lisp

import (
	"io"
	"log/slog"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) error

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) error {
		env.Runtime.Reader = r
		return nil
	}
}

// WithStdout returns a Config that makes the ``print'' builtin write to w
// instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) error {
		env.Runtime.Stdout = w
		return nil
	}
}

// WithLogger returns a Config that makes the evaluator write debugging
// records to logger.
func WithLogger(logger *slog.Logger) Config {
	return func(env *LEnv) error {
		if logger == nil {
			return Errorf(InvalidCondition, "nil logger")
		}
		env.Runtime.Logger = logger
		return nil
	}
}

// WithArgumentPolicy returns a Config that sets how failing procedure
// arguments are handled.
func WithArgumentPolicy(p ArgumentPolicy) Config {
	return func(env *LEnv) error {
		if int(p) >= len(argumentPolicyStrings) {
			return Errorf(InvalidCondition, "invalid argument policy: %d", p)
		}
		env.Runtime.ArgumentPolicy = p
		return nil
	}
}
