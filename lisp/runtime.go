package lisp

import (
	"io"
	"log/slog"
	"os"
)

// ArgumentPolicy determines how the evaluator treats a procedure argument
// whose evaluation fails.
type ArgumentPolicy uint

// Possible ArgumentPolicy values
const (
	// AbortOnArgError makes the first failing argument abort the call.  The
	// argument's error becomes the result of the call.
	AbortOnArgError ArgumentPolicy = iota
	// DropFailedArgs omits failing arguments from the argument list and
	// calls the procedure with the remaining values.
	DropFailedArgs
)

var argumentPolicyStrings = []string{
	AbortOnArgError: "abort",
	DropFailedArgs:  "drop",
}

func (p ArgumentPolicy) String() string {
	if int(p) >= len(argumentPolicyStrings) {
		return "INVALID"
	}
	return argumentPolicyStrings[p]
}

// ParseArgumentPolicy returns the ArgumentPolicy named s ("abort" or
// "drop").
func ParseArgumentPolicy(s string) (ArgumentPolicy, error) {
	for i, name := range argumentPolicyStrings {
		if name == s {
			return ArgumentPolicy(i), nil
		}
	}
	return 0, Errorf(InvalidCondition, "unknown argument policy: %q", s)
}

// Runtime is the state shared by a root environment and its children.
type Runtime struct {
	Reader         Reader
	Stdout         io.Writer
	Logger         *slog.Logger
	ArgumentPolicy ArgumentPolicy
}

// StandardRuntime returns a Runtime that writes to os.Stdout and discards log
// records below slog.LevelWarn.  The Runtime has no Reader.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stdout: os.Stdout,
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
	}
}
