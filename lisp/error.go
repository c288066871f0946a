package lisp

import (
	"errors"
	"fmt"
)

// Condition classifies an ErrorVal.
type Condition uint

// Possible Condition values
const (
	InvalidCondition Condition = iota
	SyntaxError
	NameError
	TypeError
	ArityError
)

var conditionStrings = []string{
	InvalidCondition: "error",
	SyntaxError:      "syntax-error",
	NameError:        "name-error",
	TypeError:        "type-error",
	ArityError:       "arity-error",
}

func (c Condition) String() string {
	if int(c) >= len(conditionStrings) {
		return conditionStrings[InvalidCondition]
	}
	return conditionStrings[c]
}

// ErrorVal is an error raised by the reader, the evaluator or a builtin.  Fun
// names the builtin that raised the error and is empty for errors raised
// outside of a builtin.
type ErrorVal struct {
	Condition Condition
	Fun       string
	Msg       string
}

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	if e.Fun == "" {
		return e.Condition.String() + ": " + e.Msg
	}
	return e.Fun + ": " + e.Condition.String() + ": " + e.Msg
}

// Errorf returns an ErrorVal with condition c and a formatted message.
func Errorf(c Condition, format string, v ...interface{}) error {
	return &ErrorVal{
		Condition: c,
		Msg:       fmt.Sprintf(format, v...),
	}
}

// berrf returns an error raised by the builtin named fun.
func berrf(fun string, c Condition, format string, v ...interface{}) error {
	return &ErrorVal{
		Condition: c,
		Fun:       fun,
		Msg:       fmt.Sprintf(format, v...),
	}
}

// ConditionOf returns the Condition of err if err wraps an ErrorVal.
func ConditionOf(err error) (Condition, bool) {
	var lerr *ErrorVal
	if !errors.As(err, &lerr) {
		return InvalidCondition, false
	}
	return lerr.Condition, true
}

// IsCondition returns true if err wraps an ErrorVal with condition c.
func IsCondition(err error, c Condition) bool {
	cond, ok := ConditionOf(err)
	return ok && cond == c
}
