package lisp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	err := Errorf(NameError, "symbol is not defined: %s", "x")
	assert.Equal(t, "name-error: symbol is not defined: x", err.Error())
	assert.True(t, IsCondition(err, NameError))
	assert.False(t, IsCondition(err, TypeError))

	err = berrf("car", TypeError, "list is empty")
	assert.Equal(t, "car: type-error: list is empty", err.Error())

	wrapped := fmt.Errorf("line 1: %w", err)
	c, ok := ConditionOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, TypeError, c)

	_, ok = ConditionOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsCondition(nil, SyntaxError))
}

func TestConditionString(t *testing.T) {
	assert.Equal(t, "syntax-error", SyntaxError.String())
	assert.Equal(t, "arity-error", ArityError.String())
	assert.Equal(t, "error", Condition(42).String())
}
