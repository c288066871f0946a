package lisp

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/siutin/scheme-go/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnv(t *testing.T, config ...Config) (*LEnv, *bytes.Buffer) {
	t.Helper()
	var stdout bytes.Buffer
	env := NewEnv(nil)
	config = append([]Config{WithStdout(&stdout)}, config...)
	require.NoError(t, InitializeUserEnv(env, config...))
	return env, &stdout
}

func call(name string, args ...ast.Node) ast.Node {
	return ast.Children(append([]ast.Node{ast.Symbol(name)}, args...)...)
}

func TestRoot(t *testing.T) {
	env := NewEnv(nil)
	assert.Nil(t, env.Parent)
	assert.Equal(t, env, env.Root())
	env.Put("a", Int(1))
	_, ok := env.Get("b")
	assert.False(t, ok)
	v, ok := env.Get("a")
	if assert.True(t, ok) {
		assert.Equal(t, int64(1), v.Int)
	}
	env.Put("a", Int(2))
	v, _ = env.Get("a")
	assert.Equal(t, int64(2), v.Int)
	assert.Panics(t, func() { env.Put("c", nil) })
}

func TestChild(t *testing.T) {
	root := NewEnv(nil)
	root.Put("a", Int(1))
	root.Put("b", Int(2))
	env := NewEnv(root)
	assert.NotEqual(t, root.ID, env.ID)
	assert.Equal(t, root, env.Root())
	assert.Equal(t, root.Runtime, env.Runtime)
	assert.Len(t, env.Scope, 0)

	env.Put("b", Int(3))
	v, ok := env.Get("a")
	if assert.True(t, ok) {
		assert.Equal(t, int64(1), v.Int)
	}
	v, ok = env.Get("b")
	if assert.True(t, ok) {
		assert.Equal(t, int64(3), v.Int)
	}
	v, ok = root.Get("b")
	if assert.True(t, ok) {
		assert.Equal(t, int64(2), v.Int)
	}

	grandchild := NewEnv(env)
	v, ok = grandchild.Get("b")
	if assert.True(t, ok) {
		assert.Equal(t, int64(3), v.Int)
	}
	_, ok = grandchild.Get("c")
	assert.False(t, ok)
}

func TestDefineInChild(t *testing.T) {
	root, _ := newTestEnv(t)
	env := NewEnv(root)
	v, err := env.Eval(call("define", ast.Symbol("x"), ast.Integer(5)))
	require.NoError(t, err)
	assert.Nil(t, v)
	_, ok := env.Scope["x"]
	assert.True(t, ok)
	_, ok = root.Get("x")
	assert.False(t, ok)

	// builtins resolve through the parent chain
	v, err = env.Eval(call("+", ast.Symbol("x"), ast.Integer(1)))
	require.NoError(t, err)
	assert.Equal(t, "6", v.String())
}

func TestAddBuiltins(t *testing.T) {
	env := NewEnv(nil)
	env.AddBuiltins()
	for _, name := range []string{"begin", "print", "list", "car", "cdr", "+", "-", "*", "/"} {
		v, ok := env.Get(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, LFun, v.Type, name)
			assert.Equal(t, name, v.Builtin.Name())
		}
	}
	assert.Panics(t, func() { env.AddBuiltins() })

	extra := NewBuiltin("second", builtinCAR)
	env.AddBuiltins(extra)
	v, ok := env.Get("second")
	if assert.True(t, ok) {
		assert.Equal(t, "<builtin-function ``second''>", v.String())
	}
}

func TestInitializeUserEnv(t *testing.T) {
	env, _ := newTestEnv(t)
	v, ok := env.Get(PiSymbol)
	if assert.True(t, ok) {
		assert.Equal(t, LFloat, v.Type)
		assert.Equal(t, "3.141592653589793", v.String())
	}
	assert.Equal(t, AbortOnArgError, env.Runtime.ArgumentPolicy)

	env = NewEnv(nil)
	err := InitializeUserEnv(env, WithArgumentPolicy(ArgumentPolicy(9)))
	assert.Error(t, err)
	_, ok = env.Get(PiSymbol)
	assert.False(t, ok)

	env = NewEnv(nil)
	logger := env.Runtime.Logger
	err = InitializeUserEnv(env, WithLogger(nil))
	assert.True(t, IsCondition(err, InvalidCondition))
	assert.Same(t, logger, env.Runtime.Logger)
}

func TestEvalCircleArea(t *testing.T) {
	env, _ := newTestEnv(t)
	v, err := env.Eval(call("define", ast.Symbol("r"), ast.Integer(10)))
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = env.Eval(call("*", ast.Symbol("pi"), call("*", ast.Symbol("r"), ast.Symbol("r"))))
	require.NoError(t, err)
	require.Equal(t, LFloat, v.Type)
	assert.InDelta(t, 314.159265358979, v.Float, 1e-9)
}

func TestEvalAtoms(t *testing.T) {
	env, _ := newTestEnv(t)
	v, err := env.Eval(ast.Integer(7))
	require.NoError(t, err)
	assert.True(t, v.Equal(Int(7)))

	v, err = env.Eval(ast.Float(0.25))
	require.NoError(t, err)
	assert.True(t, v.Equal(Float(0.25)))

	_, err = env.Eval(ast.Symbol("nope"))
	assert.True(t, IsCondition(err, NameError))

	_, err = env.Eval(ast.Node{})
	assert.True(t, IsCondition(err, SyntaxError))

	_, err = env.EvalSExpr(ast.Integer(1))
	assert.True(t, IsCondition(err, SyntaxError))
}

func TestEvalDefineSymbol(t *testing.T) {
	env, _ := newTestEnv(t)
	_, err := env.Eval(call("define", ast.Symbol("s"), ast.Symbol("undefined-thing")))
	require.NoError(t, err)
	v, err := env.Eval(ast.Symbol("s"))
	require.NoError(t, err)
	assert.True(t, v.Equal(Symbol("undefined-thing")))

	_, err = env.Eval(call("define", ast.Symbol("s"), call("list")))
	assert.True(t, IsCondition(err, SyntaxError))
	assert.Contains(t, err.Error(), "wrong syntax for define expression")
}

func TestCall(t *testing.T) {
	env, _ := newTestEnv(t)
	plus, _ := env.Get("+")
	v, err := env.Call(plus, []*LVal{Int(1), Float(0.5)})
	require.NoError(t, err)
	assert.True(t, v.Equal(Float(1.5)))

	_, err = env.Call(Int(1), nil)
	assert.True(t, IsCondition(err, NameError))
}

func TestLoadWithoutReader(t *testing.T) {
	env, _ := newTestEnv(t)
	_, err := env.LoadString("test", "(+ 1 2)")
	assert.Error(t, err)
}

func TestDebugLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	env, _ := newTestEnv(t, WithLogger(logger), WithArgumentPolicy(DropFailedArgs))
	_, err := env.Eval(call("car", call("list", ast.Integer(1), ast.Symbol("missing"))))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "msg=call fun=car")
	assert.Contains(t, logs.String(), "msg=\"argument dropped\" expr=missing")
}
