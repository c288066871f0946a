package lisp

import (
	"io"
	"math"
	"strings"
	"sync/atomic"

	"github.com/siutin/scheme-go/ast"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// LEnv is a lisp environment.
type LEnv struct {
	ID      uint
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv returns initializes and returns a new LEnv.  A child environment
// shares the Runtime of its parent.
func NewEnv(parent *LEnv) *LEnv {
	var runtime *Runtime
	if parent != nil {
		runtime = parent.Runtime
	} else {
		runtime = StandardRuntime()
	}
	return &LEnv{
		ID:      getEnvID(),
		Scope:   make(map[string]*LVal),
		Parent:  parent,
		Runtime: runtime,
	}
}

// InitializeUserEnv applies config to env and binds the constant pi and the
// DefaultBuiltins in env.
func InitializeUserEnv(env *LEnv, config ...Config) error {
	for _, fn := range config {
		err := fn(env)
		if err != nil {
			return err
		}
	}
	env.Put(PiSymbol, Float(math.Pi))
	env.AddBuiltins()
	return nil
}

// Get returns the value bound to name in the nearest enclosing scope.
func (env *LEnv) Get(name string) (*LVal, bool) {
	v, ok := env.Scope[name]
	if ok {
		return v, true
	}
	if env.Parent != nil {
		return env.Parent.Get(name)
	}
	return nil, false
}

// Put binds name to v in env.  Bindings in parent scopes are never modified.
func (env *LEnv) Put(name string, v *LVal) {
	if v == nil {
		panic("nil value")
	}
	env.Scope[name] = v
}

// Root returns the environment at the end of env's parent chain.
func (env *LEnv) Root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// AddBuiltins binds the given funs to their names in env.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		if _, exists := env.Get(f.Name()); exists {
			panic("symbol already defined: " + f.Name())
		}
		env.Put(f.Name(), Fun(f))
	}
}

// Read parses the forms in r using the runtime's Reader.
func (env *LEnv) Read(name string, r io.Reader) ([]ast.Node, error) {
	if env.Runtime.Reader == nil {
		return nil, Errorf(InvalidCondition, "no reader for environment")
	}
	forms, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return nil, err
	}
	env.Runtime.Logger.Debug("read", "source", name, "forms", len(forms))
	return forms, nil
}

// Load reads forms from r and evaluates them in order, stopping at the first
// error.  Load returns the result of the last form.
func (env *LEnv) Load(name string, r io.Reader) (*LVal, error) {
	forms, err := env.Read(name, r)
	if err != nil {
		return nil, err
	}
	var v *LVal
	for _, form := range forms {
		v, err = env.Eval(form)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// LoadString is like Load but reads forms from source.
func (env *LEnv) LoadString(name, source string) (*LVal, error) {
	return env.Load(name, strings.NewReader(source))
}

// Eval evaluates node in the context (scope) of env.  Eval returns a nil
// *LVal and a nil error when node produces no value.
func (env *LEnv) Eval(node ast.Node) (*LVal, error) {
	env.Runtime.Logger.Debug("eval", "env", env.ID, "expr", node)
	switch node.Type() {
	case ast.IntegerNode:
		return Int(node.IntValue()), nil
	case ast.FloatNode:
		return Float(node.FloatValue()), nil
	case ast.SymbolNode:
		v, ok := env.Get(node.Name())
		if !ok {
			return nil, Errorf(NameError, "symbol is not defined: %s", node.Name())
		}
		return v, nil
	case ast.ChildrenNode:
		return env.EvalSExpr(node)
	default:
		return nil, Errorf(SyntaxError, "invalid expression: %v", node.Type())
	}
}

// EvalSExpr evaluates the list expression s.  The head of s must be the
// symbol ``define'' or a symbol bound to a function.
func (env *LEnv) EvalSExpr(s ast.Node) (*LVal, error) {
	if s.Type() != ast.ChildrenNode {
		return nil, Errorf(SyntaxError, "not an s-expression: %v", s)
	}
	if s.Len() == 0 {
		return nil, Errorf(SyntaxError, "empty expression")
	}
	head := s.Child(0)
	if head.Type() != ast.SymbolNode {
		return nil, Errorf(SyntaxError, "first element of expression is not a symbol: %v", head)
	}
	if head.IsSymbol(DefineSymbol) {
		return env.evalDefine(s)
	}

	f, ok := env.Get(head.Name())
	if !ok {
		return nil, Errorf(NameError, "symbol is not defined: %s", head.Name())
	}
	if f.Type != LFun {
		return nil, Errorf(NameError, "symbol is not bound to a function: %s (%v)", head.Name(), f.Type)
	}

	args, err := env.evalArgs(s.Nodes()[1:])
	if err != nil {
		return nil, err
	}
	return env.Call(f, args)
}

// evalArgs evaluates nodes from left to right.  Expressions producing no
// value are omitted from the result.
func (env *LEnv) evalArgs(nodes []ast.Node) ([]*LVal, error) {
	args := make([]*LVal, 0, len(nodes))
	for _, node := range nodes {
		v, err := env.Eval(node)
		if err != nil {
			if env.Runtime.ArgumentPolicy != DropFailedArgs {
				return nil, err
			}
			env.Runtime.Logger.Debug("argument dropped", "expr", node, "error", err)
			continue
		}
		if v == nil {
			continue
		}
		args = append(args, v)
	}
	return args, nil
}

func (env *LEnv) evalDefine(s ast.Node) (*LVal, error) {
	if s.Len() != 3 {
		return nil, Errorf(SyntaxError, "wrong syntax for define expression: expected 2 arguments (got %d)", s.Len()-1)
	}
	name := s.Child(1)
	if name.Type() != ast.SymbolNode {
		return nil, Errorf(SyntaxError, "wrong syntax for define expression: name is not a symbol: %v", name)
	}
	var v *LVal
	switch form := s.Child(2); form.Type() {
	case ast.IntegerNode:
		v = Int(form.IntValue())
	case ast.FloatNode:
		v = Float(form.FloatValue())
	case ast.SymbolNode:
		v = Symbol(form.Name())
	default:
		return nil, Errorf(SyntaxError, "wrong syntax for define expression: unsupported value: %v", form)
	}
	env.Put(name.Name(), v)
	return nil, nil
}

// Call invokes LFun fun with the list args.
func (env *LEnv) Call(fun *LVal, args []*LVal) (*LVal, error) {
	if fun.Type != LFun {
		return nil, Errorf(NameError, "value is not a function: %v", fun)
	}
	env.Runtime.Logger.Debug("call", "fun", fun.Builtin.Name(), "args", List(args...))
	return fun.Builtin.Eval(env, args)
}
