package lisp

import (
	"fmt"
)

// LBuiltin is a function that performs executes a lisp function.  A builtin
// returns a nil *LVal when it produces no value.
type LBuiltin func(env *LEnv, args []*LVal) (*LVal, error)

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args []*LVal) (*LVal, error)
}

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(env *LEnv, args []*LVal) (*LVal, error) {
	return fun.fun(env, args)
}

// NewBuiltin returns an LBuiltinDef that calls fn.
func NewBuiltin(name string, fn LBuiltin) LBuiltinDef {
	return &langBuiltin{name, fn}
}

var langBuiltins = []*langBuiltin{
	{"begin", builtinBegin},
	{"print", builtinPrint},
	{"list", builtinList},
	{"car", builtinCAR},
	{"cdr", builtinCDR},
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	return ops
}

// builtinBegin returns its final argument.  Arguments have already been
// evaluated in order by the caller.
func builtinBegin(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) == 0 {
		return nil, nil
	}
	return args[len(args)-1], nil
}

func builtinPrint(env *LEnv, args []*LVal) (*LVal, error) {
	if len(args) != 1 {
		return nil, berrf("print", ArityError, "one argument expected (got %d)", len(args))
	}
	_, err := fmt.Fprintln(env.Runtime.Stdout, args[0].String())
	if err != nil {
		return nil, berrf("print", InvalidCondition, "%v", err)
	}
	return nil, nil
}

func builtinList(env *LEnv, args []*LVal) (*LVal, error) {
	cells := make([]*LVal, len(args))
	copy(cells, args)
	return List(cells...), nil
}

func builtinCAR(env *LEnv, args []*LVal) (*LVal, error) {
	lis, err := listArg("car", args)
	if err != nil {
		return nil, err
	}
	return lis.Cells[0], nil
}

func builtinCDR(env *LEnv, args []*LVal) (*LVal, error) {
	lis, err := listArg("cdr", args)
	if err != nil {
		return nil, err
	}
	rest := make([]*LVal, lis.Len()-1)
	copy(rest, lis.Cells[1:])
	return List(rest...), nil
}

// listArg returns the only argument in args, which must be a non-empty list.
func listArg(fun string, args []*LVal) (*LVal, error) {
	if len(args) != 1 {
		return nil, berrf(fun, ArityError, "one argument expected (got %d)", len(args))
	}
	if args[0].Type != LList {
		return nil, berrf(fun, TypeError, "argument is not a list: %v", args[0].Type)
	}
	if args[0].Len() == 0 {
		return nil, berrf(fun, TypeError, "argument is an empty list")
	}
	return args[0], nil
}

func builtinAdd(env *LEnv, args []*LVal) (*LVal, error) {
	if err := checkNumeric("+", args); err != nil {
		return nil, err
	}
	if allInt(args) {
		var sum int64
		for _, c := range args {
			sum += c.Int
		}
		return Int(sum), nil
	}
	sum := 0.0
	for _, c := range args {
		sum += c.FloatValue()
	}
	return Float(sum), nil
}

// builtinSub negates the sum of its arguments.  It does not subtract
// arguments from left to right, (- 1 2 3) is -6.
func builtinSub(env *LEnv, args []*LVal) (*LVal, error) {
	if err := checkNumeric("-", args); err != nil {
		return nil, err
	}
	if allInt(args) {
		var sum int64
		for _, c := range args {
			sum += c.Int
		}
		return Int(-sum), nil
	}
	sum := 0.0
	for _, c := range args {
		sum += c.FloatValue()
	}
	return Float(-sum), nil
}

func builtinMul(env *LEnv, args []*LVal) (*LVal, error) {
	if err := checkNumeric("*", args); err != nil {
		return nil, err
	}
	if allInt(args) {
		var prod int64 = 1
		for _, c := range args {
			prod *= c.Int
		}
		return Int(prod), nil
	}
	prod := 1.0
	for _, c := range args {
		prod *= c.FloatValue()
	}
	return Float(prod), nil
}

// builtinDiv always produces a float.  The accumulator starts at 0.0, which
// means unset, so a zero accumulator takes the value of the next argument
// instead of being divided by it.
func builtinDiv(env *LEnv, args []*LVal) (*LVal, error) {
	if err := checkNumeric("/", args); err != nil {
		return nil, err
	}
	div := 0.0
	for _, c := range args {
		if div == 0.0 {
			div = c.FloatValue()
		} else {
			div /= c.FloatValue()
		}
	}
	return Float(div), nil
}

func checkNumeric(fun string, args []*LVal) error {
	for _, c := range args {
		if !c.IsNumeric() {
			return berrf(fun, TypeError, "argument is not a number: %v", c.Type)
		}
	}
	return nil
}

func allInt(vs []*LVal) bool {
	for _, v := range vs {
		if v.Type != LInt {
			return false
		}
	}
	return true
}
