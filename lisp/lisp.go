package lisp

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LInt
	LFloat
	LSymbol
	LFun
	LList
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LInt:     "int",
	LFloat:   "float",
	LSymbol:  "symbol",
	LFun:     "function",
	LList:    "list",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LVal is a lisp value.  A nil *LVal is used by the evaluator and by builtins
// to signal that an expression produced no value.
type LVal struct {
	Type  LValType
	Int   int64
	Float float64
	Str   string
	Cells []*LVal

	// Builtin is the native implementation of an LFun value.
	Builtin LBuiltinDef
}

// Int returns an LVal representing the integer x.
func Int(x int64) *LVal {
	return &LVal{
		Type: LInt,
		Int:  x,
	}
}

// Float returns an LVal representing the floating point number x.
func Float(x float64) *LVal {
	return &LVal{
		Type:  LFloat,
		Float: x,
	}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// List returns an LVal representing a list containing cells.
func List(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LList,
		Cells: cells,
	}
}

// Fun returns an LVal representing the builtin function fn.
func Fun(fn LBuiltinDef) *LVal {
	return &LVal{
		Type:    LFun,
		Str:     fmt.Sprintf("<builtin-function ``%s''>", fn.Name()),
		Builtin: fn,
	}
}

// IsNumeric returns true if v is an LInt or an LFloat.
func (v *LVal) IsNumeric() bool {
	return v.Type == LInt || v.Type == LFloat
}

// Len returns the number of cells in an LList.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// FloatValue returns the numeric value of v as a float64.  Integers are
// converted.
func (v *LVal) FloatValue() float64 {
	switch v.Type {
	case LInt:
		return float64(v.Int)
	case LFloat:
		return v.Float
	default:
		panic(fmt.Sprintf("value is not a number: %v", v.Type))
	}
}

// Equal returns true if v and other have the same type and the same
// contents.  Functions are equal if they wrap the same builtin.
func (v *LVal) Equal(other *LVal) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case LInt:
		return v.Int == other.Int
	case LFloat:
		return v.Float == other.Float
	case LSymbol:
		return v.Str == other.Str
	case LFun:
		return v.Builtin == other.Builtin
	case LList:
		if len(v.Cells) != len(other.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(other.Cells[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String returns the external representation of v.
func (v *LVal) String() string {
	if v == nil {
		return ""
	}
	switch v.Type {
	case LInt:
		return strconv.FormatInt(v.Int, 10)
	case LFloat:
		return formatFloat(v.Float)
	case LSymbol:
		return v.Str
	case LFun:
		return v.Str
	case LList:
		return exprString(v, "'(", ")")
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func formatFloat(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "NaN"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
