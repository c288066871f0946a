package lisp

// DefineSymbol is the head of the only special form understood by the
// evaluator.
const DefineSymbol = "define"

// PiSymbol is bound to math.Pi in a user environment.
const PiSymbol = "pi"
