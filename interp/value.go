// Package interp is the tree-walking evaluator: it runs a driver's compiled
// declarations in order and, if one is bound to `main`, invokes it. Grounded
// on microml/interpreter.py's Interpreter (symtab of values, eval dispatch
// per node kind, closures capturing their defining environment).
package interp

import "github.com/nilsra/mlc/ast"

// Value is anything the interpreter can hold: IntValue, BoolValue, *Closure,
// or *Builtin.
type Value interface {
	valueNode()
}

// IntValue is a runtime integer.
type IntValue int64

func (IntValue) valueNode() {}

// BoolValue is a runtime boolean.
type BoolValue bool

func (BoolValue) valueNode() {}

// Closure is a lambda paired with the environment it closed over at
// definition time (spec.md §9 "Closures in the interpreter": a copy of the
// defining environment, not a live reference to it).
type Closure struct {
	Params []string
	Body   ast.Node
	Env    Environment
}

func (*Closure) valueNode() {}

// Builtin is a host function, currently only `print`.
type Builtin struct {
	Name  string
	Arity int
	Fn    func(args []Value) (Value, error)
}

func (*Builtin) valueNode() {}

// Arity returns how many arguments a callable Value expects.
func Arity(v Value) (int, bool) {
	switch fn := v.(type) {
	case *Closure:
		return len(fn.Params), true
	case *Builtin:
		return fn.Arity, true
	default:
		return 0, false
	}
}
