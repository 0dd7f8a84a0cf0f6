// Package types implements the Hindley-Milner type terms (spec.md §4.3),
// the name assigner (§4.4), the equation generator (§4.5), and the unifier
// (§4.6). Grounded on microml/typing.py's Type/Int/Bool/Func/TypeVar classes;
// the closed-variant-as-interface Go idiom is borrowed from
// xingleixu-TG-Script/types/types.go's Type interface plus concrete structs.
package types

import "strings"

// Type is the closed variant: Int, Bool, *TypeVar, or *Func.
type Type interface {
	String() string
	typeNode()
}

// Int is the integer ground type.
type Int struct{}

func (Int) String() string { return "Int" }
func (Int) typeNode()      {}

// Bool is the boolean ground type.
type Bool struct{}

func (Bool) String() string { return "Bool" }
func (Bool) typeNode()      {}

// TypeVar is a placeholder type identified by its generated name ("t0",
// "t1", ... before pretty-renaming; "a", "b", ... after).
type TypeVar struct {
	Name string
}

func (v *TypeVar) String() string { return v.Name }
func (v *TypeVar) typeNode()      {}

// Func is a function type: an ordered argument list and a return type.
type Func struct {
	ArgTypes []Type
	RetType  Type
}

func (f *Func) typeNode() {}

// String renders a Func the way microml/typing.py's Func.__str__ does:
// "(-> R)" for zero args, "(A -> R)" for one arg, "(A -> B -> ... -> R)" for
// more, since spec.md §8's end-to-end scenarios depend on this exact form.
func (f *Func) String() string {
	if len(f.ArgTypes) == 0 {
		return "(-> " + f.RetType.String() + ")"
	}
	if len(f.ArgTypes) == 1 {
		return "(" + f.ArgTypes[0].String() + " -> " + f.RetType.String() + ")"
	}
	parts := make([]string, len(f.ArgTypes))
	for i, a := range f.ArgTypes {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, " -> ") + " -> " + f.RetType.String() + ")"
}

// Equals is structural equality: Int == Int, Bool == Bool, TypeVar ==
// TypeVar with the same name, Func == Func with equal arity, argument types,
// and return type (spec.md §3).
func Equals(x, y Type) bool {
	switch xv := x.(type) {
	case Int:
		_, ok := y.(Int)
		return ok
	case Bool:
		_, ok := y.(Bool)
		return ok
	case *TypeVar:
		yv, ok := y.(*TypeVar)
		return ok && xv.Name == yv.Name
	case *Func:
		yv, ok := y.(*Func)
		if !ok || len(xv.ArgTypes) != len(yv.ArgTypes) {
			return false
		}
		if !Equals(xv.RetType, yv.RetType) {
			return false
		}
		for i := range xv.ArgTypes {
			if !Equals(xv.ArgTypes[i], yv.ArgTypes[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
