package types

import (
	"github.com/nilsra/mlc/ast"
	"github.com/nilsra/mlc/mlerr"
)

// UnifyError is a typing error raised by Solve/unify, tagged with the
// equation's originating node for diagnostics. Go's explicit (Substitution,
// error) return replaces microml/typing.py's None-means-failure convention,
// following the teacher's idiom of distinct typed error values
// (xingleixu-TG-Script/vm/error.go) rather than a (T, bool) pair.
type UnifyError struct {
	Err  *mlerr.Error
	Node ast.Node
}

func (e *UnifyError) Error() string { return e.Err.Error() }

// Unwrap exposes the types-tagged *mlerr.Error so mlerr.Is can see it.
func (e *UnifyError) Unwrap() error { return e.Err }

func unifyErrf(format string, args ...any) *UnifyError {
	return &UnifyError{Err: mlerr.New(mlerr.Types, format, args...)}
}

// Solve runs unify over every equation in order, threading the substitution,
// per spec.md §4.6. It starts from the empty substitution and fails on the
// first equation that cannot be unified.
func Solve(eqs []Equation) (Substitution, error) {
	subst := Substitution{}
	for _, eq := range eqs {
		var err error
		subst, err = unify(eq.Left, eq.Right, subst)
		if err != nil {
			if ue, ok := err.(*UnifyError); ok && ue.Node == nil {
				ue.Node = eq.Node
			}
			return nil, err
		}
	}
	return subst, nil
}

// unify makes x and y structurally equal by extending subst, or fails.
// Grounded directly on microml/typing.py's unify.
func unify(x, y Type, subst Substitution) (Substitution, error) {
	if Equals(Apply(x, subst), Apply(y, subst)) {
		return subst, nil
	}
	if xv, ok := x.(*TypeVar); ok {
		return unifyVariable(xv, y, subst)
	}
	if yv, ok := y.(*TypeVar); ok {
		return unifyVariable(yv, x, subst)
	}
	xf, xok := x.(*Func)
	yf, yok := y.(*Func)
	if xok && yok {
		if len(xf.ArgTypes) != len(yf.ArgTypes) {
			return nil, unifyErrf("cannot unify %s and %s: argument count mismatch", xf, yf)
		}
		var err error
		subst, err = unify(xf.RetType, yf.RetType, subst)
		if err != nil {
			return nil, err
		}
		for i := range xf.ArgTypes {
			subst, err = unify(xf.ArgTypes[i], yf.ArgTypes[i], subst)
			if err != nil {
				return nil, err
			}
		}
		return subst, nil
	}
	return nil, unifyErrf("cannot unify %s and %s", x, y)
}

// unifyVariable binds v, or unifies through an existing binding, or fails
// the occurs-check. Grounded directly on microml/typing.py's unify_variable.
func unifyVariable(v *TypeVar, t Type, subst Substitution) (Substitution, error) {
	if bound, ok := subst[v.Name]; ok {
		return unify(bound, t, subst)
	}
	if tv, ok := t.(*TypeVar); ok {
		if bound, ok := subst[tv.Name]; ok {
			return unify(v, bound, subst)
		}
	}
	if occursCheck(v, t, subst) {
		return nil, unifyErrf("occurs-check failed: %s occurs in %s", v, t)
	}
	return subst.With(v.Name, t), nil
}

// occursCheck reports whether v appears anywhere inside t, chasing existing
// bindings in subst. Grounded directly on microml/typing.py's occurs_check.
func occursCheck(v *TypeVar, t Type, subst Substitution) bool {
	if Equals(v, t) {
		return true
	}
	if tv, ok := t.(*TypeVar); ok {
		if bound, ok := subst[tv.Name]; ok {
			return occursCheck(v, bound, subst)
		}
		return false
	}
	if tf, ok := t.(*Func); ok {
		if occursCheck(v, tf.RetType, subst) {
			return true
		}
		for _, a := range tf.ArgTypes {
			if occursCheck(v, a, subst) {
				return true
			}
		}
	}
	return false
}
