package interp

import (
	"fmt"
	"io"

	"github.com/nilsra/mlc/ast"
	"github.com/nilsra/mlc/driver"
	"github.com/nilsra/mlc/mlerr"
)

// printBuiltin returns the `print` builtin bound to w: it prints its single
// Int argument followed by a newline and evaluates to 0, matching
// microml/interpreter.py's `_print` (print : Func([Int], Int), spec.md §6).
func printBuiltin(w io.Writer) *Builtin {
	return &Builtin{
		Name:  "print",
		Arity: 1,
		Fn: func(args []Value) (Value, error) {
			n, ok := args[0].(IntValue)
			if !ok {
				return nil, mlerr.New(mlerr.Interpretation, "print expects an Int argument, got %T", args[0])
			}
			fmt.Fprintln(w, int64(n))
			return IntValue(0), nil
		},
	}
}

// Run interprets every declaration in d, in compiled order, binding each
// result under its name before moving to the next, then invokes `main` (with
// no arguments) if one was compiled. Output from `print` goes to out.
func Run(d *driver.Driver, out io.Writer) error {
	env := Environment{"print": printBuiltin(out)}
	for _, entry := range d.Code() {
		val, err := eval(entry.Decl.Rhs, env)
		if err != nil {
			return err
		}
		env = env.Extend([]string{entry.Decl.Name}, []Value{val})
	}

	mainEntry, ok := d.MainEntry()
	if !ok {
		return nil
	}
	mainVal, ok := env[mainEntry.Name]
	if !ok {
		return mlerr.New(mlerr.Interpretation, "main was compiled but is unbound at run time")
	}
	_, err := call(mainVal, nil)
	return err
}

func eval(node ast.Node, env Environment) (Value, error) {
	switch n := node.(type) {
	case *ast.IntLit:
		return IntValue(n.Value), nil

	case *ast.BoolLit:
		return BoolValue(n.Value), nil

	case *ast.Ident:
		v, ok := env[n.Name]
		if !ok {
			return nil, mlerr.New(mlerr.Interpretation, "unbound name %q at run time", n.Name)
		}
		return v, nil

	case *ast.Lambda:
		return &Closure{Params: n.Params, Body: n.Body, Env: env.Snapshot()}, nil

	case *ast.BinOp:
		return evalBinOp(n, env)

	case *ast.If:
		cond, err := eval(n.Cond, env)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(BoolValue)
		if !ok {
			return nil, mlerr.New(mlerr.Interpretation, "if condition did not evaluate to a Bool")
		}
		if bool(b) {
			return eval(n.Then, env)
		}
		return eval(n.Else, env)

	case *ast.App:
		fn, ok := env[n.Callee.Name]
		if !ok {
			return nil, mlerr.New(mlerr.Interpretation, "unbound name %q at run time", n.Callee.Name)
		}
		args := make([]Value, len(n.Args))
		for i, a := range n.Args {
			v, err := eval(a, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return call(fn, args)

	default:
		return nil, mlerr.New(mlerr.Interpretation, "cannot evaluate node of type %T", node)
	}
}

func evalBinOp(n *ast.BinOp, env Environment) (Value, error) {
	lv, err := eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	rv, err := eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	l, lok := lv.(IntValue)
	r, rok := rv.(IntValue)
	if !lok || !rok {
		return nil, mlerr.New(mlerr.Interpretation, "operator %q requires Int operands", n.Operator)
	}
	if ast.ComparisonOps[n.Operator] {
		switch n.Operator {
		case "==":
			return BoolValue(l == r), nil
		case "!=":
			return BoolValue(l != r), nil
		case "<":
			return BoolValue(l < r), nil
		case "<=":
			return BoolValue(l <= r), nil
		case ">":
			return BoolValue(l > r), nil
		case ">=":
			return BoolValue(l >= r), nil
		}
	}
	switch n.Operator {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return nil, mlerr.New(mlerr.Interpretation, "division by zero")
		}
		return l / r, nil
	}
	return nil, mlerr.New(mlerr.Interpretation, "unknown operator %q", n.Operator)
}

// call invokes a Closure or Builtin, enforcing arity (spec.md §9
// "Arity mismatch raises an interpretation error, not a panic").
func call(fn Value, args []Value) (Value, error) {
	want, ok := Arity(fn)
	if !ok {
		return nil, mlerr.New(mlerr.Interpretation, "value of type %T is not callable", fn)
	}
	if want != len(args) {
		return nil, mlerr.New(mlerr.Interpretation, "arity mismatch: expected %d argument(s), got %d", want, len(args))
	}
	switch f := fn.(type) {
	case *Builtin:
		return f.Fn(args)
	case *Closure:
		callEnv := f.Env.Extend(f.Params, args)
		return eval(f.Body, callEnv)
	default:
		return nil, mlerr.New(mlerr.Interpretation, "value of type %T is not callable", fn)
	}
}
