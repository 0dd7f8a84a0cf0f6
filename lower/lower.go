// Package lower emits a compiled session as C source text. Grounded on
// microml/compiler.py's `to_c`/`PRELUDE` (Int and Bool both lower to C's
// `int`; a declaration becomes either a C function or a global, in the order
// compiled, with `main` emitted last as the entry point).
package lower

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nilsra/mlc/ast"
	"github.com/nilsra/mlc/driver"
	"github.com/nilsra/mlc/mlerr"
)

// Prelude is emitted verbatim at the top of every lowered program. It
// supplies the one builtin, `print`, as a thin wrapper over printf.
const Prelude = `#include <stdio.h>

int print(int x) {
    printf("%d\n", x);
    return 0;
}
`

// Program lowers every declaration in d to C source text, with any
// declaration named "main" emitted last regardless of compiled order (spec.md
// §4.9 "main is emitted last, as the entry point").
func Program(d *driver.Driver) (string, error) {
	var out strings.Builder
	out.WriteString(Prelude)
	out.WriteString("\n")

	entries := orderedEntries(d)
	for _, entry := range entries {
		text, err := Decl(entry)
		if err != nil {
			return "", err
		}
		out.WriteString(text)
		out.WriteString("\n")
	}
	return out.String(), nil
}

func orderedEntries(d *driver.Driver) []driver.Entry {
	code := d.Code()
	ordered := make([]driver.Entry, 0, len(code))
	var main *driver.Entry
	for i, e := range code {
		if e.Name == "main" {
			entry := code[i]
			main = &entry
			continue
		}
		ordered = append(ordered, e)
	}
	if main != nil {
		ordered = append(ordered, *main)
	}
	return ordered
}

// Decl lowers a single compiled declaration: a Lambda becomes a C function,
// `main` becomes the C entry point, and any other value becomes a global.
func Decl(entry driver.Entry) (string, error) {
	if entry.Name == "main" {
		return lowerMain(entry)
	}
	if lam, ok := entry.Decl.Rhs.(*ast.Lambda); ok {
		return lowerFunction(entry.Name, lam)
	}
	expr, err := Expr(entry.Decl.Rhs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("int %s = %s;\n", entry.Name, expr), nil
}

func lowerFunction(name string, lam *ast.Lambda) (string, error) {
	params := make([]string, len(lam.Params))
	for i, p := range lam.Params {
		params[i] = "int " + p
	}
	body, err := Expr(lam.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("int %s(%s) {\n    return %s;\n}\n", name, strings.Join(params, ", "), body), nil
}

func lowerMain(entry driver.Entry) (string, error) {
	lam, ok := entry.Decl.Rhs.(*ast.Lambda)
	if !ok {
		return "", mlerr.New(mlerr.Compiler, "main must be a lambda, got %T", entry.Decl.Rhs)
	}
	body, err := Expr(lam.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("int main(void) {\n    %s;\n    return 0;\n}\n", body), nil
}

// Expr lowers one expression node to a C expression, reproducing the
// original operator spelling for BinOp and rendering If as a C ternary
// (spec.md §4.9).
func Expr(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.IntLit:
		return n.Raw, nil

	case *ast.BoolLit:
		if n.Value {
			return "1", nil
		}
		return "0", nil

	case *ast.Ident:
		return n.Name, nil

	case *ast.BinOp:
		left, err := Expr(n.Left)
		if err != nil {
			return "", err
		}
		right, err := Expr(n.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s %s)", left, n.Operator, right), nil

	case *ast.If:
		cond, err := Expr(n.Cond)
		if err != nil {
			return "", err
		}
		then, err := Expr(n.Then)
		if err != nil {
			return "", err
		}
		els, err := Expr(n.Else)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s ? %s : %s)", cond, then, els), nil

	case *ast.App:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			s, err := Expr(a)
			if err != nil {
				return "", err
			}
			args[i] = s
		}
		return fmt.Sprintf("%s(%s)", n.Callee.Name, strings.Join(args, ", ")), nil

	case *ast.Lambda:
		return "", mlerr.New(mlerr.Compiler, "nested lambda expressions cannot be lowered to C")

	default:
		return "", mlerr.New(mlerr.Compiler, "cannot lower node of type %T", node)
	}
}

// Names returns the names of d's compiled declarations in sorted order, for
// use by diagnostics that list a session's bindings deterministically.
func Names(d *driver.Driver) []string {
	code := d.Code()
	names := make([]string, len(code))
	for i, e := range code {
		names[i] = e.Name
	}
	sort.Strings(names)
	return names
}
