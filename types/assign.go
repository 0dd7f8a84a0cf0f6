package types

import (
	"github.com/nilsra/mlc/ast"
	"github.com/nilsra/mlc/mlerr"
)

// Assign walks node, annotating every child with a type term (spec.md §4.4).
// symtab is a snapshot of the surrounding symbol table; it is never mutated,
// matching microml/typing.py's assign_typenames({**symtab, **local_symtab})
// pattern of building a fresh merged map rather than writing through outer
// scopes. Grounded structurally on xingleixu-TG-Script/types/resolver.go's
// scope-threading style (an explicit symbol-table parameter, not a field),
// simplified to spec.md's one level of lambda-parameter shadowing.
func Assign(node ast.Node, symtab map[string]Type, alloc *Allocator) error {
	switch n := node.(type) {
	case *ast.IntLit:
		n.SetType(toAstType(Int{}))
		return nil
	case *ast.BoolLit:
		n.SetType(toAstType(Bool{}))
		return nil
	case *ast.Ident:
		t, ok := symtab[n.Name]
		if !ok {
			return mlerr.New(mlerr.Types, "unbound name %q", n.Name)
		}
		n.SetType(toAstType(t))
		return nil
	case *ast.Lambda:
		n.SetType(toAstType(alloc.Fresh()))
		local := make(map[string]Type, len(symtab)+len(n.Params))
		for k, v := range symtab {
			local[k] = v
		}
		paramTypes := make([]Type, len(n.Params))
		for i, p := range n.Params {
			pt := alloc.Fresh()
			paramTypes[i] = pt
			local[p] = pt
		}
		astParamTypes := make([]ast.Type, len(paramTypes))
		for i, pt := range paramTypes {
			astParamTypes[i] = pt
		}
		n.ParamTypes = astParamTypes
		return Assign(n.Body, local, alloc)
	case *ast.BinOp:
		n.SetType(toAstType(alloc.Fresh()))
		if err := Assign(n.Left, symtab, alloc); err != nil {
			return err
		}
		return Assign(n.Right, symtab, alloc)
	case *ast.If:
		n.SetType(toAstType(alloc.Fresh()))
		if err := Assign(n.Cond, symtab, alloc); err != nil {
			return err
		}
		if err := Assign(n.Then, symtab, alloc); err != nil {
			return err
		}
		return Assign(n.Else, symtab, alloc)
	case *ast.App:
		n.SetType(toAstType(alloc.Fresh()))
		if err := Assign(n.Callee, symtab, alloc); err != nil {
			return err
		}
		for _, arg := range n.Args {
			if err := Assign(arg, symtab, alloc); err != nil {
				return err
			}
		}
		return nil
	default:
		return mlerr.New(mlerr.Types, "unknown node %T", node)
	}
}

// toAstType adapts a types.Type to the ast.Type interface the AST nodes
// store, avoiding an import cycle between ast and types (both merely need
// String()).
func toAstType(t Type) ast.Type { return t }

// FromAstType recovers the types.Type behind an ast.Type annotation. Every
// annotation installed by this package is in fact a types.Type, so the
// assertion here can never fail on a successfully name-assigned tree.
func FromAstType(t ast.Type) Type {
	return t.(Type)
}
