package types

import (
	"testing"

	"github.com/nilsra/mlc/ast"
	"github.com/nilsra/mlc/mlerr"
)

func TestAssignIntLit(t *testing.T) {
	n := ast.NewIntLit(0, "5", 5)
	if err := Assign(n, map[string]Type{}, NewAllocator()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := FromAstType(n.GetType()).(Int); !ok {
		t.Fatalf("expected Int annotation, got %#v", n.GetType())
	}
}

func TestAssignUnboundIdentFails(t *testing.T) {
	n := ast.NewIdent(0, "x")
	err := Assign(n, map[string]Type{}, NewAllocator())
	if err == nil {
		t.Fatalf("expected an unbound-name error")
	}
	if !mlerr.Is(err, mlerr.Types) {
		t.Fatalf("expected a types-tagged error, got %v", err)
	}
}

func TestAssignBoundIdent(t *testing.T) {
	n := ast.NewIdent(0, "x")
	symtab := map[string]Type{"x": Int{}}
	if err := Assign(n, symtab, NewAllocator()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := FromAstType(n.GetType()).(Int); !ok {
		t.Fatalf("expected Int annotation, got %#v", n.GetType())
	}
}

func TestAssignLambdaShadowsOuterScope(t *testing.T) {
	// lambda x -> x, with an outer "x" already bound to Bool; the inner
	// parameter must shadow it with a fresh type variable.
	body := ast.NewIdent(1, "x")
	lam := ast.NewLambda(0, []string{"x"}, body)
	outer := map[string]Type{"x": Bool{}}

	if err := Assign(lam, outer, NewAllocator()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lam.ParamTypes) != 1 {
		t.Fatalf("expected 1 param type, got %d", len(lam.ParamTypes))
	}
	paramVar, ok := FromAstType(lam.ParamTypes[0]).(*TypeVar)
	if !ok {
		t.Fatalf("expected param type to be a fresh TypeVar, got %#v", lam.ParamTypes[0])
	}
	bodyVar, ok := FromAstType(body.GetType()).(*TypeVar)
	if !ok {
		t.Fatalf("expected body annotation to be a TypeVar, got %#v", body.GetType())
	}
	if paramVar.Name != bodyVar.Name {
		t.Fatalf("expected shadowed x to resolve to the lambda's fresh param var, got %s vs %s",
			paramVar.Name, bodyVar.Name)
	}
	// The outer binding must not have been mutated.
	if _, stillBool := outer["x"].(Bool); !stillBool {
		t.Fatalf("outer symtab must not be mutated by lambda parameter shadowing")
	}
}

func TestAssignLambdaFreshVariablePerParam(t *testing.T) {
	lam := ast.NewLambda(0, []string{"x", "y"}, ast.NewIdent(1, "x"))
	if err := Assign(lam, map[string]Type{}, NewAllocator()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lam.ParamTypes) != 2 {
		t.Fatalf("expected 2 param types, got %d", len(lam.ParamTypes))
	}
	v0 := FromAstType(lam.ParamTypes[0]).(*TypeVar)
	v1 := FromAstType(lam.ParamTypes[1]).(*TypeVar)
	if v0.Name == v1.Name {
		t.Fatalf("expected distinct fresh variables per parameter, got %s twice", v0.Name)
	}
}
