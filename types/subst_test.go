package types

import "testing"

func TestApplyChasesTransitively(t *testing.T) {
	t0 := &TypeVar{Name: "t0"}
	t1 := &TypeVar{Name: "t1"}
	s := Substitution{"t0": t1, "t1": Int{}}
	got := Apply(t0, s)
	if _, ok := got.(Int); !ok {
		t.Fatalf("expected Apply to chase through t1 to Int, got %#v", got)
	}
}

func TestApplyRebuildsFunc(t *testing.T) {
	t0 := &TypeVar{Name: "t0"}
	f := &Func{ArgTypes: []Type{t0}, RetType: t0}
	s := Substitution{"t0": Int{}}
	got := Apply(f, s).(*Func)
	if _, ok := got.ArgTypes[0].(Int); !ok {
		t.Fatalf("expected arg to resolve to Int, got %#v", got.ArgTypes[0])
	}
	if _, ok := got.RetType.(Int); !ok {
		t.Fatalf("expected return type to resolve to Int, got %#v", got.RetType)
	}
}

func TestApplyLeavesUnboundVariable(t *testing.T) {
	t0 := &TypeVar{Name: "t0"}
	got := Apply(t0, Substitution{})
	if got != Type(t0) {
		t.Fatalf("expected unbound variable to pass through unchanged")
	}
}

// Scenario 1 from spec.md §8: id = lambda x -> x ⇒ (a -> a).
func TestPrettyRenameIdentity(t *testing.T) {
	t0 := &TypeVar{Name: "t0"}
	fn := &Func{ArgTypes: []Type{t0}, RetType: t0}
	renamed := PrettyRename(fn, Substitution{})
	if got, want := renamed.String(), "(a -> a)"; got != want {
		t.Fatalf("PrettyRename = %q, want %q", got, want)
	}
}

// Scenario 2 from spec.md §8: const = lambda x y -> x ⇒ (a -> b -> a), with
// a, b fresh and independent — the shared variable (the return type) must
// land on "a" even though it is also the first argument.
func TestPrettyRenameSharedReturnVariable(t *testing.T) {
	t0 := &TypeVar{Name: "t0"} // x's type, and the lambda's return type
	t1 := &TypeVar{Name: "t1"} // y's type
	fn := &Func{ArgTypes: []Type{t0, t1}, RetType: t0}
	renamed := PrettyRename(fn, Substitution{})
	if got, want := renamed.String(), "(a -> b -> a)"; got != want {
		t.Fatalf("PrettyRename = %q, want %q", got, want)
	}
}

func TestPrettyRenameAppliesSubstitutionFirst(t *testing.T) {
	t0 := &TypeVar{Name: "t0"}
	s := Substitution{"t0": Int{}}
	renamed := PrettyRename(t0, s)
	if got, want := renamed.String(), "Int"; got != want {
		t.Fatalf("PrettyRename = %q, want %q", got, want)
	}
}
