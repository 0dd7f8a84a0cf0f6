package types

import "testing"

func TestEqualsGroundTypes(t *testing.T) {
	if !Equals(Int{}, Int{}) {
		t.Fatalf("Int should equal Int")
	}
	if Equals(Int{}, Bool{}) {
		t.Fatalf("Int should not equal Bool")
	}
}

func TestEqualsTypeVar(t *testing.T) {
	a := &TypeVar{Name: "t0"}
	b := &TypeVar{Name: "t0"}
	c := &TypeVar{Name: "t1"}
	if !Equals(a, b) {
		t.Fatalf("type vars with the same name should be equal")
	}
	if Equals(a, c) {
		t.Fatalf("type vars with different names should not be equal")
	}
}

func TestEqualsFuncArity(t *testing.T) {
	f1 := &Func{ArgTypes: []Type{Int{}}, RetType: Int{}}
	f2 := &Func{ArgTypes: []Type{Int{}, Int{}}, RetType: Int{}}
	if Equals(f1, f2) {
		t.Fatalf("funcs with different arity should not be equal")
	}
}

func TestFuncStringZeroArgs(t *testing.T) {
	f := &Func{RetType: Int{}}
	if got, want := f.String(), "(-> Int)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFuncStringOneArg(t *testing.T) {
	f := &Func{ArgTypes: []Type{&TypeVar{Name: "a"}}, RetType: &TypeVar{Name: "a"}}
	if got, want := f.String(), "(a -> a)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFuncStringTwoArgs(t *testing.T) {
	f := &Func{
		ArgTypes: []Type{&TypeVar{Name: "a"}, &TypeVar{Name: "b"}},
		RetType:  &TypeVar{Name: "a"},
	}
	if got, want := f.String(), "(a -> b -> a)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
