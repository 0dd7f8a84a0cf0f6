package driver

import (
	"strings"
	"testing"

	"github.com/nilsra/mlc/mlerr"
)

// Scenario 1 from spec.md §8: id = lambda x -> x ⇒ (a -> a).
func TestCompileIdentity(t *testing.T) {
	d := NewDriver()
	if _, err := d.CompileOne("id = lambda x -> x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := d.Symtab()["id"].String()
	if got != "(a -> a)" {
		t.Fatalf("expected type (a -> a), got %s", got)
	}
}

// Scenario 2: const = lambda x y -> x ⇒ (a -> b -> a).
func TestCompileConst(t *testing.T) {
	d := NewDriver()
	if _, err := d.CompileOne("const = lambda x y -> x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := d.Symtab()["const"].String()
	if got != "(a -> b -> a)" {
		t.Fatalf("expected type (a -> b -> a), got %s", got)
	}
}

// Scenario 3: recursive use of a name not yet in scope is rejected.
func TestCompileRecursionRejected(t *testing.T) {
	d := NewDriver()
	_, err := d.CompileOne("fact = lambda n -> if n == 0 then 1 else n * fact(n - 1)")
	if err == nil {
		t.Fatalf("expected an unbound-name error")
	}
	if !mlerr.Is(err, mlerr.Types) {
		t.Fatalf("expected a types error, got %v", err)
	}
	if !strings.Contains(err.Error(), "fact") {
		t.Fatalf("expected error to name \"fact\", got %v", err)
	}
}

// Scenario 4: add then main calling print(add(2, 3)); checks the driver
// wires declarations across a session and resolves main.
func TestCompileAddThenMain(t *testing.T) {
	d := NewDriver()
	if _, err := d.CompileOne("add = lambda x y -> x + y"); err != nil {
		t.Fatalf("unexpected error compiling add: %v", err)
	}
	if _, err := d.CompileOne("main = lambda -> print(add(2, 3))"); err != nil {
		t.Fatalf("unexpected error compiling main: %v", err)
	}
	entry, ok := d.MainEntry()
	if !ok {
		t.Fatalf("expected a main entry to be recorded")
	}
	if entry.Name != "main" {
		t.Fatalf("expected main entry name %q, got %q", "main", entry.Name)
	}
}

// Scenario 5: bad = 1 + true is a types error from the BinOp.
func TestCompileBinOpTypeMismatch(t *testing.T) {
	d := NewDriver()
	_, err := d.CompileOne("bad = 1 + true")
	if err == nil {
		t.Fatalf("expected a types error")
	}
	if !mlerr.Is(err, mlerr.Types) {
		t.Fatalf("expected a types-tagged error, got %v", err)
	}
}

// Scenario 6: redefining f emits a warning; the symtab ends with exactly
// the latest type, and the code list has exactly one entry named f.
func TestCompileRedefinitionWarningAndAtomicity(t *testing.T) {
	d := NewDriver()
	if _, err := d.CompileOne("f = lambda x -> x + 1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	warning, err := d.CompileOne("f = lambda x -> x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning == "" {
		t.Fatalf("expected a redefinition warning")
	}
	if got := d.Symtab()["f"].String(); got != "(a -> a)" {
		t.Fatalf("expected f's type to be (a -> a), got %s", got)
	}
	count := 0
	for _, e := range d.Code() {
		if e.Name == "f" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one code-list entry named f, got %d", count)
	}
}

// A failed redefinition must leave the prior entry untouched (staged
// mutation is discarded on failure, per spec.md §9 "Redefinition atomicity").
func TestFailedRedefinitionLeavesPriorStateIntact(t *testing.T) {
	d := NewDriver()
	if _, err := d.CompileOne("f = lambda x -> x + 1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := d.CompileOne("f = 1 + true"); err == nil {
		t.Fatalf("expected the second declaration to fail type-checking")
	}
	if got := d.Symtab()["f"].String(); got != "(Int -> Int)" {
		t.Fatalf("expected f's original type (Int -> Int) to survive, got %s", got)
	}
	count := 0
	for _, e := range d.Code() {
		if e.Name == "f" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one code-list entry named f after the failed redefinition, got %d", count)
	}
}

func TestCompileAllProcessesMultipleDeclarations(t *testing.T) {
	d := NewDriver()
	src := "add = lambda x y -> x + y\nmain = lambda -> print(add(2, 3))\n"
	if _, err := d.CompileAll(src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Code()) != 2 {
		t.Fatalf("expected 2 compiled declarations, got %d", len(d.Code()))
	}
	if _, ok := d.MainEntry(); !ok {
		t.Fatalf("expected a main entry")
	}
}

func TestCompileAllStopsAtFirstError(t *testing.T) {
	d := NewDriver()
	src := "good = 1\nbad = 1 + true\nafter = 2\n"
	_, err := d.CompileAll(src)
	if err == nil {
		t.Fatalf("expected an error from the malformed second declaration")
	}
	if len(d.Code()) != 1 {
		t.Fatalf("expected only the first declaration to have committed, got %d entries", len(d.Code()))
	}
}

func TestPrintIsPreBound(t *testing.T) {
	d := NewDriver()
	if _, ok := d.Symtab()["print"]; !ok {
		t.Fatalf("expected print to be pre-bound in a fresh driver")
	}
}
