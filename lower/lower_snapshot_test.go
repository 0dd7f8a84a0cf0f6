package lower

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/nilsra/mlc/driver"
)

func TestMain(m *testing.M) {
	code := m.Run()
	snaps.Clean(m)
	os.Exit(code)
}

func compileAll(t *testing.T, src string) *driver.Driver {
	t.Helper()
	d := driver.NewDriver()
	if _, err := d.CompileAll(src); err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	return d
}

func TestProgramSnapshotAddAndMain(t *testing.T) {
	d := compileAll(t, "add = lambda x y -> x + y\nmain = lambda -> print(add(2, 3))\n")
	out, err := Program(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, out)
}

func TestProgramSnapshotIfAndGlobal(t *testing.T) {
	d := compileAll(t, "threshold = 10\nclassify = lambda n -> if n < threshold then 0 else 1\nmain = lambda -> print(classify(20))\n")
	out, err := Program(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, out)
}

func TestDeclFunctionRendersParametersAndTernary(t *testing.T) {
	d := compileAll(t, "pick = lambda a b -> if a == b then a else b\n")
	text, err := Decl(d.Code()[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, text)
}

func TestMainIsAlwaysEmittedLast(t *testing.T) {
	d := compileAll(t, "main = lambda -> print(answer())\nanswer = lambda -> 42\n")
	out, err := Program(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, out)
}

func TestNamesAreSortedAndComplete(t *testing.T) {
	d := compileAll(t, "b = 1\na = 2\nc = 3\n")
	got := Names(d)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}
