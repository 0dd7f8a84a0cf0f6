// Package driver orchestrates the lexer, parser, and type system per
// top-level declaration, owning the persistent symbol table and equation
// list that span a session (spec.md §2 item 7, §4.7). Grounded on
// microml/compiler.py's Compiler class end-to-end (same roles: symtab,
// equations, code, main) and on
// xingleixu-TG-Script/cmd/tg/main.go's executeScript for the "run the whole
// pipeline, surface errors per stage" control flow.
package driver

import (
	"strings"

	"github.com/nilsra/mlc/ast"
	"github.com/nilsra/mlc/mlerr"
	"github.com/nilsra/mlc/parser"
	"github.com/nilsra/mlc/types"
)

// Entry is one compiled declaration: its AST and the substitution that
// typed it, retained in insertion order (spec.md §4.7 step 7).
type Entry struct {
	Name  string
	Decl  *ast.Decl
	Subst types.Substitution
}

// Driver holds the state of one compilation session: a symbol table, an
// accumulated equation list, the ordered code list, and the index of the
// `main` entry (-1 if none).
type Driver struct {
	alloc     *types.Allocator
	symtab    map[string]types.Type
	equations []types.Equation
	code      []Entry
	mainIndex int
}

// printType is the type of the one pre-bound builtin, `print : Func([Int],
// Int)` (spec.md §6).
func printType() types.Type {
	return &types.Func{ArgTypes: []types.Type{types.Int{}}, RetType: types.Int{}}
}

// NewDriver starts a fresh session with `print` pre-bound, matching
// microml/compiler.py's `Compiler.__init__`'s `symtab = {'print': ...}`.
func NewDriver() *Driver {
	return &Driver{
		alloc:     types.NewAllocator(),
		symtab:    map[string]types.Type{"print": printType()},
		mainIndex: -1,
	}
}

// Symtab returns the current name-to-type bindings. The returned map must
// not be mutated by callers.
func (d *Driver) Symtab() map[string]types.Type { return d.symtab }

// Code returns the compiled declarations in insertion order. The returned
// slice must not be mutated by callers.
func (d *Driver) Code() []Entry { return d.code }

// MainEntry returns the declaration bound to `main`, and whether one exists.
func (d *Driver) MainEntry() (Entry, bool) {
	if d.mainIndex < 0 {
		return Entry{}, false
	}
	return d.code[d.mainIndex], true
}

// CompileDecl runs steps 2-7 of spec.md §4.7 for one already-parsed
// declaration. All mutation is staged on temporaries and committed only
// after the full pipeline succeeds (spec.md §9 "Redefinition atomicity"),
// fixing the source's documented bug where the old code-list entry was
// removed before typing was re-run. On success it returns a non-empty
// warning string if name was already bound.
func (d *Driver) CompileDecl(decl *ast.Decl) (warning string, err error) {
	stagedSymtab := make(map[string]types.Type, len(d.symtab))
	for k, v := range d.symtab {
		stagedSymtab[k] = v
	}

	_, redefining := d.symtab[decl.Name]

	stagedCode := make([]Entry, 0, len(d.code))
	stagedMainIndex := d.mainIndex
	for i, e := range d.code {
		if e.Name == decl.Name {
			if d.mainIndex >= 0 && i < d.mainIndex {
				stagedMainIndex--
			}
			continue
		}
		stagedCode = append(stagedCode, e)
	}

	// Step 2: name assignment against the staged (not yet committed) symtab.
	if err := types.Assign(decl.Rhs, stagedSymtab, d.alloc); err != nil {
		return "", err
	}

	// Step 3: append this declaration's equations to a staged copy of the
	// session's accumulated list.
	newEqs := types.GenerateEquations(decl.Rhs, nil)
	stagedEquations := make([]types.Equation, 0, len(d.equations)+len(newEqs))
	stagedEquations = append(stagedEquations, d.equations...)
	stagedEquations = append(stagedEquations, newEqs...)

	// Step 4: re-solve the entire accumulated list from scratch.
	subst, err := types.Solve(stagedEquations)
	if err != nil {
		return "", err
	}

	// Step 5: apply + pretty-rename, record as name's type.
	declType := types.PrettyRename(types.FromAstType(decl.Rhs.GetType()), subst)
	stagedSymtab[decl.Name] = declType

	// Step 6/7: record main index, append the new entry.
	stagedCode = append(stagedCode, Entry{Name: decl.Name, Decl: decl, Subst: subst})
	if decl.Name == "main" {
		stagedMainIndex = len(stagedCode) - 1
	}

	// Commit.
	d.symtab = stagedSymtab
	d.equations = stagedEquations
	d.code = stagedCode
	d.mainIndex = stagedMainIndex

	if redefining {
		return "redefinition warning: \"" + decl.Name + "\" was already bound", nil
	}
	return "", nil
}

// CompileOne parses exactly one declaration from source, requiring it to be
// the entire input (spec.md §4.2 strict termination), and compiles it.
func (d *Driver) CompileOne(source string) (warning string, err error) {
	decl, err := parser.ParseStrict(source)
	if err != nil {
		return "", err
	}
	return d.CompileDecl(decl)
}

// CompileAll processes every top-level declaration in source, in order,
// advancing past each one with the offset parsing returns rather than
// requiring end-of-input between declarations — grounded directly on
// main.py's file-processing loop (`while contents: stop = c.compile(contents);
// contents = contents[stop:]`), which is how a single file holds multiple
// declarations. The first error aborts the run (spec.md §7 "In file mode,
// the first error aborts the run").
func (d *Driver) CompileAll(source string) ([]string, error) {
	var warnings []string
	remaining := source
	for {
		trimmed := strings.TrimLeft(remaining, " \t\n\r")
		if trimmed == "" {
			return warnings, nil
		}
		decl, stop, err := parser.ParseInteractive(remaining)
		if err != nil {
			return warnings, err
		}
		w, err := d.CompileDecl(decl)
		if err != nil {
			return warnings, err
		}
		if w != "" {
			warnings = append(warnings, w)
		}
		if stop <= 0 || stop > len(remaining) {
			return warnings, mlerr.New(mlerr.Parser, "parser made no progress on remaining input")
		}
		remaining = remaining[stop:]
	}
}
