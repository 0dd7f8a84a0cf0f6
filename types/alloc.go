package types

import "fmt"

// Allocator hands out fresh type-variable names "t0", "t1", ... Grounded on
// microml/typing.py's _type_counter/get_fresh_typename/reset_type_counter,
// turned into a struct per spec.md §9 DESIGN NOTES ("encapsulate it behind
// an allocator value passed explicitly... do not rely on global mutable
// state") instead of the Python module-level generator.
type Allocator struct {
	next int
}

// NewAllocator returns an allocator starting at t0.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Fresh allocates a new, process-unique (within this allocator) TypeVar.
func (a *Allocator) Fresh() *TypeVar {
	name := fmt.Sprintf("t%d", a.next)
	a.next++
	return &TypeVar{Name: name}
}

// Reset rewinds the counter to t0. Test-only, per spec.md §5 ("outside
// tests it is never reset").
func (a *Allocator) Reset() {
	a.next = 0
}
