// Package ast defines the tagged-variant expression tree: IntLit, BoolLit,
// Ident, BinOp, If, Lambda, App, plus the top-level Decl. Grounded on the
// shape of xingleixu-TG-Script/ast/ast.go (a Node interface plus one struct
// per variant with a marker method) and on microml/ast.py's Node subclasses
// (Int, Bool, Id, Op, App, If, Lambda, Decl) for the variant set itself.
package ast

import "sync/atomic"

// Type is satisfied by *types.TypeVar, *types.Int, etc.; ast does not import
// types to avoid a cycle (types.Equation.Node references ast.Node instead).
// Every annotation-bearing node stores its annotation behind this interface.
type Type interface {
	String() string
}

var nextID int64

func newID() int {
	return int(atomic.AddInt64(&nextID, 1))
}

// Node is any expression node in the tree.
type Node interface {
	// ID is a stable identity assigned at construction, distinct for every
	// node; the lowerer does not read it.
	ID() int
	// Offset is the byte offset of the first token forming this node.
	Offset() int
	// GetType returns the node's mutable type annotation, or nil before name
	// assignment has run.
	GetType() Type
	// SetType installs the node's type annotation. Per spec.md §9 DESIGN
	// NOTES option 1, the annotation is a mutable field on the node itself,
	// matching microml/ast.py's node.typ field directly.
	SetType(Type)
	String() string
}

// base is embedded by every concrete node and carries the fields common to
// all of them: identity, source offset, and the mutable type annotation.
type base struct {
	id     int
	offset int
	typ    Type
}

func newBase(offset int) base {
	return base{id: newID(), offset: offset}
}

func (b *base) ID() int         { return b.id }
func (b *base) Offset() int     { return b.offset }
func (b *base) GetType() Type   { return b.typ }
func (b *base) SetType(t Type)  { b.typ = t }

// IntLit is an integer literal.
type IntLit struct {
	base
	Raw   string
	Value int64
}

func NewIntLit(offset int, raw string, value int64) *IntLit {
	return &IntLit{base: newBase(offset), Raw: raw, Value: value}
}

func (n *IntLit) String() string { return n.Raw }

// BoolLit is a boolean literal.
type BoolLit struct {
	base
	Value bool
}

func NewBoolLit(offset int, value bool) *BoolLit {
	return &BoolLit{base: newBase(offset), Value: value}
}

func (n *BoolLit) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}

// Ident is a reference to a binding.
type Ident struct {
	base
	Name string
}

func NewIdent(offset int, name string) *Ident {
	return &Ident{base: newBase(offset), Name: name}
}

func (n *Ident) String() string { return n.Name }

// BinOp is a binary arithmetic or comparison expression. Operator is the
// literal spelling from the source ("+", "==", ...), matching the lowerer's
// requirement to reproduce "the original operator spelling" (spec.md §4.9).
type BinOp struct {
	base
	Operator string
	Left     Node
	Right    Node
}

func NewBinOp(offset int, operator string, left, right Node) *BinOp {
	return &BinOp{base: newBase(offset), Operator: operator, Left: left, Right: right}
}

func (n *BinOp) String() string {
	return "(" + n.Left.String() + " " + n.Operator + " " + n.Right.String() + ")"
}

// ComparisonOps is the set of BinOp operators whose result type is Bool;
// every other operator produces Int (spec.md §4.5).
var ComparisonOps = map[string]bool{
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
}

// If is a strict conditional expression.
type If struct {
	base
	Cond Node
	Then Node
	Else Node
}

func NewIf(offset int, cond, then, els Node) *If {
	return &If{base: newBase(offset), Cond: cond, Then: then, Else: els}
}

func (n *If) String() string {
	return "if " + n.Cond.String() + " then " + n.Then.String() + " else " + n.Else.String()
}

// Lambda is an anonymous function. ParamTypes is populated by the name
// assigner (one fresh type variable per parameter, in parameter order) and
// is nil before that pass runs.
type Lambda struct {
	base
	Params     []string
	ParamTypes []Type
	Body       Node
}

func NewLambda(offset int, params []string, body Node) *Lambda {
	return &Lambda{base: newBase(offset), Params: params, Body: body}
}

func (n *Lambda) String() string {
	s := "lambda"
	for _, p := range n.Params {
		s += " " + p
	}
	return s + " -> " + n.Body.String()
}

// App is a function application; Callee is always an *Ident per spec.md
// §4.2 ("callee must be a name").
type App struct {
	base
	Callee *Ident
	Args   []Node
}

func NewApp(offset int, callee *Ident, args []Node) *App {
	return &App{base: newBase(offset), Callee: callee, Args: args}
}

func (n *App) String() string {
	s := n.Callee.String() + "("
	for i, a := range n.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

// Decl is a top-level "name = expression" binding. A surface form
// "f x y = body" is normalized at parse time into Rhs = Lambda([x, y], body)
// (spec.md §3 "Top-level declaration").
type Decl struct {
	Name   string
	Rhs    Node
	Offset int
}

func NewDecl(name string, rhs Node, offset int) *Decl {
	return &Decl{Name: name, Rhs: rhs, Offset: offset}
}
