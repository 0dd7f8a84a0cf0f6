package types

import "github.com/nilsra/mlc/ast"

// Equation is a declarative `left = right` constraint produced from the AST,
// carrying a back-reference to its originating node for diagnostics
// (spec.md §3).
type Equation struct {
	Left, Right Type
	Node        ast.Node
}

// GenerateEquations walks node (already annotated by Assign) and appends the
// constraints spec.md §4.5's table describes, returning the extended slice.
// Grounded on microml/typing.py's generate_equations; the per-node case
// analysis follows the Go-idiom switch-over-concrete-type used in
// xingleixu-TG-Script/types/inference.go's InferType.
func GenerateEquations(node ast.Node, eqs []Equation) []Equation {
	switch n := node.(type) {
	case *ast.IntLit:
		return append(eqs, Equation{Left: FromAstType(n.GetType()), Right: Int{}, Node: n})
	case *ast.BoolLit:
		return append(eqs, Equation{Left: FromAstType(n.GetType()), Right: Bool{}, Node: n})
	case *ast.Ident:
		return eqs // annotation was inherited from the symbol table
	case *ast.BinOp:
		eqs = GenerateEquations(n.Left, eqs)
		eqs = GenerateEquations(n.Right, eqs)
		eqs = append(eqs,
			Equation{Left: FromAstType(n.Left.GetType()), Right: Int{}, Node: n},
			Equation{Left: FromAstType(n.Right.GetType()), Right: Int{}, Node: n},
		)
		var result Type = Int{}
		if ast.ComparisonOps[n.Operator] {
			result = Bool{}
		}
		return append(eqs, Equation{Left: FromAstType(n.GetType()), Right: result, Node: n})
	case *ast.If:
		eqs = GenerateEquations(n.Cond, eqs)
		eqs = GenerateEquations(n.Then, eqs)
		eqs = GenerateEquations(n.Else, eqs)
		return append(eqs,
			Equation{Left: FromAstType(n.Cond.GetType()), Right: Bool{}, Node: n},
			Equation{Left: FromAstType(n.GetType()), Right: FromAstType(n.Then.GetType()), Node: n},
			Equation{Left: FromAstType(n.GetType()), Right: FromAstType(n.Else.GetType()), Node: n},
		)
	case *ast.App:
		eqs = GenerateEquations(n.Callee, eqs)
		for _, a := range n.Args {
			eqs = GenerateEquations(a, eqs)
		}
		argTypes := make([]Type, len(n.Args))
		for i, a := range n.Args {
			argTypes[i] = FromAstType(a.GetType())
		}
		fn := &Func{ArgTypes: argTypes, RetType: FromAstType(n.GetType())}
		return append(eqs, Equation{Left: FromAstType(n.Callee.GetType()), Right: fn, Node: n})
	case *ast.Lambda:
		eqs = GenerateEquations(n.Body, eqs)
		paramTypes := make([]Type, len(n.ParamTypes))
		for i, pt := range n.ParamTypes {
			paramTypes[i] = FromAstType(pt)
		}
		fn := &Func{ArgTypes: paramTypes, RetType: FromAstType(n.Body.GetType())}
		return append(eqs, Equation{Left: FromAstType(n.GetType()), Right: fn, Node: n})
	default:
		return eqs
	}
}
