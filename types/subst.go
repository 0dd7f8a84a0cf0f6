package types

// Substitution maps a type-variable name to the type term it has been bound
// to. It only ever grows (spec.md §3 "monotonically grown by the unifier");
// chasing happens at lookup time via Apply, not by mutating existing entries.
type Substitution map[string]Type

// With returns a new substitution extending s with name ↦ t, leaving s
// itself unmodified (the unifier threads substitutions by value, mirroring
// microml/typing.py's `{**subst, v.name: typ}`).
func (s Substitution) With(name string, t Type) Substitution {
	out := make(Substitution, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[name] = t
	return out
}

// Apply recursively rewrites typ under s: a TypeVar bound in s is replaced
// by its binding, chased transitively (the binding is itself applied under
// s); a Func is rebuilt with every component rewritten; ground types are
// returned unchanged. Grounded on microml/typing.py's apply_unifier.
func Apply(typ Type, s Substitution) Type {
	switch t := typ.(type) {
	case Int, Bool:
		return t
	case *TypeVar:
		if bound, ok := s[t.Name]; ok {
			return Apply(bound, s)
		}
		return t
	case *Func:
		args := make([]Type, len(t.ArgTypes))
		for i, a := range t.ArgTypes {
			args[i] = Apply(a, s)
		}
		return &Func{ArgTypes: args, RetType: Apply(t.RetType, s)}
	default:
		return t
	}
}

// PrettyRename applies s to typ and then rewrites every type-variable name
// appearing in the result into a short alphabetic name ("a", "b", ...) in
// first-occurrence order. Grounded on microml/typing.py's
// get_expression_type/rename_type, including that function's traversal
// order for Func (return type visited before argument types), so that
// `lambda x y -> y` renders as `(b -> a -> a)`.
func PrettyRename(typ Type, s Substitution) Type {
	resolved := Apply(typ, s)
	names := make(map[string]string)
	next := 0
	var rename func(Type) Type
	rename = func(t Type) Type {
		switch v := t.(type) {
		case *TypeVar:
			if n, ok := names[v.Name]; ok {
				return &TypeVar{Name: n}
			}
			n := string(rune('a' + next))
			next++
			names[v.Name] = n
			return &TypeVar{Name: n}
		case *Func:
			ret := rename(v.RetType)
			args := make([]Type, len(v.ArgTypes))
			for i, a := range v.ArgTypes {
				args[i] = rename(a)
			}
			return &Func{ArgTypes: args, RetType: ret}
		default:
			return t
		}
	}
	return rename(resolved)
}
