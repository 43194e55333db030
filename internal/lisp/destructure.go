// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

// Matcher is one position in a primitive's declared argument contract.
// Grounded directly on original_source's `destruct!` macro
// (src/primitives/util.rs): Go has no macro system, so the matcher DSL
// becomes a value built by the constructors below, combined with .Eval()
// and .Rest(), and consumed by Destructure. This keeps every primitive
// body as short and declarative as spec.md §4.6 requires.
type Matcher struct {
	eval    bool
	rest    bool
	typeTag string // human name for type errors; "" for untyped matchers
	extract func(*Item) (any, error)
}

// Raw matches the next argument and yields the whole *Item, location and
// all (spec.md §4.6's "Item" matcher).
func Raw() Matcher {
	return Matcher{extract: func(it *Item) (any, error) { return it, nil }}
}

// Val matches the next argument and yields its Value payload, with the
// Location stripped (spec.md §4.6's "Value" matcher).
func Val() Matcher {
	return Matcher{extract: func(it *Item) (any, error) { return it.Value, nil }}
}

// As matches the next argument, requiring it to have the given Kind, and
// yields its unwrapped payload (spec.md §4.6's "Value::<Variant>"
// matcher). name is the human-readable type name used in the resulting
// type error ("expected number, found symbol").
func As(kind Kind, name string) Matcher {
	return Matcher{typeTag: name, extract: func(it *Item) (any, error) {
		if it.Kind != kind {
			return nil, NewTypeError(it.Loc, name, it.Kind.String())
		}
		return payload(it), nil
	}}
}

func payload(it *Item) any {
	switch it.Kind {
	case KindNumber:
		return it.Num
	case KindBoolean:
		return it.Bool
	case KindSymbol:
		return it.Sym
	case KindString:
		return it.Str
	case KindChar:
		return it.Ch
	case KindVector:
		return it.Vec
	case KindPair:
		return it.Pair
	case KindPrimitive:
		return it.Prim
	case KindLambda:
		return it.Lam
	default:
		return nil
	}
}

// Eval marks the matcher's argument as evaluated in the caller's
// environment before matching, turning what would otherwise be a special
// form's unevaluated argument into a normal procedure's (spec.md §4.6).
func (m Matcher) Eval() Matcher {
	m.eval = true
	return m
}

// Rest marks the matcher as consuming all remaining arguments into a
// []any, rather than exactly one (spec.md §4.6). Only meaningful as the
// last matcher in a Destructure call.
func (m Matcher) Rest() Matcher {
	m.rest = true
	return m
}

// Destructure walks args (the unevaluated cdr of a combination) against
// matchers positionally, returning one result per non-rest matcher and a
// []any for a trailing Rest matcher. It surfaces an arity error (at call,
// the combination's opening paren) when the argument count doesn't match
// the fixed matchers, and a type error (at the offending argument) when a
// typed matcher's Kind doesn't match.
func Destructure(env *Env, call Location, args *Item, matchers ...Matcher) ([]any, error) {
	results := make([]any, 0, len(matchers))
	cur := args
	for i, m := range matchers {
		if m.rest {
			var rest []any
			for !cur.IsNil() {
				v, err := resolve(env, Car(cur), m)
				if err != nil {
					return nil, err
				}
				rest = append(rest, v)
				cur = Cdr(cur)
			}
			results = append(results, rest)
			return results, nil
		}
		if cur.IsNil() {
			return nil, NewArityError(call, len(matchers), i, false)
		}
		v, err := resolve(env, Car(cur), m)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
		cur = Cdr(cur)
	}
	if !cur.IsNil() {
		return nil, NewArityError(call, len(matchers), len(matchers)+ListLen(cur), false)
	}
	return results, nil
}

func resolve(env *Env, item *Item, m Matcher) (any, error) {
	if m.eval {
		evaluated, err := Eval(env, item)
		if err != nil {
			return nil, err
		}
		item = evaluated
	}
	return m.extract(item)
}
