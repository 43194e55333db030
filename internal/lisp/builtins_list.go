// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

// List primitives. Grounded on the teacher's car/cdr/cons (lisp1_5/
// elementary.go) for shape, and on original_source's prim_car/prim_cdr/
// prim_cons/prim_list (src/primitives/primitives.rs) for the exact
// argument contracts (each argument evaluated, car/cdr require a pair).
// eq? and null? are restored from original_source per SPEC_FULL.md §11;
// the teacher's own elementary.go carries equivalents under the names
// EQ and NULL.

func primCar(env *Env, call Location, args *Item) (*Item, error) {
	results, err := Destructure(env, call, args, As(KindPair, "pair").Eval())
	if err != nil {
		return nil, err
	}
	return results[0].(*Pair).Car, nil
}

func primCdr(env *Env, call Location, args *Item) (*Item, error) {
	results, err := Destructure(env, call, args, As(KindPair, "pair").Eval())
	if err != nil {
		return nil, err
	}
	return results[0].(*Pair).Cdr, nil
}

func primCons(env *Env, call Location, args *Item) (*Item, error) {
	results, err := Destructure(env, call, args, Raw().Eval(), Raw().Eval())
	if err != nil {
		return nil, err
	}
	return Cons(results[0].(*Item), results[1].(*Item), call), nil
}

// primList implements `(list e1 e2 ...)`, building a proper list out of
// every evaluated argument.
func primList(env *Env, call Location, args *Item) (*Item, error) {
	results, err := Destructure(env, call, args, Raw().Eval().Rest())
	if err != nil {
		return nil, err
	}
	rest := results[0].([]any)
	items := make([]*Item, len(rest))
	for i, v := range rest {
		items[i] = v.(*Item)
	}
	return MakeList(items, call), nil
}

// primEq implements `(eq? a b)`, a restoration of original_source's
// prim_eq (src/primitives/primitives.rs) dropped from spec.md's §4.5
// table; SPEC_FULL.md §11 brings it back since cond/if clauses need a
// way to compare values at all. Two pairs are eq? only when they are
// the same cons cell, matching Scheme's identity semantics for eq?.
func primEq(env *Env, call Location, args *Item) (*Item, error) {
	results, err := Destructure(env, call, args, Raw().Eval(), Raw().Eval())
	if err != nil {
		return nil, err
	}
	a := results[0].(*Item)
	b := results[1].(*Item)
	return Bool(valuesEqual(a, b), call), nil
}

// primNull implements `(null? x)`, also restored from original_source's
// prim_null.
func primNull(env *Env, call Location, args *Item) (*Item, error) {
	results, err := Destructure(env, call, args, Raw().Eval())
	if err != nil {
		return nil, err
	}
	return Bool(results[0].(*Item).IsNil(), call), nil
}

func valuesEqual(a, b *Item) bool {
	if a.IsNil() && b.IsNil() {
		return true
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindBoolean:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Num == b.Num
	case KindSymbol:
		return a.Sym == b.Sym
	case KindString:
		return a.Str == b.Str
	case KindChar:
		return a.Ch == b.Ch
	case KindPair:
		return a.Pair == b.Pair
	case KindPrimitive:
		return a.Prim == b.Prim
	case KindLambda:
		return a.Lam == b.Lam
	default:
		return false
	}
}
