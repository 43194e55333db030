// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

// Kind tags the variant a Value holds. This is the Go rendering of
// spec.md §3's tagged sum: Pair carries the deep-owned cons tree,
// Lambda and Primitive carry function values, everything else is a
// plain scalar payload.
type Kind int

const (
	KindNil Kind = iota
	KindBoolean
	KindNumber
	KindChar
	KindSymbol
	KindString
	KindVector
	KindPair
	KindPrimitive
	KindLambda
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindChar:
		return "char"
	case KindSymbol:
		return "symbol"
	case KindString:
		return "string"
	case KindVector:
		return "vector"
	case KindPair:
		return "pair"
	case KindPrimitive:
		return "procedure"
	case KindLambda:
		return "procedure"
	default:
		return "unknown"
	}
}

// Pair is the cons cell. Lists are right-nested chains of Pair terminated
// by an Item of KindNil.
type Pair struct {
	Car, Cdr *Item
}

// Lambda is a user-defined procedure. Params and Body are shared by
// reference across every call made with the same Item (Go's garbage
// collector plays the role the teacher and original_source give to
// explicit reference counting of closure code, see SPEC_FULL.md §5).
// Env is the environment captured at the site of the defining `lambda`
// form — see SPEC_FULL.md §10 for why this repo resolves the
// closures-vs-dynamic-scope open question in favor of lexical closures.
type Lambda struct {
	Params *Item
	Body   []*Item
	Env    *Env
}

// PrimitiveFunc is the signature every built-in procedure or special form
// implements. call is the location of the combination's opening paren;
// args is the unevaluated cdr of the combination, left for the primitive
// to destructure and evaluate as its contract demands.
type PrimitiveFunc func(env *Env, call Location, args *Item) (*Item, error)

// Primitive names a built-in procedure or special form for printing and
// error messages.
type Primitive struct {
	Name string
	Fn   PrimitiveFunc
}

// Value is the tagged payload of an Item, carrying exactly one field
// selected by Kind.
type Value struct {
	Kind Kind

	Bool bool
	Num  float64
	Ch   rune
	Sym  string
	Str  string
	Vec  []*Item

	Pair *Pair
	Prim *Primitive
	Lam  *Lambda
}

// Item is a Value annotated with the Location of the token(s) it was read
// from, or synthesized at for values built during evaluation.
type Item struct {
	Value
	Loc Location
}

// Constructors. Each stamps the given location onto a freshly built Item;
// zero Location is fine for synthetic values with no source text.

func Nil(loc Location) *Item { return &Item{Value: Value{Kind: KindNil}, Loc: loc} }

func Bool(b bool, loc Location) *Item {
	return &Item{Value: Value{Kind: KindBoolean, Bool: b}, Loc: loc}
}

func Number(n float64, loc Location) *Item {
	return &Item{Value: Value{Kind: KindNumber, Num: n}, Loc: loc}
}

func Symbol(s string, loc Location) *Item {
	return &Item{Value: Value{Kind: KindSymbol, Sym: s}, Loc: loc}
}

func String(s string, loc Location) *Item {
	return &Item{Value: Value{Kind: KindString, Str: s}, Loc: loc}
}

func Char(r rune, loc Location) *Item {
	return &Item{Value: Value{Kind: KindChar, Ch: r}, Loc: loc}
}

func Vector(items []*Item, loc Location) *Item {
	return &Item{Value: Value{Kind: KindVector, Vec: items}, Loc: loc}
}

func Cons(car, cdr *Item, loc Location) *Item {
	return &Item{Value: Value{Kind: KindPair, Pair: &Pair{Car: car, Cdr: cdr}}, Loc: loc}
}

func PrimitiveValue(p *Primitive, loc Location) *Item {
	return &Item{Value: Value{Kind: KindPrimitive, Prim: p}, Loc: loc}
}

func LambdaValue(l *Lambda, loc Location) *Item {
	return &Item{Value: Value{Kind: KindLambda, Lam: l}, Loc: loc}
}

// IsNil reports whether the item is the empty list. Per spec.md §3/§4.4,
// a reader-produced Pair(Nil, Nil) is the degenerate representation of
// () and also counts as nil everywhere the evaluator or a primitive asks.
func (it *Item) IsNil() bool {
	if it == nil {
		return true
	}
	if it.Kind == KindNil {
		return true
	}
	if it.Kind == KindPair && isKindNil(it.Pair.Car) && isKindNil(it.Pair.Cdr) {
		return true
	}
	return false
}

func isKindNil(it *Item) bool {
	return it == nil || it.Kind == KindNil
}

// IsTruthy reports whether the item counts as true in an `if`/`cond`
// test. Per spec.md §4.5, only Boolean false is falsy; Nil is truthy.
func (it *Item) IsTruthy() bool {
	return !(it.Kind == KindBoolean && !it.Bool)
}

// Car returns the pair's car, or Nil if the item is not a pair.
func Car(it *Item) *Item {
	if it == nil || it.Kind != KindPair {
		return Nil(Location{})
	}
	return it.Pair.Car
}

// Cdr returns the pair's cdr, or Nil if the item is not a pair.
func Cdr(it *Item) *Item {
	if it == nil || it.Kind != KindPair {
		return Nil(Location{})
	}
	return it.Pair.Cdr
}

// ListLen counts the elements of a proper list, stopping at the first
// non-pair cdr (which is not counted).
func ListLen(it *Item) int {
	n := 0
	for it != nil && it.Kind == KindPair && !it.IsNil() {
		n++
		it = it.Pair.Cdr
	}
	return n
}

// ListSlice collects the cars of a proper list into a slice, in order.
func ListSlice(it *Item) []*Item {
	var out []*Item
	for it != nil && it.Kind == KindPair && !it.IsNil() {
		out = append(out, it.Pair.Car)
		it = it.Pair.Cdr
	}
	return out
}

// MakeList builds a right-nested, Nil-terminated chain from items, all
// tagged with loc.
func MakeList(items []*Item, loc Location) *Item {
	result := Nil(loc)
	for i := len(items) - 1; i >= 0; i-- {
		result = Cons(items[i], result, loc)
	}
	return result
}
