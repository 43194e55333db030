// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import "fmt"

// Special forms and the remaining primitives of spec.md §4.5. Grounded
// on the teacher's COND/PROG2/SET special-case handling in eval.go (the
// teacher recognizes a handful of symbols before falling into its
// general apply path) and on original_source's prim_define/prim_lambda/
// prim_if/prim_cond/prim_and/prim_or/prim_quote/prim_display
// (src/primitives/primitives.rs) for the exact argument shapes. Unlike
// ordinary primitives these receive their arguments unevaluated, since
// each decides for itself which ones (if any) to evaluate and when.

// primDefine implements both shapes spec.md §4.5 and original_source
// give `define`: `(define sym expr)` binds a value, and
// `(define (name p1 ... pn) body...)` is shorthand for binding name to
// a lambda, with a variadic body under the same implicit-begin
// extension lambda itself gets (SPEC_FULL.md §11).
func primDefine(env *Env, call Location, args *Item) (*Item, error) {
	target := Car(args)
	rest := Cdr(args)

	if target.Kind == KindSymbol {
		if ListLen(rest) != 1 {
			return nil, NewArityError(call, 2, 1+ListLen(rest), false)
		}
		v, err := Eval(env, Car(rest))
		if err != nil {
			return nil, err
		}
		env.Set(target.Sym, v)
		return Nil(call), nil
	}

	if target.Kind == KindPair && !target.IsNil() {
		name := Car(target)
		if name.Kind != KindSymbol {
			return nil, NewTypeError(name.Loc, "symbol", name.Kind.String())
		}
		params := Cdr(target)
		body := ListSlice(rest)
		if len(body) == 0 {
			return nil, NewArityError(call, 2, 1, true)
		}
		lam := &Lambda{Params: params, Body: body, Env: env}
		env.Set(name.Sym, LambdaValue(lam, call))
		return Nil(call), nil
	}

	return nil, NewTypeError(target.Loc, "symbol or (symbol params...)", target.Kind.String())
}

// primLambda implements `(lambda (p1 ... pn) body...)`, capturing env as
// the closure's defining scope (SPEC_FULL.md §10).
func primLambda(env *Env, call Location, args *Item) (*Item, error) {
	params := Car(args)
	if params.Kind != KindPair && !params.IsNil() {
		return nil, NewTypeError(params.Loc, "parameter list", params.Kind.String())
	}
	for _, p := range ListSlice(params) {
		if p.Kind != KindSymbol {
			return nil, NewTypeError(p.Loc, "symbol", p.Kind.String())
		}
	}
	body := ListSlice(Cdr(args))
	if len(body) == 0 {
		return nil, NewArityError(call, 2, 1, true)
	}
	return LambdaValue(&Lambda{Params: params, Body: body, Env: env}, call), nil
}

// primIf implements `(if test then else)`, evaluating only the branch
// the test selects. Boolean false is the only falsy value; Nil is
// truthy (spec.md §4.5).
func primIf(env *Env, call Location, args *Item) (*Item, error) {
	forms := ListSlice(args)
	if len(forms) != 3 {
		return nil, NewArityError(call, 3, len(forms), false)
	}
	test, err := Eval(env, forms[0])
	if err != nil {
		return nil, err
	}
	if test.IsTruthy() {
		return Eval(env, forms[1])
	}
	return Eval(env, forms[2])
}

// primCond implements `(cond (test expr...) ... (else expr...))`,
// evaluating clause tests in order and, on the first truthy one,
// evaluating its body with the variadic-body extension. A clause
// headed by the symbol else always matches.
func primCond(env *Env, call Location, args *Item) (*Item, error) {
	for _, clause := range ListSlice(args) {
		if clause.Kind != KindPair || clause.IsNil() {
			return nil, NewTypeError(clause.Loc, "clause", clause.Kind.String())
		}
		test := Car(clause)
		body := ListSlice(Cdr(clause))

		matched := test.Kind == KindSymbol && test.Sym == "else"
		if matched && len(body) == 0 {
			return nil, NewArityError(clause.Loc, 1, 0, true)
		}
		if !matched {
			v, err := Eval(env, test)
			if err != nil {
				return nil, err
			}
			matched = v.IsTruthy()
		}
		if !matched {
			continue
		}
		result := Nil(call)
		for _, expr := range body {
			v, err := Eval(env, expr)
			if err != nil {
				return nil, err
			}
			result = v
		}
		return result, nil
	}
	return Nil(call), nil
}

// primAnd implements short-circuiting `and` (spec.md §9's documented
// extension over literal R7RS-less "evaluate all, fold" wording):
// evaluates arguments left to right, returning the first falsy value,
// or the last value if every argument was truthy. `(and)` is #t.
func primAnd(env *Env, call Location, args *Item) (*Item, error) {
	result := Bool(true, call)
	for _, expr := range ListSlice(args) {
		v, err := Eval(env, expr)
		if err != nil {
			return nil, err
		}
		if !v.IsTruthy() {
			return v, nil
		}
		result = v
	}
	return result, nil
}

// primOr implements short-circuiting `or`: returns the first truthy
// value, or the last (falsy) value if none were truthy. `(or)` is #f.
func primOr(env *Env, call Location, args *Item) (*Item, error) {
	result := Bool(false, call)
	for _, expr := range ListSlice(args) {
		v, err := Eval(env, expr)
		if err != nil {
			return nil, err
		}
		if v.IsTruthy() {
			return v, nil
		}
		result = v
	}
	return result, nil
}

// primQuote implements `(quote expr)`, returning expr unevaluated.
func primQuote(env *Env, call Location, args *Item) (*Item, error) {
	if ListLen(args) != 1 {
		return nil, NewArityError(call, 1, ListLen(args), false)
	}
	return Car(args), nil
}

// primDisplay implements `(display expr)`, writing expr's printed form
// followed by a newline to the environment's configured output
// (env.go's SetOutput/Output), and returning Nil.
func primDisplay(env *Env, call Location, args *Item) (*Item, error) {
	results, err := Destructure(env, call, args, Raw().Eval())
	if err != nil {
		return nil, err
	}
	v := results[0].(*Item)
	fmt.Fprintln(env.Output(), Format(v))
	return Nil(call), nil
}
