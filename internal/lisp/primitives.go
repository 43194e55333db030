// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

// NewRootEnv returns a root environment with every primitive procedure
// and special form of spec.md §4.5 installed, plus the two extensions
// SPEC_FULL.md §11 restores from original_source (eq?, null?).
// Grounded on the teacher's evalInit/elementary (lisp1_5/elementary.go),
// which populates a single funcMap once at Context construction.
func NewRootEnv() *Env {
	env := NewRoot()
	for name, fn := range builtins {
		bind(env, name, fn)
	}
	return env
}

func bind(env *Env, name string, fn PrimitiveFunc) {
	env.Set(name, PrimitiveValue(&Primitive{Name: name, Fn: fn}, Location{}))
}

// builtins is the primitive table of spec.md §4.5, by name. Arithmetic
// lives in builtins_arith.go, list operations and the eq?/null?
// predicates in builtins_list.go, everything else (special forms, quote, display) in
// builtins_special.go — the same three-way split the teacher uses
// between math.go and elementary.go.
var builtins = map[string]PrimitiveFunc{
	"+":       primPlus,
	"-":       primMinus,
	"define":  primDefine,
	"lambda":  primLambda,
	"if":      primIf,
	"cond":    primCond,
	"and":     primAnd,
	"or":      primOr,
	"car":     primCar,
	"cdr":     primCdr,
	"cons":    primCons,
	"list":    primList,
	"quote":   primQuote,
	"display": primDisplay,
	"eq?":     primEq,
	"null?":   primNull,
}
