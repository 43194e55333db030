// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

// depthState tracks recursion depth across every scope in one
// interpreter session, mirroring the teacher's Context.stackDepth /
// maxStackDepth (lisp1_5/eval.go), generalized from a slice-of-frames
// counter to a small shared struct threaded through the Env chain so
// that lexical closures (SPEC_FULL.md §10) can still share one limit.
type depthState struct {
	current int
	max     int // 0 means unlimited, matching the teacher's -depth=0 convention
}

// Configure installs a recursion-depth limit on the root environment. It
// is meant to be called once, right after NewRoot, from the CLI's
// --depth flag.
func (e *Env) Configure(maxDepth int) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.depth = &depthState{max: maxDepth}
}

func (e *Env) depthTracker() *depthState {
	for s := e; s != nil; s = s.parent {
		if s.depth != nil {
			return s.depth
		}
	}
	return nil
}

// Eval is the evaluator's single entry point (spec.md §4.4). It returns
// the value of item under env, or the first error encountered.
func Eval(env *Env, item *Item) (*Item, error) {
	switch item.Kind {
	case KindNil, KindBoolean, KindNumber, KindChar, KindString, KindVector, KindPrimitive, KindLambda:
		return item, nil
	case KindSymbol:
		v, ok := env.Get(item.Sym)
		if !ok {
			return nil, NewUndefinedSymbolError(item.Loc, item.Sym)
		}
		return v, nil
	case KindPair:
		if item.IsNil() {
			return Nil(item.Loc), nil
		}
		callee, err := Eval(env, item.Pair.Car)
		if err != nil {
			return nil, err
		}
		return Apply(env, item.Loc, callee, item.Pair.Cdr)
	default:
		return nil, NewOtherError(item.Loc, "cannot evaluate %s", item.Kind)
	}
}

// Apply invokes callee with the unevaluated argument list args, at the
// combination's location call (spec.md §4.4's "Apply"). env is the
// caller's environment: primitives receive it directly to decide for
// themselves which of their arguments (if any) to evaluate; a Lambda's
// arguments are always evaluated in it before the call.
func Apply(env *Env, call Location, callee *Item, args *Item) (*Item, error) {
	tracker := env.depthTracker()
	if tracker != nil {
		tracker.current++
		defer func() { tracker.current-- }()
		if tracker.max > 0 && tracker.current > tracker.max {
			return nil, NewOtherError(call, "recursion too deep: exceeded %d calls", tracker.max)
		}
	}

	switch callee.Kind {
	case KindPrimitive:
		return callee.Prim.Fn(env, call, args)
	case KindLambda:
		return applyLambda(env, callee.Lam, call, args)
	default:
		return nil, NewTypeError(callee.Loc, "procedure", callee.Kind.String())
	}
}

// applyLambda evaluates every argument left-to-right in the caller's
// environment (eager, applicative order), binds them positionally into a
// fresh child of the lambda's *captured* environment, and evaluates the
// body expressions there in order, returning the last one's value
// (spec.md §9's variadic-body extension, SPEC_FULL.md §11). Binding into
// a child of the captured environment, rather than the caller's, is this
// repo's resolution of spec.md §9's closures-vs-dynamic-scope open
// question (SPEC_FULL.md §10); the teacher's apply binds into a child of
// whatever frame is calling, giving dynamic scope instead.
func applyLambda(callerEnv *Env, lam *Lambda, call Location, args *Item) (*Item, error) {
	params := ListSlice(lam.Params)
	found := ListLen(args)
	if found != len(params) {
		return nil, NewArityError(call, len(params), found, false)
	}

	values := make([]*Item, len(params))
	cur := args
	for i := range params {
		v, err := Eval(callerEnv, Car(cur))
		if err != nil {
			return nil, err
		}
		values[i] = v
		cur = Cdr(cur)
	}

	scope := lam.Env.NewChild()
	for i, p := range params {
		scope.Set(p.Sym, values[i])
	}

	result := Nil(call)
	for _, expr := range lam.Body {
		v, err := Eval(scope, expr)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
