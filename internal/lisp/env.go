// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"io"
	"os"
)

// Env is a lexical scope: a mapping from symbol text to Item, linked to a
// parent scope for lookup (spec.md §3/§4.3). Grounded on the teacher's
// scope/frame/Context.scope (lisp1_5/eval.go), generalized from a
// slice-of-frames call stack to a parent-linked chain so that a Lambda
// can capture and outlive the scope that defined it (SPEC_FULL.md §10).
type Env struct {
	vars   map[string]*Item
	parent *Env
	depth  *depthState // set on the root only; see eval.go Configure
	out    io.Writer   // set on the root only; see SetOutput
}

// NewRoot returns an empty root scope with no parent, printing to
// os.Stdout by default. Callers install the primitive bindings into it
// via NewRootEnv (primitives.go).
func NewRoot() *Env {
	return &Env{vars: make(map[string]*Item), out: os.Stdout}
}

// NewChild returns a scope whose parent is e. A new child is created for
// every lambda call and nothing else, per spec.md §4.4's apply rule.
func (e *Env) NewChild() *Env {
	return &Env{vars: make(map[string]*Item), parent: e}
}

// Set inserts sym into this scope only, overwriting any existing binding
// in this scope (spec.md §4.3's "current scope ... only").
func (e *Env) Set(sym string, v *Item) {
	e.vars[sym] = v
}

// Get walks scopes from innermost outward, returning the first binding
// found (spec.md §4.3).
func (e *Env) Get(sym string) (*Item, bool) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.vars[sym]; ok {
			return v, true
		}
	}
	return nil, false
}

// SetOutput redirects where `display` writes, for callers (tests, a
// future non-stdout REPL) that need to capture it instead of os.Stdout.
func (e *Env) SetOutput(w io.Writer) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.out = w
}

// Output returns the writer `display` should use.
func (e *Env) Output() io.Writer {
	for s := e; s != nil; s = s.parent {
		if s.out != nil {
			return s.out
		}
	}
	return os.Stdout
}
