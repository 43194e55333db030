// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalString(t *testing.T, env *Env, src string) *Item {
	t.Helper()
	r := NewReader(Lex(src, ""))
	item, err := r.ReadForm()
	require.NoError(t, err, src)
	v, err := Eval(env, item)
	require.NoError(t, err, src)
	return v
}

var evalTests = []struct {
	in   string
	want string
}{
	{"42", "42"},
	{"#t", "#t"},
	{"'(a b c)", "(a b c)"},
	{"(+ 1 2 3)", "6"},
	{"(+)", "0"},
	{"(- 5 2 1)", "2"},
	{"(- 5)", "-5"},
	{"(car '(1 2 3))", "1"},
	{"(cdr '(1 2 3))", "(2 3)"},
	{"(cons 1 '(2 3))", "(1 2 3)"},
	{"(list 1 2 3)", "(1 2 3)"},
	{"(if #t 1 2)", "1"},
	{"(if #f 1 2)", "2"},
	{"(if '() 1 2)", "1"},
	{"(cond (#f 1) (#t 2) (else 3))", "2"},
	{"(cond (#f 1) (else 3))", "3"},
	{"(and 1 2 3)", "3"},
	{"(and 1 #f 3)", "#f"},
	{"(or #f #f 5)", "5"},
	{"(or #f #f)", "#f"},
	{"(eq? 'a 'a)", "#t"},
	{"(eq? 'a 'b)", "#f"},
	{"(null? '())", "#t"},
	{"(null? 5)", "#f"},
	{"(define x 10) x", "10"},
	{"(define x 5)", "()"},
	{"(define (f x) x)", "()"},
	{"((lambda (x y) (+ x y)) 3 4)", "7"},
	{"(display 5)", "()"},
}

func TestEval(t *testing.T) {
	for _, test := range evalTests {
		env := NewRootEnv()
		var result *Item
		r := NewReader(Lex(test.in, ""))
		for {
			item, err := r.ReadForm()
			require.NoError(t, err, test.in)
			if item == nil {
				break
			}
			v, err := Eval(env, item)
			require.NoError(t, err, test.in)
			result = v
		}
		assert.Equal(t, test.want, Format(result), test.in)
	}
}

func TestClosuresCaptureDefiningScope(t *testing.T) {
	env := NewRootEnv()
	evalString(t, env, "(define (adder n) (lambda (x) (+ x n)))")
	evalString(t, env, "(define add5 (adder 5))")
	result := evalString(t, env, "(add5 10)")
	assert.Equal(t, "15", Format(result))
}

func TestUndefinedSymbol(t *testing.T) {
	env := NewRootEnv()
	r := NewReader(Lex("undefined-name", ""))
	item, err := r.ReadForm()
	require.NoError(t, err)
	_, err = Eval(env, item)
	require.Error(t, err)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, "unknown", d.Title())
}

func TestArityError(t *testing.T) {
	env := NewRootEnv()
	r := NewReader(Lex("((lambda (x y) x) 1)", ""))
	item, err := r.ReadForm()
	require.NoError(t, err)
	_, err = Eval(env, item)
	require.Error(t, err)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, "wrong number of arguments", d.Title())
}

func TestTypeError(t *testing.T) {
	env := NewRootEnv()
	r := NewReader(Lex("(car 5)", ""))
	item, err := r.ReadForm()
	require.NoError(t, err)
	_, err = Eval(env, item)
	require.Error(t, err)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, "mismatched types", d.Title())
}

func TestRecursionDepthLimit(t *testing.T) {
	env := NewRootEnv()
	env.Configure(50)
	evalString(t, env, "(define (loop n) (loop n))")
	r := NewReader(Lex("(loop 0)", ""))
	item, err := r.ReadForm()
	require.NoError(t, err)
	_, err = Eval(env, item)
	require.Error(t, err)
}

func TestDisplayWritesToConfiguredOutput(t *testing.T) {
	env := NewRootEnv()
	var buf bytes.Buffer
	env.SetOutput(&buf)
	evalString(t, env, "(display '(1 2 3))")
	assert.Equal(t, "(1 2 3)\n", buf.String())
}
