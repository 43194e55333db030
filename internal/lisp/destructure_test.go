// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestructureFixedArity(t *testing.T) {
	env := NewRootEnv()
	r := NewReader(Lex("(f 1 2)", ""))
	item, err := r.ReadForm()
	require.NoError(t, err)

	results, err := Destructure(env, item.Loc, item.Pair.Cdr, As(KindNumber, "number").Eval(), As(KindNumber, "number").Eval())
	require.NoError(t, err)
	assert.Equal(t, 1.0, results[0].(float64))
	assert.Equal(t, 2.0, results[1].(float64))
}

func TestDestructureArityMismatch(t *testing.T) {
	env := NewRootEnv()
	r := NewReader(Lex("(1)", ""))
	item, err := r.ReadForm()
	require.NoError(t, err)

	_, err = Destructure(env, item.Loc, item.Pair.Cdr, As(KindNumber, "number").Eval(), As(KindNumber, "number").Eval())
	require.Error(t, err)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, "wrong number of arguments", d.Title())
}

func TestDestructureTypeMismatch(t *testing.T) {
	env := NewRootEnv()
	r := NewReader(Lex("(f #t)", ""))
	item, err := r.ReadForm()
	require.NoError(t, err)

	_, err = Destructure(env, item.Loc, item.Pair.Cdr, As(KindNumber, "number").Eval())
	require.Error(t, err)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, "mismatched types", d.Title())
}

func TestDestructureRest(t *testing.T) {
	env := NewRootEnv()
	r := NewReader(Lex("(f 1 2 3)", ""))
	item, err := r.ReadForm()
	require.NoError(t, err)

	results, err := Destructure(env, item.Loc, item.Pair.Cdr, As(KindNumber, "number").Eval().Rest())
	require.NoError(t, err)
	rest := results[0].([]any)
	require.Len(t, rest, 3)
	assert.Equal(t, 3.0, rest[2].(float64))
}
