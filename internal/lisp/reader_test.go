// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var readTests = []struct {
	in   string
	want string
}{
	{"()", "()"},
	{"a", "a"},
	{"42", "42"},
	{"#t", "#t"},
	{"#f", "#f"},
	{"(a b c)", "(a b c)"},
	{"(a (b c) d)", "(a (b c) d)"},
	{"'a", "(quote a)"},
	{"'(a b)", "(quote (a b))"},
}

func TestReadForm(t *testing.T) {
	for _, test := range readTests {
		r := NewReader(Lex(test.in, ""))
		item, err := r.ReadForm()
		require.NoError(t, err, test.in)
		require.NotNil(t, item, test.in)
		assert.Equal(t, test.want, Format(item), test.in)
	}
}

func TestReadFormEOFIsNotAnError(t *testing.T) {
	r := NewReader(Lex("", ""))
	item, err := r.ReadForm()
	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestReadMultipleForms(t *testing.T) {
	r := NewReader(Lex("(a) (b)", ""))
	first, err := r.ReadForm()
	require.NoError(t, err)
	second, err := r.ReadForm()
	require.NoError(t, err)
	assert.Equal(t, "(a)", Format(first))
	assert.Equal(t, "(b)", Format(second))
	assert.True(t, r.AtEOF())
}

func TestReadUnterminatedList(t *testing.T) {
	r := NewReader(Lex("(a b", ""))
	_, err := r.ReadForm()
	require.Error(t, err)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, "wrong syntax", d.Title())
}

func TestReadUnexpectedCloseParen(t *testing.T) {
	r := NewReader(Lex(")", ""))
	_, err := r.ReadForm()
	require.Error(t, err)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, "wrong syntax", d.Title())
}
