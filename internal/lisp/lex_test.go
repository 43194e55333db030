// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var lexTests = []struct {
	in   string
	want []string
}{
	{"(+ 1 2)", []string{"(", "+", "1", "2", ")"}},
	{"'(a b)", []string{"'", "(", "a", "b", ")"}},
	{"; a comment\n(x)", []string{"(", "x", ")"}},
	{"(f #t #f)", []string{"(", "f", "#t", "#f", ")"}},
}

func TestLex(t *testing.T) {
	for _, test := range lexTests {
		toks := Lex(test.in, "")
		var got []string
		for _, tok := range toks {
			if tok.kind == tokenEOF {
				continue
			}
			got = append(got, tok.text)
		}
		assert.Equal(t, test.want, got, test.in)
	}
}

func TestLexTracksLocation(t *testing.T) {
	toks := Lex("(a b)", "f.skm")
	assert.Equal(t, "f.skm", toks[0].loc.File)
	assert.Equal(t, 1, toks[0].loc.Line)
	assert.Equal(t, 1, toks[0].loc.Col)
	assert.Equal(t, 2, toks[1].loc.Col)
}
