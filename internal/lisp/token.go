// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// Package lisp implements the reader, evaluator, and primitive procedures
// of the skim Lisp dialect.
package lisp

import "fmt"

// Location pins a token or value to the place in the source it came from.
// It is attached to every token the lexer produces and every Item the
// reader and evaluator build, so a diagnostic can always point at the
// offending text.
type Location struct {
	File   string // empty when the source has no associated file (REPL input)
	Line   int    // 1-based
	Col    int    // 1-based column of the first character
	Len    int    // length of the token in runes
	Source string // the full text of the line the token lives on
}

// String renders the location as "file:line:col", omitting the file when
// it is unknown.
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Col)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

// known reports whether the location carries real source coordinates, as
// opposed to the zero value used for synthesized values that have no
// source text (e.g. primitives installed into the root environment).
func (l Location) known() bool {
	return l.Line > 0
}

// tokenKind enumerates the lexical categories the lexer can produce.
type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenLParen
	tokenRParen
	tokenQuote
	tokenAtom
)

// token is one lexeme together with the location it was read from.
type token struct {
	kind tokenKind
	text string
	loc  Location
}

func (t token) String() string {
	if t.kind == tokenEOF {
		return "end of input"
	}
	return t.text
}
