// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import "strings"

// Lex turns source into an ordered sequence of tokens. file is recorded on
// every token's Location and is typically the basename of the script being
// run, or empty for REPL input. Unlike the teacher's rune-at-a-time lexer
// (which streamed from a bufio.Reader), Lex works over the whole source
// string up front so that every token can carry the full text of the
// source line it lives on, for the diagnostic caret (spec.md §6).
func Lex(src, file string) []token {
	var toks []token
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		toks = append(toks, lexLine(line, file, i+1)...)
	}
	toks = append(toks, token{kind: tokenEOF})
	return toks
}

// lexLine tokenizes a single source line. Comments run from ';' to the end
// of the line; space, tab and carriage return are whitespace and separate
// tokens, and atoms are the runs of characters between them and the
// delimiters. Columns and lengths are counted in runes.
func lexLine(line, file string, lineNo int) []token {
	var toks []token
	col := 0
	n := len(line)
	for col < n {
		c := line[col]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			col++
		case c == ';':
			col = n
		case c == '(' || c == ')' || c == '\'':
			toks = append(toks, token{
				kind: delimKind(c),
				text: string(c),
				loc:  Location{File: file, Line: lineNo, Col: len([]rune(line[:col])) + 1, Len: 1, Source: line},
			})
			col++
		default:
			start := col
			for col < n && !isDelim(line[col]) {
				col++
			}
			text := line[start:col]
			toks = append(toks, token{
				kind: tokenAtom,
				text: text,
				loc:  Location{File: file, Line: lineNo, Col: len([]rune(line[:start])) + 1, Len: len([]rune(text)), Source: line},
			})
		}
	}
	return toks
}

func isDelim(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == ';' || c == '(' || c == ')' || c == '\''
}

func delimKind(c byte) tokenKind {
	switch c {
	case '(':
		return tokenLParen
	case ')':
		return tokenRParen
	default:
		return tokenQuote
	}
}
