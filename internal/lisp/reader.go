// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import "strconv"

// Reader consumes a token stream and produces one annotated Item per call
// to ReadForm, the slice-of-tokens-in/Item-out shape of spec.md §4.2.
// Grounded on the teacher's Parser (lisp1_5/parse.go: SExpr/List/lparList),
// generalized from LISP 1.5's dotted-pair grammar to this dialect's
// paren-list-with-leading-quote grammar.
type Reader struct {
	toks []token
	pos  int
}

// NewReader returns a Reader over toks, as produced by Lex.
func NewReader(toks []token) *Reader {
	return &Reader{toks: toks}
}

func (r *Reader) peek() token {
	if r.pos >= len(r.toks) {
		return token{kind: tokenEOF}
	}
	return r.toks[r.pos]
}

func (r *Reader) next() token {
	t := r.peek()
	if r.pos < len(r.toks) {
		r.pos++
	}
	return t
}

// AtEOF reports whether the token stream is exhausted.
func (r *Reader) AtEOF() bool {
	return r.peek().kind == tokenEOF
}

// ReadForm reads the next complete top-level form. It returns (nil, nil)
// when the token stream is exhausted with no form pending, matching
// spec.md §4.2's "Input: a slice of tokens. Output: one Item ... and the
// unread remainder, or a diagnostic."
func (r *Reader) ReadForm() (*Item, error) {
	if r.peek().kind == tokenEOF {
		return nil, nil
	}
	return r.readForm()
}

// readFormRequired reads one form, treating end-of-input as a syntax
// error. Used for forms nested inside a list or following a quote, where
// EOF is never valid.
func (r *Reader) readFormRequired() (*Item, error) {
	if r.peek().kind == tokenEOF {
		return nil, NewSyntaxError(Location{}, "unexpected end of input")
	}
	return r.readForm()
}

// readForm dispatches on the next token's kind, per spec.md §4.2's
// dispatch table.
func (r *Reader) readForm() (*Item, error) {
	tok := r.next()
	switch tok.kind {
	case tokenEOF:
		return nil, NewSyntaxError(Location{}, "unexpected end of input")
	case tokenRParen:
		return nil, NewSyntaxError(tok.loc, "unexpected )")
	case tokenQuote:
		return r.readQuote(tok)
	case tokenLParen:
		return r.readList(tok.loc)
	default:
		return r.readAtom(tok)
	}
}

// readQuote reads one following form d and returns (quote d), with the
// outer Item tagged at the apostrophe's location and the inner datum
// keeping its own (spec.md §4.2).
func (r *Reader) readQuote(quoteTok token) (*Item, error) {
	datum, err := r.readFormRequired()
	if err != nil {
		return nil, err
	}
	sym := Symbol("quote", quoteTok.loc)
	inner := Cons(datum, Nil(quoteTok.loc), quoteTok.loc)
	return Cons(sym, inner, quoteTok.loc), nil
}

// readList reads the contents of a list up to its matching ')'. openLoc
// is the opening paren's location; the returned Item's location is
// extended to cover the closing paren, per spec.md §4.2.
func (r *Reader) readList(openLoc Location) (*Item, error) {
	var items []*Item
	for {
		tok := r.peek()
		if tok.kind == tokenEOF {
			return nil, NewSyntaxError(openLoc, "unexpected end of input: unterminated list")
		}
		if tok.kind == tokenRParen {
			r.next()
			loc := spanTo(openLoc, tok.loc)
			if len(items) == 0 {
				// The reader represents () as a degenerate Pair(Nil, Nil);
				// the evaluator collapses this to Nil (spec.md §4.4).
				return Cons(Nil(loc), Nil(loc), loc), nil
			}
			return MakeList(items, loc), nil
		}
		item, err := r.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// spanTo extends open's length to cover close, the token ending the
// combination or list it opened. Column arithmetic only makes sense
// when both delimiters sit on the same source line; a form spanning
// multiple lines keeps the opening paren's own length, since
// diagnostic.go prints only that line's source text.
func spanTo(open, close Location) Location {
	if close.Line == open.Line {
		open.Len = (close.Col + close.Len) - open.Col
	}
	return open
}

// readAtom parses a single atom token into a Number, Boolean, or Symbol,
// trying each in the order spec.md §4.2 specifies.
func (r *Reader) readAtom(tok token) (*Item, error) {
	if n, err := strconv.ParseFloat(tok.text, 64); err == nil {
		return Number(n, tok.loc), nil
	}
	if len(tok.text) > 0 && tok.text[0] == '#' {
		switch tok.text {
		case "#t":
			return Bool(true, tok.loc), nil
		case "#f":
			return Bool(false, tok.loc), nil
		default:
			return nil, NewSyntaxError(tok.loc, "malformed atom: %s", tok.text)
		}
	}
	return Symbol(tok.text, tok.loc), nil
}
