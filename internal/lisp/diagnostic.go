// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DiagKind is the taxonomy of spec.md §7, with "Other" refined per §9 into
// UndefinedSymbol, ImproperList, and Other (a narrower catch-all), plus
// UnterminatedList folded into Syntax where §7 already places it.
type DiagKind int

const (
	DiagSyntax DiagKind = iota
	DiagArity
	DiagType
	DiagUndefinedSymbol
	DiagImproperList
	DiagOther
)

// diagnostic is the concrete error type behind every skim exception,
// returned (not panicked — see eval.go) by the lexer, reader, and
// evaluator. It is unexported; callers interact with it through the
// constructors below and AsDiagnostic, matching the teacher's practice of
// exposing only the named panic types (Error, EOF), not their internals.
type diagnostic struct {
	kind   DiagKind
	loc    Location
	hasLoc bool

	message string // Syntax / Other / UndefinedSymbol / ImproperList

	// Arity
	expected int
	atLeast  bool
	found    int

	// Type
	expectedType string
	foundType    string
}

func (d *diagnostic) Error() string { return d.Format() }

// Title renders the spec.md §6 title for this diagnostic's kind. Every
// kind spec.md §9 asks to carve out of "Other" still renders under the
// fixed "unknown" title, since spec.md §6 enumerates exactly four titles.
func (d *diagnostic) Title() string {
	switch d.kind {
	case DiagSyntax:
		return "wrong syntax"
	case DiagArity:
		return "wrong number of arguments"
	case DiagType:
		return "mismatched types"
	default:
		return "unknown"
	}
}

// Detail renders the spec.md §6 detail string for this diagnostic.
func (d *diagnostic) Detail() string {
	switch d.kind {
	case DiagArity:
		if d.atLeast {
			return fmt.Sprintf("expected at least %d arguments, found %d", d.expected, d.found)
		}
		return fmt.Sprintf("expected %d arguments, found %d", d.expected, d.found)
	case DiagType:
		return fmt.Sprintf("expected %s, found %s", d.expectedType, d.foundType)
	default:
		return d.message
	}
}

// Format renders the byte-identical caret diagnostic of spec.md §6.
func (d *diagnostic) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "exception: %s\n", d.Title())
	if !d.hasLoc {
		fmt.Fprintf(&b, " %s\n", d.Detail())
		return b.String()
	}
	lineNo := strconv.Itoa(d.loc.Line)
	pad := strings.Repeat(" ", len(lineNo))
	fmt.Fprintf(&b, " %s--> %s\n", pad, d.loc.String())
	fmt.Fprintf(&b, " %s |\n", pad)
	fmt.Fprintf(&b, " %s | %s\n", lineNo, d.loc.Source)
	col := d.loc.Col
	if col < 0 {
		col = 0
	}
	length := d.loc.Len
	if length < 1 {
		length = 1
	}
	fmt.Fprintf(&b, " %s |%s%s %s", pad, strings.Repeat(" ", col), strings.Repeat("^", length), d.Detail())
	return b.String()
}

// NewSyntaxError reports a reader/lexer syntax failure at loc.
func NewSyntaxError(loc Location, format string, args ...interface{}) error {
	return &diagnostic{kind: DiagSyntax, loc: loc, hasLoc: loc.known(), message: fmt.Sprintf(format, args...)}
}

// NewArityError reports that a call received the wrong number of
// arguments at the combination's opening-paren location.
func NewArityError(loc Location, expected, found int, atLeast bool) error {
	return &diagnostic{kind: DiagArity, loc: loc, hasLoc: loc.known(), expected: expected, found: found, atLeast: atLeast}
}

// NewTypeError reports that an argument's variant did not match its
// matcher, at that argument's own location.
func NewTypeError(loc Location, expected, found string) error {
	return &diagnostic{kind: DiagType, loc: loc, hasLoc: loc.known(), expectedType: expected, foundType: found}
}

// NewUndefinedSymbolError reports a symbol with no binding in scope.
func NewUndefinedSymbolError(loc Location, sym string) error {
	return &diagnostic{kind: DiagUndefinedSymbol, loc: loc, hasLoc: loc.known(), message: fmt.Sprintf("undefined symbol: %s", sym)}
}

// NewImproperListError reports a list-consuming primitive given a chain
// whose final cdr is not Nil.
func NewImproperListError(loc Location, context string) error {
	return &diagnostic{kind: DiagImproperList, loc: loc, hasLoc: loc.known(), message: fmt.Sprintf("improper list in %s", context)}
}

// NewOtherError is the narrow catch-all spec.md §9 still allows for
// conditions that don't fit the refined kinds above.
func NewOtherError(loc Location, format string, args ...interface{}) error {
	return &diagnostic{kind: DiagOther, loc: loc, hasLoc: loc.known(), message: fmt.Sprintf(format, args...)}
}

// Diagnostic is the public view of a skim exception: its rendered title
// and detail, for callers that want to report the failure themselves
// instead of using the default caret Format.
type Diagnostic interface {
	error
	Title() string
	Detail() string
}

// AsDiagnostic type-asserts err as a skim diagnostic, for callers (the
// REPL, the batch runner) that need to distinguish a language exception
// from an unexpected internal failure.
func AsDiagnostic(err error) (Diagnostic, bool) {
	d, ok := err.(*diagnostic)
	return d, ok
}

// PrintDiagnostic writes err to w: a skim exception renders as its caret
// Format, anything else as its plain Error string. Shared by the REPL and
// the batch runner so the two surfaces report failures identically.
func PrintDiagnostic(w io.Writer, err error) {
	if d, ok := AsDiagnostic(err); ok {
		fmt.Fprintln(w, d.Error())
		return
	}
	fmt.Fprintln(w, err)
}
