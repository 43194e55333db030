// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"fmt"
	"strings"
)

// Format renders a value the way spec.md §4.5's printer table specifies:
// Nil as "()", booleans as #t/#f, a Pair as a parenthesized list with
// dotted-pair syntax for an improper tail, and Primitive/Lambda as their
// fixed labels. Used by both `display` and the REPL's result line.
func Format(it *Item) string {
	if it.IsNil() {
		return "()"
	}
	switch it.Kind {
	case KindBoolean:
		if it.Bool {
			return "#t"
		}
		return "#f"
	case KindNumber:
		return fmt.Sprintf("%v", it.Num)
	case KindSymbol:
		return it.Sym
	case KindString:
		return it.Str
	case KindChar:
		return string(it.Ch)
	case KindVector:
		parts := make([]string, len(it.Vec))
		for i, v := range it.Vec {
			parts[i] = Format(v)
		}
		return "#(" + strings.Join(parts, " ") + ")"
	case KindPair:
		var b strings.Builder
		b.WriteByte('(')
		b.WriteString(Format(it.Pair.Car))
		b.WriteString(formatCdr(it.Pair.Cdr))
		b.WriteByte(')')
		return b.String()
	case KindPrimitive:
		return "primitive function"
	case KindLambda:
		return "lambda function"
	default:
		return "()"
	}
}

// formatCdr recurses through a pair chain's cdr, eliding the Nil
// terminator and rendering a non-list tail with dotted-pair syntax
// (spec.md §4.5).
func formatCdr(it *Item) string {
	if it.IsNil() {
		return ""
	}
	if it.Kind == KindPair {
		return " " + Format(it.Pair.Car) + formatCdr(it.Pair.Cdr)
	}
	return " . " + Format(it)
}
