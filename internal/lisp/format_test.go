// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDottedPair(t *testing.T) {
	it := Cons(Number(1, Location{}), Number(2, Location{}), Location{})
	assert.Equal(t, "(1 . 2)", Format(it))
}

func TestFormatNestedList(t *testing.T) {
	inner := MakeList([]*Item{Symbol("b", Location{}), Symbol("c", Location{})}, Location{})
	outer := MakeList([]*Item{Symbol("a", Location{}), inner}, Location{})
	assert.Equal(t, "(a (b c))", Format(outer))
}

func TestFormatEmptyList(t *testing.T) {
	assert.Equal(t, "()", Format(Nil(Location{})))
}
