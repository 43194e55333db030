// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvShadowing(t *testing.T) {
	root := NewRoot()
	root.Set("x", Number(1, Location{}))
	child := root.NewChild()
	child.Set("x", Number(2, Location{}))

	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v.Num)

	v, ok = root.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v.Num)
}

func TestEnvLookupWalksToParent(t *testing.T) {
	root := NewRoot()
	root.Set("y", Number(7, Location{}))
	child := root.NewChild()

	v, ok := child.Get("y")
	assert.True(t, ok)
	assert.Equal(t, 7.0, v.Num)
}

func TestEnvUnboundSymbol(t *testing.T) {
	root := NewRoot()
	_, ok := root.Get("nope")
	assert.False(t, ok)
}
