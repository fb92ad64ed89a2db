/*
 * Stone
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutNewShadowsOuterBinding(t *testing.T) {
	global := NewEnvironment(GlobalScope)
	global.PutNew("x", 1)

	child := global.NewChild(FuncPrefix + "f")
	child.PutNew("x", 2)

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = global.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestPutUpdatesNearestEnclosingBinding(t *testing.T) {
	global := NewEnvironment(GlobalScope)
	global.PutNew("x", 10)

	child := global.NewChild(FuncPrefix + "f")

	// x is not rebound locally, so Put must walk out to the global frame.

	child.Put("x", 11)

	v, ok := global.Get("x")
	require.True(t, ok)
	assert.Equal(t, 11, v)

	_, ok = child.frameOf("x").storage["x"]
	assert.True(t, ok)
	assert.Same(t, global, child.frameOf("x"))
}

func TestPutOnUnboundNameCreatesGlobal(t *testing.T) {
	global := NewEnvironment(GlobalScope)
	child := global.NewChild(FuncPrefix + "f")
	grandchild := child.NewChild(FuncPrefix + "g")

	grandchild.Put("y", 42)

	_, ok := grandchild.storage["y"]
	assert.False(t, ok, "y must not be created in the local frame")

	v, ok := global.Get("y")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestGetUnboundName(t *testing.T) {
	env := NewEnvironment(GlobalScope)
	_, ok := env.Get("nope")
	assert.False(t, ok)
}

func TestClosureEnvironmentOutlivesActivation(t *testing.T) {
	global := NewEnvironment(GlobalScope)
	global.PutNew("n", 10)

	// A closure captures `global` directly; successive activations are
	// fresh children that do not leak into each other.
	act1 := global.NewChild(FuncPrefix + "inc")
	act1.PutNew("x", 5)

	act2 := global.NewChild(FuncPrefix + "inc")
	_, ok := act2.Get("x")
	assert.False(t, ok, "activation frames must not leak into each other")

	v, _ := act1.Get("n")
	assert.Equal(t, 10, v)
}

func TestSetDepthOverridesLexicalDepth(t *testing.T) {
	global := NewEnvironment(GlobalScope)

	// A function's activation is lexically parented to its DefiningEnv
	// (global here), not to its caller, so NewChild's default depth
	// (parent depth + 1) does not track recursion on its own; SetDepth
	// lets the call protocol carry the real depth along explicitly.
	act1 := global.NewChild(FuncPrefix + "f").SetDepth(1)
	assert.Equal(t, 1, act1.Depth())

	act2 := global.NewChild(FuncPrefix + "f").SetDepth(act1.Depth() + 1)
	assert.Equal(t, 2, act2.Depth())
	assert.Equal(t, 1, global.Depth()+1, "global itself stays at depth 0")
}
