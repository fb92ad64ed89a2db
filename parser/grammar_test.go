/*
 * Stone
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"errors"
	"testing"

	"github.com/krotik/stone/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorOnUnexpectedEOF(t *testing.T) {
	g := NewGrammar()
	ts := NewTokenStream(Lex("1 +"))

	_, err := g.Program.Parse(ts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrParseError))
}

func TestParseErrorOnReservedWordAsName(t *testing.T) {
	g := NewGrammar()
	ts := NewTokenStream(Lex("def if(x) { x }"))

	_, err := g.Program.Parse(ts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrParseError))
}

func TestParseErrorOnUnclosedBlock(t *testing.T) {
	g := NewGrammar()
	ts := NewTokenStream(Lex("while 1 { x = 1"))

	_, err := g.Program.Parse(ts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrParseError))
}

func TestParseStatementConsumesExactlyOneStatement(t *testing.T) {
	g := NewGrammar()
	ts := NewTokenStream(Lex("x = 1; y = 2"))

	first, err := g.ParseStatement(ts)
	require.NoError(t, err)
	assert.Equal(t, "(x = 1)", Print(first))

	second, err := g.ParseStatement(ts)
	require.NoError(t, err)
	assert.Equal(t, "(y = 2)", Print(second))

	assert.Equal(t, TokenEOF, ts.Peek(0).Kind)
}

func TestIfElseChainFlattensToPairs(t *testing.T) {
	g := NewGrammar()
	ts := NewTokenStream(Lex("if 0 { 1 } else if 1 { 2 } else { 3 }"))

	node, err := g.ParseStatement(ts)
	require.NoError(t, err)

	require.Equal(t, TagIf, node.Tag)
	require.Len(t, node.Children, 5)
	assert.Equal(t, TagBlock, node.Children[1].Tag)
	assert.Equal(t, TagBlock, node.Children[3].Tag)
	assert.Equal(t, TagBlock, node.Children[4].Tag)
}

func TestNodeLineIsFirstNonEmptyChildLocation(t *testing.T) {
	g := NewGrammar()
	ts := NewTokenStream(Lex("\n\nx = 1"))

	node, err := g.ParseStatement(ts)
	require.NoError(t, err)
	assert.Equal(t, 3, node.Line())
}
