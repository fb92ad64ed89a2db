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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *Node {
	t.Helper()
	g := NewGrammar()
	ts := NewTokenStream(Lex(src))
	node, err := g.Program.Parse(ts)
	require.NoError(t, err)
	return node
}

func TestPrintLeaf(t *testing.T) {
	node := parseProgram(t, "42")
	assert.Equal(t, "(42)", Print(node))
}

func TestPrintBinaryExpr(t *testing.T) {
	node := parseProgram(t, "1 + 2 * 3")
	assert.Equal(t, "((1 + (2 * 3)))", Print(node))
}

func TestPrintEqualPrecedenceAssociatesLeft(t *testing.T) {
	node := parseProgram(t, "1 - 2 + 3")
	assert.Equal(t, "(((1 - 2) + 3))", Print(node))
}

func TestPrintAssignmentAssociatesRight(t *testing.T) {
	node := parseProgram(t, "a = b = 1")
	assert.Equal(t, "((a = (b = 1)))", Print(node))
}

func TestPrintRoundTripIsStable(t *testing.T) {
	src := `x = 0; i = 1; while i < 5 { x = x + i; i = i + 1 }; x`

	first := Print(parseProgram(t, src))
	second := Print(parseProgram(t, src))

	assert.Equal(t, first, second)
}

func TestPrintDefAndCall(t *testing.T) {
	node := parseProgram(t, "def add(a, b) { a + b }; add(3, 4)")
	printed := Print(node)

	assert.Contains(t, printed, "add")
	assert.Contains(t, printed, "(3 4)")
}

func TestPrintZeroArgumentCallIsNotCollapsedToLeaf(t *testing.T) {
	node := parseProgram(t, "def f() { 1 }; f()")
	printed := Print(node)

	assert.Contains(t, printed, "(f ())")
}

func TestPrintEmptyArrayLiteral(t *testing.T) {
	node := parseProgram(t, "[]")
	assert.Equal(t, "(())", Print(node))
}
