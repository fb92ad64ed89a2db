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
)

func TestTokenStreamPeekIsIdempotent(t *testing.T) {
	ts := NewTokenStream(Lex("1 2 3"))

	assert.Equal(t, int64(1), ts.Peek(0).NumericValue)
	assert.Equal(t, int64(1), ts.Peek(0).NumericValue)
	assert.Equal(t, int64(3), ts.Peek(2).NumericValue)
	assert.Equal(t, int64(1), ts.Peek(0).NumericValue, "peeking ahead must not consume")
}

func TestTokenStreamReadAdvances(t *testing.T) {
	ts := NewTokenStream(Lex("1 2"))

	assert.Equal(t, int64(1), ts.Read().NumericValue)
	assert.Equal(t, int64(2), ts.Read().NumericValue)
	assert.Equal(t, TokenEOF, ts.Read().Kind)
}

func TestTokenStreamEOFIsSticky(t *testing.T) {
	ts := NewTokenStream(Lex("x"))

	ts.Read()
	assert.Equal(t, TokenEOF, ts.Read().Kind)
	assert.Equal(t, TokenEOF, ts.Read().Kind)
	assert.Equal(t, TokenEOF, ts.Peek(5).Kind)
}

func TestTokenStreamDeepLookahead(t *testing.T) {
	ts := NewTokenStream(Lex("a b c d e"))

	assert.Equal(t, "e", ts.Peek(4).Text)
	assert.Equal(t, "a", ts.Read().Text)
}
