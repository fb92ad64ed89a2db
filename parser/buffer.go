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

/*
tokenBuffer adapts a lexer's token channel to the TokenStream interface.
Unlike a fixed-depth ring buffer it grows to whatever lookahead a caller
actually asks for, so Peek(k) works for any k (the combinators in
rule.go themselves only ever look at Peek(0)).
*/
type tokenBuffer struct {
	ch       chan Token
	buffered []Token
	done     bool
}

/*
NewTokenStream wraps a channel of Tokens, as produced by Lex, in a
TokenStream with arbitrary-depth lookahead.
*/
func NewTokenStream(ch chan Token) TokenStream {
	return &tokenBuffer{ch: ch}
}

/*
fill ensures at least upTo+1 tokens are buffered, short-circuiting once
the channel has been drained to its terminating EOF token.
*/
func (b *tokenBuffer) fill(upTo int) {
	for !b.done && len(b.buffered) <= upTo {
		tok, ok := <-b.ch
		if !ok {
			b.done = true
			return
		}

		b.buffered = append(b.buffered, tok)

		if tok.Kind == TokenEOF {
			b.done = true
		}
	}
}

/*
Peek returns the k-th upcoming token without consuming it. Once the
stream is exhausted every further Peek returns the EOF sentinel.
*/
func (b *tokenBuffer) Peek(k int) Token {
	b.fill(k)

	if k < len(b.buffered) {
		return b.buffered[k]
	}

	return eofToken
}

/*
Read consumes and returns the next token. Reading past the last buffered
EOF keeps returning the EOF sentinel rather than panicking, so a caller
that over-reads degrades gracefully.
*/
func (b *tokenBuffer) Read() Token {
	b.fill(0)

	if len(b.buffered) == 0 {
		return eofToken
	}

	tok := b.buffered[0]
	b.buffered = b.buffered[1:]
	return tok
}
