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
	"fmt"

	"github.com/krotik/stone/util"
)

/*
Element is one step of a Rule: given a TokenStream it decides whether it
could start here (match) and, if so, consumes whatever tokens it needs
and appends any child nodes it produced to an accumulator.
*/
type Element interface {

	/*
		match reports whether this element could begin at the current
		position, examining only ts.Peek(0). It must not consume input.
	*/
	match(ts TokenStream) bool

	/*
		parse consumes the tokens this element owns and appends zero or
		more child nodes to acc, returning the updated accumulator.
	*/
	parse(ts TokenStream, acc []*Node) ([]*Node, error)
}

/*
Rule is a named sequence of Elements. Once every element of the sequence
has parsed, the accumulated children are handed to the tag's factory to
build one Node. Rules are mutually recursive by construction: a Rule can
embed itself (directly or indirectly) via ast(), since Elements only
need a reference at parse time, not at construction time.
*/
type Rule struct {
	tag      Tag
	elements []Element
}

/*
rule creates an empty rule under the given tag. Elements built by the
combinator functions below are appended with add; the order of calls is
the expected order of tokens.
*/
func rule(tag Tag) *Rule {
	return &Rule{tag: tag}
}

/*
add appends an element and returns the rule, so construction reads as a
fluent chain: rule(tag).add(number()).add(sep("+")).add(number()).
*/
func (r *Rule) add(e Element) *Rule {
	r.elements = append(r.elements, e)
	return r
}

/*
Match reports whether this rule could begin at the current position:
true if it has no elements, otherwise true iff its first element
matches. It examines only ts.Peek(0) and never consumes input.
*/
func (r *Rule) Match(ts TokenStream) bool {
	if len(r.elements) == 0 {
		return true
	}
	return r.elements[0].match(ts)
}

/*
Parse consumes tokens for every element in sequence and builds one Node
tagged with this rule's tag from the accumulated children. A rule with
no elements produces an empty-children node (used for an empty Block).
*/
func (r *Rule) Parse(ts TokenStream) (*Node, error) {
	var acc []*Node
	var err error

	for _, e := range r.elements {
		if acc, err = e.parse(ts, acc); err != nil {
			return nil, err
		}
	}

	return Build(r.tag, acc), nil
}

// Leaf-matching elements
// =======================

type numberElement struct{}

func (numberElement) match(ts TokenStream) bool {
	return ts.Peek(0).Kind == TokenNumber
}

func (numberElement) parse(ts TokenStream, acc []*Node) ([]*Node, error) {
	tok := ts.Peek(0)
	if tok.Kind != TokenNumber {
		return nil, parseError(tok, "expected a number")
	}
	ts.Read()
	return append(acc, NewLeaf(TagNumberLiteral, tok)), nil
}

/*
number matches one Number token and produces a NumberLiteral leaf.
*/
func number() Element { return numberElement{} }

type stringElement struct{}

func (stringElement) match(ts TokenStream) bool {
	return ts.Peek(0).Kind == TokenString
}

func (stringElement) parse(ts TokenStream, acc []*Node) ([]*Node, error) {
	tok := ts.Peek(0)
	if tok.Kind != TokenString {
		return nil, parseError(tok, "expected a string")
	}
	ts.Read()
	return append(acc, NewLeaf(TagStringLiteral, tok)), nil
}

/*
str matches one String token and produces a StringLiteral leaf.
*/
func str() Element { return stringElement{} }

type identifierElement struct {
	reserved map[string]bool
}

func (e identifierElement) match(ts TokenStream) bool {
	tok := ts.Peek(0)
	if tok.Kind != TokenIdentifier || e.reserved[tok.Text] || tok.Text == "" {
		return false
	}
	// Operators and punctuation are Identifier tokens too; only a
	// name-shaped token can be a Name.
	return isIdentStart([]rune(tok.Text)[0])
}

func (e identifierElement) parse(ts TokenStream, acc []*Node) ([]*Node, error) {
	tok := ts.Peek(0)
	if !e.match(ts) {
		return nil, parseError(tok, "expected a name")
	}
	ts.Read()
	return append(acc, NewLeaf(TagName, tok)), nil
}

/*
identifier matches one name-shaped Identifier token (not an operator or
punctuation symbol) whose text is not in reserved, producing a Name leaf.
*/
func identifier(reserved map[string]bool) Element {
	return identifierElement{reserved: reserved}
}

type tokenElement struct {
	literals []string
	produce  bool
}

func (e tokenElement) match(ts TokenStream) bool {
	tok := ts.Peek(0)
	if tok.Kind != TokenIdentifier {
		return false
	}
	for _, lit := range e.literals {
		if tok.Text == lit {
			return true
		}
	}
	return false
}

func (e tokenElement) parse(ts TokenStream, acc []*Node) ([]*Node, error) {
	if !e.match(ts) {
		return nil, parseError(ts.Peek(0), fmt.Sprintf("expected one of %v", e.literals))
	}
	tok := ts.Read()
	if e.produce {
		return append(acc, NewLeaf(TagOperator, tok)), nil
	}
	return acc, nil
}

/*
token matches one Identifier token equal to one of literals, producing a
generic leaf child carrying the matched token.
*/
func token(literals ...string) Element {
	return tokenElement{literals: literals, produce: true}
}

/*
sep matches the same as token but consumes and produces no child; used
for punctuation that carries no information (commas, braces, keywords
whose presence is already implied by the rule they appear in).
*/
func sep(literals ...string) Element {
	return tokenElement{literals: literals, produce: false}
}

// Structural combinators
// =======================

type astElement struct {
	sub *Rule
}

func (e astElement) match(ts TokenStream) bool {
	return e.sub.Match(ts)
}

func (e astElement) parse(ts TokenStream, acc []*Node) ([]*Node, error) {
	node, err := e.sub.Parse(ts)
	if err != nil {
		return nil, err
	}
	return append(acc, node), nil
}

/*
ast embeds another rule as a single child node.
*/
func ast(sub *Rule) Element {
	return astElement{sub: sub}
}

type orElement struct {
	alternatives []*Rule
}

func (e orElement) match(ts TokenStream) bool {
	for _, alt := range e.alternatives {
		if alt.Match(ts) {
			return true
		}
	}
	return false
}

func (e orElement) parse(ts TokenStream, acc []*Node) ([]*Node, error) {
	for _, alt := range e.alternatives {
		if alt.Match(ts) {
			node, err := alt.Parse(ts)
			if err != nil {
				return nil, err
			}
			return append(acc, node), nil
		}
	}
	return nil, parseError(ts.Peek(0), "no alternative matches")
}

/*
or chooses the first alternative whose first-set matches peek(0);
ambiguity is resolved by the source order of alternatives.
*/
func or(alternatives ...*Rule) Element {
	return orElement{alternatives: alternatives}
}

type repeatElement struct {
	sub *Rule
}

func (e repeatElement) match(ts TokenStream) bool {
	// repeat always matches: zero repetitions is a legal parse.
	return true
}

func (e repeatElement) parse(ts TokenStream, acc []*Node) ([]*Node, error) {
	for e.sub.Match(ts) {
		node, err := e.sub.Parse(ts)
		if err != nil {
			return nil, err
		}
		// An empty Block-shaped repetition (zero children) is filtered
		// out so it does not clutter the parent's child list.
		if node.Tag == TagBlock && len(node.Children) == 0 {
			continue
		}
		// An untagged "bag" node (see Build) is a grouping rule, not a
		// variant: splice its children into this accumulator instead of
		// nesting it one level deeper.
		if node.Tag == "" {
			acc = append(acc, node.Children...)
			continue
		}
		acc = append(acc, node)
	}
	return acc, nil
}

/*
repeat matches zero or more occurrences of sub.
*/
func repeat(sub *Rule) Element {
	return repeatElement{sub: sub}
}

type optionElement struct {
	sub *Rule
}

func (e optionElement) match(ts TokenStream) bool {
	return true
}

func (e optionElement) parse(ts TokenStream, acc []*Node) ([]*Node, error) {
	if !e.sub.Match(ts) {
		return acc, nil
	}
	node, err := e.sub.Parse(ts)
	if err != nil {
		return nil, err
	}
	if node.Tag == "" {
		return append(acc, node.Children...), nil
	}
	return append(acc, node), nil
}

/*
option matches zero or one occurrence of sub.
*/
func option(sub *Rule) Element {
	return optionElement{sub: sub}
}

// Operator-precedence sub-parser
// ================================

/*
Assoc is the associativity of a binary operator.
*/
type Assoc int

const (
	Left Assoc = iota
	Right
)

/*
OpInfo is one entry of the operator table passed to expression():
precedence (higher binds tighter) and associativity.
*/
type OpInfo struct {
	Precedence int
	Assoc      Assoc
}

type expressionElement struct {
	factor    *Rule
	operators map[string]OpInfo
}

func (e expressionElement) match(ts TokenStream) bool {
	return e.factor.Match(ts)
}

func (e expressionElement) parse(ts TokenStream, acc []*Node) ([]*Node, error) {
	node, err := e.parseExpr(ts, 0)
	if err != nil {
		return nil, err
	}
	return append(acc, node), nil
}

/*
parseExpr implements the shunting loop described in the component design:
parse one factor, then while the upcoming operator binds at least as
tightly as the minimum precedence passed in, fold it in (recursing on the
right operand first for operators that bind tighter still).
*/
func (e expressionElement) parseExpr(ts TokenStream, minPrec int) (*Node, error) {
	left, err := e.factor.Parse(ts)
	if err != nil {
		return nil, err
	}

	for {
		tok := ts.Peek(0)
		if tok.Kind != TokenIdentifier {
			break
		}

		info, ok := e.operators[tok.Text]
		if !ok || info.Precedence < minPrec {
			break
		}

		ts.Read()
		opLeaf := NewLeaf(TagOperator, tok)

		nextMin := info.Precedence + 1
		if info.Assoc == Right {
			nextMin = info.Precedence
		}

		right, err := e.parseExpr(ts, nextMin)
		if err != nil {
			return nil, err
		}

		left = Build(TagBinaryExpr, []*Node{left, opLeaf, right})
	}

	return left, nil
}

/*
expression builds an operator-precedence parser out of a factor rule
(the operand production) and an operator table mapping operator symbol
to its precedence/associativity. Assignment is expected to be the lowest
precedence, right-associative entry in operators.
*/
func expression(factor *Rule, operators map[string]OpInfo) Element {
	return expressionElement{factor: factor, operators: operators}
}

// Errors
// ======

func parseError(tok Token, detail string) error {
	msg := detail
	if tok.Kind == TokenEOF {
		msg = detail + " (unexpected end of input)"
	} else {
		msg = fmt.Sprintf("%s, found %v", detail, tok)
	}
	return util.NewRuntimeError("parser", util.ErrParseError, msg, tok.Line)
}
