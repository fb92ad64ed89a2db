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

import "github.com/krotik/stone/config"

/*
operators is the table expression() climbs. Assignment sits at the
lowest precedence and is right-associative, so `a = b = 1` parses as
`a = (b = 1)`; everything else is left-associative.
*/
var operators = map[string]OpInfo{
	"=":  {Precedence: 1, Assoc: Right},
	"==": {Precedence: 2, Assoc: Left},
	">":  {Precedence: 2, Assoc: Left},
	"<":  {Precedence: 2, Assoc: Left},
	"+":  {Precedence: 3, Assoc: Left},
	"-":  {Precedence: 3, Assoc: Left},
	"*":  {Precedence: 4, Assoc: Left},
	"/":  {Precedence: 4, Assoc: Left},
	"%":  {Precedence: 4, Assoc: Left},
}

/*
Grammar holds Stone's rules, built fresh by NewGrammar. They are
genuinely mutually recursive (statement embeds block, block repeats
statement), so the rules are wired together by mutating .elements after
every rule already exists, rather than relying on package-level var
initialization order.
*/
type Grammar struct {
	factor    *Rule
	primary   *Rule
	statement *Rule
	block     *Rule
	Program   *Rule
}

/*
NewGrammar builds Stone's grammar: a program is a sequence of top-level
statements. A statement is if/while/def, a nested block, or a bare
expression. Expressions climb operator precedence (expression() in
rule.go) over a factor that is a negation, a parenthesized expression, a
literal, or a primary (name optionally followed by call arguments).
*/
func NewGrammar() *Grammar {
	g := &Grammar{
		factor:    rule(""),
		primary:   rule(TagPrimary),
		statement: rule(""),
		block:     rule(TagBlock),
	}

	g.primary.elements = []Element{
		identifier(config.ReservedWords),
		repeat(g.argumentsRule()),
	}

	negative := rule(TagNegativeExpr).add(sep("-")).add(ast(g.factor))
	paren := &Rule{elements: []Element{sep("("), expression(g.factor, operators), sep(")")}}

	array := rule(TagArrayLiteral).
		add(sep("[")).
		add(option(&Rule{elements: []Element{
			expression(g.factor, operators),
			repeat(&Rule{elements: []Element{sep(","), expression(g.factor, operators)}}),
		}})).
		add(sep("]"))

	// number()/str() already produce the literal leaf; the wrapping
	// rules stay untagged so Build collapses them to the leaf itself
	// instead of nesting it inside a second node.
	g.factor.elements = []Element{
		or(
			negative,
			paren,
			array,
			rule("").add(number()),
			rule("").add(str()),
			g.primary,
		),
	}

	g.block.elements = []Element{
		sep("{"),
		repeat(g.statement),
		sep("}"),
	}

	bareExpr := &Rule{elements: []Element{expression(g.factor, operators)}}

	// A statement swallows any ';' separators that follow it. The
	// separator has to survive the lexer as a real token: without it,
	// `x = 5; -x` would read as `x = 5 - x` once the precedence climber
	// sees the minus.
	semicolons := repeat(rule("").add(sep(";")))

	g.statement.elements = []Element{
		or(g.ifStmnt(), g.whileStmnt(), g.defStmnt(), g.block, bareExpr),
		semicolons,
	}

	g.Program = rule(TagBlock).add(repeat(g.statement))

	return g
}

/*
ParseStatement parses exactly one top-level statement from ts, the unit
the driver loops over: parse one statement, evaluate it,
print its result, repeat while peek(0) != EOF.
*/
func (g *Grammar) ParseStatement(ts TokenStream) (*Node, error) {
	return g.statement.Parse(ts)
}

/*
argumentsRule matches "(" [expr ("," expr)*] ")", so a zero-argument
call is an Arguments node with no children. Arguments is the only
place call syntax appears in this grammar (the postfix of a Primary).
*/
func (g *Grammar) argumentsRule() *Rule {
	return rule(TagArguments).
		add(sep("(")).
		add(option(&Rule{elements: []Element{
			expression(g.factor, operators),
			repeat(&Rule{elements: []Element{sep(","), expression(g.factor, operators)}}),
		}})).
		add(sep(")"))
}

/*
ifStmnt is a bespoke Element rather than one built purely from or/repeat:
the If variant's children are a flat (cond, then) pair list with an
optional trailing else block, a shape the generic combinators do not
express directly (a flat list of condition/then pairs).
*/
func (g *Grammar) ifStmnt() *Rule {
	return &Rule{tag: TagIf, elements: []Element{ifElement{factor: g.factor, block: g.block}}}
}

var ifKeyword = tokenElement{literals: []string{"if"}}
var elseKeyword = tokenElement{literals: []string{"else"}}

type ifElement struct {
	factor *Rule
	block  *Rule
}

func (e ifElement) match(ts TokenStream) bool {
	return ifKeyword.match(ts)
}

func (e ifElement) parse(ts TokenStream, acc []*Node) ([]*Node, error) {
	if _, err := ifKeyword.parse(ts, nil); err != nil {
		return nil, err
	}

	cond, then, err := e.condThen(ts)
	if err != nil {
		return nil, err
	}
	acc = append(acc, cond, then)

	for elseKeyword.match(ts) {
		ts.Read()

		if !ifKeyword.match(ts) {
			elseBlock, err := e.block.Parse(ts)
			if err != nil {
				return nil, err
			}
			acc = append(acc, elseBlock)
			break
		}

		ts.Read()
		cond, then, err := e.condThen(ts)
		if err != nil {
			return nil, err
		}
		acc = append(acc, cond, then)
	}

	return acc, nil
}

func (e ifElement) condThen(ts TokenStream) (*Node, *Node, error) {
	cond, err := (&Rule{elements: []Element{expression(e.factor, operators)}}).Parse(ts)
	if err != nil {
		return nil, nil, err
	}
	then, err := e.block.Parse(ts)
	if err != nil {
		return nil, nil, err
	}
	return cond, then, nil
}

/*
whileStmnt matches "while" expr block.
*/
func (g *Grammar) whileStmnt() *Rule {
	return rule(TagWhile).
		add(sep("while")).
		add(expression(g.factor, operators)).
		add(ast(g.block))
}

/*
defStmnt matches "def" name "(" params ")" block.
*/
func (g *Grammar) defStmnt() *Rule {
	params := rule(TagParameterList).
		add(sep("(")).
		add(option(&Rule{elements: []Element{
			identifier(config.ReservedWords),
			repeat(&Rule{elements: []Element{sep(","), identifier(config.ReservedWords)}}),
		}})).
		add(sep(")"))

	return rule(TagDefStmnt).
		add(sep("def")).
		add(identifier(config.ReservedWords)).
		add(ast(params)).
		add(ast(g.block))
}
