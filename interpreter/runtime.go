/*
 * Stone
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"github.com/krotik/stone/parser"
	"github.com/krotik/stone/scope"
	"github.com/krotik/stone/util"
)

/*
evalFunc evaluates one Node variant given the current environment.
*/
type evalFunc func(n *parser.Node, env *scope.Environment) (Value, error)

/*
dispatch maps a Node's Tag to the function that evaluates it. This
mirrors a classic tag-to-handler provider map: it decouples the AST
package (which only knows tags and child shapes) from the evaluator
(which knows what each tag means).
*/
var dispatch map[parser.Tag]evalFunc

func init() {
	dispatch = map[parser.Tag]evalFunc{
		parser.TagNumberLiteral: evalNumberLiteral,
		parser.TagStringLiteral: evalStringLiteral,
		parser.TagName:          evalName,
		parser.TagNegativeExpr:  evalNegativeExpr,
		parser.TagBinaryExpr:    evalBinaryExpr,
		parser.TagBlock:         evalBlock,
		parser.TagIf:            evalIf,
		parser.TagWhile:         evalWhile,
		parser.TagPrimary:       evalPrimary,
		parser.TagDefStmnt:      evalDefStmnt,
		parser.TagArrayLiteral:  evalArrayLiteral,
	}
}

/*
Evaluate is the evaluator's single entry point: dispatch on node
variant, thread env explicitly, return a Value or the first error
encountered. There is no implicit "current environment" anywhere in
this package; it is always an explicit argument.
*/
func Evaluate(n *parser.Node, env *scope.Environment) (Value, error) {
	f, ok := dispatch[n.Tag]
	if !ok {
		return Nil, util.NewRuntimeError("interpreter", util.ErrTypeError,
			"no evaluator for node tag "+string(n.Tag), n.Line())
	}
	return f(n, env)
}

func evalNumberLiteral(n *parser.Node, env *scope.Environment) (Value, error) {
	return NewInteger(n.Token.NumericValue), nil
}

func evalStringLiteral(n *parser.Node, env *scope.Environment) (Value, error) {
	return NewString(n.Token.Text), nil
}

func evalName(n *parser.Node, env *scope.Environment) (Value, error) {
	v, ok := env.Get(n.Token.Text)
	if !ok {
		return Nil, util.NewRuntimeError("interpreter", util.ErrUndefinedName, n.Token.Text, n.Line())
	}
	return v.(Value), nil
}

func evalNegativeExpr(n *parser.Node, env *scope.Environment) (Value, error) {
	operand, err := Evaluate(n.Children[0], env)
	if err != nil {
		return Nil, err
	}
	if operand.Kind != KindInteger {
		return Nil, util.NewRuntimeError("interpreter", util.ErrTypeError, "bad type for -", n.Line())
	}
	return NewInteger(-operand.Integer), nil
}

func evalBlock(n *parser.Node, env *scope.Environment) (Value, error) {
	result := Nil
	for _, child := range n.Children {
		v, err := Evaluate(child, env)
		if err != nil {
			return Nil, err
		}
		result = v
	}
	return result, nil
}

/*
evalIf walks the flattened (cond, then) pair list an If node carries,
evaluating conditions left to right; on the first true one it evaluates
and returns that then-block. An odd trailing child (no matching
condition) is the optional final else-block.
*/
func evalIf(n *parser.Node, env *scope.Environment) (Value, error) {
	children := n.Children
	i := 0
	for i+1 < len(children) {
		cond, err := Evaluate(children[i], env)
		if err != nil {
			return Nil, err
		}
		if cond.AsBool() {
			return Evaluate(children[i+1], env)
		}
		i += 2
	}
	if i < len(children) {
		return Evaluate(children[i], env)
	}
	return Nil, nil
}

func evalWhile(n *parser.Node, env *scope.Environment) (Value, error) {
	cond, body := n.Children[0], n.Children[1]
	result := Nil

	for {
		c, err := Evaluate(cond, env)
		if err != nil {
			return Nil, err
		}
		if !c.AsBool() {
			return result, nil
		}
		result, err = Evaluate(body, env)
		if err != nil {
			return Nil, err
		}
	}
}

/*
evalPrimary resolves the head Name and then folds each postfix
Arguments node in order (left to right), so `f(1)(2)` first calls f with
1 and then calls whatever that returned with 2.
*/
func evalPrimary(n *parser.Node, env *scope.Environment) (Value, error) {
	current, err := evalName(n.Children[0], env)
	if err != nil {
		return Nil, err
	}

	for _, postfix := range n.Children[1:] {
		current, err = callWithArguments(current, postfix, env, n.Line())
		if err != nil {
			return Nil, err
		}
	}

	return current, nil
}

/*
evalArrayLiteral evaluates each element expression left to right and
wraps the results as an Array value.
*/
func evalArrayLiteral(n *parser.Node, env *scope.Environment) (Value, error) {
	elements := make([]Value, len(n.Children))
	for i, child := range n.Children {
		v, err := Evaluate(child, env)
		if err != nil {
			return Nil, err
		}
		elements[i] = v
	}
	return NewArray(elements), nil
}

func evalDefStmnt(n *parser.Node, env *scope.Environment) (Value, error) {
	name := n.Children[0].Token.Text
	fn := &Function{
		Name:        name,
		Parameters:  n.Children[1],
		Body:        n.Children[2],
		DefiningEnv: env,
	}
	env.PutNew(name, NewFunction(fn))
	return NewString(name), nil
}
