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
	"fmt"

	"github.com/krotik/common/errorutil"
	"github.com/krotik/stone/parser"
	"github.com/krotik/stone/scope"
	"github.com/krotik/stone/util"
)

/*
evalBinaryExpr evaluates a binary expression. Assignment is
special-cased before either operand is evaluated generically, since its
left child is a target, not a value to compute.
*/
func evalBinaryExpr(n *parser.Node, env *scope.Environment) (Value, error) {
	errorutil.AssertTrue(len(n.Children) == 3,
		fmt.Sprintf("BinaryExpr must have 3 children, got %d", len(n.Children)))

	left, opLeaf, right := n.Children[0], n.Children[1], n.Children[2]
	op := opLeaf.Token.Text

	if op == "=" {
		return evalAssign(left, right, env, n.Line())
	}

	leftVal, err := Evaluate(left, env)
	if err != nil {
		return Nil, err
	}
	rightVal, err := Evaluate(right, env)
	if err != nil {
		return Nil, err
	}

	return applyOperator(op, leftVal, rightVal, n.Line())
}

/*
assignTargetName recognizes a bare name used as an assignment target.
Anything else on the left of "=" (a literal, an operator result, a call
chain) is rejected by the caller.
*/
func assignTargetName(n *parser.Node) (string, bool) {
	if n.Tag != parser.TagName {
		return "", false
	}
	return n.Token.Text, true
}

func evalAssign(left *parser.Node, right *parser.Node, env *scope.Environment, line int) (Value, error) {

	// The right side is computed before the target is validated, so its
	// side effects happen even when the assignment itself then fails.

	rightVal, err := Evaluate(right, env)
	if err != nil {
		return Nil, err
	}

	name, ok := assignTargetName(left)
	if !ok {
		return Nil, util.NewRuntimeError("interpreter", util.ErrAssignTargetError, "", line)
	}

	env.Put(name, rightVal)
	return rightVal, nil
}

func applyOperator(op string, left, right Value, line int) (Value, error) {
	if op == "==" {
		if left.Equal(right) {
			return NewInteger(1), nil
		}
		return NewInteger(0), nil
	}

	if left.Kind == KindInteger && right.Kind == KindInteger {
		return applyIntegerOperator(op, left.Integer, right.Integer, line)
	}

	if op == "+" {
		return NewString(left.AsString() + right.AsString()), nil
	}

	return Nil, util.NewRuntimeError("interpreter", util.ErrTypeError, "bad type", line)
}

func applyIntegerOperator(op string, left, right int64, line int) (Value, error) {
	switch op {
	case "+":
		return NewInteger(left + right), nil
	case "-":
		return NewInteger(left - right), nil
	case "*":
		return NewInteger(left * right), nil
	case "/":
		if right == 0 {
			return Nil, util.NewRuntimeError("interpreter", util.ErrDivideByZero, "", line)
		}
		return NewInteger(left / right), nil
	case "%":
		if right == 0 {
			return Nil, util.NewRuntimeError("interpreter", util.ErrDivideByZero, "", line)
		}
		return NewInteger(left % right), nil
	case ">":
		return boolInt(left > right), nil
	case "<":
		return boolInt(left < right), nil
	default:
		return Nil, util.NewRuntimeError("interpreter", util.ErrBadOperator, op, line)
	}
}

func boolInt(b bool) Value {
	if b {
		return NewInteger(1)
	}
	return NewInteger(0)
}
