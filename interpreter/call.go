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
	"errors"
	"fmt"

	"github.com/krotik/stone/config"
	"github.com/krotik/stone/parser"
	"github.com/krotik/stone/scope"
	"github.com/krotik/stone/util"
)

/*
NativeBody is a host-language function bound into an environment via
RegisterNative. It receives the activation environment (parameters
already populated) and returns the call's result.
*/
type NativeBody func(env *scope.Environment) (Value, error)

/*
RegisterNative binds a host function under name in env. Once bound it
is indistinguishable, from the evaluator's point of view, from a
Stone-defined function: invoking it still goes through the standard
call protocol (arity check, fresh activation, argument binding) except
the activation is evaluated by calling body instead of walking an AST.
*/
func RegisterNative(env *scope.Environment, name string, parameterNames []string, body NativeBody) {
	env.PutNew(name, NewFunction(&Function{
		Name:         name,
		DefiningEnv:  env,
		native:       body,
		nativeParams: parameterNames,
	}))
}

/*
callWithArguments implements the call protocol: current
must already be a Function; postfix is the Arguments node supplying the
call's argument expressions, evaluated in the caller's environment
before any of them are bound.
*/
func callWithArguments(current Value, postfix *parser.Node, env *scope.Environment, line int) (Value, error) {
	if current.Kind != KindFunction {
		return Nil, util.NewRuntimeError("interpreter", util.ErrTypeError, "not a function", line)
	}
	fn := current.Function

	paramNames := fn.parameterNames()
	if len(postfix.Children) != len(paramNames) {
		return Nil, util.NewRuntimeError("interpreter", util.ErrArityError, fn.Name, line)
	}

	depth := env.Depth() + 1
	if depth > config.Int(config.MaxCallDepth) {
		return Nil, util.NewRuntimeError("interpreter", util.ErrRecursionError, fn.Name, line)
	}

	args := make([]Value, len(postfix.Children))
	for i, argExpr := range postfix.Children {
		v, err := Evaluate(argExpr, env)
		if err != nil {
			return Nil, err
		}
		args[i] = v
	}

	activation := fn.DefiningEnv.NewChild(scope.FuncPrefix + fn.Name).SetDepth(depth)
	for i, name := range paramNames {
		activation.PutNew(name, args[i])
	}

	if fn.native != nil {
		return fn.native(activation)
	}

	res, err := Evaluate(fn.Body, activation)
	if err != nil {
		var te util.TraceableError
		if errors.As(err, &te) {
			te.AddTrace(fmt.Sprintf("%s() (Line:%d)", fn.Name, line))
		}
		return Nil, err
	}
	return res, nil
}

/*
parameterNames returns a Stone-defined function's parameter names from
its borrowed ParameterList node, or a native function's fixed list.
*/
func (f *Function) parameterNames() []string {
	if f.native != nil {
		return f.nativeParams
	}
	names := make([]string, len(f.Parameters.Children))
	for i, p := range f.Parameters.Children {
		names[i] = p.Token.Text
	}
	return names
}
