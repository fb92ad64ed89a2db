/*
 * Stone
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package interpreter is the evaluator: a visitor that walks the AST
package's tagged Node tree, dispatching on Node.Tag, threading a current
scope.Environment and returning a Value.
*/
package interpreter

import (
	"bytes"
	"fmt"

	"github.com/krotik/stone/parser"
	"github.com/krotik/stone/scope"
)

/*
Kind classifies a Value.
*/
type Kind int

const (
	KindInteger Kind = iota
	KindString
	KindFunction
	KindArray
	KindNil
)

/*
Value is Stone's only data type: a tagged union of Integer, String,
Function, Array, or Nil. The zero Value has Kind KindInteger and reads as
Integer 0; the Nil variant is the Nil var below.
*/
type Value struct {
	Kind     Kind
	Integer  int64
	Text     string
	Function *Function
	Elements []Value
}

/*
Nil is the value produced by statements and expressions that have
nothing more specific to return (an empty Block, a While loop that
never ran its body).
*/
var Nil = Value{Kind: KindNil}

/*
NewInteger wraps an int64 as an Integer value.
*/
func NewInteger(i int64) Value {
	return Value{Kind: KindInteger, Integer: i}
}

/*
NewString wraps a string as a String value.
*/
func NewString(s string) Value {
	return Value{Kind: KindString, Text: s}
}

/*
NewFunction wraps a Function as a Function value.
*/
func NewFunction(f *Function) Value {
	return Value{Kind: KindFunction, Function: f}
}

/*
NewArray wraps a slice of Values as an Array value. elements is kept by
reference; callers that build an Array from a shared slice should pass a
copy if they mutate it afterwards.
*/
func NewArray(elements []Value) Value {
	return Value{Kind: KindArray, Elements: elements}
}

/*
Function is a closure: the parameter list and body are borrowed from the
AST that defined it (the top-level tree owns them for its lifetime);
DefiningEnv is the environment in force when the def statement ran, kept
alive for as long as the function value is reachable.
*/
type Function struct {
	Name        string
	Parameters  *parser.Node
	Body        *parser.Node
	DefiningEnv *scope.Environment

	// native and nativeParams are set instead of Parameters/Body for a
	// function registered via RegisterNative; see call.go.
	native       NativeBody
	nativeParams []string
}

/*
AsBool implements truthiness: Integer is true iff non-zero, String is
true iff non-empty, Function is always true, Array is true iff
non-empty, Nil is always false.
*/
func (v Value) AsBool() bool {
	switch v.Kind {
	case KindInteger:
		return v.Integer != 0
	case KindString:
		return v.Text != ""
	case KindFunction:
		return true
	case KindArray:
		return len(v.Elements) != 0
	default:
		return false
	}
}

/*
AsString renders any Value as text: integers decimalised, strings
verbatim, functions as an opaque label, arrays bracketed and
comma-separated, Nil as "nil".
*/
func (v Value) AsString() string {
	switch v.Kind {
	case KindInteger:
		return fmt.Sprintf("%d", v.Integer)
	case KindString:
		return v.Text
	case KindFunction:
		name := v.Function.Name
		if name == "" {
			name = "anonymous"
		}
		return fmt.Sprintf("<function %s>", name)
	case KindArray:
		var buf bytes.Buffer
		buf.WriteString("[")
		for i, e := range v.Elements {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(e.AsString())
		}
		buf.WriteString("]")
		return buf.String()
	default:
		return "nil"
	}
}

/*
Equal implements Stone's "==": structural equality within a variant,
false across variants (a Function is only equal to itself; an Array is
equal to another Array iff the same length and equal element-wise).
*/
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindInteger:
		return v.Integer == other.Integer
	case KindString:
		return v.Text == other.Text
	case KindFunction:
		return v.Function == other.Function
	case KindArray:
		if len(v.Elements) != len(other.Elements) {
			return false
		}
		for i := range v.Elements {
			if !v.Elements[i].Equal(other.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return true // Nil == Nil
	}
}
