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
Package util contains utility definitions and functions for the Stone
interpreter core: the error taxonomy and logging facilities shared by the
parser and the evaluator.
*/
package util

import (
	"encoding/json"
	"errors"
	"fmt"
)

/*
Error kinds a Stone program can raise. Compare with errors.Is against the
Type field of a RuntimeError, or use errors.Is(err, util.ErrXXX) directly
since RuntimeError implements Unwrap.
*/
var (
	ErrParseError        = errors.New("Parse error")
	ErrUndefinedName     = errors.New("Undefined name")
	ErrTypeError         = errors.New("Type error")
	ErrAssignTargetError = errors.New("Left side of assignment is not a name")
	ErrArityError        = errors.New("Wrong number of arguments")
	ErrRecursionError    = errors.New("Call depth exceeded")
	ErrBadOperator       = errors.New("Unknown operator")
	ErrDivideByZero      = errors.New("Division by zero")
)

/*
TraceableError can record and show a call stack trace.
*/
type TraceableError interface {
	error

	/*
		AddTrace adds a trace step. label is typically the called
		function's name paired with the call's source line.
	*/
	AddTrace(label string)

	/*
		GetTrace returns the current stack trace, innermost call first.
	*/
	GetTrace() []string
}

/*
RuntimeError is the error type raised by the parser and the evaluator. It
carries the offending error kind (Type), a human-readable Detail and the
Line of the input the error refers to.
*/
type RuntimeError struct {
	Source string   // Component that raised the error ("parser" or "interpreter")
	Type   error    // One of the ErrXXX sentinels above
	Detail string   // Human-readable detail message
	Line   int      // Source line of the offending construct (0 if unknown)
	Trace  []string // Stack trace, innermost call first
}

/*
NewRuntimeError creates a new RuntimeError object.
*/
func NewRuntimeError(source string, kind error, detail string, line int) error {
	return &RuntimeError{source, kind, detail, line, nil}
}

/*
Error returns a human-readable string representation of this error.
*/
func (re *RuntimeError) Error() string {
	ret := fmt.Sprintf("Stone error in %s: %v (%v)", re.Source, re.Type, re.Detail)

	if re.Line != 0 {

		// Add line if available

		ret = fmt.Sprintf("%s (Line:%d)", ret, re.Line)
	}

	return ret
}

/*
Unwrap exposes the Type sentinel so errors.Is(err, util.ErrXXX) works
without callers having to type-assert to *RuntimeError first.
*/
func (re *RuntimeError) Unwrap() error {
	return re.Type
}

/*
AddTrace adds a trace step.
*/
func (re *RuntimeError) AddTrace(label string) {
	re.Trace = append(re.Trace, label)
}

/*
GetTrace returns the current stack trace, innermost call first.
*/
func (re *RuntimeError) GetTrace() []string {
	return re.Trace
}

/*
ToJSONObject returns this RuntimeError as a JSON object.
*/
func (re *RuntimeError) ToJSONObject() map[string]interface{} {
	t := ""
	if re.Type != nil {
		t = re.Type.Error()
	}
	return map[string]interface{}{
		"Source": re.Source,
		"Type":   t,
		"Detail": re.Detail,
		"Line":   re.Line,
		"Trace":  re.Trace,
	}
}

/*
MarshalJSON serializes this RuntimeError into a JSON string.
*/
func (re *RuntimeError) MarshalJSON() ([]byte, error) {
	return json.Marshal(re.ToJSONObject())
}
