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
Package cli wires the core (parser + interpreter) to a terminal: a
read-eval-print loop that implements the driver contract (parse
one top-level statement, evaluate it, print its AST form and result, and
keep going after an error instead of aborting the session).
*/
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/krotik/stone/interpreter"
	"github.com/krotik/stone/parser"
	"github.com/krotik/stone/scope"
	"github.com/krotik/stone/util"
)

/*
Driver runs Stone source against a persistent global environment, one
top-level statement at a time. A single Driver is meant to back either
an interactive session or a non-interactive file run; both share the
same environment so native bindings registered up front are visible to
whatever source follows.
*/
type Driver struct {
	env     *scope.Environment
	grammar *parser.Grammar
	log     util.Logger
}

/*
NewDriver creates a Driver with a fresh global environment and the
"print" native binding wired in, the one piece of host glue the
specification explicitly leaves to the driver.
*/
func NewDriver(out io.Writer, log util.Logger) *Driver {
	env := scope.NewEnvironment(scope.GlobalScope)

	interpreter.RegisterNative(env, "print", []string{"value"}, func(activation *scope.Environment) (interpreter.Value, error) {
		v, _ := activation.Get("value")
		fmt.Fprintln(out, v.(interpreter.Value).AsString())
		return interpreter.Nil, nil
	})

	// log/error/debug mirror the print binding but route through the
	// driver's Logger instead of straight to out, so scripts can emit
	// leveled diagnostics without owning an output stream.
	interpreter.RegisterNative(env, "log", []string{"value"}, func(activation *scope.Environment) (interpreter.Value, error) {
		v, _ := activation.Get("value")
		log.LogInfo(v.(interpreter.Value).AsString())
		return interpreter.Nil, nil
	})
	interpreter.RegisterNative(env, "error", []string{"value"}, func(activation *scope.Environment) (interpreter.Value, error) {
		v, _ := activation.Get("value")
		log.LogError(v.(interpreter.Value).AsString())
		return interpreter.Nil, nil
	})
	interpreter.RegisterNative(env, "debug", []string{"value"}, func(activation *scope.Environment) (interpreter.Value, error) {
		v, _ := activation.Get("value")
		log.LogDebug(v.(interpreter.Value).AsString())
		return interpreter.Nil, nil
	})

	return &Driver{
		env:     env,
		grammar: parser.NewGrammar(),
		log:     log,
	}
}

/*
RunSource parses and evaluates every top-level statement in src against
this Driver's environment, printing "astRepresentation => result" for
each to out. A parse or evaluation error is logged and ends this call
(but not the Driver: the environment and token-stream discipline allow a
fresh RunSource call afterward).
*/
func (d *Driver) RunSource(src string, out io.Writer) error {
	ts := parser.NewTokenStream(parser.Lex(src))

	for ts.Peek(0).Kind != parser.TokenEOF {
		stmnt, err := d.grammar.ParseStatement(ts)
		if err != nil {
			d.log.LogError(err)
			return err
		}
		d.log.LogDebug("evaluating ", parser.Print(stmnt))

		result, err := interpreter.Evaluate(stmnt, d.env)
		if err != nil {
			d.log.LogError(err)
			return err
		}

		fmt.Fprintf(out, "%s => %s\n", parser.Print(stmnt), result.AsString())
	}

	return nil
}

/*
RunREPL reads statements from in one line at a time (a line is enough
for every construct this grammar accepts without embedded newlines
inside a block; multi-line blocks are read by accumulating lines until
braces balance) and evaluates each against the Driver's environment,
printing prompts to out.
*/
func (d *Driver) RunREPL(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var pending strings.Builder
	depth := 0

	fmt.Fprint(out, "stone> ")

	for scanner.Scan() {
		line := scanner.Text()
		pending.WriteString(line)
		pending.WriteString("\n")
		depth += strings.Count(line, "{") - strings.Count(line, "}")

		if depth > 0 {
			fmt.Fprint(out, "   ... ")
			continue
		}

		src := pending.String()
		pending.Reset()
		depth = 0

		if strings.TrimSpace(src) != "" {
			if err := d.RunSource(src, out); err != nil {
				fmt.Fprintln(out, err)
			}
		}

		fmt.Fprint(out, "stone> ")
	}
}
