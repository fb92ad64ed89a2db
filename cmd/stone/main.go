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
Command stone is the reference driver for the interpreter: run a script
file ("stone run <script>") or start an interactive session
("stone repl").
*/
package main

import (
	"fmt"
	"os"

	"github.com/krotik/stone/cli"
	"github.com/krotik/stone/config"
	"github.com/krotik/stone/util"
	"github.com/spf13/cobra"
)

func main() {
	var logLevel string
	var trace bool

	root := &cobra.Command{
		Use:     "stone",
		Short:   "Stone is a small tree-walking interpreter",
		Version: config.ProductVersion,
	}

	runCmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a Stone source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(logLevel, trace)
			if err != nil {
				return err
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			return cli.NewDriver(os.Stdout, log).RunSource(string(src), os.Stdout)
		},
	}
	runCmd.Flags().StringVar(&logLevel, "log-level", "Info", "log level (Debug, Info, Error)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "log every evaluated statement at debug level")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Stone session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(logLevel, trace)
			if err != nil {
				return err
			}

			cli.NewDriver(os.Stdout, log).RunREPL(os.Stdin, os.Stdout)
			return nil
		},
	}
	replCmd.Flags().StringVar(&logLevel, "log-level", "Info", "log level (Debug, Info, Error)")

	root.AddCommand(runCmd, replCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

/*
newLogger builds the stdout logger the run/repl subcommands share.
--trace forces Debug level regardless of --log-level, since tracing
every statement is only useful alongside debug-level output.
*/
func newLogger(level string, trace bool) (util.Logger, error) {
	if trace {
		level = "Debug"
	}
	return util.NewLogLevelLogger(util.NewStdOutLogger(), level)
}
