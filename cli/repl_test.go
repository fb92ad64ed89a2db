/*
 * Stone
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/krotik/stone/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSourcePrintsResults(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(&out, util.NewNullLogger())

	err := d.RunSource("1 + 2", &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "=> 3")
}

func TestRunSourceSharesEnvironmentAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(&out, util.NewNullLogger())

	require.NoError(t, d.RunSource("x = 10", &out))
	out.Reset()
	require.NoError(t, d.RunSource("x + 1", &out))

	assert.Contains(t, out.String(), "=> 11")
}

func TestRunSourcePrintNative(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(&out, util.NewNullLogger())

	require.NoError(t, d.RunSource(`print("hello")`, &out))

	assert.Contains(t, out.String(), "hello")
}

func TestRunSourceStopsOnError(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(&out, util.NewNullLogger())

	err := d.RunSource("1 / 0", &out)
	require.Error(t, err)
}

func TestRunSourceLogNativeWritesToLogger(t *testing.T) {
	var out bytes.Buffer
	ml := util.NewMemoryLogger(10)
	d := NewDriver(&out, ml)

	require.NoError(t, d.RunSource(`log("hello")`, &out))

	assert.Contains(t, ml.String(), "hello")
}

func TestRunREPLHandlesMultilineBlock(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(&out, util.NewNullLogger())

	in := strings.NewReader("def f(x) {\n  x + 1\n}\nf(4)\n")
	d.RunREPL(in, &out)

	assert.Contains(t, out.String(), "=> 5")
}
