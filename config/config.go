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
Package config holds the global, non-syntactic knobs of the Stone
interpreter: the reserved word set the parser refuses as identifiers, and
a runtime safety limit (MaxCallDepth) the language itself does not specify.
*/
package config

import (
	"fmt"
	"strconv"

	"github.com/krotik/common/errorutil"
)

// Global variables
// ================

/*
ProductVersion is the current version of Stone.
*/
const ProductVersion = "1.0.0"

/*
ReservedWords cannot be used as identifier names (parser.identifier
rejects them): if/else, while, def.
*/
var ReservedWords = map[string]bool{
	"if":    true,
	"else":  true,
	"while": true,
	"def":   true,
}

/*
Known configuration options for Stone.
*/
const (
	MaxCallDepth = "MaxCallDepth"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{

	// MaxCallDepth bounds the depth of nested function activations. The
	// language has no stack-size related Non-goal; this guards the host
	// process's real call stack against runaway (non-tail) recursion.
	MaxCallDepth: 1000,
}

/*
Config is the actual config which is used.
*/
var Config map[string]interface{}

/*
Initialise the config.
*/
func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
