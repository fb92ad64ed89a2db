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
Package scope implements the lexically nested environment the Stone
evaluator threads through every Eval call. An Environment is a stack of
frames, each a string -> Value mapping (Value is stored as interface{}
here so this package never needs to import the interpreter package that
defines it).
*/
package scope

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

/*
Default scope names.
*/
const (
	GlobalScope = "global"
	FuncPrefix  = "func:"
)

/*
Environment models one frame of lexical scope plus a link to its parent.
putNew always inserts into this frame; put walks outward to the frame
that already owns the name, falling back to the global (outermost) frame;
get searches innermost-outward.
*/
type Environment struct {
	name    string
	id      string
	parent  *Environment
	storage map[string]interface{}
	depth   int
}

/*
NewEnvironment creates a new, parentless environment. This is used once,
for the global scope; every other environment is created with
NewChild so it has a parent to delegate to.
*/
func NewEnvironment(name string) *Environment {
	return &Environment{name, uuid.NewString()[:8], nil, make(map[string]interface{}), 0}
}

/*
NewChild creates a new environment whose parent is env. This is the
lexical-nesting constructor: the interpreter creates a function's
activation frame this way, with the function's defining environment as
the parent (blocks do not get a frame of their own). Its depth defaults to env.depth+1,
the lexical nesting depth; callers that need the dynamic call depth
instead (a function's activation nests under its closed-over
DefiningEnv, not under its caller) set it explicitly with SetDepth.
*/
func (env *Environment) NewChild(name string) *Environment {
	return &Environment{name, uuid.NewString()[:8], env, make(map[string]interface{}), env.depth + 1}
}

/*
Depth returns this environment's call-depth counter.
*/
func (env *Environment) Depth() int {
	return env.depth
}

/*
SetDepth overrides this environment's call-depth counter and returns it,
for chaining onto NewChild. The interpreter's call protocol uses this to
track actual invocation depth along the dynamic call chain: a function's
activation frame is lexically parented to its DefiningEnv (for closures),
which is fixed and does not grow with recursion, so depth has to be
carried along explicitly from the caller's environment instead of read
off the parent chain.
*/
func (env *Environment) SetDepth(d int) *Environment {
	env.depth = d
	return env
}

/*
Name returns the name of this environment, with its short debug id (used
in the String() scope dump).
*/
func (env *Environment) Name() string {
	return fmt.Sprintf("%s#%s", env.name, env.id)
}

/*
Parent returns the parent environment, or nil for the global scope.
*/
func (env *Environment) Parent() *Environment {
	return env.parent
}

/*
PutNew inserts a new binding into this frame, shadowing any binding of
the same name in an outer frame.
*/
func (env *Environment) PutNew(name string, value interface{}) {
	env.storage[name] = value
}

/*
Put writes to the frame that already binds name; if name is unbound
anywhere on the chain, it is inserted into the outermost (global) frame.
This mirrors the source language's permissive assignment semantics:
put silently creates globals.
*/
func (env *Environment) Put(name string, value interface{}) {
	if owner := env.frameOf(name); owner != nil {
		owner.storage[name] = value
		return
	}
	env.global().storage[name] = value
}

/*
Get searches innermost-outward for name. The second return value is
false if the name is not bound in any frame on the chain.
*/
func (env *Environment) Get(name string) (interface{}, bool) {
	if owner := env.frameOf(name); owner != nil {
		return owner.storage[name], true
	}
	return nil, false
}

/*
frameOf returns the frame (this one or an ancestor) which already binds
name, or nil if no frame on the chain does.
*/
func (env *Environment) frameOf(name string) *Environment {
	for e := env; e != nil; e = e.parent {
		if _, ok := e.storage[name]; ok {
			return e
		}
	}
	return nil
}

/*
global walks to the outermost frame.
*/
func (env *Environment) global() *Environment {
	e := env
	for e.parent != nil {
		e = e.parent
	}
	return e
}

/*
String returns a debug representation of this environment and its
ancestors, innermost first.
*/
func (env *Environment) String() string {
	var buf bytes.Buffer

	for e := env; e != nil; e = e.parent {
		buf.WriteString(e.scopeString())
		if e.parent != nil {
			buf.WriteString("\n")
		}
	}

	return buf.String()
}

func (env *Environment) scopeString() string {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%v {\n", env.Name()))

	names := make([]string, 0, len(env.storage))
	for k := range env.storage {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, n := range names {
		buf.WriteString(fmt.Sprintf("    %s = %v\n", n, env.storage[n]))
	}

	buf.WriteString("}")

	return buf.String()
}
