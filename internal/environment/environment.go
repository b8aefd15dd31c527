// Package environment implements the parent-chained name-to-value
// mapping used for lexical scoping: define/lookup/set! plus child-frame
// creation for lambda application.
package environment

import (
	"github.com/zhemalb/scheme/internal/errs"
	"github.com/zhemalb/scheme/internal/value"
)

// Environment is one frame of the name->value mapping. Parent is a
// shared reference: multiple closures may capture the same parent chain.
type Environment struct {
	vars   map[value.Symbol]value.Value
	parent *Environment
}

// New creates a root environment with no parent.
func New() *Environment {
	return &Environment{vars: make(map[value.Symbol]value.Value)}
}

// NewChild returns a fresh environment whose parent is e.
func (e *Environment) NewChild() *Environment {
	return &Environment{vars: make(map[value.Symbol]value.Value), parent: e}
}

// Define unconditionally installs name in e's local frame, shadowing any
// binding of the same name in an ancestor frame.
func (e *Environment) Define(name value.Symbol, v value.Value) {
	e.vars[name] = v
}

// Lookup searches e, then its ancestors, for name.
func (e *Environment) Lookup(name value.Symbol) (value.Value, error) {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, nil
		}
	}
	return nil, errs.Name("unbound variable: %s", name)
}

// Set walks to the nearest frame (e or an ancestor) that already binds
// name and overwrites it there. It is a Name error if no such frame
// exists.
func (e *Environment) Set(name value.Symbol, v value.Value) error {
	for cur := e; cur != nil; cur = cur.parent {
		if _, ok := cur.vars[name]; ok {
			cur.vars[name] = v
			return nil
		}
	}
	return errs.Name("unbound variable: %s", name)
}

// Clear drops every local binding and the parent link, breaking any
// lambda/environment reference cycle at interpreter teardown.
func (e *Environment) Clear() {
	e.vars = nil
	e.parent = nil
}
