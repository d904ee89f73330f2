/*
File    : jlox/environment/environment.go

Package environment implements the lexical scope chain (spec.md §3, §4.3):
a name-to-value map paired with an optional reference to the enclosing
scope. Grounded on the teacher's scope.Scope (Parent chain, lazy map
init, LookUp/Bind/Assign walking outward), trimmed of go-mix's
const/let-type tracking and closure-capture Copy, neither of which this
language subset has.
*/
package environment

import (
	"github.com/akashmaji946/jlox/rterr"
	"github.com/akashmaji946/jlox/token"
	"github.com/akashmaji946/jlox/value"
)

// Environment is one link in the lexical scope chain. A nil Enclosing
// marks the global environment.
type Environment struct {
	values    map[string]value.Value
	Enclosing *Environment
}

// New creates an Environment whose enclosing scope is parent (nil for the
// global environment).
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Enclosing: parent}
}

// Define unconditionally binds name to v in this environment, shadowing
// any enclosing binding of the same name. Redefinition in the same scope
// is permitted and overwrites (spec.md §4.3).
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get resolves name by walking the environment chain from this scope
// outward, first match wins (spec.md §3 invariants, §4.3).
func (e *Environment) Get(name token.Token) (value.Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, rterr.New(name, "Undefined variable '"+name.Lexeme+"'.")
}

// Assign updates an existing binding, searching this scope then walking
// outward. It never creates a new binding (spec.md §4.3).
func (e *Environment) Assign(name token.Token, v value.Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = v
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, v)
	}
	return rterr.New(name, "Undefined variable '"+name.Lexeme+"'.")
}
