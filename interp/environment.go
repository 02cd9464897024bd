/*
File    : lox-go/interp/environment.go
*/

// Package interp implements the tree-walking evaluator: the lexically
// scoped Environment chain and the Interpreter that drives the AST via
// visitor dispatch.
//
// Environment is a parent-chain scope: each block gets a flat variable map
// plus a borrowed reference to its enclosing scope, with an
// "uninitialized" sentinel to distinguish `var x;` from `var x = nil;`.
package interp

import (
	"github.com/akashmaji946/lox-go/report"
	"github.com/akashmaji946/lox-go/token"
	"github.com/akashmaji946/lox-go/value"
)

// uninitialized is the private sentinel bound by `var x;` with no
// initializer. It is distinct from value.Nil() so that reading it before
// assignment raises "Uninitialized variable" rather than silently
// returning nil.
var uninitialized = value.String("\x00lox-uninitialized\x00")

// Environment is one lexical scope: a flat variable map plus a borrowed
// reference to its enclosing scope. The chain parent is a non-owning
// pointer; each block's Environment lives only on the evaluator's call
// stack for the block's duration, so release on every exit path is just
// letting the pointer go out of scope -- no reference counting needed.
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// NewEnvironment creates a scope whose parent is enclosing (nil for the
// global scope).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), enclosing: enclosing}
}

// Define inserts or overwrites a binding in this scope only. Redeclaring a
// name in the same scope is allowed (the REPL and top-level `var` rely on
// this), unlike Assign, which requires an existing binding.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// DefineUninitialized binds name to the uninitialized sentinel, used by a
// `var` declaration with no initializer.
func (e *Environment) DefineUninitialized(name string) {
	e.values[name] = uninitialized
}

// Get resolves name by walking from this scope outward through the
// enclosing chain, returning the closest (innermost) binding. It returns
// on the first hit, so an enclosing scope's value can never overwrite a
// local one.
func (e *Environment) Get(name token.Token) (value.Value, *RuntimeError) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name.Lexeme]; ok {
			if v == uninitialized {
				return value.Nil(), NewRuntimeError(name, "Uninitialized variable '"+name.Lexeme+"'.")
			}
			return v, nil
		}
	}
	return value.Nil(), NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// Assign updates an existing binding in the nearest scope that has it,
// walking outward through the enclosing chain. It never creates a new
// binding; assigning to an undeclared name is a runtime error.
func (e *Environment) Assign(name token.Token, v value.Value) *RuntimeError {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = v
			return nil
		}
	}
	return NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// RuntimeError carries the offending token for line/location context
// alongside a fixed, test-observable message.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func NewRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

func (e *RuntimeError) Error() string { return e.Message }

// Report forwards a RuntimeError to the shared reporter in the
// [message]\n[line L]\n shape.
func (e *RuntimeError) Report(rep *report.Reporter) {
	rep.RuntimeError(e.Token, e.Message)
}
