package rethinkdb

import "sync/atomic"

// varCounter allocates globally-unique VAR identifiers for lambda binding
// (spec.md §4.3 "Lambda Binder"). A process-wide counter is simpler to
// reason about than a query-local one and satisfies the weaker per-query
// uniqueness requirement for free; see DESIGN.md for the Open Question
// resolution.
var varCounter int64

// nextVarID returns a fresh, never-repeated variable identifier. Binding is
// hygienic: nested lambdas always receive ids their enclosing lambda never
// used, so inner bindings can never shadow outer ones.
func nextVarID() int64 {
	return atomic.AddInt64(&varCounter, 1)
}

// Func1, Func2 and Func3 wrap a Go func of one, two or three Term arguments
// returning a Term as a query-language lambda. It is a thin, explicitly-typed convenience over
// Expr's reflective lambda path, useful when a variable needs to be passed
// around before being applied (e.g. building the same predicate for both
// Filter and Count).
func Func1(fn func(Term) Term) Term             { return Expr(fn) }
func Func2(fn func(Term, Term) Term) Term       { return Expr(fn) }
func Func3(fn func(Term, Term, Term) Term) Term { return Expr(fn) }

// Row is the implicit-variable leaf (`r.row` in the original driver),
// usable inside Filter/Map/etc. without an explicit lambda parameter.
var Row = newTerm(termImplicitVar)
