package rethinkdb

import "fmt"

// Branch evaluates one of two terms depending on a boolean test. It is the
// query-language equivalent of an if/else expression.
func Branch(test, trueBranch, falseBranch interface{}) Term {
	return newTermFromArgs(termBranch, test, trueBranch, falseBranch)
}

// Error constructs a term that always raises a RUNTIME_ERROR with the given
// message when evaluated.
func Error(message interface{}) Term { return newTermFromArgs(termError, message) }

// JS evaluates a snippet of JavaScript on the server, for query fragments
// the query language cannot express directly.
func JS(source interface{}) Term { return newTermFromArgs(termJavascript, source) }

// Do evaluates fn after first evaluating every value in args, passing them
// as fn's arguments. It is the idiomatic way to bind a temporary value.
func Do(args ...interface{}) Term {
	if len(args) == 0 {
		return errTerm(fmt.Errorf("rethinkdb: Do requires at least a function argument"))
	}
	fn := args[len(args)-1]
	values := args[:len(args)-1]
	return newTermFromArgs(termFuncall, append([]interface{}{fn}, values...)...)
}

// Args splices a Go slice into a variadic query-language argument position.
func Args(value interface{}) Term { return newTermFromArgs(termArgs, value) }

// ForEach runs fn, a write query, once per element of a sequence.
func (t Term) ForEach(fn interface{}) Term { return newTermFromParent(termForEach, t, fn) }
