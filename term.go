package rethinkdb

// Term is an immutable node in a query AST. It is built by constructors and
// combinators, composed by chaining, and consumed by Session.Run; it is
// never mutated after encoding (spec.md §3 "Term").
type Term struct {
	termType TermType
	args     []Term
	optArgs  map[string]Term

	// isDatum marks a leaf DATUM node; datum holds the raw JSON-marshalable
	// literal it wraps. DATUM nodes are elided during encoding: their
	// payload is emitted directly instead of being wrapped in [1, [...]].
	isDatum bool
	datum   interface{}

	// err records a coercion failure lazily. It never reaches the socket;
	// it surfaces as a Driver Error the first time the term (or an
	// ancestor of it) is encoded.
	err error
}

// newTerm builds a Term of the given type from already-coerced arguments.
func newTerm(t TermType, args ...Term) Term {
	term := Term{termType: t, args: args}
	for _, a := range args {
		if a.err != nil {
			term.err = a.err
			break
		}
	}
	return term
}

// newDatum wraps a literal JSON value as a DATUM leaf.
func newDatum(v interface{}) Term {
	return Term{termType: termDatum, isDatum: true, datum: v}
}

// withArg appends a coerced argument to the term's child list, preserving
// left-to-right order (spec.md §4.1).
func (t Term) withArg(arg interface{}) Term {
	coerced := Expr(arg)
	t.args = append(append([]Term{}, t.args...), coerced)
	if t.err == nil {
		t.err = coerced.err
	}
	return t
}

// withArgs appends several coerced arguments in order.
func (t Term) withArgs(args ...interface{}) Term {
	for _, a := range args {
		t = t.withArg(a)
	}
	return t
}

// withParent prepends parent as the term's first child. This is how
// `x.Foo(y)` fluent chaining becomes `[FOO, [x, y]]` on the wire: the
// receiver is always the leftmost argument of the constructed term.
func (t Term) withParent(parent Term) Term {
	t.args = append([]Term{parent}, t.args...)
	if t.err == nil {
		t.err = parent.err
	}
	return t
}

// WithOpts attaches a string-keyed options map to the term, coercing each
// value independently. Keys already present are overwritten.
func (t Term) WithOpts(opts map[string]interface{}) Term {
	if len(opts) == 0 {
		return t
	}
	merged := make(map[string]Term, len(t.optArgs)+len(opts))
	for k, v := range t.optArgs {
		merged[k] = v
	}
	for k, v := range opts {
		c := Expr(v)
		if t.err == nil {
			t.err = c.err
		}
		merged[k] = c
	}
	t.optArgs = merged
	return t
}

// newTermFromParent is the shared helper behind every fluent method: it
// builds term_code(parent, args...) the same way the free-standing
// constructor of the same term_code would, preserving the encoding
// invariant that `.method()` sugar never diverges from the equivalent
// constructor call (spec.md §8 "Parent chaining").
func newTermFromParent(t TermType, parent Term, args ...interface{}) Term {
	term := newTerm(t)
	term = term.withParent(parent)
	return term.withArgs(args...)
}

// newTermFromArgs builds term_code(args...) directly, coercing each
// argument through Expr.
func newTermFromArgs(t TermType, args ...interface{}) Term {
	return newTerm(t).withArgs(args...)
}

// Err returns the first coercion error recorded anywhere in the term's
// subtree, or nil. It is checked at Encode/Run time, never during
// construction (spec.md §4.2 "Failure mode").
func (t Term) Err() error {
	return t.err
}
