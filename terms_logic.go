package rethinkdb

// Eq, Ne, Lt, Le, Gt, Ge build pairwise comparisons. RethinkDB's comparison
// operators are variadic (`a.Eq(b, c)` means `a==b && b==c`), mirrored here.
func (t Term) Eq(others ...interface{}) Term { return newTermFromParent(termEq, t, others...) }
func (t Term) Ne(others ...interface{}) Term { return newTermFromParent(termNe, t, others...) }
func (t Term) Lt(others ...interface{}) Term { return newTermFromParent(termLt, t, others...) }
func (t Term) Le(others ...interface{}) Term { return newTermFromParent(termLe, t, others...) }
func (t Term) Gt(others ...interface{}) Term { return newTermFromParent(termGt, t, others...) }
func (t Term) Ge(others ...interface{}) Term { return newTermFromParent(termGe, t, others...) }

// Not negates a boolean term.
func (t Term) Not() Term { return newTermFromParent(termNot, t) }

// And/Or short-circuit like their Go counterparts, variadic over operands.
func (t Term) And(others ...interface{}) Term { return newTermFromParent(termAnd, t, others...) }
func (t Term) Or(others ...interface{}) Term  { return newTermFromParent(termOr, t, others...) }

// Add/Sub/Mul/Div/Mod are RethinkDB's arithmetic operators; Add also
// concatenates strings and arrays.
func (t Term) Add(others ...interface{}) Term { return newTermFromParent(termAdd, t, others...) }
func (t Term) Sub(others ...interface{}) Term { return newTermFromParent(termSub, t, others...) }
func (t Term) Mul(others ...interface{}) Term { return newTermFromParent(termMul, t, others...) }
func (t Term) Div(others ...interface{}) Term { return newTermFromParent(termDiv, t, others...) }
func (t Term) Mod(other interface{}) Term     { return newTermFromParent(termMod, t, other) }

// TypeOf returns the RethinkDB-level type name of a value.
func (t Term) TypeOf() Term { return newTermFromParent(termTypeOf, t) }

// CoerceTo converts a value to the named RethinkDB type.
func (t Term) CoerceTo(typeName interface{}) Term { return newTermFromParent(termCoerceTo, t, typeName) }
