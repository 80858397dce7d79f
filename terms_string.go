package rethinkdb

// Upcase/Downcase change a string's case.
func (t Term) Upcase() Term   { return newTermFromParent(termUpcase, t) }
func (t Term) Downcase() Term { return newTermFromParent(termDowncase, t) }

// Match tests a string against a RE2-syntax regular expression, returning
// null or a match-groups object.
func (t Term) Match(pattern interface{}) Term { return newTermFromParent(termMatch, t, pattern) }

// Split divides a string on whitespace, or on separator when given.
func (t Term) Split(separator ...interface{}) Term {
	return newTermFromParent(termSplit, t, separator...)
}
