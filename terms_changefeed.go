package rethinkdb

// Changes turns a table or selection into a changefeed: the resulting
// Cursor is a Feed cursor that never exhausts on its own (spec.md §4.6
// "Cursor Kind").
func (t Term) Changes(opts ...map[string]interface{}) Term {
	term := newTermFromParent(termChanges, t)
	return withOptionalOpts(term, opts)
}
