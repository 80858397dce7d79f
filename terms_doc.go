package rethinkdb

// Get retrieves the document with the given primary key, or null if it
// does not exist.
func (t Term) Get(key interface{}) Term { return newTermFromParent(termGet, t, key) }

// GetAll retrieves every document matching any of the given keys on the
// selection's primary index (or on a secondary index named with
// WithOpts(map[string]interface{}{"index": ...})).
func (t Term) GetAll(keys ...interface{}) Term { return newTermFromParent(termGetAll, t, keys...) }

// Insert writes one or more documents into the table.
func (t Term) Insert(docs interface{}, opts ...map[string]interface{}) Term {
	term := newTermFromParent(termInsert, t, docs)
	return withOptionalOpts(term, opts)
}

// Update merges changes into every document in the selection.
func (t Term) Update(changes interface{}, opts ...map[string]interface{}) Term {
	term := newTermFromParent(termUpdate, t, changes)
	return withOptionalOpts(term, opts)
}

// Replace overwrites every document in the selection.
func (t Term) Replace(doc interface{}, opts ...map[string]interface{}) Term {
	term := newTermFromParent(termReplace, t, doc)
	return withOptionalOpts(term, opts)
}

// Delete removes every document in the selection.
func (t Term) Delete(opts ...map[string]interface{}) Term {
	term := newTermFromParent(termDelete, t)
	return withOptionalOpts(term, opts)
}

// Sync ensures that writes to a table are committed to disk.
func (t Term) Sync() Term { return newTermFromParent(termSync, t) }

func withOptionalOpts(t Term, opts []map[string]interface{}) Term {
	if len(opts) == 0 {
		return t
	}
	return t.WithOpts(opts[0])
}
