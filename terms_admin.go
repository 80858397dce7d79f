package rethinkdb

// Config returns the config document for a table or database.
func (t Term) Config() Term { return newTermFromParent(termConfig, t) }

// Status returns the status document for a table.
func (t Term) Status() Term { return newTermFromParent(termStatus, t) }

// Wait blocks until a table (or the whole cluster) finishes outstanding
// writes and index builds.
func (t Term) Wait(opts ...map[string]interface{}) Term {
	term := newTermFromParent(termWait, t)
	return withOptionalOpts(term, opts)
}

// Reconfigure changes a table's shard/replica layout.
func (t Term) Reconfigure(opts map[string]interface{}) Term {
	return newTermFromParent(termReconfigure, t).WithOpts(opts)
}

// Grant sets a user's permissions on a table or database.
func (t Term) Grant(user interface{}, perms map[string]interface{}) Term {
	return newTermFromParent(termGrant, t, user).WithOpts(perms)
}
