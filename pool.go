package rethinkdb

import (
	"sync/atomic"
)

// Pool holds several Sessions opened with identical ConnectOpts and
// round-robins queries across them (SPEC_FULL.md §4.8, grounded on
// original_source/neor's pooled-connection Session). ConnectPool is the
// only constructor; a Pool of size 1 behaves exactly like a bare Session.
type Pool struct {
	sessions []*Session
	next     uint64
}

// ConnectPool dials n connections with the same ConnectOpts and returns a
// Pool that load-balances Run/Exec across them. n defaults to 1 if
// opts.MaxOpen is zero.
func ConnectPool(opts ConnectOpts) (*Pool, error) {
	n := opts.MaxOpen
	if n <= 0 {
		n = 1
	}

	sessions := make([]*Session, 0, n)
	for i := 0; i < n; i++ {
		sess, err := Connect(opts)
		if err != nil {
			for _, s := range sessions {
				s.Close()
			}
			return nil, err
		}
		sessions = append(sessions, sess)
	}

	return &Pool{sessions: sessions}, nil
}

func (p *Pool) pick() *Session {
	idx := atomic.AddUint64(&p.next, 1)
	return p.sessions[idx%uint64(len(p.sessions))]
}

// Run dispatches to one Session in the pool, round-robin.
func (p *Pool) Run(t Term, opts RunOpts) (*Cursor, error) {
	return p.pick().Run(t, opts)
}

// Exec dispatches to one Session in the pool, round-robin.
func (p *Pool) Exec(t Term, opts RunOpts) error {
	return p.pick().Exec(t, opts)
}

// NoReplyWait waits on every Session in the pool.
func (p *Pool) NoReplyWait() error {
	for _, s := range p.sessions {
		if err := s.NoReplyWait(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every Session in the pool, returning the first error
// encountered (if any) after attempting to close them all.
func (p *Pool) Close() error {
	var firstErr error
	for _, s := range p.sessions {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
