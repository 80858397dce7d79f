package rethinkdb

import (
	"context"
	"net"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Session owns one authenticated connection and demultiplexes its response
// stream across concurrently outstanding queries (spec.md §4.6).
type Session struct {
	conn net.Conn
	opts ConnectOpts
	log  *logrus.Entry

	writeMu sync.Mutex // serializes writes to conn; spec.md §5

	nextToken uint64 // atomic

	mu       sync.Mutex
	inFlight map[uint64]*Cursor
	closed   bool

	group  *errgroup.Group
	cancel context.CancelFunc
}

func newSession(conn net.Conn, opts ConnectOpts, log *logrus.Entry) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)

	s := &Session{
		conn:     conn,
		opts:     opts,
		log:      log,
		inFlight: make(map[uint64]*Cursor),
		group:    group,
		cancel:   cancel,
	}

	group.Go(func() error {
		return s.readLoop(ctx)
	})

	return s
}

// Server issues a SERVER_INFO query and returns the decoded payload
// (spec.md §3's query envelope enumerates SERVER_INFO=5, and it must be
// reachable even though §6's narrative text focuses on Run/Exec).
func (s *Session) Server() (ServerInfo, error) {
	cur, err := s.send(QueryServerInfo, Term{}, nil, false)
	if err != nil {
		return ServerInfo{}, err
	}
	defer cur.Close()

	var info ServerInfo
	if !cur.Next(&info) {
		if err := cur.Err(); err != nil {
			return ServerInfo{}, err
		}
		return ServerInfo{}, &DriverError{Message: "server returned no SERVER_INFO payload"}
	}
	return info, nil
}

// Run starts a new query and returns a Cursor over its results
// (spec.md §6).
func (s *Session) Run(t Term, opts RunOpts) (*Cursor, error) {
	if err := opts.validate(); err != nil {
		return nil, &DriverError{Message: err.Error()}
	}
	if err := t.Err(); err != nil {
		return nil, err
	}
	return s.send(QueryStart, t, opts.toOptions(), opts.NoReply)
}

// Exec runs a query in fire-and-forget mode, equivalent to Run with
// RunOpts.NoReply set, but without allocating a Cursor.
func (s *Session) Exec(t Term, opts RunOpts) error {
	opts.NoReply = true
	_, err := s.Run(t, opts)
	return err
}

// NoReplyWait blocks until every prior NoReply query on this Session has
// been acknowledged by the server (spec.md §3's QUERY_NOREPLY_WAIT).
func (s *Session) NoReplyWait() error {
	cur, err := s.send(QueryNoReplyWait, Term{}, nil, false)
	if err != nil {
		return err
	}
	defer cur.Close()
	cur.fill()
	return cur.Err()
}

// send allocates a token, optionally registers a Cursor for it, and writes
// the query envelope to the wire.
func (s *Session) send(qt QueryType, t Term, globalOpts map[string]interface{}, noReply bool) (*Cursor, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrConnectionClosed{}
	}
	s.mu.Unlock()

	var encodedTerm interface{}
	if qt == QueryStart {
		enc, err := t.Encode()
		if err != nil {
			return nil, err
		}
		encodedTerm = enc
	}

	if globalOpts == nil {
		globalOpts = map[string]interface{}{}
	}
	if qt == QueryStart {
		if _, ok := globalOpts["db"]; !ok && s.opts.Database != "" {
			globalOpts["db"] = s.opts.Database
		}
	}
	if noReply {
		globalOpts["noreply"] = true
	}

	token := atomic.AddUint64(&s.nextToken, 1)
	tokensIssued.Inc()

	var cur *Cursor
	if !noReply {
		cur = newCursor(s, token)
		s.mu.Lock()
		s.inFlight[token] = cur
		s.mu.Unlock()
		cursorsInFlight.Inc()
	}

	query := wireQuery{int(qt), encodedTerm, globalOpts}
	payload, err := encodeJSON(query)
	if err != nil {
		return nil, &DriverError{Message: "encoding query envelope: " + err.Error()}
	}

	if err := s.writeFrameLocked(token, payload); err != nil {
		if cur != nil {
			s.mu.Lock()
			delete(s.inFlight, token)
			s.mu.Unlock()
			cursorsInFlight.Dec()
		}
		return nil, &ConnectionError{Op: "write query", Err: err}
	}

	return cur, nil
}

func (s *Session) sendContinue(token uint64) error {
	payload, err := encodeJSON([]interface{}{int(QueryContinue)})
	if err != nil {
		return &DriverError{Message: "encoding CONTINUE: " + err.Error()}
	}
	if err := s.writeFrameLocked(token, payload); err != nil {
		return &ConnectionError{Op: "write continue", Err: err}
	}
	return nil
}

func (s *Session) stopCursor(token uint64) error {
	s.mu.Lock()
	delete(s.inFlight, token)
	s.mu.Unlock()
	cursorsInFlight.Dec()

	return s.writeStop(token)
}

func (s *Session) writeStop(token uint64) error {
	payload, err := encodeJSON([]interface{}{int(QueryStop)})
	if err != nil {
		return &DriverError{Message: "encoding STOP: " + err.Error()}
	}
	if err := s.writeFrameLocked(token, payload); err != nil {
		return &ConnectionError{Op: "write stop", Err: err}
	}
	return nil
}

func (s *Session) writeFrameLocked(token uint64, payload []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return writeFrame(s.conn, token, payload)
}

// readLoop is the Session's single reader goroutine: it owns all reads from
// conn and demultiplexes each frame to the waiting Cursor by token
// (spec.md §4.6).
func (s *Session) readLoop(ctx context.Context) error {
	for {
		token, payload, err := readFrame(s.conn)
		if err != nil {
			s.shutdown(err)
			return err
		}

		resp, err := decodeResponse(payload)
		if err != nil {
			s.log.WithError(err).Warn("rethinkdb: dropping malformed frame")
			continue
		}

		s.mu.Lock()
		cur, ok := s.inFlight[token]
		s.mu.Unlock()
		if !ok {
			// Either an unknown token or one we've already STOPped; the
			// demux intentionally discards it.
			continue
		}

		cur.deliver(resp)

		if cur.isDone() {
			s.mu.Lock()
			delete(s.inFlight, token)
			s.mu.Unlock()
			cursorsInFlight.Dec()
		}
	}
}

// shutdown runs when readLoop's read fails: unless Close already ran, it
// closes the Session and fails every registered cursor with
// ErrConnectionClosed.
func (s *Session) shutdown(err error) {
	s.mu.Lock()
	wasClosed := s.closed
	s.closed = true
	cursors := s.inFlight
	s.inFlight = make(map[uint64]*Cursor)
	s.mu.Unlock()
	if !wasClosed {
		_ = s.conn.Close()
	}
	for _, cur := range cursors {
		cur.failWithClosed()
	}
	cursorsInFlight.Sub(float64(len(cursors)))
}

// Close shuts the Session down: every still-registered cursor's token gets a
// best-effort STOP, each cursor is then failed with ErrConnectionClosed, the
// socket is closed, and the reader goroutine is allowed to exit (spec.md
// §5: "sends STOP for all live tokens, closes the socket, and surfaces a
// Connection Closed error on every outstanding Cursor").
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	cursors := make([]*Cursor, 0, len(s.inFlight))
	for _, cur := range s.inFlight {
		cursors = append(cursors, cur)
	}
	s.inFlight = make(map[uint64]*Cursor)
	s.mu.Unlock()

	for _, cur := range cursors {
		// Best-effort: the socket is coming down regardless, and a write
		// failure here just means the server never sees the STOP it no
		// longer has a connection to reply to anyway.
		_ = s.writeStop(cur.token)
	}

	for _, cur := range cursors {
		cur.failWithClosed()
	}
	cursorsInFlight.Sub(float64(len(cursors)))

	s.cancel()
	closeErr := s.conn.Close()
	_ = s.group.Wait() // readLoop always returns a non-nil error once conn closes

	if closeErr != nil {
		return &ConnectionError{Op: "close", Err: closeErr}
	}
	return nil
}
