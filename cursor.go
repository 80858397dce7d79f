package rethinkdb

import (
	"encoding/json"
	"reflect"
	"sync"
)

// cursorKind classifies a Cursor once its first response arrives
// (spec.md §4.6).
type cursorKind int

const (
	cursorUnknown cursorKind = iota
	cursorAtom
	cursorSequence
	cursorFeed
)

// Cursor demultiplexes the SUCCESS_* stream for a single query token. It is
// safe for concurrent use by one producer (the Session's reader goroutine,
// via deliver) and any number of consumers calling Next/Err/Close.
type Cursor struct {
	token uint64
	sess  *Session

	mu             sync.Mutex
	cond           *sync.Cond
	batch          []interface{}
	kind           cursorKind
	awaitingMore   bool // a CONTINUE would (or already did) produce another batch
	continueSent   bool
	done           bool // no further frames will ever arrive for this token
	err            error
	closed         bool
	registered     bool // still present in the Session's demux table
}

func newCursor(sess *Session, token uint64) *Cursor {
	c := &Cursor{sess: sess, token: token, registered: true}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// deliver applies one decoded response frame to the cursor. It is called
// only by the Session's single reader goroutine.
func (c *Cursor) deliver(resp *wireResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.continueSent = false

	switch ResponseType(resp.Type) {
	case ResponseSuccessAtom, ResponseServerInfo:
		c.batch = append(c.batch, resp.Results...)
		c.kind = cursorAtom
		c.awaitingMore = false
		c.done = true
	case ResponseSuccessSequence:
		c.batch = append(c.batch, resp.Results...)
		if c.kind == cursorUnknown {
			c.kind = cursorSequence
		}
		c.awaitingMore = false
		c.done = true
	case ResponseSuccessPartial:
		c.batch = append(c.batch, resp.Results...)
		c.awaitingMore = true
		if responseIsFeed(resp) {
			c.kind = cursorFeed
		} else if c.kind == cursorUnknown {
			c.kind = cursorSequence
		}
	case ResponseWaitComplete:
		c.awaitingMore = false
		c.done = true
	case ResponseClientError:
		c.err = &ClientError{Message: resp.errorMessage(), Backtrace: resp.Backtrace}
		c.awaitingMore = false
		c.done = true
	case ResponseCompileError:
		c.err = &CompileError{Message: resp.errorMessage(), Backtrace: resp.Backtrace}
		c.awaitingMore = false
		c.done = true
	case ResponseRuntimeError:
		c.err = &RuntimeError{
			Kind:      runtimeErrorKindFromCode(resp.ErrorCode),
			Message:   resp.errorMessage(),
			Backtrace: resp.Backtrace,
		}
		c.awaitingMore = false
		c.done = true
	default:
		c.err = ErrUnknownResponseType{Type: resp.Type}
		c.awaitingMore = false
		c.done = true
	}

	c.cond.Broadcast()
}

// failWithClosed is called by Session.Close for every cursor still
// registered when the socket goes away.
func (c *Cursor) failWithClosed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done || c.err != nil {
		return
	}
	c.err = ErrConnectionClosed{}
	c.awaitingMore = false
	c.done = true
	c.cond.Broadcast()
}

// isDone reports whether the Session may remove this cursor's token from
// its demux table: no further frames will ever be accepted for it.
func (c *Cursor) isDone() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// fill blocks until the batch has at least one element, an error is set, or
// the cursor has reached a true end-of-stream (done and not awaiting more).
func (c *Cursor) fill() {
	c.mu.Lock()
	for {
		if len(c.batch) > 0 || c.err != nil {
			c.mu.Unlock()
			return
		}
		if c.done && !c.awaitingMore {
			c.mu.Unlock()
			return
		}
		if c.closed {
			c.mu.Unlock()
			return
		}
		if c.awaitingMore && !c.continueSent {
			c.continueSent = true
			token := c.token
			c.mu.Unlock()
			if err := c.sess.sendContinue(token); err != nil {
				c.mu.Lock()
				c.err = err
				c.mu.Unlock()
				return
			}
			c.mu.Lock()
			continue
		}
		c.cond.Wait()
	}
}

// Next blocks until the next result is available, decodes it into dest, and
// returns true. It returns false once the cursor is exhausted or has failed;
// call Err to distinguish the two.
func (c *Cursor) Next(dest interface{}) bool {
	c.fill()

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.batch) == 0 {
		return false
	}
	item := c.batch[0]
	c.batch = c.batch[1:]
	if c.kind == cursorAtom {
		c.done = true
		c.awaitingMore = false
	}
	if err := assignInto(dest, item); err != nil {
		c.err = err
		return false
	}
	return true
}

// Err returns the first error the cursor encountered, or nil if it reached
// end-of-stream cleanly or is still open.
func (c *Cursor) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close stops the cursor. If it is still registered with the Session (a
// changefeed, or a sequence with more batches pending), a STOP is sent for
// its token; any frames that subsequently arrive for that token are
// discarded by the Session's demux (spec.md §4.6 "Cancellation").
func (c *Cursor) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	needStop := c.registered && !c.done
	c.registered = false
	c.done = true
	c.cond.Broadcast()
	token := c.token
	c.mu.Unlock()

	if needStop {
		return c.sess.stopCursor(token)
	}
	return nil
}

// All drains a non-feed cursor into a slice pointed to by dest.
func (c *Cursor) All(dest interface{}) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return &DriverError{Message: "All requires a pointer to a slice"}
	}
	slice := rv.Elem()
	elemType := slice.Type().Elem()

	for {
		elemPtr := reflect.New(elemType)
		if !c.Next(elemPtr.Interface()) {
			break
		}
		slice.Set(reflect.Append(slice, elemPtr.Elem()))
	}
	return c.Err()
}

// assignInto decodes a raw JSON-decoded value (as produced by sonic from the
// response envelope) into dest, re-marshalling through encoding/json when
// dest isn't already interface{} or the value's dynamic type, so
// pseudo-typed values (TIME, BINARY, GROUPED_DATA) land correctly on
// strongly typed destinations.
func assignInto(dest interface{}, value interface{}) error {
	if p, ok := dest.(*interface{}); ok {
		*p = value
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return &DriverError{Message: "re-encoding cursor value: " + err.Error()}
	}
	return json.Unmarshal(raw, dest)
}
