package rethinkdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursor_PartialThenSequenceConcatenatesBatch(t *testing.T) {
	c := newCursor(nil, 1)

	c.deliver(&wireResponse{Type: int(ResponseSuccessPartial), Results: []interface{}{1.0, 2.0}})
	c.deliver(&wireResponse{Type: int(ResponseSuccessSequence), Results: []interface{}{3.0}})

	var got []float64
	for {
		var v float64
		if !c.Next(&v) {
			break
		}
		got = append(got, v)
	}
	require.NoError(t, c.Err())
	require.Equal(t, []float64{1, 2, 3}, got)
}

func TestCursor_AtomClosesAfterOneValue(t *testing.T) {
	c := newCursor(nil, 1)
	c.deliver(&wireResponse{Type: int(ResponseSuccessAtom), Results: []interface{}{"only"}})

	var v string
	require.True(t, c.Next(&v))
	require.Equal(t, "only", v)
	require.False(t, c.Next(&v))
	require.NoError(t, c.Err())
}

func TestCursor_DemuxIsolation(t *testing.T) {
	a := newCursor(nil, 1)
	b := newCursor(nil, 2)

	a.deliver(&wireResponse{Type: int(ResponseSuccessAtom), Results: []interface{}{"a"}})
	b.deliver(&wireResponse{Type: int(ResponseSuccessAtom), Results: []interface{}{"b"}})

	var va, vb string
	require.True(t, a.Next(&va))
	require.True(t, b.Next(&vb))
	require.Equal(t, "a", va)
	require.Equal(t, "b", vb)
}

func TestCursor_RuntimeErrorSetsErrAndEndsStream(t *testing.T) {
	c := newCursor(nil, 1)
	c.deliver(&wireResponse{Type: int(ResponseRuntimeError), ErrorCode: int(ErrorNonExistence), Results: []interface{}{"no such table"}})

	var v interface{}
	require.False(t, c.Next(&v))
	require.Error(t, c.Err())
	rerr, ok := c.Err().(*RuntimeError)
	require.True(t, ok)
	require.Equal(t, RuntimeErrorNonExistence, rerr.Kind)
}

func TestCursor_CloseWithoutPendingFramesNeedsNoStop(t *testing.T) {
	c := newCursor(nil, 1)
	c.deliver(&wireResponse{Type: int(ResponseSuccessAtom), Results: []interface{}{1.0}})

	require.NoError(t, c.Close())
	require.True(t, c.closed)
}

func TestCursor_FailWithClosedUnblocksWaiters(t *testing.T) {
	c := newCursor(nil, 1)
	done := make(chan struct{})
	go func() {
		var v interface{}
		c.Next(&v)
		close(done)
	}()

	c.failWithClosed()
	<-done
	require.ErrorIs(t, c.Err(), ErrConnectionClosed{})
}

func TestCursor_AllDrainsIntoSlice(t *testing.T) {
	c := newCursor(nil, 1)
	c.deliver(&wireResponse{Type: int(ResponseSuccessSequence), Results: []interface{}{1.0, 2.0, 3.0}})

	var dest []int
	require.NoError(t, c.All(&dest))
	require.Equal(t, []int{1, 2, 3}, dest)
}
