package rethinkdb

import (
	"encoding/json"
	"net"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, net.Conn) {
	client, server := net.Pipe()
	log := logrus.NewEntry(logrus.New())
	s := newSession(client, ConnectOpts{}, log)
	t.Cleanup(func() { server.Close() })
	return s, server
}

func TestSession_TokensAreMonotonicAndUnique(t *testing.T) {
	s, server := newTestSession(t)

	const n = 20
	tokensCh := make(chan uint64, n)
	go func() {
		for i := 0; i < n; i++ {
			tok, _, err := readFrame(server)
			if err != nil {
				return
			}
			tokensCh <- tok
		}
	}()

	done := make(chan struct{})
	for i := 0; i < n; i++ {
		go func(i int) {
			_, err := s.send(QueryStart, Expr(i), nil, true)
			require.NoError(t, err)
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < n; i++ {
		<-done
	}

	tokens := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		tokens = append(tokens, <-tokensCh)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })

	seen := make(map[uint64]bool, n)
	for _, tok := range tokens {
		require.False(t, seen[tok], "token %d issued twice", tok)
		seen[tok] = true
	}
	require.Equal(t, uint64(1), tokens[0])
	require.Equal(t, uint64(n), tokens[n-1])

	require.NoError(t, s.Close())
}

func TestSession_DemuxRoutesResponseToOwningCursor(t *testing.T) {
	s, server := newTestSession(t)

	reqTokens := make(chan uint64, 2)
	go func() {
		for i := 0; i < 2; i++ {
			tok, _, err := readFrame(server)
			if err != nil {
				return
			}
			reqTokens <- tok
		}
	}()

	cur1, err := s.send(QueryStart, Expr(1), nil, false)
	require.NoError(t, err)
	cur2, err := s.send(QueryStart, Expr(2), nil, false)
	require.NoError(t, err)

	t1 := <-reqTokens
	t2 := <-reqTokens

	payload1, err := json.Marshal(map[string]interface{}{"t": int(ResponseSuccessAtom), "r": []interface{}{"one"}})
	require.NoError(t, err)
	payload2, err := json.Marshal(map[string]interface{}{"t": int(ResponseSuccessAtom), "r": []interface{}{"two"}})
	require.NoError(t, err)

	// write the response for the second query first to prove demux isn't
	// relying on arrival order
	require.NoError(t, writeFrame(server, t2, payload2))
	require.NoError(t, writeFrame(server, t1, payload1))

	var v2, v1 string
	require.True(t, cur2.Next(&v2))
	require.True(t, cur1.Next(&v1))
	require.Equal(t, "two", v2)
	require.Equal(t, "one", v1)

	require.NoError(t, s.Close())
}

func TestSession_CursorCloseSendsStop(t *testing.T) {
	s, server := newTestSession(t)

	reqTokens := make(chan uint64, 1)
	go func() {
		tok, _, err := readFrame(server)
		if err != nil {
			return
		}
		reqTokens <- tok
	}()

	cur, err := s.send(QueryStart, Expr(1), nil, false)
	require.NoError(t, err)
	token := <-reqTokens

	stopTokens := make(chan uint64, 1)
	stopPayloads := make(chan []byte, 1)
	go func() {
		tok, payload, err := readFrame(server)
		if err != nil {
			return
		}
		stopTokens <- tok
		stopPayloads <- payload
	}()

	require.NoError(t, cur.Close())

	require.Equal(t, token, <-stopTokens)
	var envelope []interface{}
	require.NoError(t, json.Unmarshal(<-stopPayloads, &envelope))
	require.Equal(t, float64(QueryStop), envelope[0])

	require.NoError(t, s.Close())
}

func TestSession_CloseFailsInFlightCursors(t *testing.T) {
	s, server := newTestSession(t)

	go func() {
		for {
			if _, _, err := readFrame(server); err != nil {
				return
			}
		}
	}()

	cur, err := s.send(QueryStart, Expr(1), nil, false)
	require.NoError(t, err)

	require.NoError(t, s.Close())

	var v interface{}
	require.False(t, cur.Next(&v))
	require.ErrorIs(t, cur.Err(), ErrConnectionClosed{})
}

func TestSession_CloseSendsStopForLiveCursors(t *testing.T) {
	s, server := newTestSession(t)

	type frame struct {
		token   uint64
		payload []byte
	}
	frames := make(chan frame, 2)
	go func() {
		for {
			tok, payload, err := readFrame(server)
			if err != nil {
				return
			}
			frames <- frame{tok, payload}
		}
	}()

	cur, err := s.send(QueryStart, Expr(1), nil, false)
	require.NoError(t, err)

	startFrame := <-frames

	require.NoError(t, s.Close())

	stopFrame := <-frames
	require.Equal(t, startFrame.token, stopFrame.token)

	var envelope []interface{}
	require.NoError(t, json.Unmarshal(stopFrame.payload, &envelope))
	require.Equal(t, float64(QueryStop), envelope[0])

	var v interface{}
	require.False(t, cur.Next(&v))
	require.ErrorIs(t, cur.Err(), ErrConnectionClosed{})
}

func TestSession_SendUsesConnectOptsDatabaseAsDefault(t *testing.T) {
	client, server := net.Pipe()
	log := logrus.NewEntry(logrus.New())
	s := newSession(client, ConnectOpts{Database: "mydb"}, log)
	t.Cleanup(func() { server.Close() })

	payloads := make(chan []byte, 1)
	go func() {
		_, payload, err := readFrame(server)
		if err != nil {
			return
		}
		payloads <- payload
	}()

	_, err := s.send(QueryStart, Expr(1), nil, true)
	require.NoError(t, err)

	var envelope []interface{}
	require.NoError(t, json.Unmarshal(<-payloads, &envelope))
	opts, ok := envelope[2].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "mydb", opts["db"])

	require.NoError(t, s.Close())
}

func TestSession_RunOptsDbOverridesConnectOptsDatabase(t *testing.T) {
	client, server := net.Pipe()
	log := logrus.NewEntry(logrus.New())
	s := newSession(client, ConnectOpts{Database: "mydb"}, log)
	t.Cleanup(func() { server.Close() })

	payloads := make(chan []byte, 1)
	go func() {
		_, payload, err := readFrame(server)
		if err != nil {
			return
		}
		payloads <- payload
	}()

	opts := RunOpts{Db: "otherdb"}
	_, err := s.send(QueryStart, Expr(1), opts.toOptions(), true)
	require.NoError(t, err)

	var envelope []interface{}
	require.NoError(t, json.Unmarshal(<-payloads, &envelope))
	gotOpts, ok := envelope[2].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "otherdb", gotOpts["db"])

	require.NoError(t, s.Close())
}

func TestSession_SendAfterCloseIsRejected(t *testing.T) {
	s, server := newTestSession(t)
	go func() {
		for {
			if _, _, err := readFrame(server); err != nil {
				return
			}
		}
	}()

	require.NoError(t, s.Close())

	_, err := s.send(QueryStart, Expr(1), nil, false)
	require.ErrorIs(t, err, ErrConnectionClosed{})
}
