package rethinkdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool_PickRoundRobins(t *testing.T) {
	a, b, c := &Session{}, &Session{}, &Session{}
	p := &Pool{sessions: []*Session{a, b, c}}

	got := []*Session{p.pick(), p.pick(), p.pick(), p.pick()}
	require.Equal(t, []*Session{b, c, a, b}, got)
}

func TestPool_PickSingleSessionAlwaysSame(t *testing.T) {
	only := &Session{}
	p := &Pool{sessions: []*Session{only}}

	for i := 0; i < 3; i++ {
		require.Same(t, only, p.pick())
	}
}
