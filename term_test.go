package rethinkdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerm_ParentChainingMatchesFreeConstructor(t *testing.T) {
	fluent := DB("test").Table("users")
	free := newTermFromArgs(termTable, newTermFromArgs(termDb, "test"), "users")

	fluentEnc, err := fluent.Encode()
	require.NoError(t, err)
	freeEnc, err := free.Encode()
	require.NoError(t, err)

	require.Equal(t, freeEnc, fluentEnc)
}

func TestTerm_NoArgsNoOptsEncodesBare(t *testing.T) {
	enc, err := Now().Encode()
	require.NoError(t, err)
	require.Equal(t, []interface{}{int32(termNow)}, enc)
}

func TestTerm_WithOptsMergesAndOverwrites(t *testing.T) {
	base := DB("test").Table("users").WithOpts(map[string]interface{}{"a": 1})
	merged := base.WithOpts(map[string]interface{}{"a": 2, "b": 3})

	enc, err := merged.Encode()
	require.NoError(t, err)
	arr := enc.([]interface{})
	opts := arr[2].(map[string]interface{})
	require.Equal(t, 2, opts["a"])
	require.Equal(t, 3, opts["b"])
}

func TestTerm_ErrPropagatesFromChild(t *testing.T) {
	bad := Expr(make(chan int)) // unsupported kind
	require.Error(t, bad.Err())

	wrapped := DB("test").Table("users").Filter(bad)
	require.Error(t, wrapped.Err())

	_, err := wrapped.Encode()
	require.Error(t, err)
}
