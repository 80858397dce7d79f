package rethinkdb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDriverError_Message(t *testing.T) {
	err := &DriverError{Message: "bad arity"}
	require.Equal(t, "rethinkdb: driver error: bad arity", err.Error())
}

func TestConnectionError_UnwrapsUnderlyingErr(t *testing.T) {
	inner := errors.New("reset by peer")
	err := &ConnectionError{Op: "read", Err: inner}
	require.ErrorIs(t, err, inner)
	require.Contains(t, err.Error(), "read")
}

func TestAuthenticationError_Message(t *testing.T) {
	err := &AuthenticationError{Message: "server signature mismatch"}
	require.Contains(t, err.Error(), "server signature mismatch")
}

func TestRuntimeErrorKindFromCode(t *testing.T) {
	cases := map[ErrorType]RuntimeErrorKind{
		ErrorResourceLimit:   RuntimeErrorResourceLimit,
		ErrorQueryLogic:      RuntimeErrorQueryLogic,
		ErrorNonExistence:    RuntimeErrorNonExistence,
		ErrorOpFailed:        RuntimeErrorOpFailed,
		ErrorOpIndeterminate: RuntimeErrorOpIndeterminate,
		ErrorUser:            RuntimeErrorUser,
		ErrorPermissionError: RuntimeErrorPermission,
		ErrorInternal:        RuntimeErrorInternal,
	}
	for code, want := range cases {
		require.Equal(t, want, runtimeErrorKindFromCode(int(code)))
	}
}

func TestErrConnectionClosed_Error(t *testing.T) {
	var err error = ErrConnectionClosed{}
	require.Equal(t, "rethinkdb: connection closed", err.Error())
}

func TestErrUnknownResponseType_Error(t *testing.T) {
	err := ErrUnknownResponseType{Type: 99}
	require.Contains(t, err.Error(), "99")
}
