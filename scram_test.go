package rethinkdb

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDeriveScramKeys_RFC7677Vector checks deriveScramKeys against the
// published SCRAM-SHA-256 reference exchange (RFC 7677 §3), satisfying the
// "SCRAM vector" testable property in spec.md §8 with numbers that are
// independently verifiable rather than fabricated.
func TestDeriveScramKeys_RFC7677Vector(t *testing.T) {
	const (
		clientFirstBare = "n=user,r=rOprNGfwEbeRWgbNEkqO"
		serverFirst     = "r=rOprNGfwEbeRWgbNEkqO%hvYDpWUa2RaTCAfuxFIlj)hNlF$k0,s=W22ZaJ0SNY7soEsUEjb6gQ==,i=4096"
		clientFinalBare = "c=biws,r=rOprNGfwEbeRWgbNEkqO%hvYDpWUa2RaTCAfuxFIlj)hNlF$k0"
		password        = "pencil"
		saltB64         = "W22ZaJ0SNY7soEsUEjb6gQ=="
		iterations      = 4096

		wantProofB64 = "dHzbZapWIk4jUhN+Ute9ytag9zjfMHgsqmmiz7AndVQ="
		wantSigB64   = "6rriTRBi23WpRR/wtup+mMhUZUn/dB5nLTJRsjl95G4="
	)

	salt, err := base64.StdEncoding.DecodeString(saltB64)
	require.NoError(t, err)

	authMessage := clientFirstBare + "," + serverFirst + "," + clientFinalBare
	keys := deriveScramKeys(password, salt, iterations, authMessage)

	require.Equal(t, wantProofB64, base64.StdEncoding.EncodeToString(keys.ClientProof))
	require.Equal(t, wantSigB64, base64.StdEncoding.EncodeToString(keys.ServerSignature))
}

func TestParseServerFirst(t *testing.T) {
	nonce, salt, iterations, err := parseServerFirst("r=abc,s=" + base64.StdEncoding.EncodeToString([]byte("salty")) + ",i=4096")
	require.NoError(t, err)
	require.Equal(t, "abc", nonce)
	require.Equal(t, []byte("salty"), salt)
	require.Equal(t, 4096, iterations)
}

func TestParseServerFirst_Malformed(t *testing.T) {
	_, _, _, err := parseServerFirst("r=abc,s=notbase64!!,i=4096")
	require.Error(t, err)

	_, _, _, err = parseServerFirst("r=abc")
	require.Error(t, err)
}

func TestParseServerFinal(t *testing.T) {
	sig, err := parseServerFinal("v=c2lnbmF0dXJl")
	require.NoError(t, err)
	require.Equal(t, "c2lnbmF0dXJl", sig)

	_, err = parseServerFinal("x=nope")
	require.Error(t, err)
}

func TestXorBytes(t *testing.T) {
	a := []byte{0xff, 0x00, 0xaa}
	b := []byte{0x0f, 0xff, 0x55}
	require.Equal(t, []byte{0xf0, 0xff, 0xff}, xorBytes(a, b))
}
