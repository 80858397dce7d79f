package rethinkdb

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"
)

// handshakeClientFirst is sent immediately after the magic number.
type handshakeClientFirst struct {
	ProtocolVersion      int    `json:"protocol_version"`
	AuthenticationMethod string `json:"authentication_method"`
	Authentication       string `json:"authentication"`
}

// handshakeServerMessage covers every server reply shape across the four
// messages: the initial {success, min/max_protocol_version, server_version}
// confirmation, the SCRAM challenge, and the final verification, all of
// which share a `success` discriminant plus an optional `authentication`
// string (spec.md §4.4).
type handshakeServerMessage struct {
	Success            bool   `json:"success"`
	MinProtocolVersion int    `json:"min_protocol_version"`
	MaxProtocolVersion int    `json:"max_protocol_version"`
	ServerVersion      string `json:"server_version"`
	Authentication     string `json:"authentication"`
	ErrorCode          int    `json:"error_code"`
	Error              string `json:"error"`
}

type handshakeClientFinal struct {
	Authentication string `json:"authentication"`
}

const handshakeProtocolVersion = 0

// performHandshake runs the full 4-message SCRAM-SHA-256 exchange over an
// already-dialed connection. nonceFn supplies the client nonce; Connect
// passes generateClientNonce, and a fixed function yields a deterministic
// nonce.
func performHandshake(conn net.Conn, opts ConnectOpts, nonceFn func() string, log *logrus.Entry) error {
	if opts.HandshakeVersion != HandshakeV1_0 {
		return &AuthenticationError{Message: fmt.Sprintf("unsupported handshake version %d", opts.HandshakeVersion)}
	}

	var magic [4]byte
	binary.LittleEndian.PutUint32(magic[:], handshakeMagic)
	if _, err := conn.Write(magic[:]); err != nil {
		return &ConnectionError{Op: "write magic number", Err: err}
	}

	clientNonce := nonceFn()
	clientFirstBare := fmt.Sprintf("n=%s,r=%s", opts.User, clientNonce)
	clientFirstMessage := "n,," + clientFirstBare

	first := handshakeClientFirst{
		ProtocolVersion:      handshakeProtocolVersion,
		AuthenticationMethod: "SCRAM-SHA-256",
		Authentication:       clientFirstMessage,
	}
	if err := writeNulJSON(conn, first); err != nil {
		return &ConnectionError{Op: "write handshake client-first", Err: err}
	}

	// Message 2: version confirmation.
	var versionMsg handshakeServerMessage
	if err := readNulJSON(conn, &versionMsg); err != nil {
		return &ConnectionError{Op: "read handshake version confirmation", Err: err}
	}
	if !versionMsg.Success {
		return &AuthenticationError{Message: handshakeFailureMessage(versionMsg)}
	}
	log.WithField("server_version", versionMsg.ServerVersion).Debug("rethinkdb: handshake version confirmed")

	// Message 3: SCRAM challenge (server-first).
	var challenge handshakeServerMessage
	if err := readNulJSON(conn, &challenge); err != nil {
		return &ConnectionError{Op: "read handshake challenge", Err: err}
	}
	if !challenge.Success {
		return &AuthenticationError{Message: handshakeFailureMessage(challenge)}
	}

	serverFirst := challenge.Authentication
	serverNonce, salt, iterations, err := parseServerFirst(serverFirst)
	if err != nil {
		return &AuthenticationError{Message: err.Error()}
	}
	if !strings.HasPrefix(serverNonce, clientNonce) {
		return &AuthenticationError{Message: "server nonce does not extend client nonce"}
	}

	authMessage := clientFirstBare + "," + serverFirst + "," + "c=biws,r=" + serverNonce
	keys := deriveScramKeys(opts.Password, salt, iterations, authMessage)

	clientFinalMessage := "c=biws,r=" + serverNonce + ",p=" + base64.StdEncoding.EncodeToString(keys.ClientProof)
	final := handshakeClientFinal{Authentication: clientFinalMessage}
	if err := writeNulJSON(conn, final); err != nil {
		return &ConnectionError{Op: "write handshake client-final", Err: err}
	}

	// Message 4: server verification.
	var verify handshakeServerMessage
	if err := readNulJSON(conn, &verify); err != nil {
		return &ConnectionError{Op: "read handshake verification", Err: err}
	}
	if !verify.Success {
		return &AuthenticationError{Message: handshakeFailureMessage(verify)}
	}

	gotSig, err := parseServerFinal(verify.Authentication)
	if err != nil {
		return &AuthenticationError{Message: err.Error()}
	}
	wantSig := base64.StdEncoding.EncodeToString(keys.ServerSignature)
	if gotSig != wantSig {
		return &AuthenticationError{Message: "server signature mismatch"}
	}

	log.Debug("rethinkdb: handshake complete")
	return nil
}

func handshakeFailureMessage(msg handshakeServerMessage) string {
	if msg.Error != "" {
		return msg.Error
	}
	return "handshake rejected by server"
}

// parseServerFirst parses "r=<nonce>,s=<salt-b64>,i=<iterations>".
func parseServerFirst(s string) (nonce string, salt []byte, iterations int, err error) {
	fields := splitScramFields(s)
	r, ok1 := fields["r"]
	saltB64, ok2 := fields["s"]
	iterStr, ok3 := fields["i"]
	if !ok1 || !ok2 || !ok3 {
		return "", nil, 0, fmt.Errorf("rethinkdb: malformed SCRAM server-first message %q", s)
	}
	salt, err = base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return "", nil, 0, fmt.Errorf("rethinkdb: malformed SCRAM salt: %w", err)
	}
	iterations, err = strconv.Atoi(iterStr)
	if err != nil {
		return "", nil, 0, fmt.Errorf("rethinkdb: malformed SCRAM iteration count: %w", err)
	}
	return r, salt, iterations, nil
}

// parseServerFinal parses "v=<signature-b64>".
func parseServerFinal(s string) (string, error) {
	fields := splitScramFields(s)
	v, ok := fields["v"]
	if !ok {
		return "", fmt.Errorf("rethinkdb: malformed SCRAM server-final message %q", s)
	}
	return v, nil
}

func splitScramFields(s string) map[string]string {
	out := map[string]string{}
	for _, part := range strings.Split(s, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 {
			out[kv[0]] = kv[1]
		}
	}
	return out
}

// writeNulJSON / readNulJSON implement the handshake's framing: each
// message is plain JSON terminated by a single NUL byte, distinct from the
// length-prefixed framing used once the handshake completes (spec.md §4.4).

func writeNulJSON(conn net.Conn, v interface{}) error {
	payload, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	payload = append(payload, 0)
	_, err = conn.Write(payload)
	return err
}

func readNulJSON(conn net.Conn, v interface{}) error {
	var buf []byte
	one := make([]byte, 1)
	for {
		if _, err := conn.Read(one); err != nil {
			return err
		}
		if one[0] == 0 {
			break
		}
		buf = append(buf, one[0])
	}
	return sonic.Unmarshal(buf, v)
}
