package rethinkdb

import (
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/docker/go-connections/tlsconfig"
	"github.com/sirupsen/logrus"
)

// TLSOptions mirrors docker/go-connections/tlsconfig's client options,
// letting a caller build a *tls.Config from PEM files the same way the
// teacher's codebase does for its other network clients instead of hand
// assembling crypto/tls.Config (spec.md §1 Non-goals: "does not provide its
// own TLS stack").
type TLSOptions struct {
	CAFile             string
	CertFile           string
	KeyFile            string
	InsecureSkipVerify bool
}

// NewTLSConfig builds a *tls.Config suitable for ConnectOpts.TLS.
func NewTLSConfig(opts TLSOptions) (*tls.Config, error) {
	cfg, err := tlsconfig.Client(tlsconfig.Options{
		CAFile:             opts.CAFile,
		CertFile:           opts.CertFile,
		KeyFile:            opts.KeyFile,
		InsecureSkipVerify: opts.InsecureSkipVerify,
	})
	if err != nil {
		return nil, &DriverError{Message: fmt.Sprintf("building TLS config: %s", err)}
	}
	return cfg, nil
}

// Connect dials a RethinkDB server, performs the SCRAM-SHA-256 handshake,
// and returns a ready-to-use Session (spec.md §4.4, §6).
func Connect(opts ConnectOpts) (*Session, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, &DriverError{Message: err.Error()}
	}

	addr := net.JoinHostPort(opts.Host, fmt.Sprintf("%d", opts.Port))
	dialer := net.Dialer{Timeout: opts.Timeout}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return nil, &ConnectionError{Op: "dial", Err: err}
	}

	if opts.TLS != nil {
		conn = tls.Client(conn, opts.TLS)
	}

	if opts.Timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(opts.Timeout))
	}

	log := newLogger(opts)
	if err := performHandshake(conn, opts, generateClientNonce, log); err != nil {
		handshakeFailures.Inc()
		conn.Close()
		return nil, err
	}

	if opts.Timeout > 0 {
		_ = conn.SetDeadline(time.Time{})
	}

	return newSession(conn, opts, log), nil
}

// newLogger builds a per-connection logrus entry tagged with the server
// address, matching the teacher's convention of attaching stable fields to
// a logger once instead of repeating them at every call site.
func newLogger(opts ConnectOpts) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"component": "rethinkdb",
		"host":      opts.Host,
		"port":      opts.Port,
	})
}
