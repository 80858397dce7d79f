package rethinkdb

import (
	"crypto/tls"
	"time"

	"github.com/go-playground/validator/v10"
)

var optsValidator = validator.New()

// ConnectOpts configures a new Session (spec.md §4.4).
type ConnectOpts struct {
	Host     string        `validate:"required"`
	Port     int           `validate:"omitempty,gt=0,lt=65536"`
	User     string        // default "admin"
	Password string        // default ""
	Database string        // optional default db
	Timeout  time.Duration // handshake deadline; zero means no deadline

	// TLS, when non-nil, wraps the dialed TCP connection before the
	// handshake begins. The core never builds its own TLS stack (spec.md
	// §1 Non-goals); see connect.go and DESIGN.md for how
	// docker/go-connections/tlsconfig feeds this field.
	TLS *tls.Config

	// MaxOpen sets how many Sessions ConnectPool opens (§4.8 in
	// SPEC_FULL.md); zero means one. MaxIdle is validated but not read by
	// Pool or Connect.
	MaxIdle int `validate:"omitempty,gte=0"`
	MaxOpen int `validate:"omitempty,gte=0"`

	// HandshakeVersion pins the wire handshake version. Only V1_0 (the
	// JSON/SCRAM-SHA-256 handshake) is implemented; the field exists so a
	// test can request an unsupported version and observe the resulting
	// AuthenticationError.
	HandshakeVersion HandshakeVersion
}

// HandshakeVersion identifies a RethinkDB wire protocol handshake variant.
type HandshakeVersion int

const (
	// HandshakeV1_0 is the magic-number 0x34c2bdc3 JSON/SCRAM-SHA-256
	// handshake (protocol v0.4) this driver implements.
	HandshakeV1_0 HandshakeVersion = iota
)

func (o ConnectOpts) withDefaults() ConnectOpts {
	if o.Port == 0 {
		o.Port = 28015
	}
	if o.User == "" {
		o.User = "admin"
	}
	return o
}

func (o ConnectOpts) validate() error {
	return optsValidator.Struct(o)
}

// ReadMode selects how RethinkDB picks which replica answers a read.
type ReadMode string

const (
	ReadModeSingle   ReadMode = "single"
	ReadModeMajority ReadMode = "majority"
	ReadModeOutdated ReadMode = "outdated"
)

// Durability selects the write-acknowledgement policy.
type Durability string

const (
	DurabilityHard Durability = "hard"
	DurabilitySoft Durability = "soft"
)

// TimeFormat/GroupFormat/BinaryFormat select native-vs-raw decoding of
// pseudo-typed values.
type WireFormat string

const (
	FormatNative WireFormat = "native"
	FormatRaw    WireFormat = "raw"
)

// RunOpts are the query-level options transmitted in the START envelope's
// third element (spec.md §4.7). Every field is optional; omitted fields are
// not sent.
type RunOpts struct {
	ReadMode                 ReadMode   `validate:"omitempty,oneof=single majority outdated"`
	TimeFormat                WireFormat `validate:"omitempty,oneof=native raw"`
	Profile                   bool
	Durability                Durability `validate:"omitempty,oneof=hard soft"`
	GroupFormat               WireFormat `validate:"omitempty,oneof=native raw"`
	Db                        string
	ArrayLimit                uint32
	BinaryFormat              WireFormat `validate:"omitempty,oneof=native raw"`
	MinBatchRows              uint32
	MaxBatchRows              uint32
	MaxBatchBytes             uint32
	FirstBatchScaledownFactor uint32
	NoReply                   bool
}

func (o RunOpts) validate() error {
	return optsValidator.Struct(o)
}

// toOptions implements the optioner interface (expr.go) so a RunOpts value
// may also be passed directly to Expr (or as a value in a WithOpts map) if a
// caller builds a term manually instead of going through Session.Run.
func (o RunOpts) toOptions() map[string]interface{} {
	m := map[string]interface{}{}
	if o.ReadMode != "" {
		m["read_mode"] = string(o.ReadMode)
	}
	if o.TimeFormat != "" {
		m["time_format"] = string(o.TimeFormat)
	}
	if o.Profile {
		m["profile"] = true
	}
	if o.Durability != "" {
		m["durability"] = string(o.Durability)
	}
	if o.GroupFormat != "" {
		m["group_format"] = string(o.GroupFormat)
	}
	if o.Db != "" {
		m["db"] = o.Db
	}
	if o.ArrayLimit != 0 {
		m["array_limit"] = o.ArrayLimit
	}
	if o.BinaryFormat != "" {
		m["binary_format"] = string(o.BinaryFormat)
	}
	if o.MinBatchRows != 0 {
		m["min_batch_rows"] = o.MinBatchRows
	}
	if o.MaxBatchRows != 0 {
		m["max_batch_rows"] = o.MaxBatchRows
	}
	if o.MaxBatchBytes != 0 {
		m["max_batch_bytes"] = o.MaxBatchBytes
	}
	if o.FirstBatchScaledownFactor != 0 {
		m["first_batch_scaledown_factor"] = o.FirstBatchScaledownFactor
	}
	if o.NoReply {
		m["noreply"] = true
	}
	return m
}

// ServerInfo is the payload of a SERVER_INFO(5) query response.
type ServerInfo struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Proxy   bool     `json:"proxy"`
	Aliases []string `json:"aliases,omitempty"`
}
