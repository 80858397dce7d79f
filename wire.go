package rethinkdb

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

// handshakeMagic is sent as the first four bytes of every connection,
// little-endian, identifying the v0.4 JSON/SCRAM-SHA-256 handshake
// (spec.md §4.4).
const handshakeMagic uint32 = 0x34c2bdc3

// maxFrameLength bounds a single response frame, guarding against a
// corrupt length prefix turning into an enormous allocation.
const maxFrameLength = 128 << 20

// writeFrame writes one query frame: u64_le token, u32_le length, then the
// JSON payload (spec.md §4.5).
func writeFrame(w io.Writer, token uint64, payload []byte) error {
	var header [12]byte
	binary.LittleEndian.PutUint64(header[0:8], token)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(payload)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// readFrame reads one response frame in the same shape.
func readFrame(r io.Reader) (uint64, []byte, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, nil, err
	}
	token := binary.LittleEndian.Uint64(header[0:8])
	length := binary.LittleEndian.Uint32(header[8:12])
	if length > maxFrameLength {
		return 0, nil, fmt.Errorf("rethinkdb: response frame too large (%d bytes)", length)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}
	return token, payload, nil
}

// wireQuery is the three-element query envelope of spec.md §3.
type wireQuery [3]interface{}

func encodeJSON(v interface{}) ([]byte, error) {
	return sonic.Marshal(v)
}

// wireResponse is the decoded shape of a response payload (spec.md §3's
// Response). Results is left as []interface{} of already-JSON-decoded
// values; pseudo-type objects (TIME, BINARY, ...) are handed back to
// callers raw, matching the "native vs raw" choice made by RunOpts.
type wireResponse struct {
	Type      int           `json:"t"`
	ErrorCode int           `json:"e,omitempty"`
	Results   []interface{} `json:"r"`
	Backtrace []interface{} `json:"b,omitempty"`
	Notes     []int         `json:"n,omitempty"`
	Profile   interface{}   `json:"p,omitempty"`
}

func decodeResponse(payload []byte) (*wireResponse, error) {
	var resp wireResponse
	if err := sonic.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("rethinkdb: malformed response frame: %w", err)
	}
	return &resp, nil
}

// responseIsFeed reports whether a SUCCESS_PARTIAL response's notes array
// marks it as belonging to a changefeed (spec.md §4.6).
func responseIsFeed(resp *wireResponse) bool {
	for _, n := range resp.Notes {
		if n == responseNoteFeedCode {
			return true
		}
	}
	return false
}

// responseNoteFeedCode is the wire note code for SEQUENCE_FEED.
const responseNoteFeedCode = 1

// errorMessage extracts the single string RethinkDB stuffs into Results[0]
// for CLIENT_ERROR/COMPILE_ERROR/RUNTIME_ERROR responses.
func (r *wireResponse) errorMessage() string {
	if len(r.Results) == 0 {
		return ""
	}
	if s, ok := r.Results[0].(string); ok {
		return s
	}
	return fmt.Sprintf("%v", r.Results[0])
}
