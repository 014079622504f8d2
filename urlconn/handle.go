// Package urlconn opens file, http and storage targets behind a handle that
// is released explicitly with Close.
//
// A Handle is not safe for concurrent use. Release it on every exit path:
//
//	h, err := urlconn.Open("file:///etc/hosts")
//	if err != nil {
//		return err
//	}
//	defer h.Close()
package urlconn

import (
	"io"
	"time"

	"go.uber.org/zap"
)

// Handle owns exactly one connection from Open until Close.
type Handle struct {
	id     string     // id of the handle
	target string     // target the handle was opened against
	conn   connection // underlying connection
	closed bool       // set once by Close
}

// ID returns the id of the handle, used to tell handles apart in logs.
func (h *Handle) ID() string {
	return h.id
}

// Target returns the target the handle was opened against.
func (h *Handle) Target() string {
	return h.target
}

// AddRequestProperty adds a request property. Values of the same key accumulate.
func (h *Handle) AddRequestProperty(key, value string) {
	h.conn.requestProperties().add(key, value)
}

// RequestProperty returns the most recently added value of key.
func (h *Handle) RequestProperty(key string) (string, bool) {
	return h.conn.requestProperties().get(key)
}

// SetConnectTimeout sets the timeout for establishing the connection. Zero means no timeout.
func (h *Handle) SetConnectTimeout(d time.Duration) {
	h.conn.requestProperties().connectTimeout = d
}

// ConnectTimeout returns the value last set by SetConnectTimeout.
func (h *Handle) ConnectTimeout() time.Duration {
	return h.conn.requestProperties().connectTimeout
}

// Content opens a reader over the payload.
func (h *Handle) Content() (io.ReadCloser, error) {
	return h.conn.Content()
}

// ContentLength returns the payload length in bytes, -1 if unknown.
func (h *Handle) ContentLength() (int64, error) {
	return h.conn.ContentLength()
}

// ContentType returns the media type of the payload.
func (h *Handle) ContentType() (string, error) {
	return h.conn.ContentType()
}

// Close releases the connection. Closing a closed handle is a no-op.
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	err := h.conn.Close()
	zap.L().Debug("Connection closed", zap.String("id", h.id), zap.String("target", h.target), zap.Error(err))
	return err
}

// Equal reports whether h and other are the same handle. Handles opened
// against the same target are never equal.
func (h *Handle) Equal(other *Handle) bool {
	return h == other
}
