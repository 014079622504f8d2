package urlconn

import (
	"io"
	"net/http"
	"time"
)

// connection presents a file, network or storage connection owned by a Handle.
type connection interface {
	// requestProperties returns the request properties of the connection.
	requestProperties() *properties

	// Content opens a reader over the payload of the connection.
	Content() (io.ReadCloser, error)

	// ContentLength returns the payload length, -1 if unknown.
	ContentLength() (int64, error)

	// ContentType returns the media type of the payload.
	ContentType() (string, error)

	// Close the connection (and any associated resource).
	Close() error
}

// properties are the request properties and timeout shared by every kind of connection.
type properties struct {
	header         http.Header
	connectTimeout time.Duration
}

func (p *properties) add(key, value string) {
	if p.header == nil {
		p.header = make(http.Header)
	}
	p.header.Add(key, value)
}

// get returns the most recently added value of key.
func (p *properties) get(key string) (string, bool) {
	values := p.header.Values(key)
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

func (p *properties) clone() http.Header {
	if p.header == nil {
		return make(http.Header)
	}
	return p.header.Clone()
}
