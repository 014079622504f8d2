package urlconn

import (
	"bytes"
	"io"
	"io/fs"
	"net/url"
	"strings"

	"github.com/beyondstorage/go-storage/v4/services"
	"github.com/beyondstorage/go-storage/v4/types"
)

// storageConnection is a connection to an object behind a go-storage service.
// The storager is shared and owned by the Opener.
type storageConnection struct {
	props    properties
	storager types.Storager
	path     string
	object   *types.Object
	closed   bool
}

func openStorage(storager types.Storager, u *url.URL) (connection, error) {
	p := strings.TrimPrefix(u.Path, "/")

	o, err := storager.Stat(p)
	if err != nil {
		return nil, err
	}
	return &storageConnection{storager: storager, path: p, object: o}, nil
}

func (c *storageConnection) requestProperties() *properties {
	return &c.props
}

func (c *storageConnection) read() ([]byte, error) {
	if c.closed {
		return nil, c.closedError()
	}
	var buf bytes.Buffer
	if _, err := c.storager.Read(c.path, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *storageConnection) Content() (io.ReadCloser, error) {
	b, err := c.read()
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (c *storageConnection) ContentLength() (int64, error) {
	if c.closed {
		return -1, c.closedError()
	}
	if n, ok := c.object.GetContentLength(); ok {
		return n, nil
	}

	b, err := c.read()
	if err != nil {
		return -1, err
	}
	return int64(len(b)), nil
}

func (c *storageConnection) ContentType() (string, error) {
	if c.closed {
		return "", c.closedError()
	}
	if ct, ok := c.object.GetContentType(); ok && ct != "" {
		return ct, nil
	}

	b, err := c.read()
	if err != nil {
		return "", err
	}
	if len(b) > sniffLen {
		b = b[:sniffLen]
	}
	return mediaType(c.path, b), nil
}

func (c *storageConnection) Close() error {
	c.closed = true
	return nil
}

func (c *storageConnection) closedError() error {
	return &fs.PathError{Op: "read", Path: c.path, Err: services.ErrObjectNotExist}
}
