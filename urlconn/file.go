package urlconn

import (
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// fileConnection is a connection to a local file.
type fileConnection struct {
	props properties
	path  string
	file  *os.File // nil once closed
}

func openFile(u *url.URL) (connection, error) {
	if u.Host != "" && u.Host != "localhost" {
		return nil, fmt.Errorf("file host %q is not local", u.Host)
	}
	p := u.Path
	if u.Opaque != "" {
		p = u.Opaque
	}
	p = filepath.FromSlash(p)

	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	return &fileConnection{path: p, file: f}, nil
}

func (c *fileConnection) requestProperties() *properties {
	return &c.props
}

// Content returns a fresh reader over the whole file. The descriptor stays owned
// by the connection, closing the reader does not release it.
func (c *fileConnection) Content() (io.ReadCloser, error) {
	if c.file == nil {
		return nil, c.closedError()
	}
	fi, err := c.file.Stat()
	if err != nil {
		return nil, err
	}
	return io.NopCloser(io.NewSectionReader(c.file, 0, fi.Size())), nil
}

func (c *fileConnection) ContentLength() (int64, error) {
	if c.file == nil {
		return -1, c.closedError()
	}
	fi, err := c.file.Stat()
	if err != nil {
		return -1, err
	}
	return fi.Size(), nil
}

func (c *fileConnection) ContentType() (string, error) {
	if c.file == nil {
		return "", c.closedError()
	}
	head := make([]byte, sniffLen)
	n, err := c.file.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return "", err
	}
	return mediaType(c.path, head[:n]), nil
}

func (c *fileConnection) Close() error {
	if c.file == nil {
		return nil
	}
	f := c.file
	c.file = nil
	return f.Close()
}

// closedError is what opening the released file reports.
func (c *fileConnection) closedError() error {
	return &fs.PathError{Op: "open", Path: c.path, Err: fs.ErrNotExist}
}
