package urlconn

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
)

var (
	// ErrUnsupportedScheme is returned when no connection kind serves the target's scheme.
	ErrUnsupportedScheme = errors.New("unsupported scheme")
	// ErrNotAbsolute is returned when the target has no scheme.
	ErrNotAbsolute = errors.New("target is not absolute")
)

// ConnectionError is returned when a target cannot be opened.
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// StatusError is returned when a http target answers with an error status.
// Missing and gone resources match fs.ErrNotExist.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Is(target error) bool {
	if target != fs.ErrNotExist {
		return false
	}
	return e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusGone
}
