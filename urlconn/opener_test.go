package urlconn

import (
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Failures(t *testing.T) {
	missing := &url.URL{Scheme: "file", Path: filepath.ToSlash(filepath.Join(t.TempDir(), "missing.txt"))}

	cases := []struct {
		name   string
		target string
		is     error
	}{
		{"malformed", "http://[::1", nil},
		{"relative", "testFile.txt", ErrNotAbsolute},
		{"unsupported scheme", "gopher://example.com/", ErrUnsupportedScheme},
		{"missing file", missing.String(), fs.ErrNotExist},
		{"remote file host", "file://example.com/etc/hosts", nil},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Open(tt.target)
			require.Error(t, err)
			assert.Nil(t, h)

			var connErr *ConnectionError
			require.True(t, errors.As(err, &connErr))
			assert.Equal(t, tt.target, connErr.Target)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "got %v", err)
			}
		})
	}
}

func TestOpenURL_Nil(t *testing.T) {
	_, err := OpenURL(nil)
	var connErr *ConnectionError
	assert.True(t, errors.As(err, &connErr))
}

func TestOpener_Defaults(t *testing.T) {
	o := &Opener{
		Header:         http.Header{"User-Agent": []string{"beyond-urlconn"}},
		ConnectTimeout: 3 * time.Second,
	}

	h, err := o.OpenURL(newTestFile(t, helloWorld))
	require.NoError(t, err)
	defer h.Close()

	v, ok := h.RequestProperty("user-agent")
	assert.True(t, ok)
	assert.Equal(t, "beyond-urlconn", v)
	assert.Equal(t, 3*time.Second, h.ConnectTimeout())

	// Handles do not write through to the opener's header.
	h.AddRequestProperty("User-Agent", "other")
	assert.Equal(t, []string{"beyond-urlconn"}, o.Header.Values("User-Agent"))
}

func TestOpener_SchemeCaseInsensitive(t *testing.T) {
	u := newTestFile(t, helloWorld)
	u.Scheme = "FILE"

	h, err := Open(u.String())
	require.NoError(t, err)
	assert.NoError(t, h.Close())
}
