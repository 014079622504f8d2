package urlconn

import (
	"bytes"
	"errors"
	"io"
	"testing"

	_ "github.com/beyondstorage/go-service-memory"
	"github.com/beyondstorage/go-storage/v4/services"
	"github.com/beyondstorage/go-storage/v4/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorager(t *testing.T) types.Storager {
	s, err := services.NewStoragerFromString("memory:///urlconn")
	require.NoError(t, err)

	content := []byte(helloWorld)
	_, err = s.Write("hello.txt", bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)
	return s
}

func TestStorage_Content(t *testing.T) {
	o := &Opener{Storagers: map[string]types.Storager{"mem": newTestStorager(t)}}

	h, err := o.Open("mem:///hello.txt")
	require.NoError(t, err)
	defer h.Close()

	r, err := h.Content()
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, helloWorld, string(b))

	n, err := h.ContentLength()
	require.NoError(t, err)
	assert.Equal(t, int64(len(helloWorld)), n)

	ct, err := h.ContentType()
	require.NoError(t, err)
	assert.Equal(t, "text/plain", ct)
}

func TestStorage_Close(t *testing.T) {
	o := &Opener{Storagers: map[string]types.Storager{"mem": newTestStorager(t)}}

	h, err := o.Open("mem:///hello.txt")
	require.NoError(t, err)
	require.NoError(t, h.Close())
	require.NoError(t, h.Close())

	_, err = h.Content()
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrObjectNotExist))
}

func TestStorage_Missing(t *testing.T) {
	o := &Opener{Storagers: map[string]types.Storager{"mem": newTestStorager(t)}}

	_, err := o.Open("mem:///missing.txt")
	var connErr *ConnectionError
	assert.True(t, errors.As(err, &connErr))
}
