package urlconn

import (
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// httpConnection is a connection to a http or https target. The round trip is
// deferred to the first content access so properties can still be set.
type httpConnection struct {
	props     properties
	client    *http.Client
	req       *http.Request
	resp      *http.Response
	transport *http.Transport // set when a connect timeout was applied
	closed    bool
}

func openHTTP(u *url.URL, client *http.Client) (connection, error) {
	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &httpConnection{client: client, req: req}, nil
}

func (c *httpConnection) requestProperties() *properties {
	return &c.props
}

func (c *httpConnection) connect() (*http.Response, error) {
	if c.closed {
		return nil, c.closedError()
	}
	if c.resp != nil {
		return c.resp, nil
	}

	c.req.Header = c.props.clone()
	resp, err := c.dialClient().Do(c.req)
	if err != nil {
		zap.L().Debug("Round trip failed", zap.String("url", c.req.URL.String()), zap.Error(err))
		return nil, err
	}
	zap.L().Debug("Round trip done", zap.String("url", c.req.URL.String()), zap.Int("status", resp.StatusCode))

	c.resp = resp
	return resp, nil
}

// dialClient returns the client to use, with its dialer bounded by the connect timeout.
func (c *httpConnection) dialClient() *http.Client {
	timeout := c.props.connectTimeout
	if timeout <= 0 {
		return c.client
	}

	rt := c.client.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	base, ok := rt.(*http.Transport)
	if !ok {
		// Custom round trippers own their dialing.
		return c.client
	}

	c.transport = base.Clone()
	c.transport.DialContext = (&net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}).DialContext

	client := *c.client
	client.Transport = c.transport
	return &client
}

// Content returns the response body. It is read once, later calls return the same body.
// A 4xx or 5xx response is a *StatusError, metadata stays readable.
func (c *httpConnection) Content() (io.ReadCloser, error) {
	resp, err := c.connect()
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{URL: c.req.URL.String(), StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}

func (c *httpConnection) ContentLength() (int64, error) {
	resp, err := c.connect()
	if err != nil {
		return -1, err
	}
	return resp.ContentLength, nil
}

func (c *httpConnection) ContentType() (string, error) {
	resp, err := c.connect()
	if err != nil {
		return "", err
	}
	return resp.Header.Get("Content-Type"), nil
}

func (c *httpConnection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	var err error
	if c.resp != nil {
		err = c.resp.Body.Close()
	}
	if c.transport != nil {
		c.transport.CloseIdleConnections()
	}
	return err
}

// closedError mirrors the error the client reports for a released connection.
func (c *httpConnection) closedError() error {
	return &url.Error{
		Op:  methodOp(c.req.Method),
		URL: c.req.URL.String(),
		Err: net.ErrClosed,
	}
}

// methodOp formats a method the way http.Client names operations, "GET" -> "Get".
func methodOp(method string) string {
	return method[:1] + strings.ToLower(method[1:])
}
