package urlconn

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/beyondstorage/go-storage/v4/types"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

// Opener opens handles with shared defaults. The zero value is ready to use.
type Opener struct {
	Header         http.Header               // Request properties added to every handle
	ConnectTimeout time.Duration             // Connect timeout of every handle
	Client         *http.Client              // Client for http targets, http.DefaultClient if nil
	Storagers      map[string]types.Storager // Storagers serving targets by lower case scheme
}

var defaultOpener = &Opener{}

// Open parses target and opens a handle to it with the default Opener.
func Open(target string) (*Handle, error) {
	return defaultOpener.Open(target)
}

// OpenURL opens a handle to u with the default Opener.
func OpenURL(u *url.URL) (*Handle, error) {
	return defaultOpener.OpenURL(u)
}

// Open parses target and opens a handle to it.
func (o *Opener) Open(target string) (*Handle, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, &ConnectionError{Target: target, Err: err}
	}
	return o.OpenURL(u)
}

// OpenURL opens a handle to u. The connection is established before it returns.
func (o *Opener) OpenURL(u *url.URL) (*Handle, error) {
	if u == nil {
		return nil, &ConnectionError{Err: errors.New("nil url")}
	}
	target := u.String()

	conn, err := o.dial(u)
	if err != nil {
		return nil, &ConnectionError{Target: target, Err: err}
	}

	p := conn.requestProperties()
	for key, values := range o.Header {
		for _, v := range values {
			p.add(key, v)
		}
	}
	p.connectTimeout = o.ConnectTimeout

	h := &Handle{
		id:     strings.Replace(uuid.NewV4().String(), "-", "", -1),
		target: target,
		conn:   conn,
	}
	zap.L().Debug("Connection opened", zap.String("id", h.id), zap.String("target", target))
	return h, nil
}

func (o *Opener) dial(u *url.URL) (connection, error) {
	scheme := strings.ToLower(u.Scheme)
	if s, ok := o.Storagers[scheme]; ok {
		return openStorage(s, u)
	}

	switch scheme {
	case "":
		return nil, ErrNotAbsolute
	case "file":
		return openFile(u)
	case "http", "https":
		return openHTTP(u, o.Client)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, u.Scheme)
}
