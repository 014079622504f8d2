package urlconn

import (
	"mime"
	"net/http"
	"path"
)

// sniffLen is the number of bytes http.DetectContentType considers.
const sniffLen = 512

// mediaType infers the media type of name by its extension, then by head.
// Parameters such as charset are dropped.
func mediaType(name string, head []byte) string {
	ct := mime.TypeByExtension(path.Ext(name))
	if ct == "" {
		ct = http.DetectContentType(head)
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ct
	}
	return mt
}
