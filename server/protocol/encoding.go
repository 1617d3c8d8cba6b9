package protocol

import (
	"bytes"
	"compress/gzip"
	"strconv"
	"strings"
	"sync"
)

const (
	headerAcceptEncoding  = "Accept-Encoding"
	headerContentEncoding = "Content-Encoding"
	encGzip               = "gzip"
)

var gzBufPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// check Accept-Encoding for gzip token, comma separated, params after ';' ignored
// except q=0 that means "not acceptable"
func AcceptsGzip(req *Request) bool {
	if req == nil || !req.Headers.Has(headerAcceptEncoding) {
		return false
	}

	for _, tok := range strings.Split(req.Headers.Get(headerAcceptEncoding), ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(tok), ";")
		if !strings.EqualFold(strings.TrimSpace(name), encGzip) {
			continue
		}
		return !zeroQ(params)
	}
	return false
}

func zeroQ(params string) bool {
	for _, p := range strings.Split(params, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(k), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil && q == 0
	}
	return false
}

// Negotiate returns resp w gzip body if req accepts it, otherwise resp itself.
// status and other headers are kept, Content-Length gets compressed size and
// Content-Encoding: gzip is appended. compression errors fall back to resp unchanged
func Negotiate(resp *Response, req *Request, level int) *Response {
	if resp == nil || !AcceptsGzip(req) {
		return resp
	}

	body, err := gzipBytes(resp.Body, level)
	if err != nil {
		return resp
	}

	out := resp.clone()
	out.Body = body
	out.Set(headerContentLength, strconv.Itoa(len(body)))
	out.Headers = append(out.Headers, HeaderField{Key: headerContentEncoding, Val: encGzip})
	return out
}

func gzipBytes(src []byte, level int) ([]byte, error) {
	buf := gzBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer gzBufPool.Put(buf)

	zw, err := gzip.NewWriterLevel(buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(src); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return bytes.Clone(buf.Bytes()), nil
}
