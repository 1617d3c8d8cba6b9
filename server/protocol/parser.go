// parse raw bytes to HTTP Request struct
// only parser logic, no io
package protocol

import (
	"bytes"
	"fmt"
	"strings"
)

// for fast access
var (
	headSep = []byte("\r\n\r\n")
	lf      = []byte("\n")
	cr      = []byte("\r")
)

const contentLength = "content-length"

// stateless HTTPParser struct
// should be init in server.go, MaxSize 0 means no limit
type HTTPParser struct {
	MaxSize int
}

// parse raw bytes read from one connection to Request;
// returns ErrIncomplete while more bytes are needed, atEOF means peer stopped sending
// so we take what we have. body is copied, raw can be reused after return
func (p *HTTPParser) Parse(raw []byte, atEOF bool) (*Request, error) {
	if p.MaxSize > 0 && len(raw) > p.MaxSize {
		return nil, ErrTooLarge
	}
	if len(raw) == 0 {
		if !atEOF {
			return nil, ErrIncomplete
		}
		return nil, fmt.Errorf("%w: empty request", ErrMalformed)
	}

	// split head and body on blank line
	var head, rest []byte
	if i := bytes.Index(raw, headSep); i != -1 {
		head, rest = raw[:i], raw[i+len(headSep):]
	} else if atEOF {
		head = raw
	} else {
		return nil, ErrIncomplete
	}

	req := &Request{Headers: make(Header)}

	// request line
	line, hdrs, _ := bytes.Cut(head, lf)
	if err := parseRequestLine(bytes.TrimSuffix(line, cr), req); err != nil {
		return nil, err
	}

	// headers, lenient: line w/o ": " is skipped, not an error
	for len(hdrs) > 0 {
		var l []byte
		l, hdrs, _ = bytes.Cut(hdrs, lf)
		l = bytes.TrimSuffix(l, cr)

		key, val, ok := bytes.Cut(l, colon)
		if !ok || len(key) == 0 {
			continue
		}
		req.Headers.set(string(key), string(val))
	}

	// body, Content-Length bounds it; no Content-Length means all we've read
	if cl, ok := req.Headers[contentLength]; ok {
		n, ok := parseLen(strings.TrimSpace(cl))
		if !ok {
			return nil, fmt.Errorf("%w: bad content-length %q", ErrMalformed, cl)
		}
		if len(rest) < n {
			if !atEOF {
				return nil, ErrIncomplete
			}
			n = len(rest)
		}
		rest = rest[:n]
	}
	if len(rest) > 0 {
		req.Body = bytes.Clone(rest)
	}

	return req, nil
}

// METHOD SP target SP proto, tokens counted instead of positional access
func parseRequestLine(line []byte, req *Request) error {
	fields := strings.Fields(string(line))
	if len(fields) < 3 {
		return fmt.Errorf("%w: request line %q", ErrMalformed, line)
	}

	if !validMethod(fields[0]) {
		return fmt.Errorf("%w: method %q", ErrMalformed, fields[0])
	}
	if !strings.HasPrefix(fields[1], "/") {
		return fmt.Errorf("%w: target %q", ErrMalformed, fields[1])
	}

	req.Method = fields[0]
	req.Target = fields[1]
	req.Proto = fields[2]
	return nil
}

// decimal content-length, only digits allowed
func parseLen(s string) (int, bool) {
	const maxLen = 1 << 40
	if len(s) == 0 {
		return 0, false
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n > maxLen {
			return 0, false
		}
	}
	return n, true
}
