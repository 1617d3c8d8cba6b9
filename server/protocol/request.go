package protocol

import "strings"

// method is any token (RFC 9110 tchar), router decides if it is allowed;
// so unknown methods on /files get 405 and not a parse error
func validMethod(m string) bool {
	if m == "" {
		return false
	}
	for i := 0; i < len(m); i++ {
		if !isTchar(m[i]) {
			return false
		}
	}
	return true
}

func isTchar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$%&'*+-.^_`|~", c) != -1
}

// Header is a request header set keyed by lower-cased name,
// so Get is case-insensitive
type Header map[string]string

// get header value, "" if absent
func (h Header) Get(key string) string {
	return h[strings.ToLower(key)]
}

// check if header is present at all (empty value counts)
func (h Header) Has(key string) bool {
	_, ok := h[strings.ToLower(key)]
	return ok
}

func (h Header) set(key, val string) {
	h[strings.ToLower(key)] = val
}

// Request is one parsed HTTP request, it is built once per connection
// and never changed after parsing
type Request struct {
	Method string
	Target string // raw request-target, always starts with '/'
	Proto  string

	Headers Header
	Body    []byte
}
