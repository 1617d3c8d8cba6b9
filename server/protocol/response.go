package protocol

import "strings"

// response header, kept in a slice so wire order is the insertion order
type HeaderField struct {
	Key, Val string
}

// Response is what a handler produced: status code, ordered headers and body.
// Content-Length is recomputed by AppendTo so transforms of Body never desync it
type Response struct {
	Code    int
	Headers []HeaderField
	Body    []byte
}

func NewResponse(code int) *Response {
	return &Response{Code: code}
}

// get header value (case-insensitive key)
func (r *Response) Get(key string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Key, key) {
			return h.Val, true
		}
	}
	return "", false
}

// set replaces the first header w same key or appends a new one
func (r *Response) Set(key, val string) {
	for i := range r.Headers {
		if strings.EqualFold(r.Headers[i].Key, key) {
			r.Headers[i].Val = val
			return
		}
	}
	r.Headers = append(r.Headers, HeaderField{Key: key, Val: val})
}

// shallow copy w own header slice, body is shared
func (r *Response) clone() *Response {
	c := *r
	c.Headers = append([]HeaderField(nil), r.Headers...)
	return &c
}
