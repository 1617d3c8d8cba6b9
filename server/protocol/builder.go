package protocol

import "strings"

// lookup table for status codes
// i use flat list instead of map bc codes is fixed
// only codes the server sends
var statusTable = [501]string{
	200: "200 OK",
	201: "201 Created",

	404: "404 Not Found",
	405: "405 Method Not Allowed",

	500: "500 Internal Server Error",
}

// for fast access
var (
	proto = []byte("HTTP/1.1 ")
	crlf  = []byte("\r\n")
	colon = []byte(": ")
)

const headerContentLength = "Content-Length"

// status line text for code, unknown codes turn into 500
func StatusText(code int) string {
	if code < 0 || code >= len(statusTable) || statusTable[code] == "" {
		return statusTable[500]
	}
	return statusTable[code]
}

// helper to append uint in decimal w/o strconv allocs
func appendUint(dst []byte, n uint) []byte {
	if n == 0 {
		return append(dst, '0')
	}

	var tmp [20]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, tmp[i:]...)
}

// serialize response to wire bytes appended to dst:
// status line, headers in order, blank line, raw body.
// Content-Length always gets len(Body), it is appended last if handler didn't set it
func (r *Response) AppendTo(dst []byte) []byte {
	dst = append(dst, proto...)
	dst = append(dst, StatusText(r.Code)...)
	dst = append(dst, crlf...)

	wroteLen := false
	for _, h := range r.Headers {
		dst = append(dst, h.Key...)
		dst = append(dst, colon...)
		if strings.EqualFold(h.Key, headerContentLength) {
			dst = appendUint(dst, uint(len(r.Body)))
			wroteLen = true
		} else {
			dst = append(dst, h.Val...)
		}
		dst = append(dst, crlf...)
	}
	if !wroteLen && len(r.Body) > 0 {
		dst = append(dst, headerContentLength...)
		dst = append(dst, colon...)
		dst = appendUint(dst, uint(len(r.Body)))
		dst = append(dst, crlf...)
	}

	dst = append(dst, crlf...)
	return append(dst, r.Body...)
}
