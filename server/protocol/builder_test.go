package protocol

import "testing"

func BenchmarkAppendTo(b *testing.B) {
	resp := &Response{
		Code:    200,
		Headers: []HeaderField{{"Content-Type", "text/plain"}, {"Content-Length", "0"}},
		Body:    []byte("{\"status\":\"ok\",\"message\":\"hello world\"}"),
	}
	dst := make([]byte, 0, 1024)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		dst = resp.AppendTo(dst[:0])
	}
}

func TestAppendTo(t *testing.T) {
	tests := []struct {
		name string
		resp *Response
		want string
	}{
		{
			name: "status only",
			resp: NewResponse(200),
			want: "HTTP/1.1 200 OK\r\n\r\n",
		},
		{
			name: "created",
			resp: NewResponse(201),
			want: "HTTP/1.1 201 Created\r\n\r\n",
		},
		{
			name: "type before length",
			resp: &Response{
				Code:    200,
				Headers: []HeaderField{{"Content-Type", "text/plain"}, {"Content-Length", "3"}},
				Body:    []byte("abc"),
			},
			want: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 3\r\n\r\nabc",
		},
		{
			name: "stale length is recomputed",
			resp: &Response{
				Code:    200,
				Headers: []HeaderField{{"Content-Length", "999"}},
				Body:    []byte("abcd"),
			},
			want: "HTTP/1.1 200 OK\r\nContent-Length: 4\r\n\r\nabcd",
		},
		{
			name: "missing length is appended",
			resp: &Response{
				Code:    404,
				Headers: []HeaderField{{"Content-Type", "text/plain"}},
				Body:    []byte("nope"),
			},
			want: "HTTP/1.1 404 Not Found\r\nContent-Type: text/plain\r\nContent-Length: 4\r\n\r\nnope",
		},
		{
			name: "explicit zero length",
			resp: &Response{
				Code:    200,
				Headers: []HeaderField{{"Content-Type", "application/octet-stream"}, {"Content-Length", ""}},
			},
			want: "HTTP/1.1 200 OK\r\nContent-Type: application/octet-stream\r\nContent-Length: 0\r\n\r\n",
		},
		{
			name: "unknown code is 500",
			resp: NewResponse(299),
			want: "HTTP/1.1 500 Internal Server Error\r\n\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(tt.resp.AppendTo(nil)); got != tt.want {
				t.Errorf("AppendTo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusText(t *testing.T) {
	tests := map[int]string{
		200:  "200 OK",
		201:  "201 Created",
		404:  "404 Not Found",
		405:  "405 Method Not Allowed",
		500:  "500 Internal Server Error",
		400:  "500 Internal Server Error",
		501:  "500 Internal Server Error",
		-1:   "500 Internal Server Error",
		9999: "500 Internal Server Error",
	}
	for code, want := range tests {
		if got := StatusText(code); got != want {
			t.Errorf("StatusText(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestResponseSet(t *testing.T) {
	r := NewResponse(200)
	r.Set("Content-Type", "text/plain")
	r.Set("content-type", "text/html")

	if len(r.Headers) != 1 {
		t.Fatalf("expected 1 header, got %d", len(r.Headers))
	}
	if v, _ := r.Get("CONTENT-TYPE"); v != "text/html" {
		t.Errorf("Content-Type = %q", v)
	}
	if _, ok := r.Get("Content-Length"); ok {
		t.Error("unexpected Content-Length")
	}
}

func TestAppendUint(t *testing.T) {
	for _, n := range []uint{0, 7, 10, 4221, 1 << 32} {
		got := string(appendUint(nil, n))
		want := fmtUint(n)
		if got != want {
			t.Errorf("appendUint(%d) = %q", n, got)
		}
	}
}

func fmtUint(n uint) string {
	if n == 0 {
		return "0"
	}
	var s []byte
	for n > 0 {
		s = append([]byte{byte(n%10) + '0'}, s...)
		n /= 10
	}
	return string(s)
}
