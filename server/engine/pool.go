// buffer pools shared by all sessions
package engine

import "sync"

const (
	bufSize    = 4096    // initial read buf, grows up to request limit
	maxPooled  = 1 << 16 // bigger bufs are left to gc
	maxRawSize = 1 << 20 // default request limit
)

var (
	// bufPool for session read buffers
	bufPool = sync.Pool{
		New: func() any {
			b := make([]byte, bufSize)
			return &b
		},
	}

	// outPool for serialized responses
	outPool = sync.Pool{
		New: func() any {
			b := make([]byte, 0, bufSize)
			return &b
		},
	}
)

func getBuf() []byte {
	return *(bufPool.Get().(*[]byte))
}

func putBuf(b []byte) {
	if cap(b) != bufSize {
		return
	}
	b = b[:bufSize]
	bufPool.Put(&b)
}
