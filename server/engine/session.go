// session management, one session per accepted connection
package engine

import (
	"errors"
	"net"
	"sync"
)

var ErrBufferFull = errors.New("engine: request exceeds buffer limit")

// session owns conn and its read buffer, all reads go to Buf[Offset:];
// it is used by one goroutine only and closed exactly once by the engine
type Session struct {
	Conn   net.Conn
	Buf    []byte
	Offset int

	max       int
	closeOnce sync.Once
	closeErr  error
}

func newSession(conn net.Conn, max int) *Session {
	if max <= 0 {
		max = maxRawSize
	}
	return &Session{
		Conn: conn,
		Buf:  getBuf(),
		max:  max,
	}
}

// bytes read so far
func (s *Session) Data() []byte {
	return s.Buf[:s.Offset]
}

func (s *Session) RemoteAddr() string {
	if a := s.Conn.RemoteAddr(); a != nil {
		return a.String()
	}
	return ""
}

// read once from conn, buf grows x2 until limit and then ErrBufferFull
func (s *Session) Read() (int, error) {
	if s.Offset >= s.max {
		return 0, ErrBufferFull
	}
	if s.Offset == len(s.Buf) {
		nb := make([]byte, min(2*len(s.Buf), s.max))
		copy(nb, s.Buf[:s.Offset])
		putBuf(s.Buf)
		s.Buf = nb
	}

	n, err := s.Conn.Read(s.Buf[s.Offset:min(len(s.Buf), s.max)])
	s.Offset += n
	return n, err
}

// close conn, safe to call many times, only first call closes
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.Conn.Close()
	})
	return s.closeErr
}

// close and give buffer back to pool
func (s *Session) release() error {
	err := s.Close()
	putBuf(s.Buf)
	s.Buf = nil
	s.Offset = 0
	return err
}
