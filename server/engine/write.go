package engine

// func that builds resp, engine works only w bytes, no HTTP logic
type buildFunc func(dst []byte) []byte

// get buf from pool, write response and put it back
// so we don't alloc new bufs for every resp
func WriteBuf(s *Session, cb buildFunc) (int, error) {
	out := outPool.Get().(*[]byte)

	b := cb((*out)[:0])
	n, err := s.Conn.Write(b)

	if cap(b) <= maxPooled {
		*out = b[:0]
		outPool.Put(out)
	}
	return n, err
}
