// accept loop, one goroutine per connection
// only bytes and sockets here, no HTTP logic
package engine

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/rs/zerolog"
)

// callback func for handling one accepted connection;
// session is closed by engine after it returns, whatever happened inside
type HandleConn func(s *Session)

type Engine struct {
	Log            zerolog.Logger
	MaxRequestSize int // read limit per session, 0 means default
}

// accept connections until ctx is done; every conn gets its own goroutine
// and the loop never waits for it. cancel closes ln and Serve returns nil
func (e *Engine) Serve(ctx context.Context, ln net.Listener, cb HandleConn) error {
	stop := context.AfterFunc(ctx, func() {
		ln.Close()
	})
	defer stop()

	e.Log.Info().Str("addr", ln.Addr().String()).Msg("accepting connections")

	var delay time.Duration // backoff on accept errors like EMFILE
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				e.Log.Info().Msg("listener closed")
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}

			if delay == 0 {
				delay = 5 * time.Millisecond
			} else {
				delay = min(2*delay, time.Second)
			}
			e.Log.Warn().Err(err).Dur("retry_in", delay).Msg("accept failed")
			time.Sleep(delay)
			continue
		}
		delay = 0

		go e.serveConn(conn, cb)
	}
}

func (e *Engine) serveConn(conn net.Conn, cb HandleConn) {
	s := newSession(conn, e.MaxRequestSize)
	defer s.release()

	defer func() {
		if r := recover(); r != nil {
			e.Log.Error().Interface("panic", r).Str("remote", s.RemoteAddr()).Msg("connection handler panicked")
		}
	}()

	cb(s)
}
