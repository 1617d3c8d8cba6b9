package server

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/s00inx/tinyhttp/server/engine"
	"github.com/s00inx/tinyhttp/server/protocol"
	"github.com/s00inx/tinyhttp/server/router"
)

// connection handler states, one pass per connection
type connState uint8

const (
	stateReading connState = iota
	stateParsed
	stateRouted
	stateEncoded
	stateSent
	stateClosed
)

var stateNames = [...]string{
	stateReading: "reading",
	stateParsed:  "parsed",
	stateRouted:  "routed",
	stateEncoded: "encoded",
	stateSent:    "sent",
	stateClosed:  "closed",
}

func (st connState) String() string {
	if int(st) < len(stateNames) {
		return stateNames[st]
	}
	return fmt.Sprintf("state(%d)", st)
}

type conn struct {
	srv   *Server
	s     *engine.Session
	log   zerolog.Logger
	state connState
	start time.Time
}

// engine callback: exactly one request, one response, one close
func (srv *Server) handleConn(s *engine.Session) {
	c := &conn{
		srv:   srv,
		s:     s,
		log:   srv.log.With().Str("remote", s.RemoteAddr()).Logger(),
		state: stateReading,
		start: time.Now(),
	}
	defer c.close()

	defer func() {
		if r := recover(); r != nil {
			c.fail(fmt.Errorf("panic in %s: %v", c.state, r))
		}
	}()

	c.serve()
}

func (c *conn) setState(st connState) {
	c.state = st
	c.log.Debug().Stringer("state", st).Msg("conn state")
}

func (c *conn) serve() {
	req, err := c.srv.readRequest(c.s)
	if err != nil {
		c.fail(err)
		return
	}
	c.setState(stateParsed)

	resp, err := c.srv.route(req, c.log)
	if err != nil {
		code := router.StatusFor(err)
		if code >= 500 {
			c.fail(err)
			return
		}
		c.log.Debug().Err(err).Int("status", code).Msg("request not routed")
		resp = protocol.NewResponse(code)
	}
	c.setState(stateRouted)

	out := protocol.Negotiate(resp, req, c.srv.cfg.CompressLevel)
	c.setState(stateEncoded)

	n := c.send(out)
	c.log.Info().
		Str("method", req.Method).
		Str("target", req.Target).
		Int("status", out.Code).
		Int("bytes", n).
		Bool("gzip", out != resp).
		Dur("took", time.Since(c.start)).
		Msg("request")
}

// unhandled failure: 500 w empty body, straight to sent
func (c *conn) fail(err error) {
	if c.state >= stateSent {
		c.log.Error().Err(err).Msg("failure after response was sent")
		return
	}

	c.log.Error().Err(err).Stringer("state", c.state).Msg("request failed")
	c.send(protocol.NewResponse(500))
}

func (c *conn) send(resp *protocol.Response) int {
	n, err := engine.WriteBuf(c.s, resp.AppendTo)
	if err != nil {
		c.log.Warn().Err(err).Int("written", n).Msg("write response")
	}
	c.setState(stateSent)
	return n
}

func (c *conn) close() {
	if err := c.s.Close(); err != nil {
		c.log.Debug().Err(err).Msg("close conn")
	}
	c.setState(stateClosed)
}
