package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/rs/zerolog"

	"github.com/s00inx/tinyhttp/server/engine"
	"github.com/s00inx/tinyhttp/server/protocol"
	"github.com/s00inx/tinyhttp/server/router"
	"github.com/s00inx/tinyhttp/server/store"
)

// New(cfg, log)      - validate config, build parser, router, file store and engine
// Run(ctx)           - bind cfg.Addr() and serve until ctx is done
// Serve(ctx, ln)     - serve on an already bound listener (tests use :0)

// per connection: read -> parse -> route -> handler -> gzip -> write -> close

type Server struct {
	R *router.HTTPRouter

	cfg   Config
	prs   protocol.HTTPParser
	files *store.Store
	eng   *engine.Engine
	log   zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("server: invalid config: %w", err)
	}

	return &Server{
		R:     router.NewDefault(),
		cfg:   cfg,
		prs:   protocol.HTTPParser{MaxSize: cfg.MaxRequestSize},
		files: store.New(cfg.FilesRoot),
		eng: &engine.Engine{
			Log:            log.With().Str("component", "engine").Logger(),
			MaxRequestSize: cfg.MaxRequestSize,
		},
		log: log,
	}, nil
}

func (srv *Server) Config() Config {
	return srv.cfg
}

func (srv *Server) Run(ctx context.Context) error {
	ln, err := engine.Listen(ctx, srv.cfg.Addr())
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", srv.cfg.Addr(), err)
	}
	return srv.Serve(ctx, ln)
}

func (srv *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv.log.Info().
		Str("addr", ln.Addr().String()).
		Str("files_root", srv.files.Root()).
		Msg("server started")

	return srv.eng.Serve(ctx, ln, srv.handleConn)
}

// read until parser has a full request, peer EOF or buffer limit
func (srv *Server) readRequest(s *engine.Session) (*protocol.Request, error) {
	for {
		_, rerr := s.Read()
		switch {
		case rerr == nil:
		case errors.Is(rerr, engine.ErrBufferFull):
			return nil, protocol.ErrTooLarge
		case errors.Is(rerr, io.EOF):
			return srv.prs.Parse(s.Data(), true)
		default:
			return nil, fmt.Errorf("%w: read: %v", protocol.ErrMalformed, rerr)
		}

		req, err := srv.prs.Parse(s.Data(), false)
		if !errors.Is(err, protocol.ErrIncomplete) {
			return req, err
		}
	}
}

// dispatch req and run handler; error is a routing outcome or handler failure
func (srv *Server) route(req *protocol.Request, log zerolog.Logger) (*protocol.Response, error) {
	c := router.NewContext(req, srv.files, log)

	h, err := srv.R.Serve(c)
	if err != nil {
		return nil, err
	}
	if err := h(c); err != nil {
		return nil, err
	}
	return c.Response(), nil
}
