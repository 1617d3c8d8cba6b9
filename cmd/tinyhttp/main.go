package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/s00inx/tinyhttp/server"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := server.DefaultConfig()

	fs := flag.NewFlagSet("tinyhttp", flag.ContinueOnError)
	fs.StringVar(&cfg.FilesRoot, "directory", "", "directory to serve /files from (empty disables file routes)")
	fs.StringVar(&cfg.Host, "host", cfg.Host, "host to bind")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "port to bind")
	fs.IntVar(&cfg.CompressLevel, "gzip-level", cfg.CompressLevel, "gzip level, -2..9")
	fs.IntVar(&cfg.MaxRequestSize, "max-request", cfg.MaxRequestSize, "max request size in bytes")
	level := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	pretty := fs.Bool("pretty", false, "human readable logs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := newLogger(*level, *pretty)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return err
	}
	log.Info().Msg("bye")
	return nil
}

func newLogger(level string, pretty bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("bad -log-level: %w", err)
	}

	if pretty {
		w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
		return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger(), nil
}
