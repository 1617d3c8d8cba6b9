package server

import (
	"compress/gzip"
	"errors"
	"fmt"
	"net"
	"strconv"
)

const (
	DefaultHost           = "localhost"
	DefaultPort           = 4221
	DefaultMaxRequestSize = 1 << 20
)

// Config is set once before Run and only read afterwards,
// so connection goroutines share it w/o locks
type Config struct {
	Host string
	Port int

	// FilesRoot is the dir for /files routes, empty means they answer 404
	FilesRoot string

	CompressLevel  int // gzip level, see compress/gzip
	MaxRequestSize int // bytes, head + body
}

func DefaultConfig() Config {
	return Config{
		Host:           DefaultHost,
		Port:           DefaultPort,
		CompressLevel:  gzip.DefaultCompression,
		MaxRequestSize: DefaultMaxRequestSize,
	}
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.CompressLevel < gzip.HuffmanOnly || c.CompressLevel > gzip.BestCompression {
		errs = append(errs, fmt.Errorf("gzip level %d out of range", c.CompressLevel))
	}
	if c.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Errorf("max request size %d must be positive", c.MaxRequestSize))
	}
	return errors.Join(errs...)
}
