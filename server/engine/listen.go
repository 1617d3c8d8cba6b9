package engine

import (
	"context"
	"net"
)

// bind tcp addr ("host:port") w address reuse so restart doesn't wait for TIME_WAIT
func Listen(ctx context.Context, addr string) (net.Listener, error) {
	lc := net.ListenConfig{Control: reuseAddr}
	return lc.Listen(ctx, "tcp", addr)
}
