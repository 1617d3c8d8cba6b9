//go:build !unix

package engine

import "syscall"

func reuseAddr(network, address string, c syscall.RawConn) error {
	return nil
}
