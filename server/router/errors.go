package router

import (
	"errors"
	"io/fs"

	"github.com/s00inx/tinyhttp/server/store"
)

// routing outcomes, not faults
var (
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// map routing or handler error to response status
func StatusFor(err error) int {
	switch {
	case err == nil:
		return 200
	case errors.Is(err, ErrRouteNotFound),
		errors.Is(err, store.ErrNoRoot),
		errors.Is(err, store.ErrInvalidName):
		return 404
	case errors.Is(err, fs.ErrNotExist):
		// missing file is 404 only on lookup, a failed write is a server fault
		var fe *store.FileError
		if errors.As(err, &fe) && fe.Op == "write" {
			return 500
		}
		return 404
	case errors.Is(err, ErrMethodNotAllowed):
		return 405
	default:
		return 500
	}
}
