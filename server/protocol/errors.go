package protocol

import (
	"errors"
	"fmt"
)

// errors for parsing
var (
	ErrMalformed  = errors.New("malformed request")
	ErrIncomplete = errors.New("incomplete request")

	// too large is still malformed, connection handler maps both to 500
	ErrTooLarge = fmt.Errorf("%w: request too large", ErrMalformed)
)
